package main

import "testing"

func TestRunUsageExitOnTooManyArgs(t *testing.T) {
	if code := run([]string{"cflat", "a", "b"}); code != 64 {
		t.Fatalf("expected exit 64, got %d", code)
	}
}

func TestRunParseErrorExit(t *testing.T) {
	if code := run([]string{"cflat", "/nonexistent/path/does/not/exist.cflat"}); code != 65 {
		t.Fatalf("expected exit 65 for an unreadable path, got %d", code)
	}
}
