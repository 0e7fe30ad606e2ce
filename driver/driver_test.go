package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunFileExecutesHelloWorld(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cflat")
	require.NoError(t, os.WriteFile(path, []byte(`void main() { print("hello"); } main();`), 0o644))

	var out bytes.Buffer
	res := RunFile(path, &out, bytes.NewReader(nil))
	require.Empty(t, res.ParseErrors)
	require.NoError(t, res.RuntimeErr)
	require.Equal(t, "hello", out.String())
}

func TestRunFileSplicesImportedFunctions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cflatexe"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cflatexe", "mathlib.cflat"), []byte(`
		func square(n) { return n * n; }
		print("should not run");
	`), 0o644))

	mainPath := filepath.Join(dir, "main.cflat")
	require.NoError(t, os.WriteFile(mainPath, []byte(`
		import mathlib;
		void main() { print(square(5)); }
		main();
	`), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	var out bytes.Buffer
	res := RunFile(mainPath, &out, bytes.NewReader(nil))
	require.Empty(t, res.ParseErrors)
	require.NoError(t, res.RuntimeErr)
	require.Equal(t, "25", out.String())
}

func TestResolveArgsUsageExitOnTooManyArgs(t *testing.T) {
	_, usageExit := ResolveArgs([]string{"a", "b"})
	require.True(t, usageExit)

	path, usageExit := ResolveArgs(nil)
	require.False(t, usageExit)
	require.Equal(t, DefaultPath, path)

	path, usageExit = ResolveArgs([]string{"foo.cflat"})
	require.False(t, usageExit)
	require.Equal(t, "foo.cflat", path)
}
