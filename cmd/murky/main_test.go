package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Autoparallel/murky"
	"github.com/Autoparallel/murky/internal/mtest"
	"github.com/stretchr/testify/require"
)

// runCLI drives one full CLI invocation with the given arguments,
// returning whatever was written to standard output.
func runCLI(t *testing.T, in io.Reader, args ...string) (string, error) {
	t.Helper()

	if in == nil {
		in = strings.NewReader("")
	}

	var out bytes.Buffer
	app := newApp(mtest.NewLogger(t), in, &out, io.Discard)

	err := app.newCLI().Run(append([]string{"murky"}, args...))
	return out.String(), err
}

func TestCLI_printsFullTree(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, nil, "a", "b", "c")
	require.NoError(t, err)

	tr, err := murky.NewTree([]string{"a", "b", "c"})
	require.NoError(t, err)

	require.Equal(t, tr.String(), out)
}

func TestCLI_rootOnly(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, nil, "--root", "a", "b", "c")
	require.NoError(t, err)

	tr, err := murky.NewTree([]string{"a", "b", "c"})
	require.NoError(t, err)

	require.Equal(t, tr.RootHash().String()+"\n", out)
}

func TestCLI_levelFilter(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, nil, "--levels", "0,2", "a", "b", "c")
	require.NoError(t, err)

	tr, err := murky.NewTree([]string{"a", "b", "c"})
	require.NoError(t, err)

	var exp strings.Builder
	exp.WriteString("Root Hash:\n")
	exp.WriteString("  " + tr.RootHash().String() + "\n")
	exp.WriteString("Level 2:\n")
	for _, d := range tr.Level(2) {
		exp.WriteString("  " + d.String() + "\n")
	}

	require.Equal(t, exp.String(), out)
}

func TestCLI_fileSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "leaves.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n\ny\n"), 0o600))

	out, err := runCLI(t, nil, "--file", path)
	require.NoError(t, err)

	// The blank line in the middle is an empty-string leaf.
	tr, err := murky.NewTree([]string{"x", "", "y"})
	require.NoError(t, err)

	require.Equal(t, tr.String(), out)
}

func TestCLI_stdinSource(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, strings.NewReader("p\nq\n"), "--file", "-")
	require.NoError(t, err)

	tr, err := murky.NewTree([]string{"p", "q"})
	require.NoError(t, err)

	require.Equal(t, tr.String(), out)
}

func TestCLI_noLeaves(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, nil)
	require.ErrorIs(t, err, murky.ErrNoLeaves)
}

func TestCLI_rejectsArgsWithFile(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, nil, "--file", "leaves.txt", "a")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not both")
}

func TestCLI_badLevelSpec(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, nil, "--levels", "5", "a", "b")
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of range")
}

func TestCLI_missingFile(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, nil, "--file", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}
