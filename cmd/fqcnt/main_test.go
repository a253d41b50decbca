package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunCountsInArgumentOrder(t *testing.T) {
	fa := writeFile(t, "ref.fa", ">s1\nACGT\n>s2\nGGGG\nCCCC\n")
	fq := writeFile(t, "reads.fq", "@r1\nACGT\n+\n!!!!\n")

	var out bytes.Buffer
	require.NoError(t, run(testLogger(), &out, []string{fa, fq}, 2))
	require.Equal(t, "2\t12\n1\t4\n", out.String())
}

func TestRunReportsParseFailure(t *testing.T) {
	good := writeFile(t, "good.fa", ">s1\nACGT\n")
	bad := writeFile(t, "bad.fq", "@r1\nACGT\n+\n!!\n")

	var out bytes.Buffer
	err := run(testLogger(), &out, []string{good, bad}, 1)
	require.Error(t, err)
	// The good file still reports its totals.
	require.Equal(t, "1\t4\n", out.String())
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := run(testLogger(), &out, []string{filepath.Join(t.TempDir(), "nope.fa")}, 1)
	require.Error(t, err)
	require.Empty(t, out.String())
}
