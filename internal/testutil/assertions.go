package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ReadArtifact returns the exact content of a file the generator wrote.
func ReadArtifact(t *testing.T, result *HarnessResult, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(result.Dir, name))
	require.NoError(t, err, "expected artifact %q to exist", name)
	return string(data)
}

// AssertNoArtifacts checks that the output directory is still empty.
func AssertNoArtifacts(t *testing.T, result *HarnessResult) {
	t.Helper()

	entries, err := os.ReadDir(result.Dir)
	require.NoError(t, err)
	require.Empty(t, entries, "expected no files to be written")
}
