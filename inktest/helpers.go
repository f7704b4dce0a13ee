package inktest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsequence/multicaller/artifact"
	"github.com/0xsequence/multicaller/sonic"
	"github.com/stretchr/testify/require"
)

// WriteFile writes raw content to dir/relativePath, creating parent dirs.
func WriteFile(t *testing.T, dir, relativePath, content string) {
	t.Helper()
	path := filepath.Join(dir, relativePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// WriteMetadata writes a minimal ink! metadata document with the given
// source hash for spec under dir.
func WriteMetadata(t *testing.T, dir string, spec artifact.Spec, hash string) {
	t.Helper()
	doc := map[string]any{
		"source": map[string]any{
			"hash":     hash,
			"language": "ink! 5.0.0",
			"compiler": "rustc 1.78.0",
		},
		"contract": map[string]any{
			"name":    spec.Label,
			"version": "5.0.0",
		},
		"version": 5,
	}
	data, err := sonic.Config.Marshal(doc)
	require.NoError(t, err)
	WriteFile(t, dir, spec.RelativePath, string(data))
}

// Hashes of the build artifacts written by SetupArtifacts.
const (
	AccumulatorHash = "0xAAA"
	SubberHash      = "0xBBB"
	AdderHash       = "0xCCC"
)

// SetupArtifacts returns a temp target directory holding metadata for every
// artifact.Specs entry.
func SetupArtifacts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	hashes := map[string]string{
		artifact.LabelAccumulator: AccumulatorHash,
		artifact.LabelSubber:      SubberHash,
		artifact.LabelAdder:       AdderHash,
	}
	for _, spec := range artifact.Specs {
		WriteMetadata(t, dir, spec, hashes[spec.Label])
	}
	return dir
}
