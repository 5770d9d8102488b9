package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/puzzlebox/internal/manifest"
	"github.com/aretw0/puzzlebox/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "batch.yaml", `
runs:
  - puzzle: movement
    input: day1.txt
  - puzzle: checksum
    params:
      seed: "10000"
      lengths: [20]
  - puzzle: viable
    input: /abs/day22.txt
`)

	m, err := manifest.Load(path)
	require.NoError(t, err)
	require.Len(t, m.Runs, 3)

	assert.Equal(t, filepath.Join(dir, "day1.txt"), m.Runs[0].Input)
	assert.Equal(t, "", m.Runs[1].Input)
	assert.Equal(t, "10000", m.Runs[1].Params["seed"])
	assert.Equal(t, []any{20}, m.Runs[1].Params["lengths"])
	assert.Equal(t, "/abs/day22.txt", m.Runs[2].Input)
}

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "batch.json", `{"runs": [{"puzzle": "assembunny", "input": "day12.txt"}]}`)

	m, err := manifest.Load(path)
	require.NoError(t, err)
	require.Len(t, m.Runs, 1)
	assert.Equal(t, "assembunny", m.Runs[0].Puzzle)
	assert.Equal(t, filepath.Join(dir, "day12.txt"), m.Runs[0].Input)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := manifest.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, dir, "nameless.yaml", "runs:\n  - input: day1.txt\n")
	_, err = manifest.Load(path)
	assert.ErrorIs(t, err, domain.ErrInvalidManifest)

	path = writeFile(t, dir, "broken.yaml", "runs: [\n")
	_, err = manifest.Load(path)
	assert.Error(t, err)
}
