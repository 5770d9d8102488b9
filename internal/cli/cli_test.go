package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/puzzlebox/internal/cli"
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

func testOptions(stdout, stderr *bytes.Buffer) cli.Options {
	return cli.Options{
		LogLevel: "warn",
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

func TestSolve_Movement(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := writeFile(t, t.TempDir(), "day1.txt", "R2, L3\n")

	err := cli.Solve(context.Background(), testOptions(&stdout, &stderr), "movement", path, nil)
	require.NoError(t, err)
	assert.Equal(t, "5\n", stdout.String())
}

func TestSolve_ChecksumParams(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := cli.Solve(context.Background(), testOptions(&stdout, &stderr), "checksum", "", []string{
		"seed=10000",
		"lengths=20,20",
	})
	require.NoError(t, err)
	assert.Equal(t, "part 1: 01100\npart 2: 01100\n", stdout.String())
}

func TestSolve_DefaultInputMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer

	err := cli.Solve(context.Background(), testOptions(&stdout, &stderr), "viable", "", nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, stdout.String())
}

func TestSolve_DefaultInput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, cli.DefaultInput, "/dev/grid/node-x0-y0 10T 10T 0T 100%\n/dev/grid/node-x1-y0 20T 0T 20T 0%\n")
	t.Chdir(dir)
	var stdout, stderr bytes.Buffer

	require.NoError(t, cli.Solve(context.Background(), testOptions(&stdout, &stderr), "viable", "", nil))
	assert.Equal(t, "1\n", stdout.String())
}

func TestSolve_UnknownPuzzle(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := cli.Solve(context.Background(), testOptions(&stdout, &stderr), "day99", "", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownPuzzle)
}

func TestSolve_BadLogLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := testOptions(&stdout, &stderr)
	opts.LogLevel = "shout"
	assert.Error(t, cli.Solve(context.Background(), opts, "movement", "", nil))
}

func TestSolve_WritesMetrics(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	opts := testOptions(&stdout, &stderr)
	opts.MetricsOut = filepath.Join(dir, "puzzlebox.prom")
	path := writeFile(t, dir, "day1.txt", "R1, X1")

	err := cli.Solve(context.Background(), opts, "movement", path, nil)
	require.ErrorIs(t, err, domain.ErrMalformedInstruction)

	data, err := os.ReadFile(opts.MetricsOut)
	require.NoError(t, err)
	assert.Contains(t, string(data), `puzzlebox_solves_total{outcome="failure",puzzle="movement"} 1`)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "day1.txt", "R5, L5, R5, R3")
	writeFile(t, dir, "day12.txt", "cpy 41 a\ninc a\ninc a\ndec a\njnz a 2\ndec a\n")
	manifestPath := writeFile(t, dir, "batch.yaml", `
runs:
  - puzzle: movement
    input: day1.txt
  - puzzle: checksum
    params:
      seed: "10000"
      lengths: [20]
  - puzzle: assembunny
    input: day12.txt
`)

	var stdout, stderr bytes.Buffer
	require.NoError(t, cli.Batch(context.Background(), testOptions(&stdout, &stderr), manifestPath))

	want := strings.Join([]string{
		"== movement",
		"12",
		"== checksum",
		"part 1: 01100",
		"== assembunny",
		"part 1: 42",
		"part 2: 42",
		"",
	}, "\n")
	assert.Equal(t, want, stdout.String())
}

func TestBatch_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "day1.txt", "R2, L3")
	manifestPath := writeFile(t, dir, "batch.json", `{"runs": [{"puzzle": "movement", "input": "day1.txt"}]}`)

	var stdout, stderr bytes.Buffer
	opts := testOptions(&stdout, &stderr)
	opts.JSON = true
	require.NoError(t, cli.Batch(context.Background(), opts, manifestPath))

	assert.JSONEq(t, `{"puzzle":"movement","parts":[{"value":"5"}]}`, stdout.String())
}

func TestBatch_StopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeFile(t, dir, "batch.yaml", `
runs:
  - puzzle: viable
  - puzzle: movement
    input: missing.txt
`)

	var stdout, stderr bytes.Buffer
	err := cli.Batch(context.Background(), testOptions(&stdout, &stderr), manifestPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run 1: viable needs an input file")
	assert.Empty(t, stdout.String())
}

func TestList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, cli.List(testOptions(&stdout, &stderr)))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "assembunny"))
	assert.True(t, strings.HasPrefix(lines[3], "viable"))
}

func TestDescribe(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, cli.Describe(testOptions(&stdout, &stderr), "checksum"))
	assert.True(t, strings.HasPrefix(stdout.String(), "# checksum\n"))

	err := cli.Describe(testOptions(&stdout, &stderr), "nope")
	assert.ErrorIs(t, err, domain.ErrUnknownPuzzle)
}

func TestGraph(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "prog.txt", "cpy 3 b\ninc a\ndec b\njnz b -2\n")

	var stdout, stderr bytes.Buffer
	err := cli.Graph(context.Background(), testOptions(&stdout, &stderr), path, cli.GraphOptions{Hot: 1})
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, `i3 -- "b != 0" --> i1`)
	assert.Contains(t, out, "class i1 hot;")
}

func TestGraph_UnknownRegister(t *testing.T) {
	path := writeFile(t, t.TempDir(), "prog.txt", "inc a\n")

	var stdout, stderr bytes.Buffer
	err := cli.Graph(context.Background(), testOptions(&stdout, &stderr), path, cli.GraphOptions{
		Hot:       1,
		Registers: map[string]int{"q": 1},
	})
	assert.Error(t, err)
}

func TestList_DefaultStderr(t *testing.T) {
	var stdout bytes.Buffer
	err := cli.List(cli.Options{LogLevel: "warn", Stdout: &stdout})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "movement")
}
