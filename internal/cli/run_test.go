package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoMap = `S..#....
.#.#.##.
.#...#.D
`

func writeRun(t *testing.T, mapText, cfgText string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level.txt"), []byte(mapText), 0o644))
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfgText), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunText(t *testing.T) {
	cfg := writeRun(t, demoMap, "map: level.txt\ntick: 0s\n")

	out, logs, err := execute(t, "run", cfg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	for _, row := range lines[:3] {
		assert.Len(t, row, 8)
	}
	assert.True(t, strings.HasPrefix(lines[0], "S"))
	assert.True(t, strings.HasSuffix(lines[2], "D"))
	assert.Contains(t, lines[3], "path of")
	assert.Contains(t, logs, "path resolved")
	assert.NotContains(t, logs, "msg=tick")
}

func TestRunJSONVerbose(t *testing.T) {
	cfg := writeRun(t, demoMap, "map: level.txt\ntick: 0s\nstrategy: greedy\n")

	out, logs, err := execute(t, "run", "--format", "json", "-v", "--strategy", "bfs", cfg)
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "found", report["status"])
	path := report["path"].([]any)
	require.NotEmpty(t, path)
	assert.Equal(t, map[string]any{"x": 0.0, "y": 0.0}, path[0])
	assert.Equal(t, map[string]any{"x": 7.0, "y": 2.0}, path[len(path)-1])
	assert.Contains(t, logs, "msg=tick")
	assert.Contains(t, logs, "strategy=bfs")
}

func TestRunNoPath(t *testing.T) {
	cfg := writeRun(t, "S#.\n##.\n..D\n", "map: level.txt\ntick: 0s\n")

	out, _, err := execute(t, "run", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "no path from (0,0) to (2,2)")
}

func TestRunConfiguredEndpoints(t *testing.T) {
	cfg := writeRun(t, "...\n...\n", "map: level.txt\ntick: 0s\nsource: {x: 2, y: 1}\ndestination: {x: 0, y: 0}\n")

	out, _, err := execute(t, "run", "--format", "json", cfg)
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, map[string]any{"x": 2.0, "y": 1.0}, report["source"])
	assert.Equal(t, map[string]any{"x": 0.0, "y": 0.0}, report["destination"])
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		mapText string
		cfgText string
		args    []string
		want    string
	}{
		{name: "no map", mapText: demoMap, cfgText: "tick: 0s\n", want: "no map"},
		{name: "no source", mapText: "...\n..D\n", cfgText: "map: level.txt\n", want: "no source"},
		{name: "no destination", mapText: "S..\n...\n", cfgText: "map: level.txt\n", want: "no destination"},
		{name: "bad strategy flag", mapText: demoMap, cfgText: "map: level.txt\n", args: []string{"--strategy", "dfs"}, want: "unknown strategy"},
		{name: "bad map", mapText: "S.x\n", cfgText: "map: level.txt\n", want: "unexpected tile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := writeRun(t, tt.mapText, tt.cfgText)
			args := append([]string{"run"}, tt.args...)
			_, _, err := execute(t, append(args, cfg)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestInvalidFormat(t *testing.T) {
	cfg := writeRun(t, demoMap, "map: level.txt\n")
	_, _, err := execute(t, "run", "--format", "yaml", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRunBundledExample(t *testing.T) {
	out, _, err := execute(t, "run", "--tick", "0", filepath.Join("..", "..", "examples", "demo.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "path of 36 cells")
}
