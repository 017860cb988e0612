package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/headway/config"
	"github.com/katalvlaran/headway/dijkstra"
	"github.com/katalvlaran/headway/internal/mazetest"
	"github.com/katalvlaran/headway/maze"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	h, err := cfg.Heading()
	require.NoError(t, err)
	assert.Equal(t, maze.East, h)

	p, err := cfg.EndPolicy()
	require.NoError(t, err)
	assert.Equal(t, dijkstra.EndAll, p)

	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.Equal(t, runtime.NumCPU(), cfg.WorkerCount())
}

// TestParse_Partial overrides a subset of keys; the rest keep their defaults.
func TestParse_Partial(t *testing.T) {
	cfg, err := config.Parse([]byte("turn_cost: 50\nstart_heading: north\nworkers: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), cfg.MoveCost)
	assert.Equal(t, int64(50), cfg.TurnCost)
	assert.Equal(t, "north", cfg.StartHeading)
	assert.Equal(t, 3, cfg.WorkerCount())
	assert.Equal(t, "all", cfg.EndHeadings)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestParse_Invalid is a table of bad documents; each must fail.
func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero move":      "move_cost: 0\n",
		"negative turn":  "turn_cost: -3\n",
		"bad heading":    "start_heading: up\n",
		"bad policy":     "end_headings: some\n",
		"negative pool":  "workers: -1\n",
		"bad log level":  "log_level: loud\n",
		"unknown key":    "diagonal: true\n",
		"malformed yaml": "move_cost: [1\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("end_headings: some\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestWriteYAML_RoundTrip encodes a config and parses it back.
func TestWriteYAML_RoundTrip(t *testing.T) {
	want := config.Default()
	want.TurnCost = 250
	want.EndHeadings = "first"
	want.LogLevel = "debug"

	var buf bytes.Buffer
	require.NoError(t, want.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "turn_cost: 250")

	got, err := config.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestLoad_FileAndEnv loads a YAML file through viper and overrides one key
// from the environment.
func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headway.yaml")
	require.NoError(t, os.WriteFile(path, []byte("move_cost: 2\nturn_cost: 20\nend_headings: first\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cfg.MoveCost)
	assert.Equal(t, int64(20), cfg.TurnCost)
	assert.Equal(t, "first", cfg.EndHeadings)
	assert.Equal(t, "east", cfg.StartHeading)

	t.Setenv("HEADWAY_TURN_COST", "30")
	t.Setenv("HEADWAY_LOG_LEVEL", "warn")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(30), cfg.TurnCost)
	assert.Equal(t, logrus.WarnLevel, cfg.Level())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("move_cost: 0\n"), 0o600))

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestSolverOptions feeds the converted options to dijkstra.Solve.
func TestSolverOptions(t *testing.T) {
	cfg := config.Default()
	cfg.MoveCost, cfg.TurnCost = 3, 7

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)

	g := mazetest.MustParse(t, mazetest.Corridor)
	res, err := dijkstra.Solve(g, mazetest.StartFacing(g, maze.East), opts...)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Score(12), res.MinScore)

	cfg.TurnCost = 0
	_, err = cfg.SolverOptions()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
