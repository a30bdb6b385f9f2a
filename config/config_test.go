package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/pathbench/config"
	"github.com/katalvlaran/pathbench/search"
	"github.com/katalvlaran/pathbench/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathbench.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestDefault_Valid ensures the built-in configuration passes validation.
func TestDefault_Valid(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.Default(), cfg)
}

// TestLoad_File decodes the sample file and converts it for the simulator.
func TestLoad_File(t *testing.T) {
	cfg, err := config.Load("testdata/pathbench.toml")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "JPSW", cfg.Simulation.Algorithm)
	assert.Equal(t, 20, cfg.Terrain.Width)
	assert.Len(t, cfg.Agents, 2)
	assert.Equal(t, "sqlite", cfg.Store.Kind)

	sim := cfg.SimulatorConfig()
	assert.True(t, sim.Doubling)
	assert.False(t, sim.DynamicGeneration)
	assert.Equal(t, uint32(8), sim.ObstacleCount)
	assert.Equal(t, uint8(5), sim.Iterations)
	assert.Equal(t, uint8(6), sim.WeightRange)
	assert.Equal(t, 4, sim.Workers)
	assert.Equal(t, int64(77), sim.Seed)
	assert.True(t, sim.NoJumpCache)
	assert.Equal(t, 100, sim.MaxRegenerations, "unset keys keep their defaults")

	starts, goals := cfg.Endpoints()
	assert.Equal(t, []terrain.Point{{X: 0, Y: 0}, {X: 19, Y: 0}}, starts)
	assert.Equal(t, []terrain.Point{{X: 19, Y: 15}, {X: 0, Y: 15}}, goals)
}

// TestLoad_PartialKeepsDefaultAgents leaves the default agent when none are listed.
func TestLoad_PartialKeepsDefaultAgents(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "[simulation]\nalgorithm = \"bfs\"\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.Default().Agents, cfg.Agents)
	assert.Equal(t, search.NameBFS, search.New(cfg.Simulation.Algorithm).Name())
}

// TestLoad_Errors covers unreadable, malformed and misspelled files.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeConfig(t, "[simulation\n"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "[simulation]\niteratons = 3\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "simulation.iteratons")
}

// TestValidate_Rejects walks the validation table.
func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"ZeroIterations", func(c *config.Config) { c.Simulation.Iterations = 0 }},
		{"TooManyIterations", func(c *config.Config) { c.Simulation.Iterations = 256 }},
		{"WeightRange", func(c *config.Config) { c.Simulation.WeightRange = 300 }},
		{"NegativeObstacles", func(c *config.Config) { c.Simulation.ObstacleCount = -1 }},
		{"NegativeWorkers", func(c *config.Config) { c.Simulation.Workers = -2 }},
		{"UnknownAlgorithm", func(c *config.Config) { c.Simulation.Algorithm = "dijkstra" }},
		{"EmptyTerrain", func(c *config.Config) { c.Terrain.Width = 0 }},
		{"NoAgents", func(c *config.Config) { c.Agents = nil }},
		{"ShortPoint", func(c *config.Config) { c.Agents[0].Goal = []int{3} }},
		{"OffTerrain", func(c *config.Config) { c.Agents[0].Goal = []int{32, 0} }},
		{"StoreWithoutPath", func(c *config.Config) { c.Store = config.StoreConfig{Kind: "json"} }},
		{"UnknownStore", func(c *config.Config) { c.Store.Kind = "redis" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

// TestValidate_AlgorithmSpellings accepts every display name and short form.
func TestValidate_AlgorithmSpellings(t *testing.T) {
	names := append([]string{"greedy", "bfs", "a*", "astar", "jpsw"}, search.Names...)
	for _, name := range names {
		cfg := config.Default()
		cfg.Simulation.Algorithm = name
		assert.NoError(t, cfg.Validate(), name)
	}
}

// TestExpandPath resolves the home directory prefix.
func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := config.ExpandPath("~/runs/x.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "runs", "x.db"), got)

	got, err = config.ExpandPath("a/../b")
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}
