// Package config loads pathbench run configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/pathbench/search"
	"github.com/katalvlaran/pathbench/simulation"
	"github.com/katalvlaran/pathbench/store"
	"github.com/katalvlaran/pathbench/terrain"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Terrain    TerrainConfig    `toml:"terrain"`
	Agents     []AgentConfig    `toml:"agents"`
	Store      StoreConfig      `toml:"store"`
	Path       string           `toml:"-"`
}

type SimulationConfig struct {
	Algorithm         string `toml:"algorithm"`
	Doubling          bool   `toml:"doubling"`
	DynamicGeneration bool   `toml:"dynamic_generation"`
	ObstacleCount     int    `toml:"obstacle_count"`
	WeightedTileCount int    `toml:"weighted_tile_count"`
	Iterations        int    `toml:"iterations"`
	WeightRange       int    `toml:"weight_range"`
	Workers           int    `toml:"workers"`
	MaxRegenerations  int    `toml:"max_regenerations"`
	ProbeFactor       int    `toml:"probe_factor"`
	GreedyBudget      int    `toml:"greedy_budget"`
	Seed              int64  `toml:"seed"`
	JumpCache         bool   `toml:"jump_cache"`
}

type TerrainConfig struct {
	Width  int   `toml:"width"`
	Height int   `toml:"height"`
	Seed   int64 `toml:"seed"`
}

// AgentConfig holds one agent's endpoints as [x, y] pairs.
type AgentConfig struct {
	Start []int `toml:"start"`
	Goal  []int `toml:"goal"`
}

type StoreConfig struct {
	Kind string `toml:"kind"`
	Path string `toml:"path"`
}

// Default returns a runnable configuration: one A* agent crossing a 32×32
// terrain ten times, regenerated every iteration, reports kept in memory.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			Algorithm:         search.NameAStar,
			DynamicGeneration: true,
			ObstacleCount:     64,
			WeightedTileCount: 128,
			Iterations:        10,
			WeightRange:       9,
			MaxRegenerations:  100,
			ProbeFactor:       10,
			GreedyBudget:      2,
			JumpCache:         true,
		},
		Terrain: TerrainConfig{Width: 32, Height: 32, Seed: 1},
		Agents: []AgentConfig{
			{Start: []int{0, 0}, Goal: []int{31, 31}},
		},
		Store: StoreConfig{Kind: store.KindMemory},
	}
}

// Load reads path over Default(). An empty path returns Default().
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	resolved, err := ExpandPath(path)
	if err != nil {
		return Config{}, err
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", resolved, err)
	}

	// A file that lists agents replaces the default agent entirely.
	cfg.Agents = nil
	md, err := toml.Decode(string(bytes), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config file: %w", err)
	}
	if !md.IsDefined("agents") {
		cfg.Agents = Default().Agents
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	cfg.Path = resolved
	return cfg, nil
}

// ExpandPath resolves a leading ~ to the home directory and cleans the result.
func ExpandPath(path string) (string, error) {
	resolved := path
	if strings.HasPrefix(resolved, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed := strings.TrimPrefix(resolved, "~")
		trimmed = strings.TrimPrefix(trimmed, "\\")
		trimmed = strings.TrimPrefix(trimmed, "/")
		resolved = filepath.Join(home, trimmed)
	}
	return filepath.Clean(resolved), nil
}

// Validate checks ranges and that every agent endpoint lies on the terrain.
func (c Config) Validate() error {
	s := c.Simulation
	switch {
	case s.Iterations < 1 || s.Iterations > 255:
		return fmt.Errorf("%w: simulation.iterations %d outside 1..255", ErrInvalid, s.Iterations)
	case s.WeightRange < 0 || s.WeightRange > terrain.MaxWeight:
		return fmt.Errorf("%w: simulation.weight_range %d outside 0..%d", ErrInvalid, s.WeightRange, terrain.MaxWeight)
	case s.ObstacleCount < 0 || s.WeightedTileCount < 0:
		return fmt.Errorf("%w: tile counts must not be negative", ErrInvalid)
	case s.Workers < 0 || s.MaxRegenerations < 0 || s.ProbeFactor < 0 || s.GreedyBudget < 0:
		return fmt.Errorf("%w: worker and budget settings must not be negative", ErrInvalid)
	case !knownAlgorithm(s.Algorithm):
		return fmt.Errorf("%w: unknown algorithm %q (want one of %s)", ErrInvalid, s.Algorithm, strings.Join(search.Names, ", "))
	case c.Terrain.Width < 1 || c.Terrain.Height < 1:
		return fmt.Errorf("%w: terrain %dx%d", ErrInvalid, c.Terrain.Width, c.Terrain.Height)
	case len(c.Agents) == 0:
		return fmt.Errorf("%w: no agents", ErrInvalid)
	}

	for i, a := range c.Agents {
		for _, p := range [][]int{a.Start, a.Goal} {
			if len(p) != 2 {
				return fmt.Errorf("%w: agents[%d] endpoints must be [x, y] pairs", ErrInvalid, i)
			}
			if p[0] < 0 || p[0] >= c.Terrain.Width || p[1] < 0 || p[1] >= c.Terrain.Height {
				return fmt.Errorf("%w: agents[%d] endpoint %v off the %dx%d terrain", ErrInvalid, i, p, c.Terrain.Width, c.Terrain.Height)
			}
		}
	}

	switch strings.ToLower(c.Store.Kind) {
	case "", store.KindMemory:
	case store.KindJSON, store.KindSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("%w: store.path required for %s", ErrInvalid, c.Store.Kind)
		}
	default:
		return fmt.Errorf("%w: store.kind %q", ErrInvalid, c.Store.Kind)
	}
	return nil
}

// SimulatorConfig converts the [simulation] table. Call Validate first; values
// are narrowed without further checks.
func (c Config) SimulatorConfig() simulation.Config {
	s := c.Simulation
	return simulation.Config{
		Algorithm:         s.Algorithm,
		Doubling:          s.Doubling,
		DynamicGeneration: s.DynamicGeneration,
		ObstacleCount:     uint32(s.ObstacleCount),
		WeightedTileCount: uint32(s.WeightedTileCount),
		Iterations:        uint8(s.Iterations),
		WeightRange:       uint8(s.WeightRange),
		Workers:           s.Workers,
		MaxRegenerations:  s.MaxRegenerations,
		ProbeFactor:       s.ProbeFactor,
		GreedyBudget:      s.GreedyBudget,
		Seed:              s.Seed,
		NoJumpCache:       !s.JumpCache,
	}
}

// Endpoints returns agent starts and goals in file order.
func (c Config) Endpoints() (starts, goals []terrain.Point) {
	for _, a := range c.Agents {
		starts = append(starts, terrain.Point{X: a.Start[0], Y: a.Start[1]})
		goals = append(goals, terrain.Point{X: a.Goal[0], Y: a.Goal[1]})
	}
	return starts, goals
}

func knownAlgorithm(name string) bool {
	want := search.New(name).Name()
	if want != search.NameGreedy {
		return true
	}
	// search.New falls back to Greedy, so accept only names that mean it.
	n := strings.ToLower(strings.TrimSpace(name))
	return n == "greedy"
}
