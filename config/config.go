package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"tablut/meta"
)

const (
	KindAlphaBeta = "alphabeta"
	KindRandom    = "random"
	KindRemote    = "remote"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
	Match  Match  `yaml:"match"`
}

type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Server struct {
	Addr  string `yaml:"addr"`
	Depth int    `yaml:"depth"` // search depth of the served agent
}

type Match struct {
	Name      string  `yaml:"name"`
	Games     int     `yaml:"games"`
	OutputDir string  `yaml:"outputDir"`
	Agents    []Agent `yaml:"agents"`
}

// Agent describes one player of a match. Depth applies to alphabeta agents,
// Seed to random agents and URL to remote agents.
type Agent struct {
	ID    int    `yaml:"id"`
	Kind  string `yaml:"kind"`
	Depth int    `yaml:"depth"`
	Seed  uint64 `yaml:"seed"`
	URL   string `yaml:"url"`
}

func Default() *Config {
	return &Config{
		Log: Log{Level: "info", Pretty: true},
		Server: Server{
			Addr:  meta.DEFAULT_ADDR,
			Depth: meta.SEARCH_DEPTH,
		},
		Match: Match{
			Name:      "alphabeta_vs_random",
			Games:     meta.GAMES,
			OutputDir: meta.OUTPUT_DIR,
			Agents: []Agent{
				{ID: 1, Kind: KindAlphaBeta, Depth: meta.SEARCH_DEPTH},
				{ID: 2, Kind: KindRandom, Seed: 1},
			},
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Server.Depth <= 0 {
		return fmt.Errorf("%w: server depth must be positive", ErrInvalidConfig)
	}
	if c.Match.Games <= 0 {
		return fmt.Errorf("%w: match games must be positive", ErrInvalidConfig)
	}
	if len(c.Match.Agents) != 2 {
		return fmt.Errorf("%w: a match needs exactly two agents, got %d", ErrInvalidConfig, len(c.Match.Agents))
	}
	if c.Match.Agents[0].ID == c.Match.Agents[1].ID {
		return fmt.Errorf("%w: agents share id %d", ErrInvalidConfig, c.Match.Agents[0].ID)
	}
	for _, a := range c.Match.Agents {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (a Agent) Validate() error {
	switch a.Kind {
	case KindAlphaBeta:
		if a.Depth <= 0 {
			return fmt.Errorf("%w: agent %d depth must be positive", ErrInvalidConfig, a.ID)
		}
	case KindRandom:
	case KindRemote:
		if a.URL == "" {
			return fmt.Errorf("%w: agent %d needs a url", ErrInvalidConfig, a.ID)
		}
	default:
		return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidConfig, a.ID, a.Kind)
	}
	return nil
}
