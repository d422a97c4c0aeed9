package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.NoError(t, cfg.Validate())
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
log:
  level: debug
server:
  addr: ":9090"
match:
  games: 4
  agents:
    - id: 7
      kind: alphabeta
      depth: 2
    - id: 8
      kind: remote
      url: http://localhost:9090
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "debug", cfg.Log.Level)
		require.True(t, cfg.Log.Pretty, "Unset keys keep their defaults")
		require.Equal(t, ":9090", cfg.Server.Addr)
		require.Equal(t, 4, cfg.Match.Games)
		require.Equal(t, []Agent{
			{ID: 7, Kind: KindAlphaBeta, Depth: 2},
			{ID: 8, Kind: KindRemote, URL: "http://localhost:9090"},
		}, cfg.Match.Agents)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "match: [games"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
		{"non-positive server depth", func(c *Config) { c.Server.Depth = 0 }},
		{"no games", func(c *Config) { c.Match.Games = 0 }},
		{"single agent", func(c *Config) { c.Match.Agents = c.Match.Agents[:1] }},
		{"duplicate agent ids", func(c *Config) { c.Match.Agents[1].ID = c.Match.Agents[0].ID }},
		{"unknown agent kind", func(c *Config) { c.Match.Agents[1].Kind = "oracle" }},
		{"alphabeta without depth", func(c *Config) { c.Match.Agents[0].Depth = 0 }},
		{"remote without url", func(c *Config) { c.Match.Agents[1] = Agent{ID: 2, Kind: KindRemote} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
