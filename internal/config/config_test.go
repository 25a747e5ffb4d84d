package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
state_file: /run/user/1000/tv.state
tv:
  scale: "2"
delays:
  desktop_settle: 500ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/run/user/1000/tv.state", cfg.StateFile)
	assert.Equal(t, "2", cfg.TV.Scale)
	assert.Equal(t, 500*time.Millisecond, cfg.Delays.DesktopSettle)

	def := Default()
	assert.Equal(t, def.TV.Output, cfg.TV.Output)
	assert.Equal(t, def.Desktop, cfg.Desktop)
	assert.Equal(t, def.Delays.TVSettle, cfg.Delays.TVSettle)
}

func TestLoadReplacesOutputLayout(t *testing.T) {
	path := writeConfig(t, `
desktop:
  outputs:
    - name: DP-1
      workspaces: [web, code]
    - name: DP-2
      workspaces: [chat]
tv:
  output:
    name: HDMI-A-2
    workspaces: [web, code, chat, games]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Desktop.Outputs, 2)
	assert.Equal(t, VideoOutput{Name: "DP-2", Workspaces: []string{"chat"}}, cfg.Desktop.Outputs[1])
	assert.Equal(t, "HDMI-A-2", cfg.TV.Output.Name)
	assert.Equal(t, Default().Desktop.AudioSink, cfg.Desktop.AudioSink)
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := writeConfig(t, "tv: [unterminated")
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty state file", func(c *Config) { c.StateFile = "" }},
		{"unnamed tv output", func(c *Config) { c.TV.Output.Name = "" }},
		{"no desktop outputs", func(c *Config) { c.Desktop.Outputs = nil }},
		{"unnamed desktop output", func(c *Config) { c.Desktop.Outputs[1].Name = "" }},
		{"missing sink", func(c *Config) { c.TV.AudioSink = "" }},
		{"empty scale", func(c *Config) { c.TV.Scale = "" }},
		{"negative delay", func(c *Config) { c.Delays.TVRelease = -time.Second }},
		{"workspace not on tv", func(c *Config) { c.TV.Output.Workspaces = c.TV.Output.Workspaces[:8] }},
		{"workspace on two outputs", func(c *Config) {
			c.Desktop.Outputs[1].Workspaces = append(c.Desktop.Outputs[1].Workspaces, "1")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
