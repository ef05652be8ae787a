package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	loopconfig "github.com/tomz197/orbit-arcade/internal/loop/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Game.FrameRate)
	assert.Equal(t, time.Second/60, cfg.Game.FrameTime())
	assert.Equal(t, 120*time.Second, cfg.Game.InactivityDisconnect.Duration)
}

func TestFrameTimeFallsBackToTunedRate(t *testing.T) {
	assert.Equal(t, loopconfig.ClientTargetFrameTime, GameConfig{}.FrameTime())
	assert.Equal(t, loopconfig.ClientTargetFrameTime, GameConfig{FrameRate: -5}.FrameTime())
	assert.Equal(t, time.Second/120, GameConfig{FrameRate: 120}.FrameTime())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.toml")
	data := `
[log]
level = "debug"
format = "json"

[web]
port = "9090"

[game]
frame_rate = 30
inactivity_warn = "45s"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "9090", cfg.Web.Port)
	assert.Equal(t, "0.0.0.0", cfg.Web.Host)
	assert.Equal(t, 30, cfg.Game.FrameRate)
	assert.Equal(t, 45*time.Second, cfg.Game.InactivityWarn.Duration)
	assert.Equal(t, 120, cfg.Game.MaxTermWidth)
}

func TestLoadEnvWins(t *testing.T) {
	t.Setenv("WEB_PORT", "7070")
	t.Setenv("FRAME_RATE", "120")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Web.Port)
	assert.Equal(t, 120, cfg.Game.FrameRate)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read config")

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[game]\ninactivity_warn = \"soon\"\n"), 0o600))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parse config")

	t.Setenv("FRAME_RATE", "fast")
	_, err = Load("")
	assert.ErrorContains(t, err, "FRAME_RATE")
}
