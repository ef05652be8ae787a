package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	loopconfig "github.com/tomz197/orbit-arcade/internal/loop/config"
)

// Config is the host configuration shared by the game, SSH and web binaries.
type Config struct {
	Log  LogConfig  `toml:"log"`
	SSH  SSHConfig  `toml:"ssh"`
	Web  WebConfig  `toml:"web"`
	Game GameConfig `toml:"game"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text", "json" or "logfmt"
}

type SSHConfig struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	HostKeyPath string `toml:"host_key_path"`
}

type WebConfig struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

type GameConfig struct {
	FrameRate            int      `toml:"frame_rate"`
	MaxTermWidth         int      `toml:"max_term_width"`
	MaxTermHeight        int      `toml:"max_term_height"`
	InactivityWarn       Duration `toml:"inactivity_warn"`
	InactivityDisconnect Duration `toml:"inactivity_disconnect"`
	ShutdownTimeout      Duration `toml:"shutdown_timeout"`
}

// FrameTime is the wall-clock budget of one rendered frame.
func (g GameConfig) FrameTime() time.Duration {
	if g.FrameRate <= 0 {
		return loopconfig.ClientTargetFrameTime
	}
	return time.Second / time.Duration(g.FrameRate)
}

// Duration is a time.Duration that decodes from TOML strings like "90s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// Load reads the TOML file at path over the defaults and applies environment
// overrides. An empty path yields defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.SSH.Host = GetEnv("SSH_HOST", c.SSH.Host)
	c.SSH.Port = GetEnv("SSH_PORT", c.SSH.Port)
	c.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", c.SSH.HostKeyPath)
	c.Web.Host = GetEnv("WEB_HOST", c.Web.Host)
	c.Web.Port = GetEnv("WEB_PORT", c.Web.Port)
	c.Log.Level = GetEnv("LOG_LEVEL", c.Log.Level)

	fps, err := getEnvPositive("FRAME_RATE", c.Game.FrameRate)
	if err != nil {
		return err
	}
	c.Game.FrameRate = fps
	return nil
}

func defaults() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		SSH: SSHConfig{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: ".ssh/orbit_host_key",
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: "8080",
		},
		Game: GameConfig{
			FrameRate:            loopconfig.ClientTargetFPS,
			MaxTermWidth:         120,
			MaxTermHeight:        40,
			InactivityWarn:       Duration{90 * time.Second},
			InactivityDisconnect: Duration{120 * time.Second},
			ShutdownTimeout:      Duration{15 * time.Second},
		},
	}
}
