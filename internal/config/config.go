package config

import (
	"errors"
	"io"
	"os"
	"time"

	"bridge-server/internal/util"
	"bridge-server/pkg/bridge"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the bridge server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
	Game struct {
		// AlwaysVisible are the opponents whose hands are never concealed
		AlwaysVisible []int `yaml:"alwaysVisible" envconfig:"always_visible"`
		RowSize       int   `yaml:"rowSize" envconfig:"row_size"`
		// Seed makes every deal reproducible when non-zero
		Seed int64 `yaml:"seed"`
		// IdleTimeout closes tables without clients that haven't seen a command in this long
		IdleTimeout time.Duration `yaml:"idleTimeout" envconfig:"idle_timeout"`
	} `yaml:"game"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// DefaultConfig returns the configuration used when no file or environment overrides it
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.CORS.AllowedOrigins = []string{"*"}

	opts := bridge.DefaultOptions()
	cfg.Game.AlwaysVisible = opts.AlwaysVisible
	cfg.Game.RowSize = opts.RowSize
	cfg.Game.IdleTimeout = time.Minute * 30

	return cfg
}

// Load will load the configuration
// The YAML file is optional; environment variables prefixed with BRIDGE_ take precedence
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BRIDGE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()

		// an empty file has no overrides
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	if err := envconfig.Process("bridge", &cfg); err != nil {
		return err
	}

	config = cfg
	config.loaded = true
	return nil
}

// GameOptions returns the options new games are created with
func (c Config) GameOptions() bridge.Options {
	return bridge.Options{
		AlwaysVisible: append([]int{}, c.Game.AlwaysVisible...),
		RowSize:       c.Game.RowSize,
	}
}
