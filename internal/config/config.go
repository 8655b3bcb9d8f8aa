package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig selects and locates the store
type DatabaseConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// LogConfig configures the slog handler
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// flagKeys maps command line flags onto config keys
var flagKeys = map[string]string{
	"db":        "database.path",
	"backend":   "database.backend",
	"log-level": "log.level",
	"log-file":  "log.file",
	"addr":      "server.address",
}

// Load builds the configuration from defaults, the YAML file at path,
// TALLY_* environment variables and any changed flags, in increasing
// priority. An empty path means DefaultConfigPath. A missing file is not an error.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = DefaultConfigPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values viper cannot check on its own
func (c *Config) Validate() error {
	switch c.Database.Backend {
	case BackendSQLite:
		if c.Database.Path == "" {
			return errors.New("database.path is required for the sqlite backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown database backend %q (must be: %s, %s)",
			c.Database.Backend, BackendSQLite, BackendMemory)
	}
	if c.Server.ShutdownTimeout < 0 {
		return errors.New("server.shutdown_timeout can not be negative")
	}
	return nil
}

// fileConfig is the on-disk YAML layout
type fileConfig struct {
	Database struct {
		Backend string `yaml:"backend"`
		Path    string `yaml:"path"`
	} `yaml:"database"`
	Server struct {
		Address         string   `yaml:"address"`
		ShutdownTimeout string   `yaml:"shutdown_timeout"`
		AllowedOrigins  []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file,omitempty"`
	} `yaml:"log"`
}

// YAML renders the config in the on-disk layout
func (c *Config) YAML() ([]byte, error) {
	var doc fileConfig
	doc.Database.Backend = c.Database.Backend
	doc.Database.Path = c.Database.Path
	doc.Server.Address = c.Server.Address
	doc.Server.ShutdownTimeout = c.Server.ShutdownTimeout.String()
	doc.Server.AllowedOrigins = c.Server.AllowedOrigins
	doc.Log.Level = c.Log.Level
	doc.Log.File = c.Log.File

	return yaml.Marshal(&doc)
}

// Save writes the config as YAML to path, creating parent directories
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultConfigPath returns the path to the config file
func DefaultConfigPath() string {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tally", "config.yaml")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tally", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "tally", "config.yaml")
}
