package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultAddress         = ":3000"
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
)

// defaultAllowedOrigins is the frontend dev server
var defaultAllowedOrigins = []string{"http://localhost:3001"}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Backend: BackendSQLite,
			Path:    DefaultDBPath(),
		},
		Server: ServerConfig{
			Address:         defaultAddress,
			ShutdownTimeout: defaultShutdownTimeout,
			AllowedOrigins:  append([]string(nil), defaultAllowedOrigins...),
		},
		Log: LogConfig{
			Level: defaultLogLevel,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("database.backend", d.Database.Backend)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// DefaultDBPath returns $XDG_DATA_HOME/tally/tally.db, or ~/.tally/tally.db
func DefaultDBPath() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "tally", "tally.db")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "tally.db"
	}
	return filepath.Join(homeDir, ".tally", "tally.db")
}
