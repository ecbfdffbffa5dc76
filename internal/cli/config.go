package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the TOML configuration for the CLI and server.
type Config struct {
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
	Render RenderConfig `toml:"render"`
}

// StoreConfig selects and configures the layout store backend.
type StoreConfig struct {
	// Backend is one of "file", "memory", "redis", "mongo" or
	// "null" (discard writes).
	Backend string `toml:"backend"`

	// Dir is the root directory for the file backend. Defaults to
	// the XDG data directory (~/.local/share/docktile/layouts).
	Dir string `toml:"dir"`

	// RedisAddr is the host:port of the Redis server.
	RedisAddr string `toml:"redis_addr"`

	// MongoURI and MongoDatabase configure the MongoDB backend.
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// ServerConfig configures the HTTP layout server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// RenderConfig holds default frame dimensions for rendering commands.
type RenderConfig struct {
	Width  int  `toml:"width"`
	Height int  `toml:"height"`
	Plain  bool `toml:"plain"`
}

// DefaultConfig returns the configuration used when no config file
// exists.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend:       "file",
			RedisAddr:     "localhost:6379",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "docktile",
		},
		Server: ServerConfig{
			Addr: ":8420",
		},
		Render: RenderConfig{
			Width:  80,
			Height: 24,
		},
	}
}

// LoadConfig reads the TOML config at path. An empty path falls back
// to the XDG config location (~/.config/docktile/config.toml); a
// missing file at the default location is not an error and yields
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, err
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config file location.
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
