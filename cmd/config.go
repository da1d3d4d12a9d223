package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dawoodab/khata"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the application configuration, read from KHATA_* environment
// variables, with a .env file honored when present.
type Config struct {
	DataDir  string `envconfig:"DATA_DIR"`
	Store    string `envconfig:"STORE" default:"file"`
	Currency string `envconfig:"CURRENCY" default:"PKR"`
}

// LoadConfig reads the configuration. DataDir defaults to ~/.khata.
func LoadConfig() (Config, error) {
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process("khata", &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = filepath.Join(home, ".khata")
	}
	return cfg, nil
}

// OpenStore opens the storage backend the configuration names.
func (c Config) OpenStore() (khata.Store, error) {
	switch c.Store {
	case "file":
		return khata.OpenDirStore(c.DataDir)
	case "sqlite":
		if err := os.MkdirAll(c.DataDir, 0755); err != nil {
			return nil, err
		}
		return khata.OpenSQLiteStore(filepath.Join(c.DataDir, "khata.db"))
	default:
		return nil, fmt.Errorf("unknown store %q (want file or sqlite)", c.Store)
	}
}
