package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load builds the configuration with priority ENV > YAML > env-default tags
// and validates it. The YAML file comes from CONFIG_PATH, else ./config.yaml.
// A missing default file is fine (ENV only); a missing CONFIG_PATH file is
// an error.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := os.Getenv(pathEnv), true
	if path == "" {
		path, explicit = defaultPath, false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Describe lists every environment variable the service reads, with its
// default, for --help output.
func Describe() (string, error) {
	header := "Environment variables (override " + pathEnv + " YAML):"
	return cleanenv.GetDescription(&Config{}, &header)
}
