package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds user-adjustable settings. The API key is never written
// to the config file; it comes from the environment only.
type Config struct {
	Model string `yaml:"model"`

	// Temperature, when set, overrides the per-mode defaults.
	Temperature *float32 `yaml:"temperature,omitempty"`

	APIKey string `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Model: "gemini-2.5-flash",
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "echoscribe"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file and the GEMINI_API_KEY environment
// variable. A missing file is created with the defaults; a missing
// key is not an error here -- the gateway rejects it on first use.
func Load() (*Config, error) {
	// A local .env is a dev convenience; absence is fine.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run: materialize the defaults so there is a file to
		// edit.
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}
	cfg.APIKey = os.Getenv("GEMINI_API_KEY")

	return cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
