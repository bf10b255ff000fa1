package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the binary needs beyond its CLI flags.
type Config struct {
	// Environment selects logger behavior (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	Shell struct {
		// Trials is how many attempts the interactive shell grants for
		// resolving a user/book name pair before giving up.
		Trials int `env:"SHELL_TRIALS" env-default:"3" yaml:"trials"`
	} `yaml:"shell"`

	Seed struct {
		// Path points at an optional YAML seed file applied at startup.
		Path string `env:"SEED_PATH" env-default:"" yaml:"path"`
		// Builtin applies the built-in sample catalog when true.
		Builtin bool `env:"SEED_BUILTIN" env-default:"true" yaml:"builtin"`
	} `yaml:"seed"`
}

// Load reads the YAML config at configPath, overlaying environment
// variables. A missing file is not an error: the config then comes from
// the environment and the defaults alone.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	return &cfg, nil
}
