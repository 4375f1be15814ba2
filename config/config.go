package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults match the original demo: the Flask development server address and
// the page title it served.
const (
	DefaultListenAddress = "127.0.0.1:5000"
	DefaultPageTitle     = "LLM Insecure Output Handling Example"
)

// The global, read-only config variable.
var (
	cfg  *Config
	once sync.Once
)

// load builds a Config from defaults plus an optional YAML file.
func load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("listen_address", DefaultListenAddress)
	v.SetDefault("page_title", DefaultPageTitle)
	v.SetDefault("debug", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&configuration); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &configuration, nil
}

// LoadConfig reads the optional config file, parses it, and initializes the
// global cfg variable. It ensures that the configuration is set only once.
func LoadConfig(configFile string) (*Config, error) {
	var err error
	once.Do(func() {
		cfg, err = load(configFile)
	})

	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, errors.New("configuration was not set")
	}

	return cfg, nil
}

// GetConfig returns the loaded configuration.
// It panics if the configuration has not been set.
func GetConfig() *Config {
	if cfg == nil {
		panic("Config has not been set! Call LoadConfig first.")
	}
	return cfg
}
