// Package config provides YAML file configuration with environment
// variable overrides. The FMCSA credential is environment-only and never
// read from the config file.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the server.
type Config struct {
	Server ServerConfig `yaml:"server"`
	FMCSA  FMCSAConfig  `yaml:"fmcsa"`
	Loads  LoadsConfig  `yaml:"loads"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port                 int    `yaml:"port" envconfig:"SERVER_PORT"`
	BindAddress          string `yaml:"bind_address" envconfig:"SERVER_BIND_ADDRESS"`
	ReadTimeoutSeconds   int    `yaml:"read_timeout_seconds" envconfig:"SERVER_READ_TIMEOUT_SECONDS"`
	WriteTimeoutSeconds  int    `yaml:"write_timeout_seconds" envconfig:"SERVER_WRITE_TIMEOUT_SECONDS"`
	IdleTimeoutSeconds   int    `yaml:"idle_timeout_seconds" envconfig:"SERVER_IDLE_TIMEOUT_SECONDS"`
	BodyLimit            string `yaml:"body_limit" envconfig:"SERVER_BODY_LIMIT"`
	EnableCORS           bool   `yaml:"enable_cors" envconfig:"SERVER_ENABLE_CORS"`
	AllowOrigins         string `yaml:"allow_origins" envconfig:"SERVER_ALLOW_ORIGINS"`
	EnableRequestLogging bool   `yaml:"enable_request_logging" envconfig:"SERVER_ENABLE_REQUEST_LOGGING"`
}

// FMCSAConfig contains settings for the outbound registry client.
type FMCSAConfig struct {
	BaseURL        string `yaml:"base_url" envconfig:"FMCSA_BASE_URL"`
	WebKey         string `yaml:"-" envconfig:"FMCSA_API_KEY"`
	TimeoutSeconds int    `yaml:"timeout_seconds" envconfig:"FMCSA_TIMEOUT_SECONDS"`
}

// LoadsConfig contains settings for the load reference table.
type LoadsConfig struct {
	Path string `yaml:"path" envconfig:"LOADS_PATH"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                 8000,
			BindAddress:          "0.0.0.0",
			ReadTimeoutSeconds:   30,
			WriteTimeoutSeconds:  30,
			IdleTimeoutSeconds:   120,
			BodyLimit:            "1M",
			EnableCORS:           true,
			AllowOrigins:         "*",
			EnableRequestLogging: true,
		},
		FMCSA: FMCSAConfig{
			BaseURL:        "https://mobile.fmcsa.dot.gov/qc/services",
			TimeoutSeconds: 10,
		},
		Loads: LoadsConfig{
			Path: "data/loads.csv",
		},
	}
}

// LoadConfig reads configuration from a YAML file, then overlays
// environment variables. A missing file is not an error; defaults apply
// and the environment can still override them.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing environment overrides: %w", err)
	}

	return cfg, nil
}

// GetServerAddr returns the address the HTTP server binds to.
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}
