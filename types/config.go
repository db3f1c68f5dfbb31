package types

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const NetworkEnvKey = "SUBGRAPH_NETWORK"

// AppConfig is the process configuration read from the config file. It only
// selects which network to resolve and how the read-only surfaces are served.
type AppConfig struct {
	Network     string    `yaml:"network" json:"network"`
	Api         ApiConfig `yaml:"api" json:"api"`
	MetricsPort int16     `yaml:"metrics-port" json:"metrics-port"`
}

type ApiConfig struct {
	ListenAddr     string   `yaml:"listen-addr" json:"listen-addr"`
	TrustedProxies []string `yaml:"trusted-proxies" json:"trusted-proxies"`
}

const (
	defaultListenAddr  = "localhost:8000"
	defaultMetricsPort = 2112
)

// ParseAppConfig reads and decodes the YAML config file and fills in defaults.
func ParseAppConfig(file string) (*AppConfig, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %w", err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

// DefaultAppConfig returns a config with no network selected and default listeners.
func DefaultAppConfig() *AppConfig {
	cfg := &AppConfig{}
	cfg.setDefaults()
	return cfg
}

func (c *AppConfig) setDefaults() {
	if c.Api.ListenAddr == "" {
		c.Api.ListenAddr = defaultListenAddr
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = defaultMetricsPort
	}
}

// NetworkName picks the network to resolve. An explicit override wins, then
// the SUBGRAPH_NETWORK environment variable, then the config file.
func (c *AppConfig) NetworkName(override string) string {
	if override != "" {
		return override
	}
	if env := os.Getenv(NetworkEnvKey); env != "" {
		return env
	}
	return c.Network
}
