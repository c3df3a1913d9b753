/*
Package config loads server configuration and scenario defaults.

PURPOSE:
  One YAML file drives the server: listen address, optional Redis cache,
  and the default scenario the dashboard starts from. A default config is
  embedded in the binary so the server runs with no file at all.

USAGE:
  cfg, err := config.Load("mortgage.yaml")   // or config.Default()

SEE ALSO:
  - factory/scenario.go: ScenarioJSON, reused as the defaults schema
  - cmd/server/main.go: flag handling and wiring
*/
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/warp/mortgage-engine/factory"
)

//go:embed default-config.yaml
var defaultConfigYAML []byte

// ServerConfig holds the serving-layer settings.
type ServerConfig struct {
	Addr string `yaml:"addr"` // listen address, e.g. ":8080"

	// RedisAddr enables the Redis analysis cache when non-empty;
	// otherwise an in-process cache is used.
	RedisAddr string `yaml:"redis_addr,omitempty"`

	// CacheTTLMinutes bounds how long cached analyses live. Zero means
	// no expiry.
	CacheTTLMinutes int `yaml:"cache_ttl_minutes,omitempty"`
}

// Config is the complete configuration.
type Config struct {
	Server   ServerConfig         `yaml:"server"`
	Scenario factory.ScenarioJSON `yaml:"scenario"`
}

// CacheTTL returns the cache expiry as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Server.CacheTTLMinutes) * time.Minute
}

// Load reads a YAML config file, falling back to embedded defaults for
// anything the file leaves unset (the file is unmarshalled over them).
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded default config: %w", err)
	}
	return &cfg, nil
}

// DefaultScenario returns the default scenario with the start date filled
// in when the config leaves it empty (the dashboard convention: start the
// loan today).
func (c *Config) DefaultScenario(today time.Time) factory.ScenarioJSON {
	sj := c.Scenario
	if sj.StartDate == "" {
		sj.StartDate = today.Format("2006-01-02")
	}
	return sj
}
