package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dimasea19961/powerplant-coding-challenge/core/metrics"
	"github.com/dimasea19961/powerplant-coding-challenge/core/planlog"
	"github.com/dimasea19961/powerplant-coding-challenge/core/solver"
	"github.com/dimasea19961/powerplant-coding-challenge/infra/mqtt"
)

// ServerConfig defines the HTTP listener settings.
type ServerConfig struct {
	Addr string `json:"addr"`
	// AuthToken protects the plan history endpoint when non-empty.
	AuthToken string `json:"auth_token"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8888"
	}
}

// Config aggregates all service settings.
type Config struct {
	Server  ServerConfig   `json:"server"`
	Solver  solver.Config  `json:"solver"`
	Store   planlog.Config `json:"store"`
	Metrics metrics.Config `json:"metrics"`
	MQTT    mqtt.Config    `json:"mqtt"`
	Logging LoggingConfig  `json:"logging"`
}

// Load reads the configuration file at path. YAML and JSON are supported
// by extension; PP_-prefixed environment variables override file values
// ("PP_SERVER__ADDR" maps to "server.addr").
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides. The callback already emits
	// dot-separated keys, so the provider delimiter must be "." for
	// them to land in the nested sections.
	if err := k.Load(env.Provider("PP_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every section at its defaults,
// used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.Server.SetDefaults()
	c.Solver.SetDefaults()
	c.Store.SetDefaults()
	c.Metrics.SetDefaults()
	c.MQTT.SetDefaults()
	c.Logging.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Solver.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.MQTT.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
