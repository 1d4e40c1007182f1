package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/carousell/ct-go/pkg/logger"

	"github.com/hiresync/hubspot-bridge/internal/models"
)

const (
	DefaultBaseURL = "https://api.hubapi.com"
	DefaultPort    = 3000

	// Private app tokens issued by HubSpot carry this prefix.
	tokenPrefix   = "pat-"
	minTokenLen   = 20
	maxPortNumber = 65535
)

type Config struct {
	Server  ServerConfig  `envPrefix:"SERVER_"`
	HubSpot HubSpotConfig `envPrefix:"HUBSPOT_"`
}

type ServerConfig struct {
	// Port is parsed by hand so a malformed value can fall back to the
	// default with a warning instead of aborting startup.
	RawPort string `env:"PORT" envDefault:"3000"`
	Host    string `env:"HOST" envDefault:"0.0.0.0"`

	Port int `env:"-"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type HubSpotConfig struct {
	AccessToken string `env:"ACCESS_TOKEN"`
	BaseURL     string `env:"BASE_URL" envDefault:"https://api.hubapi.com"`
}

// Load reads the environment and applies the startup validation rules:
// a missing or malformed required value is an error, a malformed optional
// value only warns and falls back to its default.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("configuration error: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	log := logger.MustNamed("config")

	token := c.HubSpot.AccessToken
	switch {
	case token == "":
		return &models.ConfigurationError{
			Field:   "HUBSPOT_ACCESS_TOKEN",
			Message: "access token is required",
		}
	case !strings.HasPrefix(token, tokenPrefix):
		return &models.ConfigurationError{
			Field:   "HUBSPOT_ACCESS_TOKEN",
			Message: fmt.Sprintf("access token must start with %q", tokenPrefix),
		}
	case len(token) < minTokenLen:
		return &models.ConfigurationError{
			Field:   "HUBSPOT_ACCESS_TOKEN",
			Message: fmt.Sprintf("access token must be at least %d characters", minTokenLen),
		}
	}

	if !strings.HasPrefix(c.HubSpot.BaseURL, "https://") {
		log.Warnw("base URL must use HTTPS, falling back to default",
			"base_url", c.HubSpot.BaseURL, "default", DefaultBaseURL)
		c.HubSpot.BaseURL = DefaultBaseURL
	}
	c.HubSpot.BaseURL = strings.TrimRight(c.HubSpot.BaseURL, "/")

	port, err := strconv.Atoi(c.Server.RawPort)
	if err != nil || port < 1 || port > maxPortNumber {
		log.Warnw("invalid port, falling back to default",
			"port", c.Server.RawPort, "default", DefaultPort)
		port = DefaultPort
	}
	c.Server.Port = port

	return nil
}
