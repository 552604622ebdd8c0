// Package config loads tool configuration from TOKENFORGE_* environment
// variables.
package config

import "github.com/kelseyhightower/envconfig"

// Database holds libSQL connection settings. The default is a local file
// database so the tool works out of the box; a remote Turso URL plus auth
// token switches it to hosted storage.
type Database struct {
	URL       string `envconfig:"DATABASE_URL" default:"file:tokenforge.db"`
	AuthToken string `envconfig:"AUTH_TOKEN"`
}

// Server holds the web shell settings.
type Server struct {
	Port int `envconfig:"PORT" default:"8080"`
}

// Config is the full tool configuration.
type Config struct {
	Database Database
	Server   Server
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("TOKENFORGE", &cfg.Database); err != nil {
		return nil, err
	}
	if err := envconfig.Process("TOKENFORGE", &cfg.Server); err != nil {
		return nil, err
	}
	return &cfg, nil
}
