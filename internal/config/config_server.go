package config

import (
	"fmt"
	"time"
)

// ServerApp holds the token settings of the sync server.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Version       string
}

// ServerConfig is the sync server's view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  Server
	Storage Storage

	// Args are the positional arguments of the command line.
	Args []string
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Server:  cfg.Server,
		Storage: cfg.Storage,
		Args:    cfg.Args,
	}
}
