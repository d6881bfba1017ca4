package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// AuthToken is the bearer token sent with every request.
	AuthToken string
	// Version is printed by the client and sent nowhere.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the sync server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// MaxConcurrentRequests bounds in-flight requests per sync phase.
	MaxConcurrentRequests int
	// DownloadMode is "individual" or "batched".
	DownloadMode string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the path of the SQLite file.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs; zero means once.
	SyncInterval time.Duration
	// CycleTimeout bounds one sync cycle.
	CycleTimeout time.Duration
}

// ClientIngest contains streamed download settings.
type ClientIngest struct {
	// SinkCapacity is the buffer of each record sink.
	SinkCapacity int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Ingest  ClientIngest

	// Args are the positional arguments of the command line.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	return &ClientConfig{
		App: ClientApp{
			AuthToken: cfg.App.AuthToken,
			Version:   cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:           cfg.Adapter.HTTPAddress,
			RequestTimeout:        cfg.Adapter.RequestTimeout,
			MaxConcurrentRequests: cfg.Adapter.MaxConcurrentRequests,
			DownloadMode:          cfg.Adapter.DownloadMode,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: dsn,
			},
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			CycleTimeout: cfg.Workers.CycleTimeout,
		},
		Ingest: ClientIngest{
			SinkCapacity: cfg.Ingest.SinkCapacity,
		},
		Args: cfg.Args,
	}
}
