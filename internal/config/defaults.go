package config

import "time"

// Built-in defaults, applied to fields no other source sets.
const (
	DefaultClientDSN             = "fieldsync.db"
	DefaultAdapterAddress        = "http://localhost:8080"
	DefaultServerAddress         = "localhost:8080"
	DefaultRequestTimeout        = 15 * time.Second
	DefaultMaxConcurrentRequests = 8
	DefaultDownloadMode          = "individual"
	DefaultSinkCapacity          = 64
	DefaultCycleTimeout          = 5 * time.Minute
	DefaultTokenIssuer           = "fieldsync"
	DefaultTokenDuration         = 30 * 24 * time.Hour
)

// defaults holds every default except the DSN, which differs between the
// client and the server.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:           DefaultAdapterAddress,
			RequestTimeout:        DefaultRequestTimeout,
			MaxConcurrentRequests: DefaultMaxConcurrentRequests,
			DownloadMode:          DefaultDownloadMode,
		},
		Workers: Workers{
			CycleTimeout: DefaultCycleTimeout,
		},
		Ingest: Ingest{
			SinkCapacity: DefaultSinkCapacity,
		},
	}
}
