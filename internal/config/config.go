// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the sync server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token parameters, the client's
	// bearer token and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings. The client reads it
	// as a SQLite file path, the server as a PostgreSQL DSN.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout of the sync server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the sync server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the background sync job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Ingest holds the streamed download settings.
	Ingest Ingest `envPrefix:"INGEST_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args are the positional arguments left after the flags.
	Args []string
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Server only.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AuthToken is the bearer token the client presents to the server.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the SQLite file path on the client and the PostgreSQL
	// connection string on the server.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client's settings for reaching the sync server.
type Adapter struct {
	// HTTPAddress is the base URL of the sync server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request, the streamed download
	// included.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxConcurrentRequests bounds in-flight requests per sync phase.
	// Env: ADAPTER_MAX_CONCURRENT_REQUESTS
	MaxConcurrentRequests int `env:"MAX_CONCURRENT_REQUESTS"`

	// DownloadMode is "individual" or "batched".
	// Env: ADAPTER_DOWNLOAD_MODE
	DownloadMode string `env:"DOWNLOAD_MODE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often the sync job runs. Zero runs a single cycle.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// CycleTimeout bounds a single sync cycle.
	// Env: WORKERS_CYCLE_TIMEOUT
	CycleTimeout time.Duration `env:"CYCLE_TIMEOUT"`
}

// Ingest holds settings of the streamed readings download.
type Ingest struct {
	// SinkCapacity is the buffer of each record sink.
	// Env: INGEST_SINK_CAPACITY
	SinkCapacity int `env:"SINK_CAPACITY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. The first source that sets a
// field wins:
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
