package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args. Parsing stops at the
// first positional argument; it and everything after it end up in
// StructuredConfig.Args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s/-server-url sync server base URL used by the client
//	-d database DSN (SQLite path on the client, PostgreSQL DSN on the server)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "720h")
//	-token bearer token presented by the client
//	-request-timeout request timeout for both the server and the client (e.g., "30s")
//	-max-concurrent-requests in-flight requests per sync phase
//	-download-mode "individual" or "batched"
//	-sink-capacity buffer of each streaming sink
//	-sync-interval sync job interval, 0 runs once
//	-cycle-timeout maximum duration of one sync cycle
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("fieldsync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var serverURL string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var authToken string
	var requestTimeout time.Duration
	var maxConcurrentRequests int
	var downloadMode string
	var sinkCapacity int
	var syncInterval time.Duration
	var cycleTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&serverURL, "s", "", "Sync server base URL")
	fs.StringVar(&serverURL, "server-url", "", "Sync server base URL (alias)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	fs.StringVar(&authToken, "token", "", "Bearer token presented to the server")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&maxConcurrentRequests, "max-concurrent-requests", 0, "In-flight requests per sync phase")
	fs.StringVar(&downloadMode, "download-mode", "", "Download mode: individual or batched")
	fs.IntVar(&sinkCapacity, "sink-capacity", 0, "Buffer of each streaming sink")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Sync job interval, 0 runs once")
	fs.DurationVar(&cycleTimeout, "cycle-timeout", 0, "Maximum duration of one sync cycle")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			AuthToken:     authToken,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:           serverURL,
			RequestTimeout:        requestTimeout,
			MaxConcurrentRequests: maxConcurrentRequests,
			DownloadMode:          downloadMode,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			CycleTimeout: cycleTimeout,
		},
		Ingest: Ingest{
			SinkCapacity: sinkCapacity,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
