package config

import (
	"os"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier
// source is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:1"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:2", RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_RejectsUnknownDownloadMode(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{DownloadMode: "parallel"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestBuild_RejectsNegativeInterval(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{SyncInterval: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv(envPrefix+"APP_VERSION", "env-version")
	t.Setenv(envPrefix+"ADAPTER_DOWNLOAD_MODE", "batched")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "batched", b.configs[0].Adapter.DownloadMode)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv(envPrefix+"WORKERS_SYNC_INTERVAL", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Adapter.MaxConcurrentRequests = 3
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, 3, b.configs[1].Adapter.MaxConcurrentRequests)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the path of the highest-priority
// source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	second := StructuredJSONConfig{}
	second.App.Version = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsOnlyUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{MaxConcurrentRequests: 2}})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Adapter.MaxConcurrentRequests)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDownloadMode, cfg.Adapter.DownloadMode)
	assert.Equal(t, DefaultSinkCapacity, cfg.Ingest.SinkCapacity)
	assert.Equal(t, DefaultCycleTimeout, cfg.Workers.CycleTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

// ── views ─────────────────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultClientDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultMaxConcurrentRequests, cfg.Adapter.MaxConcurrentRequests)
	assert.Zero(t, cfg.Workers.SyncInterval)
	assert.Empty(t, cfg.Args)
}

func TestGetClientConfig_EnvBeatsFlags(t *testing.T) {
	t.Setenv(envPrefix+"ADAPTER_ADDRESS", "http://env:8080")

	cfg, err := GetClientConfig([]string{"-s", "http://flag:8080", "-download-mode", "batched", "import", "patients.json"})
	require.NoError(t, err)

	assert.Equal(t, "http://env:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "batched", cfg.Adapter.DownloadMode)
	assert.Equal(t, []string{"import", "patients.json"}, cfg.Args)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(defaults())
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero concurrency", mutate: func(c *ClientConfig) { c.Adapter.MaxConcurrentRequests = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "bad mode", mutate: func(c *ClientConfig) { c.Adapter.DownloadMode = "x" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero cycle timeout", mutate: func(c *ClientConfig) { c.Workers.CycleTimeout = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "zero sink", mutate: func(c *ClientConfig) { c.Ingest.SinkCapacity = 0 }, wantErr: ErrInvalidIngestConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		cfg := newServerConfig(defaults())
		cfg.Storage.DB.DSN = "postgres://localhost/fieldsync"
		cfg.App.TokenSignKey = "secret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *ServerConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ServerConfig) {}},
		{name: "no dsn", mutate: func(c *ServerConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *ServerConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no sign key", mutate: func(c *ServerConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero token duration", mutate: func(c *ServerConfig) { c.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetServerConfig_RequiresSignKey(t *testing.T) {
	_, err := GetServerConfig([]string{"-d", "postgres://localhost/fieldsync"})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)

	cfg, err := GetServerConfig([]string{"-d", "postgres://localhost/fieldsync", "-token-sign-key", "secret", "-a", "127.0.0.1:9000"})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
}
