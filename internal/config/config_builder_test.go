package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func validServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{SessionHashKey: "k"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/films"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, defaultPageSize, cfg.App.DefaultPageSize)
	assert.Equal(t, defaultMaxPageSize, cfg.App.MaxPageSize)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultMaxOpenConns, cfg.Storage.DB.MaxOpenConns)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", SessionHashKey: "env"}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
		&StructuredConfig{Server: Server{RequestTimeout: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "env", cfg.App.SessionHashKey, "zero values must not override")
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

// ── withDotEnv / withEnv / withFlags ─────────────────────────────────────────

func TestWithDotEnv_MissingFileIsFine(t *testing.T) {
	b := newConfigBuilder()
	b.lookupEnvFile = func() string { return filepath.Join(t.TempDir(), "nope.env") }

	b.withDotEnv()
	assert.NoError(t, b.err)
}

func TestWithDotEnv_FeedsWithEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_SESSION_HASH_KEY=dotenv-key\n"), 0o600))
	t.Setenv("APP_SESSION_HASH_KEY", "")
	require.NoError(t, os.Unsetenv("APP_SESSION_HASH_KEY"))

	b := newConfigBuilder()
	b.lookupEnvFile = func() string { return p }

	cfg, err := b.withDotEnv().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", cfg.App.SessionHashKey)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "3.1.4")
	t.Setenv("SERVER_ADDRESS", "localhost:9999")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "3.1.4", b.configs[0].App.Version)
	assert.Equal(t, "localhost:9999", b.configs[0].Server.HTTPAddress)
}

func TestWithFlags_OverridesEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "localhost:9999")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", "localhost:7000"}).
		build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_OverridesEarlierSources(t *testing.T) {
	p := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "from-json"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{Version: "from-env"}, JSONFilePath: p})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.Version)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.Version)
}

func TestWithJSON_SetsErrorWhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "x.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── validation ───────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no session key", mutate: func(c *StructuredConfig) { c.App.SessionHashKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "page size above max", mutate: func(c *StructuredConfig) { c.App.DefaultPageSize = 500 }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			cfg.setDefaults()
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

func TestGetClientConfig(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("ADAPTER_ADDRESS", "localhost:8080")
	t.Setenv("ADAPTER_ADMIN_EMAIL", "env@films.dev")
	t.Setenv("ADAPTER_ADMIN_PASSWORD", "Secret123")

	cfg, err := GetClientConfig(&StructuredConfig{Adapter: Adapter{AdminEmail: "flag@films.dev"}})
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.BaseAddress)
	assert.Equal(t, "flag@films.dev", cfg.AdminEmail)
	assert.Equal(t, defaultRequestTimeout, cfg.RequestTimeout)
}

func TestGetClientConfig_MissingCredentials(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("ADAPTER_ADDRESS", "localhost:8080")

	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetClientConnectionConfig(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("ADAPTER_ADDRESS", "")

	_, err := GetClientConnectionConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)

	cfg, err := GetClientConnectionConfig(&StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:9090"}})
	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", cfg.BaseAddress)
	assert.Empty(t, cfg.AdminPassword)
}
