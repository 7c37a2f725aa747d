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

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionSecret: "secret",
			FrontendURL:   "http://localhost:3000",
		},
		OAuth: OAuth{
			ClientID:     "uid",
			ClientSecret: "s3cret",
			RedirectURI:  "http://localhost:8000/auth/callback",
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/test"}},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.validate())
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{"no session secret", func(c *StructuredConfig) { c.App.SessionSecret = "" }, ErrInvalidAppConfigs},
		{"no client id", func(c *StructuredConfig) { c.OAuth.ClientID = "" }, ErrInvalidOAuthConfigs},
		{"no client secret", func(c *StructuredConfig) { c.OAuth.ClientSecret = "" }, ErrInvalidOAuthConfigs},
		{"no redirect uri", func(c *StructuredConfig) { c.OAuth.RedirectURI = "" }, ErrInvalidOAuthConfigs},
		{"no dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.applyDefaults()

	assert.Equal(t, DefaultSessionMaxAge, cfg.App.SessionMaxAge)
	assert.Equal(t, DefaultSessionCookieName, cfg.App.SessionCookieName)
	assert.Equal(t, DefaultStateCookieName, cfg.App.StateCookieName)
	assert.Equal(t, DefaultAuthURL, cfg.OAuth.AuthURL)
	assert.Equal(t, DefaultTokenURL, cfg.OAuth.TokenURL)
	assert.Equal(t, DefaultAPIBaseURL, cfg.OAuth.APIBaseURL)
	assert.Equal(t, DefaultScope, cfg.OAuth.Scope)
}

func TestApplyDefaults_DoesNotOverrideExplicit(t *testing.T) {
	cfg := validConfig()
	cfg.App.SessionMaxAge = time.Hour
	cfg.OAuth.TokenURL = "http://localhost:9000/token"
	cfg.applyDefaults()

	assert.Equal(t, time.Hour, cfg.App.SessionMaxAge)
	assert.Equal(t, "http://localhost:9000/token", cfg.OAuth.TokenURL)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_SESSION_SECRET", "env-secret")
	t.Setenv("APP_SESSION_MAX_AGE", "48h")
	t.Setenv("OAUTH_CLIENT_ID", "env-uid")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/db")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8000")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-secret", cfg.App.SessionSecret)
	assert.Equal(t, 48*time.Hour, cfg.App.SessionMaxAge)
	assert.Equal(t, "env-uid", cfg.OAuth.ClientID)
	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.HTTPAddress)
}

func TestParseJSON(t *testing.T) {
	raw := map[string]any{
		"app": map[string]any{
			"session_secret":  "json-secret",
			"session_max_age": "72h",
			"cookie_secure":   true,
		},
		"oauth": map[string]any{
			"client_id": "json-uid",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://json/db"},
		},
		"workers": map[string]any{
			"prune_interval": "6h",
		},
	}
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.SessionSecret)
	assert.Equal(t, 72*time.Hour, cfg.App.SessionMaxAge)
	assert.True(t, cfg.App.CookieSecure)
	assert.Equal(t, "json-uid", cfg.OAuth.ClientID)
	assert.Equal(t, "postgres://json/db", cfg.Storage.DB.DSN)
	assert.Equal(t, 6*time.Hour, cfg.Workers.PruneInterval)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestNetAddress_SetAndString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{"localhost", "localhost:8080", false, "localhost:8080"},
		{"ip", "127.0.0.1:9000", false, "127.0.0.1:9000"},
		{"empty host", ":8000", false, ":8000"},
		{"no port", "localhost", true, ""},
		{"bad port", "localhost:zero", true, ""},
		{"negative port", "localhost:-1", true, ""},
		{"bad host", "not-an-ip:8080", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`3600000000000`), &d))
	assert.Equal(t, time.Hour, time.Duration(d))

	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}
