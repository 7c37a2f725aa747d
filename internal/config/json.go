package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so an operator-written config file can use
// values like "168h" instead of nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		SessionSecret     string   `json:"session_secret"`
		SessionMaxAge     Duration `json:"session_max_age"`
		FrontendURL       string   `json:"frontend_url"`
		SessionCookieName string   `json:"session_cookie_name"`
		StateCookieName   string   `json:"state_cookie_name"`
		CookieSecure      bool     `json:"cookie_secure"`
		CookieDomain      string   `json:"cookie_domain"`
		MirrorRetention   Duration `json:"mirror_retention"`
	} `json:"app,omitempty"`

	OAuth struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
		RedirectURI  string `json:"redirect_uri"`
		AuthURL      string `json:"auth_url"`
		TokenURL     string `json:"token_url"`
		RevokeURL    string `json:"revoke_url"`
		APIBaseURL   string `json:"api_base_url"`
		Scope        string `json:"scope"`
	} `json:"oauth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		PruneInterval Duration `json:"prune_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSecret:     jsonCfg.App.SessionSecret,
			SessionMaxAge:     time.Duration(jsonCfg.App.SessionMaxAge),
			FrontendURL:       jsonCfg.App.FrontendURL,
			SessionCookieName: jsonCfg.App.SessionCookieName,
			StateCookieName:   jsonCfg.App.StateCookieName,
			CookieSecure:      jsonCfg.App.CookieSecure,
			CookieDomain:      jsonCfg.App.CookieDomain,
			MirrorRetention:   time.Duration(jsonCfg.App.MirrorRetention),
		},
		OAuth: OAuth{
			ClientID:     jsonCfg.OAuth.ClientID,
			ClientSecret: jsonCfg.OAuth.ClientSecret,
			RedirectURI:  jsonCfg.OAuth.RedirectURI,
			AuthURL:      jsonCfg.OAuth.AuthURL,
			TokenURL:     jsonCfg.OAuth.TokenURL,
			RevokeURL:    jsonCfg.OAuth.RevokeURL,
			APIBaseURL:   jsonCfg.OAuth.APIBaseURL,
			Scope:        jsonCfg.OAuth.Scope,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			PruneInterval: time.Duration(jsonCfg.Workers.PruneInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
