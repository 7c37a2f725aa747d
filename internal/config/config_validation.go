package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The session secret, the full OAuth client triple, and the database DSN
// are hard requirements: without any of them the service cannot issue
// tickets, complete a login, or persist a mirror.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSecret == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.OAuth.ClientID == "" || cfg.OAuth.ClientSecret == "" || cfg.OAuth.RedirectURI == "" {
		return ErrInvalidOAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
