package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing application-level settings
	// (for example, an empty session signing secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidOAuthConfigs indicates incomplete OAuth2 client settings
	// (for example, missing client id, secret, or redirect URI).
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
