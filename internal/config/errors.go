package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid syncctl adapter settings
	// (for example, missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCacheConfigs indicates an unknown cache driver or a driver
	// without its address/path.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidServerConfigs indicates that neither HTTP nor gRPC address
	// is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSyncConfigs indicates a non-positive transaction attempt count.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidNotifierConfigs indicates an unknown notifier driver.
	ErrInvalidNotifierConfigs = errors.New("invalid notifier configuration")
)
