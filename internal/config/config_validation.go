// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultCacheTTL         = 24 * time.Hour
	defaultTxMaxAttempts    = 10
	defaultTxRetryBaseDelay = 10 * time.Millisecond
	defaultRequestTimeout   = 30 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultSendBuffer       = 8
	defaultPingInterval     = 30 * time.Second
	defaultAppVersion       = "dev"
)

// applyDefaults fills zero values that have a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = defaultAppVersion
	}
	if cfg.Storage.Cache.Driver == "" {
		cfg.Storage.Cache.Driver = CacheDriverMemory
	}
	if cfg.Storage.Cache.TTL == 0 {
		cfg.Storage.Cache.TTL = defaultCacheTTL
	}
	if cfg.Sync.TxMaxAttempts == 0 {
		cfg.Sync.TxMaxAttempts = defaultTxMaxAttempts
	}
	if cfg.Sync.TxRetryBaseDelay == 0 {
		cfg.Sync.TxRetryBaseDelay = defaultTxRetryBaseDelay
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Notifier.Driver == "" {
		cfg.Notifier.Driver = NotifierDriverWebsocket
	}
	if cfg.Notifier.SendBuffer == 0 {
		cfg.Notifier.SendBuffer = defaultSendBuffer
	}
	if cfg.Notifier.PingInterval == 0 {
		cfg.Notifier.PingInterval = defaultPingInterval
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks that the merged server configuration can start a server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.Cache.Driver {
	case CacheDriverMemory:
	case CacheDriverRedis:
		if cfg.Storage.Cache.RedisAddress == "" {
			return ErrInvalidCacheConfigs
		}
	case CacheDriverSQLite:
		if cfg.Storage.Cache.SQLitePath == "" {
			return ErrInvalidCacheConfigs
		}
	default:
		return ErrInvalidCacheConfigs
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Sync.TxMaxAttempts < 1 {
		return ErrInvalidSyncConfigs
	}

	switch cfg.Notifier.Driver {
	case NotifierDriverWebsocket, NotifierDriverNop:
	default:
		return ErrInvalidNotifierConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if (cfg.Adapter.HTTPAddress == "" && cfg.Adapter.GRPCAddress == "") || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
