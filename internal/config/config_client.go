package config

import (
	"flag"
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by syncctl.
type ClientAdapter struct {
	// HTTPAddress is the sync server base URL.
	HTTPAddress string
	// GRPCAddress selects the gRPC transport when non-empty.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientApp holds the token settings syncctl signs development tokens with.
type ClientApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ClientConfig is the syncctl configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter

	// Args are the positional arguments left after flag parsing
	// (the subcommand and its operands).
	Args []string
}

// GetClientConfig builds and validates the syncctl view of the merged
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	cfg.applyDefaults()

	clientCfg := &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Args: flag.Args(),
	}

	return clientCfg, clientCfg.validate()
}
