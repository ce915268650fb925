// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of a config file. JSON files may carry
// comments and trailing commas.
type fileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		Version       string   `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn" yaml:"dsn"`
			MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
		} `json:"db" yaml:"db"`

		Cache struct {
			Driver        string   `json:"driver" yaml:"driver"`
			RedisAddress  string   `json:"redis_address" yaml:"redis_address"`
			RedisPassword string   `json:"redis_password" yaml:"redis_password"`
			RedisDB       int      `json:"redis_db" yaml:"redis_db"`
			SQLitePath    string   `json:"sqlite_path" yaml:"sqlite_path"`
			TTL           Duration `json:"ttl" yaml:"ttl"`
		} `json:"cache" yaml:"cache"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		GRPCAddress     string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Sync struct {
		TxMaxAttempts    int      `json:"tx_max_attempts" yaml:"tx_max_attempts"`
		TxRetryBaseDelay Duration `json:"tx_retry_base_delay" yaml:"tx_retry_base_delay"`
	} `json:"sync" yaml:"sync"`

	Notifier struct {
		Driver       string   `json:"driver" yaml:"driver"`
		SendBuffer   int      `json:"send_buffer" yaml:"send_buffer"`
		PingInterval Duration `json:"ping_interval" yaml:"ping_interval"`
	} `json:"notifier" yaml:"notifier"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`
}

func parseFile(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(raw), &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			Version:       fc.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          fc.Storage.DB.DSN,
				MaxOpenConns: fc.Storage.DB.MaxOpenConns,
			},
			Cache: Cache{
				Driver:        fc.Storage.Cache.Driver,
				RedisAddress:  fc.Storage.Cache.RedisAddress,
				RedisPassword: fc.Storage.Cache.RedisPassword,
				RedisDB:       fc.Storage.Cache.RedisDB,
				SQLitePath:    fc.Storage.Cache.SQLitePath,
				TTL:           time.Duration(fc.Storage.Cache.TTL),
			},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			GRPCAddress:     fc.Server.GRPCAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
		Sync: Sync{
			TxMaxAttempts:    fc.Sync.TxMaxAttempts,
			TxRetryBaseDelay: time.Duration(fc.Sync.TxRetryBaseDelay),
		},
		Notifier: Notifier{
			Driver:       fc.Notifier.Driver,
			SendBuffer:   fc.Notifier.SendBuffer,
			PingInterval: time.Duration(fc.Notifier.PingInterval),
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			GRPCAddress:    fc.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
