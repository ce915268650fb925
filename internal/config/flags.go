package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from flag.CommandLine.
// Positional arguments left after parsing stay available through flag.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config config file path (.json, .jsonc, .yaml, .yml)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cache-driver memory, redis or sqlite
//	-cache-redis-address redis address host:port
//	-cache-sqlite-path sqlite cache file
//	-cache-ttl cvr cache entry ttl
//	-tx-max-attempts serializable transaction attempts
//	-notifier websocket or nop
//	-server server base URL used by syncctl
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var configPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var cacheDriver, redisAddress, sqlitePath string
	var cacheTTL time.Duration
	var txMaxAttempts int
	var notifierDriver string
	var adapterAddress, adapterGRPCAddress string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&configPath, "c", "", "Config file path")
	flag.StringVar(&configPath, "config", "", "Config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&cacheDriver, "cache-driver", "", "CVR cache driver: memory, redis, sqlite")
	flag.StringVar(&redisAddress, "cache-redis-address", "", "Redis address host:port")
	flag.StringVar(&sqlitePath, "cache-sqlite-path", "", "SQLite CVR cache file")
	flag.DurationVar(&cacheTTL, "cache-ttl", 0, "CVR cache entry TTL")
	flag.IntVar(&txMaxAttempts, "tx-max-attempts", 0, "Serializable transaction attempts")
	flag.StringVar(&notifierDriver, "notifier", "", "Wake-up notifier: websocket, nop")
	flag.StringVar(&adapterAddress, "server", "", "Sync server base URL (syncctl)")
	flag.StringVar(&adapterGRPCAddress, "server-grpc", "", "Sync server gRPC host:port (syncctl)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				Driver:       cacheDriver,
				RedisAddress: redisAddress,
				SQLitePath:   sqlitePath,
				TTL:          cacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			TxMaxAttempts: txMaxAttempts,
		},
		Notifier: Notifier{
			Driver: notifierDriver,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			GRPCAddress:    adapterGRPCAddress,
			RequestTimeout: requestTimeout,
		},
		ConfigFilePath: configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
