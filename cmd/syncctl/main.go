package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("syncctl", zerolog.WarnLevel)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(cfg.Args) > 0 && cfg.Args[0] == "version" {
		printBuildInfo()
		return
	}

	serverAdapter, closeAdapter, err := newServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}
	defer closeAdapter()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Adapter.RequestTimeout*4)
	defer cancel()

	app := client.NewApp(serverAdapter, cfg.App, os.Stdout, log)
	if err = app.Run(ctx, cfg.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

// newServerAdapter prefers gRPC when its address is configured.
func newServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (adapter.ServerAdapter, func(), error) {
	if cfg.GRPCAddress == "" {
		a, err := adapter.NewHTTPServerAdapter(cfg, log)
		return a, func() {}, err
	}

	conn, err := grpc.NewClient(cfg.GRPCAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", cfg.GRPCAddress, err)
	}

	return adapter.NewGRPCServerAdapter(conn, log), func() { _ = conn.Close() }, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
