package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

type appInfoService struct {
	appVersion string
	pingers    []Pinger

	logger *logger.Logger
}

// NewAppInfoService reports the configured version and checks the given
// dependencies on Health.
func NewAppInfoService(cfg config.App, logger *logger.Logger, pingers ...Pinger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		pingers:    pingers,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) error {
	for i, p := range s.pingers {
		if err := p.PingContext(ctx); err != nil {
			s.logger.Err(err).Str("func", "appInfoService.Health").Int("dependency", i).Msg("health check failed")
			return fmt.Errorf("dependency %d is unavailable: %w", i, err)
		}
	}
	return nil
}
