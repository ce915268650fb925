package service

import (
	"github.com/MKhiriev/go-note-sync/internal/cache"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

type Services struct {
	SyncService    SyncService
	AppInfoService AppInfoService
}

// Dependencies are the outside collaborators of the services.
type Dependencies struct {
	Transactor store.Transactor
	Cache      cache.CVRCache
	Notifier   Notifier
	Pingers    []Pinger
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger, deps.Pingers...)
	if err != nil {
		return nil, err
	}

	processor := NewMutationProcessor(deps.Transactor, NewMutatorRegistry(NewNoteMutators()))
	syncService := NewSyncValidationService().Wrap(
		NewSyncService(processor, deps.Transactor, deps.Cache, deps.Notifier, logger),
	)

	return &Services{
		SyncService:    syncService,
		AppInfoService: appInfoService,
	}, nil
}
