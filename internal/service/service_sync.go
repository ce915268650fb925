// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math"

	"github.com/MKhiriev/go-note-sync/internal/cache"
	"github.com/MKhiriev/go-note-sync/internal/cvr"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

type syncService struct {
	processor  MutationProcessor
	transactor store.Transactor
	cache      cache.CVRCache
	notifier   Notifier

	logger *logger.Logger
}

func NewSyncService(processor MutationProcessor, transactor store.Transactor, cvrCache cache.CVRCache, notifier Notifier, logger *logger.Logger) SyncService {
	return &syncService{
		processor:  processor,
		transactor: transactor,
		cache:      cvrCache,
		notifier:   notifier,
		logger:     logger,
	}
}

// Push applies the mutations one by one, each in its own transaction.
//
// A mutation whose handler fails is retried in error mode, which only
// advances the client's last mutation id. An out-of-order mutation is
// reported and skipped. Any other error-mode failure aborts the push; the
// mutations applied before it stay applied.
func (s *syncService) Push(ctx context.Context, userID string, request models.PushRequest) (models.PushResponse, error) {
	log := logger.FromContext(ctx)

	mutationErrors := make([]models.MutationError, 0)

	defer func() {
		if err := s.notifier.Notify(context.WithoutCancel(ctx), userID); err != nil {
			log.Err(err).Str("func", "syncService.Push").Str("user_id", userID).Msg("error notifying clients")
		}
	}()

	for _, mutation := range request.Mutations {
		err := s.processor.ProcessMutation(ctx, userID, request.ClientGroupID, mutation, false)
		if err == nil {
			continue
		}

		log.Warn().Err(err).
			Str("func", "syncService.Push").
			Str("client_group_id", request.ClientGroupID).
			Str("client_id", mutation.ClientID).
			Int64("mutation_id", mutation.ID).
			Str("mutation", string(mutation.Name)).
			Msg("mutation failed, retrying in error mode")

		mutationErrors = append(mutationErrors, models.MutationError{
			MutationName: mutation.Name,
			ErrorMessage: ErrorMessage(err),
			ErrorCode:    ErrorCode(err),
		})

		if err = s.processor.ProcessMutation(ctx, userID, request.ClientGroupID, mutation, true); err != nil {
			if errors.Is(err, ErrMutationOutOfOrder) {
				continue
			}
			log.Err(err).
				Str("func", "syncService.Push").
				Str("client_group_id", request.ClientGroupID).
				Int64("mutation_id", mutation.ID).
				Msg("error-mode mutation failed, aborting push")
			return models.PushResponse{}, err
		}
	}

	return models.PushResponse{
		Success: len(mutationErrors) == 0,
		Errors:  mutationErrors,
	}, nil
}

// pullResult is what the pull transaction hands to the code that runs after
// commit.
type pullResult struct {
	next                  cvr.CVR
	nextOrder             int64
	notes                 []models.Note
	delNotes              []string
	lastMutationIDChanges map[string]int64
}

// Pull builds the patch from the CVR recorded for the request cookie to the
// current state and hands out the next cookie. A cookie that is unknown to
// the cache yields a full resync starting with a clear.
func (s *syncService) Pull(ctx context.Context, userID string, request models.PullRequest) (models.PullResponse, error) {
	log := logger.FromContext(ctx)

	base, previous := s.cache.GetBaseCVR(ctx, request.ClientGroupID, request.Cookie)

	var result *pullResult
	err := s.transactor.Transact(ctx, func(ctx context.Context, repos store.Repositories) error {
		// the body may be retried, so nothing from a failed attempt survives
		result = nil

		group, err := repos.ClientGroups().GetByID(ctx, request.ClientGroupID, userID)
		if err != nil {
			return err
		}

		// a *sql.Tx is one connection, the metadata reads run one after another
		noteMeta, err := repos.Notes().FindMeta(ctx, userID)
		if err != nil {
			return err
		}
		clientMeta, err := repos.Clients().FindMeta(ctx, request.ClientGroupID)
		if err != nil {
			return err
		}

		next := cvr.Build(map[cvr.Collection][]models.RowMeta{
			cvr.CollectionNote:   noteMeta,
			cvr.CollectionClient: clientMeta,
		})

		notePuts := cvr.PutsSince(next.Get(cvr.CollectionNote), base.Get(cvr.CollectionNote))
		noteDels := cvr.DelsSince(next.Get(cvr.CollectionNote), base.Get(cvr.CollectionNote))
		clientPuts := cvr.PutsSince(next.Get(cvr.CollectionClient), base.Get(cvr.CollectionClient))

		notes, err := repos.Notes().FindMany(ctx, notePuts)
		if err != nil {
			return err
		}

		lastMutationIDChanges := make(map[string]int64, len(clientPuts))
		clientVersions := next.Get(cvr.CollectionClient)
		for _, id := range clientPuts {
			lastMutationIDChanges[id] = clientVersions[id]
		}

		order := group.CVRVersion
		if request.Cookie != nil && request.Cookie.Order > order {
			order = request.Cookie.Order
		}
		if order < math.MaxInt64 {
			order++
		}
		group.CVRVersion = order

		stored, err := repos.ClientGroups().Upsert(ctx, group)
		if err != nil {
			return err
		}

		result = &pullResult{
			next:                  next,
			nextOrder:             stored.CVRVersion,
			notes:                 notes,
			delNotes:              noteDels,
			lastMutationIDChanges: lastMutationIDChanges,
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "syncService.Pull").
			Str("client_group_id", request.ClientGroupID).
			Msg("pull transaction failed")
		return models.PullResponse{}, err
	}

	if result == nil {
		return models.PullResponse{
			Cookie:                request.Cookie,
			LastMutationIDChanges: map[string]int64{},
			Patch:                 []models.PatchOperation{},
		}, nil
	}

	if err = s.cache.SetCVR(ctx, request.ClientGroupID, result.nextOrder, result.next); err != nil {
		log.Err(err).
			Str("func", "syncService.Pull").
			Str("client_group_id", request.ClientGroupID).
			Int64("order", result.nextOrder).
			Msg("error caching cvr")
	}
	if request.Cookie != nil && request.Cookie.ClientGroupID == request.ClientGroupID {
		if err = s.cache.DelCVR(ctx, request.ClientGroupID, request.Cookie.Order); err != nil {
			log.Err(err).
				Str("func", "syncService.Pull").
				Str("client_group_id", request.ClientGroupID).
				Int64("order", request.Cookie.Order).
				Msg("error evicting previous cvr")
		}
	}

	patch := buildPatch(previous, collectionChanges{
		Collection: cvr.CollectionNote,
		Dels:       result.delNotes,
		Puts:       notePatchRows(result.notes),
	})

	return models.PullResponse{
		Cookie:                &models.Cookie{ClientGroupID: request.ClientGroupID, Order: result.nextOrder},
		LastMutationIDChanges: result.lastMutationIDChanges,
		Patch:                 patch,
	}, nil
}
