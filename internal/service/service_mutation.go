// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

type mutationProcessor struct {
	transactor store.Transactor
	registry   *MutatorRegistry
}

func NewMutationProcessor(transactor store.Transactor, registry *MutatorRegistry) MutationProcessor {
	return &mutationProcessor{
		transactor: transactor,
		registry:   registry,
	}
}

// ProcessMutation applies mutation in one serializable transaction.
//
// A mutation id below the client's next expected id was already applied and
// succeeds without effect. An id above it fails with ErrMutationOutOfOrder
// in both modes. In error mode the handler is skipped and only the client's
// last mutation id advances, so a mutation that always fails cannot block the
// client's queue.
func (p *mutationProcessor) ProcessMutation(ctx context.Context, userID, clientGroupID string, mutation models.Mutation, errorMode bool) error {
	log := logger.FromContext(ctx)

	return p.transactor.Transact(ctx, func(ctx context.Context, repos store.Repositories) error {
		group, err := repos.ClientGroups().GetByID(ctx, clientGroupID, userID)
		if err != nil {
			return err
		}

		client, err := repos.Clients().GetByID(ctx, mutation.ClientID, clientGroupID)
		if err != nil {
			return err
		}

		expected := client.LastMutationID + 1

		if mutation.ID < expected {
			log.Debug().
				Str("func", "mutationProcessor.ProcessMutation").
				Str("client_id", mutation.ClientID).
				Int64("mutation_id", mutation.ID).
				Msg("mutation already applied, skipping")
			return nil
		}

		if mutation.ID > expected {
			return fmt.Errorf("%w: mutation %d from client %s, expected %d",
				ErrMutationOutOfOrder, mutation.ID, mutation.ClientID, expected)
		}

		if !errorMode {
			handler, ok := p.registry.Lookup(mutation.Name)
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownMutation, mutation.Name)
			}

			if err = handler(ctx, MutationArgs{Args: mutation.Args, UserID: userID, Repos: repos}); err != nil {
				return err
			}
		}

		// the group row must exist before the client row referencing it
		if _, err = repos.ClientGroups().Upsert(ctx, group); err != nil {
			return err
		}

		if err = repos.Clients().Upsert(ctx, models.Client{
			ID:             mutation.ClientID,
			ClientGroupID:  clientGroupID,
			LastMutationID: expected,
		}); err != nil {
			return err
		}

		log.Debug().
			Str("func", "mutationProcessor.ProcessMutation").
			Str("client_id", mutation.ClientID).
			Int64("mutation_id", mutation.ID).
			Bool("error_mode", errorMode).
			Msg("mutation processed")
		return nil
	})
}
