package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type clientRepository struct {
	q querier
}

func (r *clientRepository) GetByID(ctx context.Context, id, clientGroupID string) (models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetClientQuery(ctx, id, clientGroupID)
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var client models.Client
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.ClientGroupID,
		&client.LastMutationID,
		&client.LastSyncedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{ID: id, ClientGroupID: clientGroupID}, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.GetByID").
			Str("client_id", id).
			Str("client_group_id", clientGroupID).
			Msg("failed to get client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return client, nil
}

func (r *clientRepository) Upsert(ctx context.Context, client models.Client) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertClientQuery(ctx, client)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "clientRepository.Upsert").
			Str("client_id", client.ID).
			Int64("last_mutation_id", client.LastMutationID).
			Msg("failed to upsert client")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *clientRepository) FindMeta(ctx context.Context, clientGroupID string) ([]models.RowMeta, error) {
	query, args, err := buildClientMetaQuery(ctx, clientGroupID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryMeta(ctx, r.q, "clientRepository.FindMeta", query, args)
}
