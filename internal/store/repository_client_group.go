package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type clientGroupRepository struct {
	q querier
}

func defaultClientGroupName(id string) string {
	return "Client Group " + id
}

func (r *clientGroupRepository) GetByID(ctx context.Context, id, userID string) (models.ClientGroup, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetClientGroupQuery(ctx, id)
	if err != nil {
		return models.ClientGroup{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var group models.ClientGroup
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&group.ID,
		&group.Name,
		&group.UserID,
		&group.CVRVersion,
		&group.LastSyncedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ClientGroup{ID: id, Name: defaultClientGroupName(id), UserID: userID}, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "clientGroupRepository.GetByID").
			Str("client_group_id", id).
			Msg("failed to get client group")
		return models.ClientGroup{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if group.UserID != userID {
		log.Warn().
			Str("func", "clientGroupRepository.GetByID").
			Str("client_group_id", id).
			Str("user_id", userID).
			Msg("client group belongs to another user")
		return models.ClientGroup{}, ErrUnauthorized
	}

	return group, nil
}

func (r *clientGroupRepository) Upsert(ctx context.Context, group models.ClientGroup) (models.ClientGroup, error) {
	log := logger.FromContext(ctx)

	if group.Name == "" {
		group.Name = defaultClientGroupName(group.ID)
	}

	query, args, err := buildUpsertClientGroupQuery(ctx, group)
	if err != nil {
		return models.ClientGroup{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored models.ClientGroup
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&stored.ID,
		&stored.Name,
		&stored.UserID,
		&stored.CVRVersion,
		&stored.LastSyncedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "clientGroupRepository.Upsert").
			Str("client_group_id", group.ID).
			Int64("cvr_version", group.CVRVersion).
			Msg("failed to upsert client group")
		return models.ClientGroup{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return stored, nil
}
