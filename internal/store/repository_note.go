package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type noteRepository struct {
	q querier
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Content,
		&note.Files,
		&note.Version,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	return note, err
}

// GetByID is the ownership-checked single read of the note store. Update and
// Delete check ownership in their own SQL and do not go through it.
func (r *noteRepository) GetByID(ctx context.Context, id, userID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetByID").
			Str("note_id", id).
			Msg("failed to get note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if note.UserID != userID {
		return models.Note{}, ErrUnauthorized
	}

	return note, nil
}

func (r *noteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanNote(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrAlreadyExists
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Create").
			Str("note_id", note.ID).
			Str("user_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// Update bumps the version even when update carries no field, so a client
// re-sending the same content still sees its row again on the next pull.
func (r *noteRepository) Update(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(ctx, update)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanNote(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Str("note_id", update.ID).
			Str("user_id", update.UserID).
			Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *noteRepository) Delete(ctx context.Context, id, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deletedID string
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&deletedID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Str("note_id", id).
			Str("user_id", userID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *noteRepository) FindMany(ctx context.Context, ids []string) ([]models.Note, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildFindNotesQuery(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.FindMany").
			Int("ids", len(ids)).
			Msg("failed to execute query for notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, len(ids))
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.FindMany").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

func (r *noteRepository) FindMeta(ctx context.Context, userID string) ([]models.RowMeta, error) {
	query, args, err := buildNoteMetaQuery(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryMeta(ctx, r.q, "noteRepository.FindMeta", query, args)
}

// queryMeta runs a two column (id, token) query.
func queryMeta(ctx context.Context, q querier, funcName, query string, args []any) ([]models.RowMeta, error) {
	log := logger.FromContext(ctx)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute meta query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	metas := make([]models.RowMeta, 0, 64)
	for rows.Next() {
		var meta models.RowMeta
		if err = rows.Scan(&meta.ID, &meta.RowVersion); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan meta row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		metas = append(metas, meta)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return metas, nil
}
