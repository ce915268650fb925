package store

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var noteColumns = []string{"id", "user_id", "content", "files", "version", "created_at", "updated_at"}

const (
	noteVersionNext = "nextval('note_version_seq')"

	upsertClientSuffix = `ON CONFLICT (id, client_group_id) DO UPDATE
		SET last_mutation_id = EXCLUDED.last_mutation_id, last_synced_at = EXCLUDED.last_synced_at`

	upsertClientGroupSuffix = `ON CONFLICT (id, user_id) DO UPDATE
		SET cvr_version = GREATEST(client_groups.cvr_version, EXCLUDED.cvr_version),
			last_synced_at = EXCLUDED.last_synced_at,
			updated_at = NOW()
		RETURNING id, name, user_id, cvr_version, last_synced_at`
)

func buildGetNoteQuery(_ context.Context, id string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"id": id}).
		ToSql()
}

// insert is a no-op on a taken id so the caller can tell the two cases apart
func buildCreateNoteQuery(_ context.Context, note models.Note) (string, []any, error) {
	return psql.Insert("notes").
		Columns("id", "user_id", "content", "files").
		Values(note.ID, note.UserID, note.Content, note.Files).
		Suffix("ON CONFLICT (id) DO NOTHING RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
}

func buildUpdateNoteQuery(_ context.Context, update models.NoteUpdate) (string, []any, error) {
	builder := psql.Update("notes").
		Set("version", sq.Expr(noteVersionNext)).
		Set("updated_at", sq.Expr("NOW()"))

	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Files != nil {
		builder = builder.Set("files", *update.Files)
	}

	return builder.
		Where(sq.Eq{"id": update.ID}).
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
}

func buildDeleteNoteQuery(_ context.Context, id, userID string) (string, []any, error) {
	return psql.Delete("notes").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindNotesQuery(_ context.Context, ids []string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
}

func buildNoteMetaQuery(_ context.Context, userID string) (string, []any, error) {
	return psql.Select("id", "version").
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildGetClientQuery(_ context.Context, id, clientGroupID string) (string, []any, error) {
	return psql.Select("id", "client_group_id", "last_mutation_id", "last_synced_at").
		From("clients").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"client_group_id": clientGroupID}).
		ToSql()
}

func buildUpsertClientQuery(_ context.Context, client models.Client) (string, []any, error) {
	return psql.Insert("clients").
		Columns("id", "client_group_id", "last_mutation_id", "last_synced_at").
		Values(client.ID, client.ClientGroupID, client.LastMutationID, sq.Expr("NOW()")).
		Suffix(upsertClientSuffix).
		ToSql()
}

func buildClientMetaQuery(_ context.Context, clientGroupID string) (string, []any, error) {
	return psql.Select("id", "last_mutation_id").
		From("clients").
		Where(sq.Eq{"client_group_id": clientGroupID}).
		ToSql()
}

func buildGetClientGroupQuery(_ context.Context, id string) (string, []any, error) {
	return psql.Select("id", "name", "user_id", "cvr_version", "last_synced_at").
		From("client_groups").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpsertClientGroupQuery(_ context.Context, group models.ClientGroup) (string, []any, error) {
	return psql.Insert("client_groups").
		Columns("id", "name", "user_id", "cvr_version", "last_synced_at").
		Values(group.ID, group.Name, group.UserID, group.CVRVersion, sq.Expr("NOW()")).
		Suffix(upsertClientGroupSuffix).
		ToSql()
}
