package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUser  = "user-1"
	testGroup = "group-1"
)

func newTestProcessor(t *testing.T) (*mutationProcessor, *memStore) {
	t.Helper()
	mem := newMemStore()
	p := NewMutationProcessor(mem, NewMutatorRegistry(NewNoteMutators())).(*mutationProcessor)
	return p, mem
}

func mutation(t *testing.T, id int64, clientID string, name models.MutationName, args any) models.Mutation {
	t.Helper()
	raw, err := json.Marshal(args)
	require.NoError(t, err)
	return models.Mutation{ID: id, ClientID: clientID, Name: name, Args: raw}
}

func TestProcessMutation_AppliesAndAdvances(t *testing.T) {
	p, mem := newTestProcessor(t)
	ctx := context.Background()

	m := mutation(t, 1, "c1", models.MutationCreateNote, models.CreateNoteArgs{ID: "n1", Content: "hello"})
	require.NoError(t, p.ProcessMutation(ctx, testUser, testGroup, m, false))

	note, ok := mem.note("n1")
	require.True(t, ok)
	assert.Equal(t, "hello", note.Content)
	assert.Equal(t, testUser, note.UserID)
	assert.Equal(t, int64(1), mem.client(testGroup, "c1").LastMutationID)
	assert.Equal(t, testUser, mem.group(testGroup).UserID)
}

func TestProcessMutation_ReplayIsNoop(t *testing.T) {
	p, mem := newTestProcessor(t)
	ctx := context.Background()

	m := mutation(t, 1, "c1", models.MutationCreateNote, models.CreateNoteArgs{ID: "n1", Content: "hello"})
	require.NoError(t, p.ProcessMutation(ctx, testUser, testGroup, m, false))
	before, _ := mem.note("n1")

	// a second create with the same id would fail if the handler ran again
	require.NoError(t, p.ProcessMutation(ctx, testUser, testGroup, m, false))

	after, _ := mem.note("n1")
	assert.Equal(t, before, after)
	assert.Equal(t, int64(1), mem.client(testGroup, "c1").LastMutationID)
}

func TestProcessMutation_OutOfOrder(t *testing.T) {
	tests := []struct {
		name      string
		errorMode bool
	}{
		{name: "normal mode", errorMode: false},
		{name: "error mode", errorMode: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, mem := newTestProcessor(t)

			m := mutation(t, 3, "c1", models.MutationCreateNote, models.CreateNoteArgs{ID: "n1"})
			err := p.ProcessMutation(context.Background(), testUser, testGroup, m, tt.errorMode)

			require.ErrorIs(t, err, ErrMutationOutOfOrder)
			_, ok := mem.note("n1")
			assert.False(t, ok)
			assert.Zero(t, mem.client(testGroup, "c1").LastMutationID)
		})
	}
}

func TestProcessMutation_UnknownMutation(t *testing.T) {
	p, mem := newTestProcessor(t)

	m := mutation(t, 1, "c1", "archiveNote", map[string]string{"id": "n1"})
	err := p.ProcessMutation(context.Background(), testUser, testGroup, m, false)

	require.ErrorIs(t, err, ErrUnknownMutation)
	assert.Zero(t, mem.client(testGroup, "c1").LastMutationID)
}

func TestProcessMutation_ErrorModeSkipsHandler(t *testing.T) {
	p, mem := newTestProcessor(t)
	ctx := context.Background()

	m := mutation(t, 1, "c1", models.MutationUpdateNote, models.UpdateNoteArgs{ID: "missing"})

	err := p.ProcessMutation(ctx, testUser, testGroup, m, false)
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Zero(t, mem.client(testGroup, "c1").LastMutationID)

	require.NoError(t, p.ProcessMutation(ctx, testUser, testGroup, m, true))
	assert.Equal(t, int64(1), mem.client(testGroup, "c1").LastMutationID)
	_, ok := mem.note("missing")
	assert.False(t, ok)

	// already applied
	require.NoError(t, p.ProcessMutation(ctx, testUser, testGroup, m, false))
	assert.Equal(t, int64(1), mem.client(testGroup, "c1").LastMutationID)
}

func TestProcessMutation_ForeignGroup(t *testing.T) {
	p, mem := newTestProcessor(t)
	mem.groups[testGroup] = models.ClientGroup{ID: testGroup, UserID: "someone-else"}

	m := mutation(t, 1, "c1", models.MutationCreateNote, models.CreateNoteArgs{ID: "n1"})
	err := p.ProcessMutation(context.Background(), testUser, testGroup, m, false)

	require.ErrorIs(t, err, store.ErrUnauthorized)
	_, ok := mem.note("n1")
	assert.False(t, ok)
}

func TestProcessMutation_TransactionError(t *testing.T) {
	p, mem := newTestProcessor(t)
	mem.failNext = store.ErrConflict

	m := mutation(t, 1, "c1", models.MutationCreateNote, models.CreateNoteArgs{ID: "n1"})
	err := p.ProcessMutation(context.Background(), testUser, testGroup, m, false)

	assert.True(t, errors.Is(err, store.ErrConflict))
}

func TestProcessMutation_UpdateAndDelete(t *testing.T) {
	p, mem := newTestProcessor(t)
	ctx := context.Background()

	content := "edited"
	files := []models.StoredFile{{ID: "f1", Name: "a.png", URL: "https://cdn.example.com/a.png"}}

	require.NoError(t, p.ProcessMutation(ctx, testUser, testGroup,
		mutation(t, 1, "c1", models.MutationCreateNote, models.CreateNoteArgs{ID: "n1", Content: "draft"}), false))
	created, _ := mem.note("n1")

	require.NoError(t, p.ProcessMutation(ctx, testUser, testGroup,
		mutation(t, 2, "c1", models.MutationUpdateNote, models.UpdateNoteArgs{ID: "n1", Content: &content, Files: &files}), false))
	updated, _ := mem.note("n1")
	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, models.StoredFiles(files), updated.Files)
	assert.Greater(t, updated.Version, created.Version)

	require.NoError(t, p.ProcessMutation(ctx, testUser, testGroup,
		mutation(t, 3, "c1", models.MutationDeleteNote, models.DeleteNoteArgs{ID: "n1"}), false))
	_, ok := mem.note("n1")
	assert.False(t, ok)
	assert.Equal(t, int64(3), mem.client(testGroup, "c1").LastMutationID)
}
