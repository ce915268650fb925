package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

// MutationArgs is what a mutation handler receives. Args are untrusted.
type MutationArgs struct {
	Args   json.RawMessage
	UserID string
	Repos  store.Repositories
}

// MutationHandler applies one mutation inside the caller's transaction.
type MutationHandler func(ctx context.Context, args MutationArgs) error

// NoteMutators has one method per note mutation. A new mutation name needs
// a new method here, so a registry built from it cannot miss a handler.
type NoteMutators interface {
	CreateNote(ctx context.Context, args MutationArgs) error
	UpdateNote(ctx context.Context, args MutationArgs) error
	DeleteNote(ctx context.Context, args MutationArgs) error
}

// MutatorRegistry maps mutation names to handlers. It is read-only after
// construction.
type MutatorRegistry struct {
	handlers map[models.MutationName]MutationHandler
}

func NewMutatorRegistry(notes NoteMutators) *MutatorRegistry {
	return &MutatorRegistry{
		handlers: map[models.MutationName]MutationHandler{
			models.MutationCreateNote: notes.CreateNote,
			models.MutationUpdateNote: notes.UpdateNote,
			models.MutationDeleteNote: notes.DeleteNote,
		},
	}
}

func (r *MutatorRegistry) Lookup(name models.MutationName) (MutationHandler, bool) {
	handler, ok := r.handlers[name]
	return handler, ok
}

type noteMutators struct {
	validator validators.Validator
}

func NewNoteMutators() NoteMutators {
	return &noteMutators{validator: validators.NewNoteValidator()}
}

func (m *noteMutators) CreateNote(ctx context.Context, args MutationArgs) error {
	var createArgs models.CreateNoteArgs
	if err := m.parse(ctx, args.Args, &createArgs); err != nil {
		return err
	}

	_, err := args.Repos.Notes().Create(ctx, models.Note{
		ID:      createArgs.ID,
		UserID:  args.UserID,
		Content: createArgs.Content,
		Files:   models.StoredFiles(createArgs.Files),
	})
	return err
}

func (m *noteMutators) UpdateNote(ctx context.Context, args MutationArgs) error {
	var updateArgs models.UpdateNoteArgs
	if err := m.parse(ctx, args.Args, &updateArgs); err != nil {
		return err
	}

	update := models.NoteUpdate{
		ID:      updateArgs.ID,
		UserID:  args.UserID,
		Content: updateArgs.Content,
	}
	if updateArgs.Files != nil {
		files := models.StoredFiles(*updateArgs.Files)
		update.Files = &files
	}

	_, err := args.Repos.Notes().Update(ctx, update)
	return err
}

func (m *noteMutators) DeleteNote(ctx context.Context, args MutationArgs) error {
	var deleteArgs models.DeleteNoteArgs
	if err := m.parse(ctx, args.Args, &deleteArgs); err != nil {
		return err
	}

	return args.Repos.Notes().Delete(ctx, deleteArgs.ID, args.UserID)
}

// parse decodes raw into dst and validates it.
func (m *noteMutators) parse(ctx context.Context, raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: args are missing", ErrInvalidMutationArgs)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMutationArgs, err)
	}
	if err := m.validator.Validate(ctx, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMutationArgs, err)
	}
	return nil
}
