package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	FieldID    = "id"
	FieldFiles = "files"
)

// NoteValidator validates the arguments of note mutations.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateNoteArgs:
		return v.validateCreate(ctx, value, fields...)
	case *models.CreateNoteArgs:
		return v.validateCreate(ctx, *value, fields...)

	case models.UpdateNoteArgs:
		return v.validateUpdate(ctx, value, fields...)
	case *models.UpdateNoteArgs:
		return v.validateUpdate(ctx, *value, fields...)

	case models.DeleteNoteArgs:
		return v.validateDelete(ctx, value, fields...)
	case *models.DeleteNoteArgs:
		return v.validateDelete(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateCreate(_ context.Context, args models.CreateNoteArgs, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldFiles}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(args.ID) == "" {
				return ErrInvalidNoteID
			}
		case FieldFiles:
			if err := validateFiles(args.Files); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// an update without content and files is valid: it only bumps the version
func (v *NoteValidator) validateUpdate(_ context.Context, args models.UpdateNoteArgs, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldFiles}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(args.ID) == "" {
				return ErrInvalidNoteID
			}
		case FieldFiles:
			if args.Files == nil {
				continue
			}
			if err := validateFiles(*args.Files); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateDelete(_ context.Context, args models.DeleteNoteArgs, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(args.ID) == "" {
				return ErrInvalidNoteID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateFiles(files []models.StoredFile) error {
	for i, file := range files {
		if err := validateFile(file); err != nil {
			return fmt.Errorf("validation error at file index %d: %w", i, err)
		}
	}
	return nil
}

func validateFile(file models.StoredFile) error {
	if file.ID == "" {
		return ErrInvalidFileID
	}
	if file.Name == "" {
		return ErrInvalidFileName
	}

	u, err := url.ParseRequestURI(file.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidFileURL
	}

	return nil
}
