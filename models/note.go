// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Note is the synced business entity.
//
// Version is the change-detection token used by pull diffing. It is drawn
// from a table-wide sequence on every insert and update, so it never repeats
// for the same id even after the note is deleted and created again.
type Note struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Content   string      `json:"content"`
	Files     StoredFiles `json:"files"`
	Version   int64       `json:"version"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// NoteUpdate is a partial update of a note. Nil fields are left untouched.
type NoteUpdate struct {
	ID      string
	UserID  string
	Content *string
	Files   *StoredFiles
}

// StoredFile is an attachment reference kept alongside a note.
type StoredFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// StoredFiles is persisted as a jsonb column.
type StoredFiles []StoredFile

// Value implements driver.Valuer.
func (f StoredFiles) Value() (driver.Value, error) {
	if f == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner.
func (f *StoredFiles) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = StoredFiles{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for stored files")
	}

	files := StoredFiles{}
	if err := json.Unmarshal(raw, &files); err != nil {
		return err
	}
	*f = files
	return nil
}
