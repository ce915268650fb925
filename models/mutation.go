// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// MutationName identifies a registered mutation handler.
type MutationName string

const (
	MutationCreateNote MutationName = "createNote"
	MutationUpdateNote MutationName = "updateNote"
	MutationDeleteNote MutationName = "deleteNote"
)

// Mutation is a client-numbered intent to change server state.
// Args stay raw until the matching handler parses them.
type Mutation struct {
	ID        int64           `json:"id"`
	ClientID  string          `json:"clientID"`
	Name      MutationName    `json:"name"`
	Args      json.RawMessage `json:"args"`
	Timestamp float64         `json:"timestamp"`
}

// MutationError describes a mutation that failed its business logic.
type MutationError struct {
	MutationName MutationName `json:"mutationName"`
	ErrorMessage string       `json:"errorMessage"`
	ErrorCode    string       `json:"errorCode"`
}

// CreateNoteArgs are the arguments of the createNote mutation.
type CreateNoteArgs struct {
	ID      string       `json:"id"`
	Content string       `json:"content"`
	Files   []StoredFile `json:"files,omitempty"`
}

// UpdateNoteArgs are the arguments of the updateNote mutation.
type UpdateNoteArgs struct {
	ID      string        `json:"id"`
	Content *string       `json:"content,omitempty"`
	Files   *[]StoredFile `json:"files,omitempty"`
}

// DeleteNoteArgs are the arguments of the deleteNote mutation.
type DeleteNoteArgs struct {
	ID string `json:"id"`
}
