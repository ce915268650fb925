// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Cookie is the client-held pointer to the CVR generation it is synced to.
// A nil *Cookie requests a full resync.
type Cookie struct {
	ClientGroupID string `json:"clientGroupId"`
	Order         int64  `json:"order"`
}

// PushRequest is the body of a push call.
type PushRequest struct {
	ClientGroupID string     `json:"clientGroupId"`
	Mutations     []Mutation `json:"mutations"`
	SchemaVersion string     `json:"schemaVersion"`
	ProfileID     string     `json:"profileId,omitempty"`
}

// PushResponse always carries the per-mutation failures of a push.
type PushResponse struct {
	Success bool            `json:"success"`
	Errors  []MutationError `json:"errors"`
}

// PullRequest is the body of a pull call.
type PullRequest struct {
	ClientGroupID string  `json:"clientGroupId"`
	Cookie        *Cookie `json:"cookie"`
	SchemaVersion string  `json:"schemaVersion"`
	ProfileID     string  `json:"profileId,omitempty"`
}

// PullResponse moves a client from its cookie to the next CVR generation.
type PullResponse struct {
	Cookie                *Cookie          `json:"cookie"`
	LastMutationIDChanges map[string]int64 `json:"lastMutationIDChanges"`
	Patch                 []PatchOperation `json:"patch"`
}

// PatchOp is the kind of a patch operation.
type PatchOp string

const (
	PatchOpClear PatchOp = "clear"
	PatchOpPut   PatchOp = "put"
	PatchOpDel   PatchOp = "del"
)

// PatchOperation is one step a client applies to its local replica.
type PatchOperation struct {
	Op    PatchOp `json:"op"`
	Key   string  `json:"key,omitempty"`
	Value any     `json:"value,omitempty"`
}
