// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Client is a single tab or connection inside a client group.
// LastMutationID is the highest mutation id already applied for it.
type Client struct {
	ID             string    `json:"id"`
	ClientGroupID  string    `json:"clientGroupId"`
	LastMutationID int64     `json:"lastMutationId"`
	LastSyncedAt   time.Time `json:"lastSyncedAt"`
}

// ClientGroup is one logical sync peer sharing a local replica.
// CVRVersion only grows; it is the order handed out in cookies.
type ClientGroup struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	UserID       string    `json:"userId"`
	CVRVersion   int64     `json:"cvrVersion"`
	LastSyncedAt time.Time `json:"lastSyncedAt"`
}

// RowMeta is the id and change token projection of a synced row.
type RowMeta struct {
	ID         string
	RowVersion int64
}
