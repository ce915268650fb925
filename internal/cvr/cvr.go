// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cvr

import (
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

// Collection names a synced collection. The name also prefixes patch keys.
type Collection string

const (
	CollectionNote   Collection = "note"
	CollectionClient Collection = "client"
)

// Collections lists every collection a CVR tracks, in patch order.
var Collections = []Collection{CollectionNote, CollectionClient}

// Map is id -> change token for one collection.
type Map map[string]int64

// CVR is an immutable snapshot of what a client group has seen.
type CVR map[Collection]Map

// Empty returns a CVR with an empty map for every collection.
func Empty() CVR {
	c := make(CVR, len(Collections))
	for _, name := range Collections {
		c[name] = Map{}
	}
	return c
}

// Build creates a CVR from metadata rows. Collections without rows get an
// empty map.
func Build(metas map[Collection][]models.RowMeta) CVR {
	c := Empty()
	for name, rows := range metas {
		m := make(Map, len(rows))
		for _, row := range rows {
			m[row.ID] = row.RowVersion
		}
		c[name] = m
	}
	return c
}

// Get never returns nil.
func (c CVR) Get(name Collection) Map {
	if m, ok := c[name]; ok && m != nil {
		return m
	}
	return Map{}
}

// PutsSince returns ids that are new in next or carry a greater token than
// in prev. The result is sorted.
func PutsSince(next, prev Map) []string {
	puts := make([]string, 0)
	for id, token := range next {
		prevToken, ok := prev[id]
		if !ok || prevToken < token {
			puts = append(puts, id)
		}
	}
	slices.Sort(puts)
	return puts
}

// DelsSince returns ids present in prev but missing from next, sorted.
func DelsSince(next, prev Map) []string {
	dels := make([]string, 0)
	for id := range prev {
		if _, ok := next[id]; !ok {
			dels = append(dels, id)
		}
	}
	slices.Sort(dels)
	return dels
}

// Key builds the namespaced patch key of a row: "<collection>/<escaped id>".
func Key(name Collection, id string) string {
	return strings.Join([]string{string(name), url.PathEscape(id)}, "/")
}
