// Package cache stores CVR snapshots keyed by client group and CVR version.
//
// Entries are the "previous" side of a pull diff. They can vanish at any time
// (TTL, eviction, restart); a missing entry only costs the client a full
// resync. Three backends are provided: Redis, a local SQLite file and an
// in-process map. Payloads are deterministic CBOR.
package cache
