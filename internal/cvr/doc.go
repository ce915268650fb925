// Package cvr builds Client View Records and diffs them.
//
// A CVR maps, per synced collection, every visible row id to its change
// token. Everything here is pure: no I/O, no errors.
package cvr
