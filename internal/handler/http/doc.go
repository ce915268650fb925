// Package http implements the HTTP transport of the sync server.
//
// It exposes the push, pull and poke endpoints of the replicache protocol
// plus version and health probes. Authentication, request tracing, access
// logging and compression are handled here before requests reach the
// service layer.
package http
