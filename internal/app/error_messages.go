// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// HTTP and gRPC handlers.
//
// All Msg* constants are human-readable message strings written into
// response bodies, gRPC statuses or log entries. Both transports use the
// same wording for the same failure.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid JSON was passed"

	// MsgInvalidGzipData is returned when a gzip-encoded body cannot be
	// inflated.
	MsgInvalidGzipData = "invalid gzip data"

	// MsgNoUserIDProvided is returned when a handler requires the
	// authenticated user but none is present in the request context.
	MsgNoUserIDProvided = "no user ID was given"

	// MsgMissingAuthorization is returned when a call carries no bearer
	// token.
	MsgMissingAuthorization = "missing authorization metadata"

	// MsgInvalidAuthorization is returned when the credentials are not of
	// the form "Bearer <token>".
	MsgInvalidAuthorization = "invalid authorization metadata"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token fails
	// signature, issuer or expiry checks.
	MsgTokenIsExpiredOrInvalid = "invalid or expired token"

	// MsgInternalServerError hides the cause of unexpected failures from
	// clients.
	MsgInternalServerError = "internal error, please try again later"
)
