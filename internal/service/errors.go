package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidMutationArgs is returned by mutation handlers whose args do
	// not parse or do not validate.
	ErrInvalidMutationArgs = errors.New("invalid mutation arguments")

	// ErrUnknownMutation is returned for a mutation name without a handler.
	ErrUnknownMutation = errors.New("unknown mutation")

	// ErrMutationOutOfOrder is returned when a mutation id skips ahead of
	// the client's next expected id.
	ErrMutationOutOfOrder = errors.New("mutation is out of order")

	// ErrInvalidSyncRequest is returned for malformed push or pull bodies.
	ErrInvalidSyncRequest = errors.New("invalid sync request")
)
