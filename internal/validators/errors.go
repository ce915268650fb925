package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNoteID        = errors.New("note id is required")
	ErrInvalidFileID        = errors.New("file id is required")
	ErrInvalidFileName      = errors.New("file name is required")
	ErrInvalidFileURL       = errors.New("file url must be an absolute http(s) url")
	ErrInvalidClientGroupID = errors.New("client group id is required")
	ErrInvalidClientID      = errors.New("mutation client id is required")
	ErrInvalidMutationID    = errors.New("mutation id must be positive")
	ErrInvalidMutationName  = errors.New("mutation name is required")
	ErrInvalidCookie        = errors.New("invalid cookie")
)
