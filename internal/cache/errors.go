package cache

import "errors"

var (
	ErrUnknownDriver  = errors.New("unknown cache driver")
	ErrEncodingCVR    = errors.New("error encoding cvr")
	ErrDecodingCVR    = errors.New("error decoding cvr")
	ErrReadingEntry   = errors.New("error reading cache entry")
	ErrWritingEntry   = errors.New("error writing cache entry")
	ErrDeletingEntry  = errors.New("error deleting cache entry")
	ErrOpeningBackend = errors.New("error opening cache backend")
)
