package store

import "errors"

var (
	ErrStorageCorrupt     = errors.New("storage corrupt")
	ErrStorageWriteFailed = errors.New("storage write failed")
	ErrUnknownDriver      = errors.New("unknown storage driver")
)
