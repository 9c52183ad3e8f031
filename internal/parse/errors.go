package parse

import "errors"

var (
	// ErrNotFound is returned when no parse matches the lookup.
	ErrNotFound = errors.New("parse not found")
	// ErrInvalidInput is returned for validation failures.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidFileType is returned for unsupported uploads.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrUnreadable is returned when every extraction strategy failed.
	ErrUnreadable = errors.New("unreadable document")
)
