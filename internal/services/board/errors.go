package board

import "errors"

// Board service errors
var (
	// Validation errors
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrTitleTooLong = errors.New("title cannot exceed 255 characters")
	ErrEmptyKey     = errors.New("key cannot be empty")
	ErrNoChanges    = errors.New("no fields to update")
)
