package models

import "errors"

// Domain-specific errors for board operations
var (
	// ErrLaneNotFound indicates a lane key that is not on the board
	ErrLaneNotFound = errors.New("lane not found")

	// ErrItemNotFound indicates an item key that is not on the board
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidIndex indicates a source index outside the lane's items
	ErrInvalidIndex = errors.New("index out of range")

	// ErrDuplicateLane indicates two lanes sharing a key
	ErrDuplicateLane = errors.New("lane key already exists")

	// ErrDuplicateItem indicates two items sharing a key
	ErrDuplicateItem = errors.New("item key already exists")
)

// Drag gesture errors
var (
	// ErrDragInProgress indicates Begin was called while already dragging
	ErrDragInProgress = errors.New("a drag is already in progress")

	// ErrNotDragging indicates Drop was called with nothing picked up
	ErrNotDragging = errors.New("no drag in progress")
)
