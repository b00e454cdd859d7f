package repositories

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	// ErrStatusChanged means the row no longer had the expected status when it was written.
	ErrStatusChanged = errors.New("status changed concurrently")
)
