package storage

import "errors"

// ErrNotFound is returned when a transaction or party does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a create collides with an existing id or reference.
var ErrConflict = errors.New("record already exists")

// ErrVersionConflict is returned when an update's expected version no longer matches the stored row.
var ErrVersionConflict = errors.New("record was modified concurrently")
