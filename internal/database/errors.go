package database

import "errors"

// ErrNotFound is returned when a lookup matches no row. Callers check it
// with errors.Is to tell "no record yet" apart from real failures.
var ErrNotFound = errors.New("record not found")
