package repository

import "errors"

// ErrNotFound is returned when a lookup or conditional update matches no row.
// Callers must be able to tell "no such record" apart from a store failure;
// the password reset flow answers the two very differently.
var ErrNotFound = errors.New("record not found")
