// Package repository defines the interfaces for the persistence layer.
package repository

import "courseadmin/internal/errors"

// Store-level errors shared by every repository. Usecases translate them into
// domain errors carrying the entity-specific code and message.
var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("record violates a unique constraint")
)
