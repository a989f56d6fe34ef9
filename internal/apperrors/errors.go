// Package apperrors defines the error kinds surfaced by repositories so
// controllers can map them to HTTP statuses without inspecting messages.
package apperrors

import "errors"

var (
	// ErrValidation marks input that violates a model constraint.
	ErrValidation = errors.New("validation error")
	// ErrConflict marks an add on a toggle relation that already exists.
	ErrConflict = errors.New("conflict")
	// ErrNotFound marks a missing record or a remove on an absent relation.
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks an action the actor is not allowed to perform.
	ErrForbidden = errors.New("forbidden")
)

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsConflict(err error) bool   { return errors.Is(err, ErrConflict) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsForbidden(err error) bool  { return errors.Is(err, ErrForbidden) }
