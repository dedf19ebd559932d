// Package common defines the sentinel errors shared by the client layers.
// Callers match them with errors.Is; producers wrap them with %w so the
// message carries the specifics.
package common

import "errors"

var (
	// ErrValidation marks a missing or malformed field, a bad role value or
	// an unresolvable reference. The operation is aborted with no mutation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks an id or email lookup miss.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a duplicate email at registration.
	ErrConflict = errors.New("already exists")

	// ErrPersistence marks a failed serialization or storage write. The
	// in-memory state is kept, so memory and storage may diverge.
	ErrPersistence = errors.New("persistence error")

	// ErrCorruptState marks an unreadable persisted blob. It is recovered
	// locally by reseeding and never shown to the user.
	ErrCorruptState = errors.New("corrupt persisted state")

	// ErrPartialInput marks a form where a field was left empty or the
	// prompt was cancelled. The whole operation is dropped silently.
	ErrPartialInput = errors.New("partial input")

	// ErrSelfDeletion marks an attempt to delete the signed-in account.
	ErrSelfDeletion = errors.New("cannot delete the signed-in account")

	// ErrInvalidCredentials covers a wrong password, an unverified account
	// and an unknown email alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrQuotaExceeded is returned by local storage when a write would exceed
	// its capacity.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)
