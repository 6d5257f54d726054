package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the outcomes the HTTP layer translates into status
// codes. Services wrap these with context via fmt.Errorf("...: %w", err);
// handlers match with errors.Is and must never leak wrapped internals to
// clients.
var (
	// ErrNotFound signals that a referenced entity does not exist or is
	// soft-deleted.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized signals a failed role or ownership check.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation signals malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")

	// ErrEmpty distinguishes "no data yet" from a failure on list reads.
	ErrEmpty = errors.New("no records")

	// ErrStorageWrite signals that the object store failed to persist bytes.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrFileIntegrity signals that stored bytes or file metadata no longer
	// match expectations (missing object, soft delete not taking effect,
	// visibility not applied). Fatal for the current operation; an operator
	// has to investigate.
	ErrFileIntegrity = errors.New("file integrity check failed")

	// ErrTxAborted signals that a transaction could not be committed after
	// exhausting retries.
	ErrTxAborted = errors.New("transaction aborted")

	// ErrInternal is the catch-all for unexpected failures.
	ErrInternal = errors.New("internal error")
)

// NotFound returns ErrNotFound annotated with the entity kind, e.g.
// "student does not exist or might be deleted".
func NotFound(kind string) error {
	return fmt.Errorf("%s does not exist or might be deleted: %w", kind, ErrNotFound)
}

// Validation returns ErrValidation annotated with the offending field.
func Validation(field string) error {
	return fmt.Errorf("invalid %s: %w", field, ErrValidation)
}
