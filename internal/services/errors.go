package services

import (
	"errors"
	"fmt"

	"github.com/LunaaVerse/ttm-sub002/internal/models"
)

var (
	// ErrNotFound means the referenced report or actor does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition means the operation's precondition on the
	// report's current status is not met.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrConflict means an optimistic status precondition failed: the
	// report changed under the caller between read and write.
	ErrConflict = errors.New("report was modified concurrently")
)

func invalidTransition(op Operation, from models.Status) error {
	return fmt.Errorf("%w: %s not allowed from %q", ErrInvalidTransition, op, from)
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
