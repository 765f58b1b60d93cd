package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidBoard  = errors.New("invalid board")
	ErrNoCards       = errors.New("no valid items found in file")
	ErrUnknownFormat = errors.New("unknown format")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MoveError represents a move that names a container the board does not have
type MoveError struct {
	ItemID string
	DestID string
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("cannot move %s to %s: %s", e.ItemID, e.DestID, e.Reason)
}

func (e *MoveError) Is(target error) bool {
	return target == ErrNotFound
}
