// Package clipboard copies exported results to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"cardsort/internal/ports"
)

// ErrUnavailable is returned when no clipboard utility is installed
var ErrUnavailable = errors.New("clipboard unavailable")

// System is the operating system clipboard
type System struct{}

// Ensure System implements Clipboard
var _ ports.Clipboard = System{}

// New returns the system clipboard
func New() System {
	return System{}
}

// Available reports whether a clipboard utility was found
func (System) Available() bool {
	return !clipboard.Unsupported
}

// WriteAll replaces the clipboard contents with text
func (s System) WriteAll(text string) error {
	if !s.Available() {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}
