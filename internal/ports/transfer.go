package ports

import (
	"io"

	"cardsort/internal/domain"
)

// BoardEncoder writes a board in one export format
type BoardEncoder interface {
	// Format is the short name used on the command line (e.g., "json")
	Format() string
	// Extension is the file extension without the dot (e.g., "txt")
	Extension() string
	Encode(w io.Writer, board domain.Board) error
}

// CardSource reads card texts from an imported file, in file order
type CardSource interface {
	ReadCards(r io.Reader) ([]string, error)
}
