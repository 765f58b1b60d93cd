package commands

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"cardsort/internal/application"
	"cardsort/internal/domain"
	"cardsort/internal/ports"
)

// ImportCardsResult contains the result of importing cards
type ImportCardsResult struct {
	Items   []domain.Item
	Message string
}

// ImportCardsCommand replaces the unfiled list with cards read from a file.
// Categorised cards are kept.
type ImportCardsCommand struct {
	store  ports.BoardStore
	source ports.CardSource
	reader io.Reader
	Path   string
}

// NewImportCardsCommand creates a new ImportCardsCommand. path only labels
// the result message.
func NewImportCardsCommand(store ports.BoardStore, source ports.CardSource, r io.Reader, path string) *ImportCardsCommand {
	return &ImportCardsCommand{
		store:  store,
		source: source,
		reader: r,
		Path:   path,
	}
}

// Validate checks if the import has something to read
func (c *ImportCardsCommand) Validate() error {
	if c.source == nil || c.reader == nil {
		return &application.ValidationError{
			Field:   "path",
			Message: "file path is required",
		}
	}
	return nil
}

// Execute runs the import command
func (c *ImportCardsCommand) Execute(ctx context.Context) (*ImportCardsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cards, err := c.source.ReadCards(c.reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}
	cards = slices.DeleteFunc(cards, func(s string) bool {
		return strings.TrimSpace(s) == ""
	})
	if len(cards) == 0 {
		return nil, application.ErrNoCards
	}

	items, ok := c.store.ReplaceUnfiled(cards)
	if !ok {
		return nil, fmt.Errorf("failed to import cards: %w", application.ErrInvalidBoard)
	}

	msg := fmt.Sprintf("Imported %d card(s)", len(items))
	if c.Path != "" {
		msg += " from " + c.Path
	}
	return &ImportCardsResult{
		Items:   items,
		Message: msg,
	}, nil
}

// ExportResult contains the result of an export
type ExportResult struct {
	Format     string
	Cards      int
	Categories int
	Message    string
}

// ExportCommand writes the current board through an encoder
type ExportCommand struct {
	store   ports.BoardStore
	encoder ports.BoardEncoder
	writer  io.Writer
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(store ports.BoardStore, encoder ports.BoardEncoder, w io.Writer) *ExportCommand {
	return &ExportCommand{
		store:   store,
		encoder: encoder,
		writer:  w,
	}
}

// Validate checks if the export has an encoder and a destination
func (c *ExportCommand) Validate() error {
	if c.encoder == nil {
		return &application.ValidationError{
			Field:   "format",
			Message: "export format is required",
		}
	}
	if c.writer == nil {
		return &application.ValidationError{
			Field:   "output",
			Message: "output is required",
		}
	}
	return nil
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	board := c.store.Snapshot()
	if err := c.encoder.Encode(c.writer, board); err != nil {
		return nil, fmt.Errorf("failed to export %s: %w", c.encoder.Format(), err)
	}

	return &ExportResult{
		Format:     c.encoder.Format(),
		Cards:      board.ItemCount(),
		Categories: len(board.Categories),
		Message:    fmt.Sprintf("Exported %d card(s) in %d categories as %s", board.ItemCount(), len(board.Categories), c.encoder.Format()),
	}, nil
}
