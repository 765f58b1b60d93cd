package ports

import "cardsort/internal/domain"

// BoardStore defines the operation contract of the card sort collection
// store. Every mutation reports whether the board changed; unknown IDs are
// not errors, the call simply does not apply.
type BoardStore interface {
	// Snapshot returns a copy of the current board
	Snapshot() domain.Board

	// Create operations
	AddItem(content string) (domain.Item, bool)
	AddCategory(name string) (domain.Category, bool)

	// Delete operations
	DeleteItem(itemID string) bool
	DeleteCategory(categoryID string) bool

	// Move operations
	MoveItem(itemID, fromContainerID, toContainerID string, toIndex int) bool
	Reorder(containerID string, fromIndex, toIndex int) bool

	// ReplaceUnfiled swaps the unfiled list for freshly created cards
	ReplaceUnfiled(contents []string) ([]domain.Item, bool)
}

// BoardRepository defines where a board is kept between sessions
type BoardRepository interface {
	Load() (domain.Board, error)
	Save(board domain.Board) error
}
