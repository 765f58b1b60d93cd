package application

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cardsort/internal/domain"
	"cardsort/internal/ports"
)

// maxIDAttempts bounds how often a colliding generated ID is redrawn
const maxIDAttempts = 64

// Store is the collection store: it owns the current board and replaces it
// with the result of each domain operation. A Store is not safe for
// concurrent use; callers feed it one event at a time.
type Store struct {
	board           domain.Board
	ids             IDSource
	logger          *zap.Logger
	checkInvariants bool
}

// Ensure Store implements BoardStore
var _ ports.BoardStore = (*Store)(nil)

// StoreOption configures a Store
type StoreOption func(*Store)

// WithIDSource sets the generator for new card and category IDs
func WithIDSource(ids IDSource) StoreOption {
	return func(s *Store) {
		s.ids = ids
	}
}

// WithLogger sets the logger used for operation tracing
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithInvariantChecks makes the store verify the board after every applied
// operation and panic if it is broken
func WithInvariantChecks() StoreOption {
	return func(s *Store) {
		s.checkInvariants = true
	}
}

// NewStore creates a store holding an empty board
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		board:  domain.Board{Unfiled: []domain.Item{}, Categories: []domain.Category{}},
		ids:    UUIDSource{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the whole board. The board must satisfy the partition
// invariant; otherwise the store keeps its current board.
func (s *Store) Load(board domain.Board) error {
	if err := board.CheckPartition(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	s.board = board.Clone()
	s.logger.Debug("board loaded",
		zap.Int("cards", s.board.ItemCount()),
		zap.Int("categories", len(s.board.Categories)))
	return nil
}

// Snapshot returns a copy of the current board
func (s *Store) Snapshot() domain.Board {
	return s.board.Clone()
}

// AddItem appends a new card to the unfiled list
func (s *Store) AddItem(content string) (domain.Item, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		s.logger.Debug("operation not applied", zap.String("op", "add item"), zap.String("reason", "blank content"))
		return domain.Item{}, false
	}

	item := domain.Item{ID: s.newID(ItemPrefix), Content: content}
	next, ok := s.board.AddItem(item)
	if !s.commit("add item", next, ok, zap.String("item", item.ID)) {
		return domain.Item{}, false
	}
	return item, true
}

// AddCategory appends a new, empty category
func (s *Store) AddCategory(name string) (domain.Category, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		s.logger.Debug("operation not applied", zap.String("op", "add category"), zap.String("reason", "blank name"))
		return domain.Category{}, false
	}

	cat := domain.Category{ID: s.newID(CategoryPrefix), Name: name}
	next, ok := s.board.AddCategory(cat)
	if !s.commit("add category", next, ok, zap.String("category", cat.ID)) {
		return domain.Category{}, false
	}
	created, _ := s.board.Category(cat.ID)
	return created, true
}

// DeleteCategory removes a category, returning its cards to the unfiled list
func (s *Store) DeleteCategory(categoryID string) bool {
	next, ok := s.board.DeleteCategory(categoryID)
	return s.commit("delete category", next, ok, zap.String("category", categoryID))
}

// DeleteItem removes a card wherever it lives
func (s *Store) DeleteItem(itemID string) bool {
	next, ok := s.board.DeleteItem(itemID)
	return s.commit("delete item", next, ok, zap.String("item", itemID))
}

// MoveItem moves a card from one container into another at toIndex
func (s *Store) MoveItem(itemID, fromContainerID, toContainerID string, toIndex int) bool {
	next, ok := s.board.MoveItem(itemID, fromContainerID, toContainerID, toIndex)
	return s.commit("move item", next, ok,
		zap.String("item", itemID),
		zap.String("from", fromContainerID),
		zap.String("to", toContainerID),
		zap.Int("index", toIndex))
}

// Reorder moves a card within one container
func (s *Store) Reorder(containerID string, fromIndex, toIndex int) bool {
	next, ok := s.board.Reorder(containerID, fromIndex, toIndex)
	return s.commit("reorder", next, ok,
		zap.String("container", containerID),
		zap.Int("from", fromIndex),
		zap.Int("to", toIndex))
}

// ReplaceUnfiled swaps the unfiled list for new cards built from contents.
// Blank entries are skipped. Categorised cards are left alone.
func (s *Store) ReplaceUnfiled(contents []string) ([]domain.Item, bool) {
	items := make([]domain.Item, 0, len(contents))
	taken := make(map[string]bool, len(contents))
	for _, c := range contents {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		id := s.newID(ItemPrefix)
		for attempt := 0; taken[id] && attempt < maxIDAttempts; attempt++ {
			id = s.newID(ItemPrefix)
		}
		taken[id] = true
		items = append(items, domain.Item{ID: id, Content: c})
	}

	next, ok := s.board.ReplaceUnfiled(items)
	if !s.commit("replace unfiled", next, ok, zap.Int("cards", len(items))) {
		return nil, false
	}
	return items, true
}

// newID draws IDs until one is unused on the current board
func (s *Store) newID(prefix string) string {
	id := s.ids.NewID(prefix)
	for attempt := 0; s.board.HasID(id) && attempt < maxIDAttempts; attempt++ {
		id = s.ids.NewID(prefix)
	}
	return id
}

func (s *Store) commit(op string, next domain.Board, applied bool, fields ...zap.Field) bool {
	fields = append([]zap.Field{zap.String("op", op)}, fields...)
	if !applied {
		s.logger.Debug("operation not applied", fields...)
		return false
	}

	if s.checkInvariants {
		if err := next.CheckPartition(); err != nil {
			s.logger.Error("board invariant violated", append(fields, zap.Error(err))...)
			panic(fmt.Sprintf("cardsort: %s broke the board: %v", op, err))
		}
	}

	s.board = next
	s.logger.Debug("operation applied", fields...)
	return true
}
