package application

import (
	"fmt"

	"github.com/google/uuid"
)

// ID prefixes for generated identifiers
const (
	ItemPrefix     = "item"
	CategoryPrefix = "category"
)

// IDSource hands out identifiers for new cards and categories
type IDSource interface {
	NewID(prefix string) string
}

// UUIDSource generates "<prefix>-<uuid>" identifiers
type UUIDSource struct{}

// NewID returns a fresh random identifier
func (UUIDSource) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// SequentialSource generates "<prefix>-1", "<prefix>-2", ... per prefix.
// Not safe for concurrent use.
type SequentialSource struct {
	next map[string]int
}

// NewSequentialSource creates a SequentialSource starting at 1
func NewSequentialSource() *SequentialSource {
	return &SequentialSource{next: make(map[string]int)}
}

// NewID returns the next identifier for prefix
func (s *SequentialSource) NewID(prefix string) string {
	s.next[prefix]++
	return fmt.Sprintf("%s-%d", prefix, s.next[prefix])
}
