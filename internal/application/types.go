package application

import "cardsort/internal/domain"

// Re-export domain types for use by adapters
type (
	Board    = domain.Board
	Item     = domain.Item
	Category = domain.Category
)

// UnfiledID addresses the unfiled list as a container
const UnfiledID = domain.UnfiledID

// NoIndex asks a hover to append to the end of the target container
const NoIndex = -1
