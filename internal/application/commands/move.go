package commands

import (
	"context"
	"fmt"

	"cardsort/internal/application"
	"cardsort/internal/ports"
)

// MoveCardResult contains the result of moving a card
type MoveCardResult struct {
	ItemID  string
	From    string
	To      string
	Index   int
	Applied bool
	Message string
}

// MoveCardCommand moves a card into a category or back to the unfiled list
type MoveCardCommand struct {
	store         ports.BoardStore
	ItemID        string
	DestinationID string
	// Index is the position in the destination; application.NoIndex appends
	Index int
}

// NewMoveCardCommand creates a new MoveCardCommand that appends to the destination
func NewMoveCardCommand(store ports.BoardStore, itemID, destinationID string) *MoveCardCommand {
	return &MoveCardCommand{
		store:         store,
		ItemID:        itemID,
		DestinationID: destinationID,
		Index:         application.NoIndex,
	}
}

// Validate checks if the move operation is valid
func (c *MoveCardCommand) Validate() error {
	if err := application.ValidateRequired("itemID", c.ItemID); err != nil {
		return err
	}
	if err := application.ValidateRequired("destinationID", c.DestinationID); err != nil {
		return err
	}
	if c.Index < application.NoIndex {
		return &application.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("index must be a position or omitted, got: %d", c.Index),
		}
	}
	return nil
}

// Execute runs the move card command
func (c *MoveCardCommand) Execute(ctx context.Context) (*MoveCardResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	board := c.store.Snapshot()
	dest, ok := board.Container(c.DestinationID)
	if !ok {
		return nil, &application.MoveError{
			ItemID: c.ItemID,
			DestID: c.DestinationID,
			Reason: fmt.Sprintf("expected %q or a category ID", application.UnfiledID),
		}
	}

	result := &MoveCardResult{
		ItemID: c.ItemID,
		To:     c.DestinationID,
		Index:  c.Index,
	}

	from, _, found := board.Locate(c.ItemID)
	if !found {
		result.Message = fmt.Sprintf("No card %s; nothing moved", c.ItemID)
		return result, nil
	}
	result.From = from

	if result.Index == application.NoIndex {
		result.Index = len(dest)
	}

	result.Applied = c.store.MoveItem(c.ItemID, from, c.DestinationID, result.Index)
	if !result.Applied {
		result.Message = fmt.Sprintf("Card %s not moved", c.ItemID)
		return result, nil
	}

	// Report the position the card actually landed at
	if _, idx, ok := c.store.Snapshot().Locate(c.ItemID); ok {
		result.Index = idx
	}
	result.Message = fmt.Sprintf("Moved %s from %s to %s at position %d", c.ItemID, from, c.DestinationID, result.Index)
	return result, nil
}

// ReorderResult contains the result of reordering a container
type ReorderResult struct {
	ContainerID string
	Applied     bool
	Message     string
}

// ReorderCommand moves the card at From to position To within one container
type ReorderCommand struct {
	store       ports.BoardStore
	ContainerID string
	From        int
	To          int
}

// NewReorderCommand creates a new ReorderCommand
func NewReorderCommand(store ports.BoardStore, containerID string, from, to int) *ReorderCommand {
	return &ReorderCommand{
		store:       store,
		ContainerID: containerID,
		From:        from,
		To:          to,
	}
}

// Validate checks if the reorder operation is valid
func (c *ReorderCommand) Validate() error {
	return application.ValidateRequired("containerID", c.ContainerID)
}

// Execute runs the reorder command
func (c *ReorderCommand) Execute(ctx context.Context) (*ReorderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := application.ValidateContainer("containerID", c.ContainerID, c.store.Snapshot()); err != nil {
		return nil, err
	}

	if !c.store.Reorder(c.ContainerID, c.From, c.To) {
		return &ReorderResult{
			ContainerID: c.ContainerID,
			Message:     fmt.Sprintf("Order of %s unchanged", c.ContainerID),
		}, nil
	}

	return &ReorderResult{
		ContainerID: c.ContainerID,
		Applied:     true,
		Message:     fmt.Sprintf("Moved position %d to %d in %s", c.From, c.To, c.ContainerID),
	}, nil
}
