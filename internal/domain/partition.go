package domain

import (
	"errors"
	"fmt"
)

// ErrPartition is wrapped by every error CheckPartition returns
var ErrPartition = errors.New("board partition violated")

// CheckPartition verifies the board invariants: every card lives in exactly
// one container, card IDs are unique across the board, category IDs are
// unique, and no ID is blank or shadows another kind of ID.
func (b Board) CheckPartition() error {
	categories := make(map[string]bool, len(b.Categories))
	for _, cat := range b.Categories {
		switch {
		case isBlank(cat.ID):
			return fmt.Errorf("%w: category with blank ID", ErrPartition)
		case cat.ID == UnfiledID:
			return fmt.Errorf("%w: category uses reserved ID %q", ErrPartition, UnfiledID)
		case categories[cat.ID]:
			return fmt.Errorf("%w: duplicate category %s", ErrPartition, cat.ID)
		}
		categories[cat.ID] = true
	}

	owner := make(map[string]string, b.ItemCount())
	check := func(containerID string, items []Item) error {
		for _, it := range items {
			switch {
			case isBlank(it.ID):
				return fmt.Errorf("%w: card with blank ID in %s", ErrPartition, containerID)
			case it.ID == UnfiledID || categories[it.ID]:
				return fmt.Errorf("%w: card %s shadows a container ID", ErrPartition, it.ID)
			}
			if prev, dup := owner[it.ID]; dup {
				return fmt.Errorf("%w: card %s appears in %s and %s", ErrPartition, it.ID, prev, containerID)
			}
			owner[it.ID] = containerID
		}
		return nil
	}

	if err := check(UnfiledID, b.Unfiled); err != nil {
		return err
	}
	for _, cat := range b.Categories {
		if err := check(cat.ID, cat.Items); err != nil {
			return err
		}
	}
	return nil
}
