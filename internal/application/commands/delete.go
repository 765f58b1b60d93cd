package commands

import (
	"context"
	"fmt"

	"cardsort/internal/application"
	"cardsort/internal/ports"
)

// DeleteResult contains the result of a delete operation. Unknown IDs are
// not errors: Applied is false and Message says nothing was removed.
type DeleteResult struct {
	DeletedID string
	Applied   bool
	Message   string
}

// DeleteCardCommand deletes a card wherever it lives
type DeleteCardCommand struct {
	store  ports.BoardStore
	ItemID string
}

// NewDeleteCardCommand creates a new DeleteCardCommand
func NewDeleteCardCommand(store ports.BoardStore, itemID string) *DeleteCardCommand {
	return &DeleteCardCommand{
		store:  store,
		ItemID: itemID,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCardCommand) Validate() error {
	return application.ValidateRequired("itemID", c.ItemID)
}

// Execute runs the delete card command
func (c *DeleteCardCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !c.store.DeleteItem(c.ItemID) {
		return &DeleteResult{
			DeletedID: c.ItemID,
			Message:   fmt.Sprintf("No card %s; nothing deleted", c.ItemID),
		}, nil
	}

	return &DeleteResult{
		DeletedID: c.ItemID,
		Applied:   true,
		Message:   fmt.Sprintf("Deleted card %s", c.ItemID),
	}, nil
}

// DeleteCategoryCommand deletes a category and returns its cards to the
// unfiled list
type DeleteCategoryCommand struct {
	store      ports.BoardStore
	CategoryID string
}

// NewDeleteCategoryCommand creates a new DeleteCategoryCommand
func NewDeleteCategoryCommand(store ports.BoardStore, categoryID string) *DeleteCategoryCommand {
	return &DeleteCategoryCommand{
		store:      store,
		CategoryID: categoryID,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCategoryCommand) Validate() error {
	if err := application.ValidateRequired("categoryID", c.CategoryID); err != nil {
		return err
	}
	if c.CategoryID == application.UnfiledID {
		return &application.ValidationError{
			Field:   "categoryID",
			Message: "the unfiled list cannot be deleted",
		}
	}
	return nil
}

// Execute runs the delete category command
func (c *DeleteCategoryCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cat, found := c.store.Snapshot().Category(c.CategoryID)
	if !found || !c.store.DeleteCategory(c.CategoryID) {
		return &DeleteResult{
			DeletedID: c.CategoryID,
			Message:   fmt.Sprintf("No category %s; nothing deleted", c.CategoryID),
		}, nil
	}

	return &DeleteResult{
		DeletedID: c.CategoryID,
		Applied:   true,
		Message:   fmt.Sprintf("Deleted category %s %s; %d card(s) returned to unfiled", cat.ID, cat.Name, len(cat.Items)),
	}, nil
}
