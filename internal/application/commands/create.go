package commands

import (
	"context"
	"fmt"

	"cardsort/internal/application"
	"cardsort/internal/domain"
	"cardsort/internal/ports"
)

// AddCardResult contains the result of adding a card
type AddCardResult struct {
	Item    domain.Item
	Message string
}

// AddCardCommand adds a card to the unfiled list
type AddCardCommand struct {
	store   ports.BoardStore
	Content string
}

// NewAddCardCommand creates a new AddCardCommand
func NewAddCardCommand(store ports.BoardStore, content string) *AddCardCommand {
	return &AddCardCommand{
		store:   store,
		Content: content,
	}
}

// Validate checks if the card text is usable
func (c *AddCardCommand) Validate() error {
	return application.ValidateRequired("content", c.Content)
}

// Execute runs the add card command
func (c *AddCardCommand) Execute(ctx context.Context) (*AddCardResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	item, ok := c.store.AddItem(c.Content)
	if !ok {
		return nil, fmt.Errorf("failed to add card %q: %w", c.Content, application.ErrInvalidBoard)
	}

	return &AddCardResult{
		Item:    item,
		Message: fmt.Sprintf("Added card %s %s", item.ID, item.Content),
	}, nil
}

// AddCategoryResult contains the result of adding a category
type AddCategoryResult struct {
	Category domain.Category
	Message  string
}

// AddCategoryCommand adds an empty category
type AddCategoryCommand struct {
	store ports.BoardStore
	Name  string
}

// NewAddCategoryCommand creates a new AddCategoryCommand
func NewAddCategoryCommand(store ports.BoardStore, name string) *AddCategoryCommand {
	return &AddCategoryCommand{
		store: store,
		Name:  name,
	}
}

// Validate checks if the category name is usable
func (c *AddCategoryCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the add category command
func (c *AddCategoryCommand) Execute(ctx context.Context) (*AddCategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cat, ok := c.store.AddCategory(c.Name)
	if !ok {
		return nil, fmt.Errorf("failed to add category %q: %w", c.Name, application.ErrInvalidBoard)
	}

	return &AddCategoryResult{
		Category: cat,
		Message:  fmt.Sprintf("Added category %s %s", cat.ID, cat.Name),
	}, nil
}
