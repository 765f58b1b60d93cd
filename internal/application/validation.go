package application

import (
	"fmt"
	"strings"

	"cardsort/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "categoryID" -> "category ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"categoryID":    "category ID",
		"itemID":        "card ID",
		"containerID":   "container ID",
		"destinationID": "destination ID",
		"content":       "card text",
		"name":          "category name",
		"path":          "file path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateContainer checks that id names the unfiled list or an existing
// category on the board.
func ValidateContainer(fieldName, id string, board domain.Board) error {
	if err := ValidateRequired(fieldName, id); err != nil {
		return err
	}
	if _, ok := board.Container(id); !ok {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %q or a category ID, got: %s", domain.UnfiledID, id),
		}
	}
	return nil
}
