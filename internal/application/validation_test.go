package application

import (
	"errors"
	"testing"

	"cardsort/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "content",
			value:     "Home",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "content",
			value:     "",
			wantErr:   true,
			wantMsg:   "content: card text is required",
		},
		{
			name:      "whitespace only",
			fieldName: "name",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "name: category name is required",
		},
		{
			name:      "unmapped field keeps its name",
			fieldName: "format",
			value:     "",
			wantErr:   true,
			wantMsg:   "format: format is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if err.Error() != tt.wantMsg {
					t.Errorf("expected message %q, got %q", tt.wantMsg, err.Error())
				}
			}
		})
	}
}

func TestValidateContainer(t *testing.T) {
	board := domain.DemoBoard()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"unfiled list", domain.UnfiledID, false},
		{"existing category", "category-2", false},
		{"empty", "", true},
		{"unknown category", "category-9", true},
		{"card ID is not a container", "item-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContainer("destinationID", tt.id, board)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContainer(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestMoveErrorIsNotFound(t *testing.T) {
	err := &MoveError{ItemID: "item-1", DestID: "category-9", Reason: "no such container"}

	if !errors.Is(err, ErrNotFound) {
		t.Error("expected MoveError to match ErrNotFound")
	}
	want := "cannot move item-1 to category-9: no such container"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
