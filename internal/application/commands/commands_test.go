package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardsort/internal/application"
	"cardsort/internal/domain"
)

func newStore(t *testing.T) *application.Store {
	t.Helper()
	s := application.NewStore(
		application.WithIDSource(application.NewSequentialSource()),
		application.WithInvariantChecks(),
	)
	require.NoError(t, s.Load(domain.DemoBoard()))
	return s
}

func TestAddCardCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		errMsg  string
	}{
		{name: "valid card", content: "Pricing"},
		{name: "empty", content: "", wantErr: true, errMsg: "card text is required"},
		{name: "whitespace", content: "  \t", wantErr: true, errMsg: "card text is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&AddCardCommand{Content: tt.content}).Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				var valErr *application.ValidationError
				assert.True(t, errors.As(err, &valErr))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAddCardCommand_Execute(t *testing.T) {
	s := newStore(t)

	result, err := NewAddCardCommand(s, "Pricing").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "item-5", result.Item.ID)
	assert.Equal(t, "Added card item-5 Pricing", result.Message)

	snap := s.Snapshot()
	assert.Equal(t, "Pricing", snap.Unfiled[len(snap.Unfiled)-1].Content)
}

func TestAddCategoryCommand_Execute(t *testing.T) {
	s := newStore(t)

	_, err := NewAddCategoryCommand(s, "").Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category name is required")

	result, err := NewAddCategoryCommand(s, "Utility").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "category-4", result.Category.ID)
	assert.Len(t, s.Snapshot().Categories, 4)
}

func TestDeleteCardCommand_Execute(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	result, err := NewDeleteCardCommand(s, "item-3").Execute(ctx)
	require.NoError(t, err)
	assert.True(t, result.Applied)

	result, err = NewDeleteCardCommand(s, "item-3").Execute(ctx)
	require.NoError(t, err, "unknown cards are not errors")
	assert.False(t, result.Applied)
	assert.Contains(t, result.Message, "nothing deleted")

	_, err = NewDeleteCardCommand(s, "").Execute(ctx)
	assert.Error(t, err)
}

func TestDeleteCategoryCommand_Execute(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	_, err := NewMoveCardCommand(s, "item-1", "category-1").Execute(ctx)
	require.NoError(t, err)

	result, err := NewDeleteCategoryCommand(s, "category-1").Execute(ctx)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Contains(t, result.Message, "1 card(s) returned to unfiled")

	snap := s.Snapshot()
	assert.Equal(t, "item-1", snap.Unfiled[len(snap.Unfiled)-1].ID)

	result, err = NewDeleteCategoryCommand(s, "category-1").Execute(ctx)
	require.NoError(t, err)
	assert.False(t, result.Applied)

	_, err = NewDeleteCategoryCommand(s, application.UnfiledID).Execute(ctx)
	var valErr *application.ValidationError
	assert.True(t, errors.As(err, &valErr))
}

func TestMoveCardCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		itemID  string
		destID  string
		index   int
		wantErr bool
		errMsg  string
	}{
		{name: "valid", itemID: "item-1", destID: "category-1", index: application.NoIndex},
		{name: "valid with index", itemID: "item-1", destID: "category-1", index: 0},
		{name: "empty card", itemID: "", destID: "category-1", index: 0, wantErr: true, errMsg: "card ID is required"},
		{name: "empty destination", itemID: "item-1", destID: "", index: 0, wantErr: true, errMsg: "destination ID is required"},
		{name: "negative index", itemID: "item-1", destID: "category-1", index: -4, wantErr: true, errMsg: "index must be a position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &MoveCardCommand{ItemID: tt.itemID, DestinationID: tt.destID, Index: tt.index}
			err := cmd.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMoveCardCommand_Execute(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	result, err := NewMoveCardCommand(s, "item-2", "category-3").Execute(ctx)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, application.UnfiledID, result.From)
	assert.Equal(t, 0, result.Index)

	cmd := NewMoveCardCommand(s, "item-4", "category-3")
	cmd.Index = 0
	result, err = cmd.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Index)

	cat, _ := s.Snapshot().Category("category-3")
	require.Len(t, cat.Items, 2)
	assert.Equal(t, "item-4", cat.Items[0].ID)
	assert.Equal(t, "item-2", cat.Items[1].ID)

	result, err = NewMoveCardCommand(s, "ghost", "category-3").Execute(ctx)
	require.NoError(t, err)
	assert.False(t, result.Applied)
}

func TestMoveCardCommand_UnknownDestination(t *testing.T) {
	s := newStore(t)
	before := s.Snapshot()

	_, err := NewMoveCardCommand(s, "item-1", "item-2").Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, application.ErrNotFound))

	var moveErr *application.MoveError
	require.True(t, errors.As(err, &moveErr))
	assert.Equal(t, "item-2", moveErr.DestID)
	assert.Equal(t, before, s.Snapshot())
}

func TestReorderCommand_Execute(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	result, err := NewReorderCommand(s, application.UnfiledID, 0, 2).Execute(ctx)
	require.NoError(t, err)
	assert.True(t, result.Applied)

	var got []string
	for _, it := range s.Snapshot().Unfiled {
		got = append(got, it.ID)
	}
	assert.Equal(t, []string{"item-2", "item-3", "item-1", "item-4"}, got)

	result, err = NewReorderCommand(s, application.UnfiledID, 9, 0).Execute(ctx)
	require.NoError(t, err)
	assert.False(t, result.Applied)

	_, err = NewReorderCommand(s, "category-9", 0, 1).Execute(ctx)
	assert.Error(t, err)
}

type stubSource struct {
	cards []string
	err   error
}

func (s stubSource) ReadCards(r io.Reader) ([]string, error) {
	return s.cards, s.err
}

func TestImportCardsCommand_Execute(t *testing.T) {
	tests := []struct {
		name      string
		source    stubSource
		wantErr   error
		wantCards int
	}{
		{name: "replaces unfiled", source: stubSource{cards: []string{"Blog", "Careers"}}, wantCards: 2},
		{name: "no cards", source: stubSource{cards: nil}, wantErr: application.ErrNoCards},
		{name: "only blanks", source: stubSource{cards: []string{" ", ""}}, wantErr: application.ErrNoCards},
		{name: "read failure", source: stubSource{err: io.ErrUnexpectedEOF}, wantErr: io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			result, err := NewImportCardsCommand(s, tt.source, strings.NewReader(""), "cards.txt").Execute(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Len(t, s.Snapshot().Unfiled, 4, "board untouched")
				return
			}

			require.NoError(t, err)
			assert.Len(t, result.Items, tt.wantCards)
			assert.Equal(t, fmt.Sprintf("Imported %d card(s) from cards.txt", tt.wantCards), result.Message)
			assert.Len(t, s.Snapshot().Unfiled, tt.wantCards)
		})
	}
}

type stubEncoder struct {
	err error
}

func (stubEncoder) Format() string    { return "stub" }
func (stubEncoder) Extension() string { return "stub" }

func (e stubEncoder) Encode(w io.Writer, board domain.Board) error {
	if e.err != nil {
		return e.err
	}
	_, err := fmt.Fprintf(w, "%d/%d", board.ItemCount(), len(board.Categories))
	return err
}

func TestExportCommand_Execute(t *testing.T) {
	s := newStore(t)
	var buf bytes.Buffer

	result, err := NewExportCommand(s, stubEncoder{}, &buf).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4/3", buf.String())
	assert.Equal(t, 4, result.Cards)
	assert.Equal(t, 3, result.Categories)

	_, err = NewExportCommand(s, stubEncoder{err: io.ErrShortWrite}, &buf).Execute(context.Background())
	assert.True(t, errors.Is(err, io.ErrShortWrite))

	_, err = NewExportCommand(s, nil, &buf).Execute(context.Background())
	var valErr *application.ValidationError
	assert.True(t, errors.As(err, &valErr))
}
