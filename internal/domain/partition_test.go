package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPartition(t *testing.T) {
	tests := []struct {
		name    string
		board   Board
		wantErr bool
	}{
		{
			name:  "valid board",
			board: sampleBoard(),
		},
		{
			name:  "empty board",
			board: Board{},
		},
		{
			name: "card in two categories",
			board: Board{Categories: []Category{
				{ID: "c1", Name: "One", Items: items("x")},
				{ID: "c2", Name: "Two", Items: items("x")},
			}},
			wantErr: true,
		},
		{
			name: "card both unfiled and filed",
			board: Board{
				Unfiled:    items("x"),
				Categories: []Category{{ID: "c1", Name: "One", Items: items("x")}},
			},
			wantErr: true,
		},
		{
			name:    "duplicate in unfiled",
			board:   Board{Unfiled: items("x", "x")},
			wantErr: true,
		},
		{
			name: "duplicate category",
			board: Board{Categories: []Category{
				{ID: "c1", Name: "One"},
				{ID: "c1", Name: "Again"},
			}},
			wantErr: true,
		},
		{
			name:    "reserved category id",
			board:   Board{Categories: []Category{{ID: UnfiledID, Name: "Nope"}}},
			wantErr: true,
		},
		{
			name: "card shadows category",
			board: Board{
				Unfiled:    items("c1"),
				Categories: []Category{{ID: "c1", Name: "One"}},
			},
			wantErr: true,
		},
		{
			name:    "blank card id",
			board:   Board{Unfiled: []Item{{ID: " ", Content: "x"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.board.CheckPartition()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrPartition))
		})
	}
}

// TestPartition_RandomOperations applies long random operation sequences and
// checks the invariants after every step.
func TestPartition_RandomOperations(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(seed, seed*7919))
			b := DemoBoard()
			next := 0
			expected := b.ItemCount()

			pickItem := func() string {
				if b.ItemCount() == 0 || rng.IntN(10) == 0 {
					return "ghost"
				}
				all := append([]Item{}, b.Unfiled...)
				for _, cat := range b.Categories {
					all = append(all, cat.Items...)
				}
				return all[rng.IntN(len(all))].ID
			}
			pickContainer := func() string {
				ids := b.ContainerIDs()
				if rng.IntN(10) == 0 {
					return "nowhere"
				}
				return ids[rng.IntN(len(ids))]
			}

			for step := 0; step < 300; step++ {
				var applied bool
				op := rng.IntN(7)
				switch op {
				case 0:
					next++
					b, applied = b.AddItem(Item{ID: fmt.Sprintf("r-%d", next), Content: "card"})
					if applied {
						expected++
					}
				case 1:
					next++
					b, _ = b.AddCategory(Category{ID: fmt.Sprintf("k-%d", next), Name: "cat"})
				case 2:
					if rng.IntN(4) == 0 {
						b, _ = b.DeleteCategory(pickContainer())
					}
				case 3:
					if rng.IntN(3) == 0 {
						b, applied = b.DeleteItem(pickItem())
						if applied {
							expected--
						}
					}
				case 4:
					id := pickItem()
					from, _, _ := b.Locate(id)
					b, _ = b.MoveItem(id, from, pickContainer(), rng.IntN(6)-1)
				case 5:
					c := pickContainer()
					b, _ = b.Reorder(c, rng.IntN(6)-1, rng.IntN(6)-1)
				case 6:
					id := pickItem()
					b, _ = b.MoveItem(id, pickContainer(), pickContainer(), rng.IntN(4))
				}

				require.NoError(t, b.CheckPartition(), "step %d op %d", step, op)
				require.Equal(t, expected, b.ItemCount(), "step %d op %d", step, op)
			}
		})
	}
}
