package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func items(idList ...string) []Item {
	out := make([]Item, len(idList))
	for i, id := range idList {
		out[i] = Item{ID: id, Content: id}
	}
	return out
}

func TestAddItem(t *testing.T) {
	b := sampleBoard()

	tests := []struct {
		name    string
		item    Item
		applied bool
	}{
		{"appends new card", Item{ID: "n", Content: "New"}, true},
		{"blank content", Item{ID: "n", Content: "   "}, false},
		{"blank id", Item{ID: "", Content: "New"}, false},
		{"duplicate of unfiled card", Item{ID: "a", Content: "Again"}, false},
		{"duplicate of categorised card", Item{ID: "x", Content: "Again"}, false},
		{"shadows a category", Item{ID: "c1", Content: "Again"}, false},
		{"shadows the unfiled list", Item{ID: UnfiledID, Content: "Again"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied := b.AddItem(tt.item)
			assert.Equal(t, tt.applied, applied)
			if !applied {
				assert.Empty(t, cmp.Diff(b, got))
				return
			}
			assert.Equal(t, []string{"a", "b", "n"}, ids(got.Unfiled))
			assert.Len(t, b.Unfiled, 2, "receiver must not change")
		})
	}
}

func TestAddCategory(t *testing.T) {
	b := sampleBoard()

	got, applied := b.AddCategory(Category{ID: "c3", Name: "Three"})
	require.True(t, applied)
	require.Len(t, got.Categories, 3)
	assert.Equal(t, "c3", got.Categories[2].ID)
	assert.NotNil(t, got.Categories[2].Items)
	assert.Empty(t, got.Categories[2].Items)

	for _, bad := range []Category{
		{ID: "c3", Name: "  "},
		{ID: "c1", Name: "Dup"},
		{ID: UnfiledID, Name: "Reserved"},
		{ID: "a", Name: "Shadows a card"},
	} {
		_, applied := b.AddCategory(bad)
		assert.False(t, applied, "category %+v should be rejected", bad)
	}
}

func TestDeleteCategory_ReturnsItemsToUnfiled(t *testing.T) {
	b := Board{
		Unfiled: []Item{},
		Categories: []Category{
			{ID: "c1", Name: "One", Items: items("X", "Y")},
		},
	}

	got, applied := b.DeleteCategory("c1")
	require.True(t, applied)
	assert.Equal(t, []string{"X", "Y"}, ids(got.Unfiled))
	assert.Empty(t, got.Categories)
	require.NoError(t, got.CheckPartition())

	// Existing unfiled cards stay ahead of the returned ones
	b2 := sampleBoard()
	got2, _ := b2.DeleteCategory("c1")
	assert.Equal(t, []string{"a", "b", "x", "y"}, ids(got2.Unfiled))
	assert.Equal(t, []string{"c2"}, []string{got2.Categories[0].ID})

	_, applied = b.DeleteCategory("missing")
	assert.False(t, applied)
}

func TestDeleteItem(t *testing.T) {
	b := sampleBoard()

	got, applied := b.DeleteItem("x")
	require.True(t, applied)
	assert.Equal(t, []string{"y"}, ids(got.Categories[0].Items))

	got, applied = b.DeleteItem("a")
	require.True(t, applied)
	assert.Equal(t, []string{"b"}, ids(got.Unfiled))

	got, applied = b.DeleteItem("missing")
	assert.False(t, applied)
	assert.Empty(t, cmp.Diff(b, got))
}

func TestMoveItem(t *testing.T) {
	tests := []struct {
		name        string
		itemID      string
		from, to    string
		toIndex     int
		applied     bool
		wantUnfiled []string
		wantC1      []string
		wantC2      []string
	}{
		{
			name: "unfiled into empty category",
			itemID: "a", from: UnfiledID, to: "c2", toIndex: 0,
			applied: true, wantUnfiled: []string{"b"}, wantC1: []string{"x", "y"}, wantC2: []string{"a"},
		},
		{
			name: "index past the end is clamped",
			itemID: "a", from: UnfiledID, to: "c1", toIndex: 99,
			applied: true, wantUnfiled: []string{"b"}, wantC1: []string{"x", "y", "a"}, wantC2: []string{},
		},
		{
			name: "negative index is clamped to the front",
			itemID: "b", from: UnfiledID, to: "c1", toIndex: -5,
			applied: true, wantUnfiled: []string{"a"}, wantC1: []string{"b", "x", "y"}, wantC2: []string{},
		},
		{
			name: "category back to unfiled",
			itemID: "y", from: "c1", to: UnfiledID, toIndex: 1,
			applied: true, wantUnfiled: []string{"a", "y", "b"}, wantC1: []string{"x"}, wantC2: []string{},
		},
		{
			name: "same container acts as reorder",
			itemID: "x", from: "c1", to: "c1", toIndex: 1,
			applied: true, wantUnfiled: []string{"a", "b"}, wantC1: []string{"y", "x"}, wantC2: []string{},
		},
		{
			name: "same container at current position",
			itemID: "y", from: "c1", to: "c1", toIndex: 1,
			applied: false,
		},
		{
			name: "same container past the end when already last",
			itemID: "y", from: "c1", to: "c1", toIndex: 7,
			applied: false,
		},
		{
			name: "wrong source container",
			itemID: "a", from: "c1", to: "c2", toIndex: 0,
			applied: false,
		},
		{
			name: "unknown destination",
			itemID: "a", from: UnfiledID, to: "nope", toIndex: 0,
			applied: false,
		},
		{
			name: "unknown item",
			itemID: "ghost", from: UnfiledID, to: "c2", toIndex: 0,
			applied: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBoard()
			got, applied := b.MoveItem(tt.itemID, tt.from, tt.to, tt.toIndex)
			require.Equal(t, tt.applied, applied)
			if !applied {
				assert.Empty(t, cmp.Diff(sampleBoard(), got))
				return
			}
			require.NoError(t, got.CheckPartition())
			assert.Equal(t, tt.wantUnfiled, ids(got.Unfiled))
			assert.Equal(t, tt.wantC1, ids(got.Categories[0].Items))
			assert.Equal(t, tt.wantC2, ids(got.Categories[1].Items))
			assert.Empty(t, cmp.Diff(sampleBoard(), b), "receiver must not change")
		})
	}
}

func TestMoveItem_UnknownItemLeavesBoardUnchanged(t *testing.T) {
	b := sampleBoard()
	before := b.Clone()

	got, applied := b.MoveItem("ghost", UnfiledID, "c1", 0)

	assert.False(t, applied)
	if diff := cmp.Diff(before, got); diff != "" {
		t.Errorf("board changed (-want +got):\n%s", diff)
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
		applied  bool
	}{
		{"front to middle", 0, 2, []string{"B", "C", "A", "D"}, true},
		{"back to front", 3, 0, []string{"D", "A", "B", "C"}, true},
		{"middle to end", 1, 3, []string{"A", "C", "D", "B"}, true},
		{"target clamped to last slot", 0, 10, []string{"B", "C", "D", "A"}, true},
		{"same position", 2, 2, []string{"A", "B", "C", "D"}, false},
		{"source out of range", 4, 0, []string{"A", "B", "C", "D"}, false},
		{"negative source", -1, 0, []string{"A", "B", "C", "D"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Board{Unfiled: items("A", "B", "C", "D")}
			got, applied := b.Reorder(UnfiledID, tt.from, tt.to)
			assert.Equal(t, tt.applied, applied)
			assert.Equal(t, tt.want, ids(got.Unfiled))
		})
	}
}

func TestReorder_InsideCategoryLeavesUnfiledAlone(t *testing.T) {
	b := sampleBoard()
	got, applied := b.Reorder("c1", 0, 1)
	require.True(t, applied)
	assert.Equal(t, []string{"y", "x"}, ids(got.Categories[0].Items))
	assert.Equal(t, []string{"a", "b"}, ids(got.Unfiled))

	_, applied = b.Reorder("missing", 0, 1)
	assert.False(t, applied)
}

func TestReplaceUnfiled(t *testing.T) {
	b := sampleBoard()

	got, applied := b.ReplaceUnfiled(items("p", "q", "r"))
	require.True(t, applied)
	assert.Equal(t, []string{"p", "q", "r"}, ids(got.Unfiled))
	assert.Equal(t, []string{"x", "y"}, ids(got.Categories[0].Items), "categories untouched")

	got, applied = b.ReplaceUnfiled(nil)
	require.True(t, applied)
	assert.NotNil(t, got.Unfiled)
	assert.Empty(t, got.Unfiled)

	for name, bad := range map[string][]Item{
		"duplicate ids":           items("p", "p"),
		"collides with category":  items("x"),
		"collides with container": items("c1"),
		"blank content":           {{ID: "p", Content: " "}},
		"reserved id":             items(UnfiledID),
	} {
		t.Run(name, func(t *testing.T) {
			got, applied := b.ReplaceUnfiled(bad)
			assert.False(t, applied)
			assert.Empty(t, cmp.Diff(b, got, cmpopts.EquateEmpty()))
		})
	}
}

func TestOperations_DoNotAliasReceiver(t *testing.T) {
	b := sampleBoard()
	got, applied := b.MoveItem("a", UnfiledID, "c1", 0)
	require.True(t, applied)

	got.Categories[0].Items[1].Content = "mutated"
	got.Unfiled[0].Content = "mutated"

	assert.Equal(t, "X", b.Categories[0].Items[0].Content)
	assert.Equal(t, "B", b.Unfiled[1].Content)
}
