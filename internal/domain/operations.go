package domain

// Board operations are pure: each returns a new board and whether the
// operation applied. When it did not apply the receiver is returned as is.
// A returned board never shares slices with the receiver.

// AddItem appends a card to the end of the unfiled list
func (b Board) AddItem(item Item) (Board, bool) {
	if isBlank(item.ID) || isBlank(item.Content) {
		return b, false
	}
	if b.HasID(item.ID) {
		return b, false
	}
	out := b.Clone()
	out.Unfiled = append(out.Unfiled, item)
	return out, true
}

// AddCategory appends an empty category
func (b Board) AddCategory(cat Category) (Board, bool) {
	if isBlank(cat.ID) || isBlank(cat.Name) || cat.ID == UnfiledID {
		return b, false
	}
	if b.HasID(cat.ID) {
		return b, false
	}
	out := b.Clone()
	out.Categories = append(out.Categories, Category{ID: cat.ID, Name: cat.Name, Items: []Item{}})
	return out, true
}

// DeleteCategory removes a category and returns its cards, in order, to the
// end of the unfiled list
func (b Board) DeleteCategory(categoryID string) (Board, bool) {
	i := b.categoryIndex(categoryID)
	if i < 0 {
		return b, false
	}
	out := b.Clone()
	out.Unfiled = append(out.Unfiled, out.Categories[i].Items...)
	out.Categories = append(out.Categories[:i], out.Categories[i+1:]...)
	return out, true
}

// DeleteItem removes a card from whichever container holds it
func (b Board) DeleteItem(itemID string) (Board, bool) {
	containerID, i, ok := b.Locate(itemID)
	if !ok {
		return b, false
	}
	out := b.Clone()
	items := out.items(containerID)
	out.setItems(containerID, removeAt(items, i))
	return out, true
}

// MoveItem takes a card out of from and inserts it into to at toIndex.
// toIndex is clamped to [0, len(to)] as measured after the removal, so a
// move within one container behaves as a reorder. A move that would leave
// the card where it already is does not apply.
func (b Board) MoveItem(itemID, from, to string, toIndex int) (Board, bool) {
	containerID, i, ok := b.Locate(itemID)
	if !ok || containerID != from {
		return b, false
	}
	dst, ok := b.Container(to)
	if !ok {
		return b, false
	}
	if from == to && clamp(toIndex, 0, len(dst)-1) == i {
		return b, false
	}

	out := b.Clone()
	src := out.items(from)
	item := src[i]
	out.setItems(from, removeAt(src, i))

	dst = out.items(to)
	out.setItems(to, insertAt(dst, clamp(toIndex, 0, len(dst)), item))
	return out, true
}

// Reorder moves the card at position from to position to within one
// container, shifting the cards in between. The card is removed first and
// then inserted at to, the usual array-move semantics.
func (b Board) Reorder(containerID string, from, to int) (Board, bool) {
	items, ok := b.Container(containerID)
	if !ok || from < 0 || from >= len(items) {
		return b, false
	}
	to = clamp(to, 0, len(items)-1)
	if from == to {
		return b, false
	}

	out := b.Clone()
	src := out.items(containerID)
	item := src[from]
	out.setItems(containerID, insertAt(removeAt(src, from), to, item))
	return out, true
}

// ReplaceUnfiled swaps the whole unfiled list for items in one step.
// Items must carry unique, non-blank IDs and content, and their IDs must
// not collide with a categorised card or a category.
func (b Board) ReplaceUnfiled(items []Item) (Board, bool) {
	seen := map[string]bool{UnfiledID: true}
	for _, cat := range b.Categories {
		seen[cat.ID] = true
		for _, it := range cat.Items {
			seen[it.ID] = true
		}
	}
	for _, it := range items {
		if isBlank(it.ID) || isBlank(it.Content) || seen[it.ID] {
			return b, false
		}
		seen[it.ID] = true
	}

	out := b.Clone()
	out.Unfiled = cloneItems(items)
	if out.Unfiled == nil {
		out.Unfiled = []Item{}
	}
	return out, true
}

// HasID reports whether id is already used by a card, a category, or the
// unfiled list
func (b Board) HasID(id string) bool {
	if id == UnfiledID || b.categoryIndex(id) >= 0 {
		return true
	}
	_, _, ok := b.Locate(id)
	return ok
}

// items returns the live slice of a container on a board owned by the caller
func (b *Board) items(containerID string) []Item {
	if containerID == UnfiledID {
		return b.Unfiled
	}
	return b.Categories[b.categoryIndex(containerID)].Items
}

func (b *Board) setItems(containerID string, items []Item) {
	if containerID == UnfiledID {
		b.Unfiled = items
		return
	}
	b.Categories[b.categoryIndex(containerID)].Items = items
}

func removeAt(items []Item, i int) []Item {
	out := make([]Item, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func insertAt(items []Item, i int, item Item) []Item {
	out := make([]Item, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, item)
	return append(out, items[i:]...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
