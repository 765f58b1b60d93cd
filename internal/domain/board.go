package domain

import "strings"

// UnfiledID addresses the unfiled list wherever a container ID is expected.
// Category IDs may never take this value.
const UnfiledID = "unfiled"

// Item represents a single card (e.g., "item-1" Home)
type Item struct {
	ID      string
	Content string
}

// Category represents a named group of cards (e.g., "category-1" Navigation)
type Category struct {
	ID    string
	Name  string
	Items []Item
}

// Board is a snapshot of a card sort: cards not yet filed plus the
// categories, each holding its own ordered cards.
type Board struct {
	Unfiled    []Item
	Categories []Category
}

// Clone returns a deep copy of the board. Mutating the copy never affects
// the original.
func (b Board) Clone() Board {
	out := Board{
		Unfiled:    cloneItems(b.Unfiled),
		Categories: make([]Category, len(b.Categories)),
	}
	for i, cat := range b.Categories {
		out.Categories[i] = Category{
			ID:    cat.ID,
			Name:  cat.Name,
			Items: cloneItems(cat.Items),
		}
	}
	return out
}

// Locate reports which container holds the item and at which position
func (b Board) Locate(itemID string) (containerID string, index int, ok bool) {
	if i := indexOf(b.Unfiled, itemID); i >= 0 {
		return UnfiledID, i, true
	}
	for _, cat := range b.Categories {
		if i := indexOf(cat.Items, itemID); i >= 0 {
			return cat.ID, i, true
		}
	}
	return "", -1, false
}

// FindItem returns the item with the given ID, wherever it lives
func (b Board) FindItem(itemID string) (Item, bool) {
	containerID, i, ok := b.Locate(itemID)
	if !ok {
		return Item{}, false
	}
	items, _ := b.Container(containerID)
	return items[i], true
}

// Container returns the ordered items of the unfiled list or a category
func (b Board) Container(containerID string) ([]Item, bool) {
	if containerID == UnfiledID {
		return b.Unfiled, true
	}
	if i := b.categoryIndex(containerID); i >= 0 {
		return b.Categories[i].Items, true
	}
	return nil, false
}

// Category returns the category with the given ID
func (b Board) Category(categoryID string) (Category, bool) {
	if i := b.categoryIndex(categoryID); i >= 0 {
		return b.Categories[i], true
	}
	return Category{}, false
}

// ResolveTarget maps a drop/hover target to the container it designates.
// A category ID or UnfiledID designates itself; an item ID designates the
// container currently holding that item.
func (b Board) ResolveTarget(targetID string) (string, bool) {
	if targetID == "" {
		return "", false
	}
	if targetID == UnfiledID || b.categoryIndex(targetID) >= 0 {
		return targetID, true
	}
	containerID, _, ok := b.Locate(targetID)
	return containerID, ok
}

// ItemCount returns the number of cards on the board
func (b Board) ItemCount() int {
	n := len(b.Unfiled)
	for _, cat := range b.Categories {
		n += len(cat.Items)
	}
	return n
}

// ContainerIDs returns UnfiledID followed by every category ID, in order
func (b Board) ContainerIDs() []string {
	ids := make([]string, 0, len(b.Categories)+1)
	ids = append(ids, UnfiledID)
	for _, cat := range b.Categories {
		ids = append(ids, cat.ID)
	}
	return ids
}

func (b Board) categoryIndex(categoryID string) int {
	for i, cat := range b.Categories {
		if cat.ID == categoryID {
			return i
		}
	}
	return -1
}

func indexOf(items []Item, itemID string) int {
	for i, it := range items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
