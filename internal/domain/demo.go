package domain

// DemoBoard returns the starter study a new session opens with
func DemoBoard() Board {
	return Board{
		Unfiled: []Item{
			{ID: "item-1", Content: "Home"},
			{ID: "item-2", Content: "Products"},
			{ID: "item-3", Content: "About Us"},
			{ID: "item-4", Content: "Contact"},
		},
		Categories: []Category{
			{ID: "category-1", Name: "Navigation", Items: []Item{}},
			{ID: "category-2", Name: "Content", Items: []Item{}},
			{ID: "category-3", Name: "Footer", Items: []Item{}},
		},
	}
}
