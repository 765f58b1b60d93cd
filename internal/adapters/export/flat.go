package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"cardsort/internal/domain"
)

// UnfiledLabel names the unfiled list in flat exports
const UnfiledLabel = "Uncategorised"

// CSV writes one "Item,Category" row per card, unfiled cards first
type CSV struct{}

func (CSV) Format() string    { return "csv" }
func (CSV) Extension() string { return "csv" }

func (CSV) Encode(w io.Writer, board domain.Board) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Item", "Category"}); err != nil {
		return err
	}
	for _, it := range board.Unfiled {
		if err := cw.Write([]string{it.Content, UnfiledLabel}); err != nil {
			return err
		}
	}
	for _, cat := range board.Categories {
		for _, it := range cat.Items {
			if err := cw.Write([]string{it.Content, cat.Name}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// Text writes a human readable outline of the board
type Text struct{}

func (Text) Format() string    { return "text" }
func (Text) Extension() string { return "txt" }

func (Text) Encode(w io.Writer, board domain.Board) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, UnfiledLabel+" Items:")
	for _, it := range board.Unfiled {
		fmt.Fprintf(bw, "- %s\n", it.Content)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Categories:")
	for _, cat := range board.Categories {
		fmt.Fprintf(bw, "\n%s:\n", cat.Name)
		for _, it := range cat.Items {
			fmt.Fprintf(bw, "- %s\n", it.Content)
		}
	}

	return bw.Flush()
}
