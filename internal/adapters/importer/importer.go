// Package importer reads card texts from uploaded files.
package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"cardsort/internal/application"
	"cardsort/internal/ports"
)

// headerNames are the column titles recognised as holding card text
var headerNames = []string{"content", "item", "card"}

// ForPath picks a reader by file extension
func ForPath(path string) (ports.CardSource, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return CSV{}, nil
	case ".txt", ".text":
		return Text{}, nil
	default:
		return nil, fmt.Errorf("%w %q (want .csv or .txt)", application.ErrUnknownFormat, ext)
	}
}

// Text reads one card per non-blank line
type Text struct{}

func (Text) ReadCards(r io.Reader) ([]string, error) {
	var cards []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if card := clean(scanner.Text()); card != "" {
			cards = append(cards, card)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

// CSV reads the card column of a table. A first row naming a content, item
// or card column selects that column and is skipped; otherwise every row's
// first cell is a card.
type CSV struct{}

func (CSV) ReadCards(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	column := 0
	first := true
	var cards []string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}

		if first {
			first = false
			if idx := headerColumn(record); idx >= 0 {
				column = idx
				continue
			}
		}

		if column >= len(record) {
			continue
		}
		if card := clean(record[column]); card != "" {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

func headerColumn(record []string) int {
	for _, name := range headerNames {
		idx := slices.IndexFunc(record, func(cell string) bool {
			return strings.EqualFold(strings.TrimSpace(cell), name)
		})
		if idx >= 0 {
			return idx
		}
	}
	return -1
}

// clean trims whitespace and one surrounding quote character on each side
func clean(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimPrefix(s, `'`)
	s = strings.TrimSuffix(s, `"`)
	s = strings.TrimSuffix(s, `'`)
	return strings.TrimSpace(s)
}
