package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"cardsort/internal/domain"
)

// itemDoc and categoryDoc mirror the exported results file
type itemDoc struct {
	ID      string `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
}

type categoryDoc struct {
	ID    string    `json:"id" yaml:"id"`
	Name  string    `json:"name" yaml:"name"`
	Items []itemDoc `json:"items" yaml:"items"`
}

type boardDoc struct {
	UncategorisedItems []itemDoc     `json:"uncategorisedItems" yaml:"uncategorisedItems"`
	Categories         []categoryDoc `json:"categories" yaml:"categories"`
}

func toDoc(b domain.Board) boardDoc {
	doc := boardDoc{
		UncategorisedItems: toItemDocs(b.Unfiled),
		Categories:         make([]categoryDoc, 0, len(b.Categories)),
	}
	for _, cat := range b.Categories {
		doc.Categories = append(doc.Categories, categoryDoc{
			ID:    cat.ID,
			Name:  cat.Name,
			Items: toItemDocs(cat.Items),
		})
	}
	return doc
}

func toItemDocs(items []domain.Item) []itemDoc {
	out := make([]itemDoc, 0, len(items))
	for _, it := range items {
		out = append(out, itemDoc{ID: it.ID, Content: it.Content})
	}
	return out
}

func (d boardDoc) board() domain.Board {
	b := domain.Board{
		Unfiled:    fromItemDocs(d.UncategorisedItems),
		Categories: make([]domain.Category, 0, len(d.Categories)),
	}
	for _, cat := range d.Categories {
		b.Categories = append(b.Categories, domain.Category{
			ID:    cat.ID,
			Name:  cat.Name,
			Items: fromItemDocs(cat.Items),
		})
	}
	return b
}

func fromItemDocs(docs []itemDoc) []domain.Item {
	out := make([]domain.Item, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.Item{ID: d.ID, Content: d.Content})
	}
	return out
}

// JSON encodes the board as indented JSON. Its output doubles as the board
// file format read back by DecodeJSON.
type JSON struct{}

func (JSON) Format() string    { return "json" }
func (JSON) Extension() string { return "json" }

func (JSON) Encode(w io.Writer, board domain.Board) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDoc(board))
}

// DecodeJSON reads a board written by JSON.Encode. The result is not
// validated; pass it through Store.Load for that.
func DecodeJSON(r io.Reader) (domain.Board, error) {
	var doc boardDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return domain.Board{}, fmt.Errorf("failed to decode board: %w", err)
	}
	return doc.board(), nil
}

// YAML encodes the same document as JSON in YAML
type YAML struct{}

func (YAML) Format() string    { return "yaml" }
func (YAML) Extension() string { return "yaml" }

func (YAML) Encode(w io.Writer, board domain.Board) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDoc(board)); err != nil {
		return err
	}
	return enc.Close()
}

// DecodeYAML reads a board written by YAML.Encode
func DecodeYAML(r io.Reader) (domain.Board, error) {
	var doc boardDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return domain.Board{}, fmt.Errorf("failed to decode board: %w", err)
	}
	return doc.board(), nil
}
