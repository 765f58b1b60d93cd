package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cardsort/internal/adapters/export"
	"cardsort/internal/domain"
)

// ErrNoBoard is returned by Load when the board file does not exist yet
var ErrNoBoard = errors.New("no board file")

// Repository implements ports.BoardRepository with a JSON file on disk. The
// file uses the same document layout as the JSON export, so an exported
// study can be opened again.
type Repository struct {
	path string
}

// NewRepository creates a repository for the board file at path
func NewRepository(path string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Repository{path: path}
}

// Path returns the board file location
func (r *Repository) Path() string {
	return r.path
}

// Load reads the board file
func (r *Repository) Load() (domain.Board, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Board{}, fmt.Errorf("%w: %s", ErrNoBoard, r.path)
	}
	if err != nil {
		return domain.Board{}, fmt.Errorf("failed to open board: %w", err)
	}
	defer f.Close()

	board, err := export.DecodeJSON(f)
	if err != nil {
		return domain.Board{}, fmt.Errorf("%s: %w", r.path, err)
	}
	return board, nil
}

// Save writes the board through a temporary file and a rename, so a crash
// never leaves a half-written board behind
func (r *Repository) Save(board domain.Board) error {
	var buf bytes.Buffer
	if err := (export.JSON{}).Encode(&buf, board); err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create board directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to save board: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}
