package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	boardPath, exportFormat, exportOutput = "", "", ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_EditAndExport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	board := filepath.Join(dir, "study.json")

	out, err := run(t, "add-card", "--board", board, "Pricing")
	require.NoError(t, err)
	assert.Contains(t, out, "Pricing")

	out, err = run(t, "move", "--board", board, "item-1", "category-2")
	require.NoError(t, err)
	assert.Contains(t, out, "Moved item-1 from unfiled to category-2")

	_, err = run(t, "reorder", "--board", board, "unfiled", "0", "2")
	require.NoError(t, err)

	out, err = run(t, "show", "--board", board)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "unfiled Unfiled", lines[0])
	assert.Equal(t, "  0. item-3 About Us", lines[1])
	assert.Equal(t, "  2. item-2 Products", lines[3])
	assert.Contains(t, out, "category-2 Content\n  0. item-1 Home\n")

	out, err = run(t, "export", "--board", board, "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Home,Content\n")

	_, err = run(t, "export", "--board", board, "--format", "yaml", "--output", dir)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "card-sort-results.yaml"))
	assert.NoError(t, err)
}

func TestCLI_ImportReplacesUnfiled(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	board := filepath.Join(dir, "study.json")
	cards := filepath.Join(dir, "cards.csv")
	require.NoError(t, os.WriteFile(cards, []byte("id,card\n1,Shipping\n2,Returns\n"), 0644))

	out, err := run(t, "import", "--board", board, cards)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 card(s) from cards.csv")

	out, err = run(t, "show", "--board", board)
	require.NoError(t, err)
	assert.Contains(t, out, "Shipping")
	assert.NotContains(t, out, "Home")
}

func TestCLI_RequiresBoardFileToEdit(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	_, err := run(t, "add-category", "Extra")
	assert.ErrorIs(t, err, errNoBoardFile)
}
