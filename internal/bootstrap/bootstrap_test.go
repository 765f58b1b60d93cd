package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardsort/internal/domain"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return dir
}

func TestOpen_InMemoryDemo(t *testing.T) {
	isolate(t)

	env, err := Open("", "")
	require.NoError(t, err)
	defer env.Close()

	assert.Nil(t, env.Repo)
	assert.Equal(t, domain.DemoBoard(), env.Store.Snapshot())
	assert.NoError(t, env.Save(env.Store.Snapshot()), "saving without a board file is a no-op")
}

func TestOpen_NoDemo(t *testing.T) {
	isolate(t)
	t.Setenv("CARDSORT_SEED_DEMO", "false")

	env, err := Open("", "")
	require.NoError(t, err)
	defer env.Close()

	b := env.Store.Snapshot()
	assert.Empty(t, b.Unfiled)
	assert.Empty(t, b.Categories)
}

func TestOpen_BoardFileRoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "study.json")

	env, err := Open("", path)
	require.NoError(t, err)
	require.NotNil(t, env.Repo)

	_, ok := env.Store.AddItem("Blog")
	require.True(t, ok)
	require.NoError(t, env.Save(env.Store.Snapshot()))
	env.Close()

	reopened, err := Open("", path)
	require.NoError(t, err)
	defer reopened.Close()

	b := reopened.Store.Snapshot()
	require.Len(t, b.Unfiled, 5)
	assert.Equal(t, "Blog", b.Unfiled[4].Content)
}

func TestOpen_RejectsBrokenBoard(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.json")
	doc := `{"uncategorisedItems":[{"id":"a","content":"A"}],` +
		`"categories":[{"id":"c","name":"C","items":[{"id":"a","content":"A"}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := Open("", path)
	assert.Error(t, err)
}

func TestOpen_MissingConfigFile(t *testing.T) {
	dir := isolate(t)

	_, err := Open(filepath.Join(dir, "nope.yaml"), "")
	assert.Error(t, err)
}
