package storage

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop(), "discordOffenses", "discordUsers")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAssignsIDAndRoundTrips(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create("discordOffenses", Document{
		"offenderId": "U1",
		"punishment": "mute 1h",
		"rule":       2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID())

	got, err := store.Get("discordOffenses", created.ID())
	require.NoError(t, err)
	assert.Equal(t, "U1", got["offenderId"])
	assert.Equal(t, "mute 1h", got["punishment"])
}

func TestCreateKeepsSuppliedID(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create("discordOffenses", Document{"_id": "abc", "offenderId": "U1"})
	require.NoError(t, err)
	assert.Equal(t, "abc", created.ID())
}

func TestGetNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("discordOffenses", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAppliesSparseMaskOnly(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create("discordOffenses", Document{
		"offenderId":    "U1",
		"punishment":    "warn",
		"rule":          2,
		"notes":         "first offense",
		"screenshotUrl": "https://example.com/a.png",
	})
	require.NoError(t, err)

	updated, err := store.Update("discordOffenses", created.ID(), Document{"punishment": "X"})
	require.NoError(t, err)

	assert.Equal(t, "X", updated["punishment"])
	assert.Equal(t, "U1", updated["offenderId"])
	assert.Equal(t, "first offense", updated["notes"])
	assert.Equal(t, "https://example.com/a.png", updated["screenshotUrl"])
	assert.EqualValues(t, 2, docNumber(updated["rule"]))
}

func TestUpdateNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Update("discordOffenses", "nope", Document{"punishment": "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create("discordOffenses", Document{"offenderId": "U1"})
	require.NoError(t, err)

	require.NoError(t, store.Delete("discordOffenses", created.ID()))
	_, err = store.Get("discordOffenses", created.ID())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete("discordOffenses", created.ID()), ErrNotFound)
}

func TestUpsertMergesFields(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Upsert("discordUsers", "U1", Document{
		"userTag":              "someone#1234",
		"userCreatedTimestamp": 1600000000000,
	})
	require.NoError(t, err)

	// A later partial write must not remove fields it does not carry.
	merged, err := store.Upsert("discordUsers", "U1", Document{"userTag": "someone"})
	require.NoError(t, err)

	assert.Equal(t, "someone", merged["userTag"])
	assert.EqualValues(t, 1600000000000, docNumber(merged["userCreatedTimestamp"]))

	got, err := store.Get("discordUsers", "U1")
	require.NoError(t, err)
	assert.EqualValues(t, 1600000000000, docNumber(got["userCreatedTimestamp"]))
}

func TestListFilterSortLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 30; i++ {
		offender := "A"
		if i%3 == 0 {
			offender = "B"
		}
		_, err := store.Create("discordOffenses", Document{
			"offenderId": offender,
			"timestamp":  1000 + i,
			"rule":       1 + i%2,
		})
		require.NoError(t, err)
	}

	docs, err := store.List("discordOffenses", nil, Sort{Field: "timestamp", Descending: true}, 25)
	require.NoError(t, err)
	require.Len(t, docs, 25)
	for i := 1; i < len(docs); i++ {
		assert.GreaterOrEqual(t, docNumber(docs[i-1]["timestamp"]), docNumber(docs[i]["timestamp"]))
	}

	docs, err = store.List("discordOffenses", map[string]any{"offenderId": "B"}, Sort{}, 25)
	require.NoError(t, err)
	require.Len(t, docs, 10)
	for _, doc := range docs {
		assert.Equal(t, "B", doc["offenderId"])
	}

	docs, err = store.List("discordOffenses", map[string]any{"offenderId": "A", "rule": 1}, Sort{}, 25)
	require.NoError(t, err)
	for _, doc := range docs {
		assert.Equal(t, "A", doc["offenderId"])
		assert.EqualValues(t, 1, docNumber(doc["rule"]))
	}
}

func TestDistinctDeduplicates(t *testing.T) {
	store := newTestStore(t)

	for _, offender := range []string{"A", "B", "A"} {
		_, err := store.Create("discordOffenses", Document{"offenderId": offender})
		require.NoError(t, err)
	}

	values, err := store.Distinct("discordOffenses", "offenderId")
	require.NoError(t, err)
	assert.ElementsMatch(t, []any{"A", "B"}, values)
}

func TestInvalidIdentifiersRejected(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("bad name; drop", "id")
	assert.Error(t, err)

	_, err = store.List("discordOffenses", map[string]any{"bad field'": 1}, Sort{}, 5)
	assert.Error(t, err)
}

func docNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	panic(fmt.Sprintf("not a number: %T", v))
}
