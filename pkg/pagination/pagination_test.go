package pagination

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 7, NormalizeLimit(7))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}

func TestCursorRoundTrip(t *testing.T) {
	encoded := EncodeCursor(Cursor{AfterID: "prod-12"})
	decoded, err := ParseCursor(encoded)
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.Equal(t, "prod-12", decoded.AfterID)

	blank, err := ParseCursor("  ")
	require.NoError(t, err)
	assert.Nil(t, blank)

	_, err = ParseCursor("%%%")
	assert.Error(t, err)
	_, err = ParseCursor(EncodeCursor(Cursor{}))
	assert.Error(t, err)
}

func TestSliceWalksPages(t *testing.T) {
	items := make([]string, 5)
	for i := range items {
		items[i] = "prod-" + strconv.Itoa(i+1)
	}
	id := func(s string) string { return s }

	first, next, err := Slice(items, Params{Limit: 2}, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-1", "prod-2"}, first)
	require.NotEmpty(t, next)

	second, next, err := Slice(items, Params{Limit: 2, Cursor: next}, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-3", "prod-4"}, second)

	last, next, err := Slice(items, Params{Limit: 2, Cursor: next}, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-5"}, last)
	assert.Empty(t, next)
}

func TestSliceExactFitHasNoNextCursor(t *testing.T) {
	page, next, err := Slice([]string{"a", "b"}, Params{Limit: 2}, func(s string) string { return s })
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Empty(t, next)
}

func TestSliceUnknownCursor(t *testing.T) {
	_, _, err := Slice([]string{"a"}, Params{Cursor: EncodeCursor(Cursor{AfterID: "z"})}, func(s string) string { return s })
	assert.ErrorIs(t, err, ErrCursorNotFound)
}
