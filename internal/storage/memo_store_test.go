package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoStore(t *testing.T) {
	memos := NewMemoStore(newTestDB(t))

	memo, err := memos.Get("abc")
	require.NoError(t, err)
	assert.Empty(t, memo)

	require.NoError(t, memos.Set("abc", "coffee with dave"))
	memo, err = memos.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, "coffee with dave", memo)

	// Overwrite
	require.NoError(t, memos.Set("abc", "lunch"))
	memo, err = memos.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, "lunch", memo)

	// Setting empty clears
	require.NoError(t, memos.Set("abc", ""))
	memo, err = memos.Get("abc")
	require.NoError(t, err)
	assert.Empty(t, memo)

	require.NoError(t, memos.Set("def", "x"))
	require.NoError(t, memos.Delete("def"))
	memo, err = memos.Get("def")
	require.NoError(t, err)
	assert.Empty(t, memo)
}
