package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_NoDuplicates(t *testing.T) {
	w := NewWishlist("u1")

	require.NoError(t, w.Add("isbn-1"))
	require.NoError(t, w.Add("isbn-2"))

	// 重复加入是报告给调用方的失败,不是静默忽略
	assert.ErrorIs(t, w.Add("isbn-1"), ErrDuplicateEntry)
	assert.Equal(t, []string{"isbn-1", "isbn-2"}, w.ISBNs, "维持加入顺序")
}

func TestRemove(t *testing.T) {
	w := NewWishlist("u1")
	require.NoError(t, w.Add("isbn-1"))

	require.NoError(t, w.Remove("isbn-1"))
	assert.False(t, w.Contains("isbn-1"))
	assert.ErrorIs(t, w.Remove("isbn-1"), ErrEntryNotFound)
}
