package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/wishlist"
	"github.com/xiebiao/bookmarket/internal/infrastructure/persistence/memory"
)

func newWishlistEnv(t *testing.T) (*UseCase, book.Repository) {
	t.Helper()
	bookRepo := memory.NewBookRepository()
	return NewUseCase(memory.NewWishlistRepository(), bookRepo), bookRepo
}

func TestWishlistAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("加入与重复加入", func(t *testing.T) {
		uc, bookRepo := newWishlistEnv(t)
		require.NoError(t, bookRepo.Create(ctx,
			book.NewBook("isbn-1", "书A", "作者", "技术", "出版社", 1000, 3)))

		require.NoError(t, uc.Add(ctx, "alice", "isbn-1"))
		assert.ErrorIs(t, uc.Add(ctx, "alice", "isbn-1"), wishlist.ErrDuplicateEntry)
	})

	t.Run("不存在的图书不能加入", func(t *testing.T) {
		uc, _ := newWishlistEnv(t)
		assert.ErrorIs(t, uc.Add(ctx, "alice", "missing"), book.ErrBookNotFound)
	})
}

func TestWishlistList(t *testing.T) {
	ctx := context.Background()
	uc, bookRepo := newWishlistEnv(t)

	b1 := book.NewBook("isbn-1", "书A", "作者", "技术", "出版社", 1000, 3)
	require.NoError(t, b1.AddReview("bob", 4, "不错"))
	require.NoError(t, bookRepo.Create(ctx, b1))
	require.NoError(t, bookRepo.Create(ctx,
		book.NewBook("isbn-2", "书B", "作者", "小说", "出版社", 2000, 0)))

	require.NoError(t, uc.Add(ctx, "alice", "isbn-1"))
	require.NoError(t, uc.Add(ctx, "alice", "isbn-2"))

	entries, err := uc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 2, "按加入顺序返回")
	assert.Equal(t, "isbn-1", entries[0].BookISBN)
	assert.Equal(t, 4.0, entries[0].AverageRating)
	assert.Equal(t, 0, entries[1].Stock, "无库存图书仍可留在心愿单")

	// 下架后条目跳过,移除仍可用
	_, err = bookRepo.Delete(ctx, "isbn-1")
	require.NoError(t, err)

	entries, err = uc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "isbn-2", entries[0].BookISBN)

	require.NoError(t, uc.Remove(ctx, "alice", "isbn-1"), "下架的图书仍可从心愿单移除")
	assert.ErrorIs(t, uc.Remove(ctx, "alice", "isbn-1"), wishlist.ErrEntryNotFound)
}
