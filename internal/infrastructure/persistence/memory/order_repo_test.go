package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/order"
)

func TestOrderRepository_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	for want := uint64(1); want <= 3; want++ {
		o := order.NewOrder("alice", "isbn-1", 1)
		require.NoError(t, repo.Create(ctx, o))
		assert.Equal(t, want, o.ID, "订单号应从1开始严格递增")
	}

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 3, "账本按下单顺序保存")
}

func TestOrderRepository_FindAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	o := order.NewOrder("alice", "isbn-1", 2)
	require.NoError(t, repo.Create(ctx, o))

	_, err := repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)

	found, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)

	// 返回的是副本,修改不影响仓储内的记录
	require.NoError(t, found.Cancel())
	stored, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusActive, stored.Status, "未经Update的修改不应落库")

	require.NoError(t, repo.Update(ctx, found))
	stored, err = repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, stored.Status)
}

func TestOrderRepository_ListByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	require.NoError(t, repo.Create(ctx, order.NewOrder("alice", "isbn-1", 1)))
	require.NoError(t, repo.Create(ctx, order.NewOrder("bob", "isbn-1", 1)))
	require.NoError(t, repo.Create(ctx, order.NewOrder("alice", "isbn-2", 1)))

	orders, err := repo.ListByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, uint64(1), orders[0].ID)
	assert.Equal(t, uint64(3), orders[1].ID)
}

func TestOrderRepository_CountActive(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	o1 := order.NewOrder("alice", "isbn-1", 1)
	o2 := order.NewOrder("alice", "isbn-1", 1)
	require.NoError(t, repo.Create(ctx, o1))
	require.NoError(t, repo.Create(ctx, o2))

	require.NoError(t, o2.Cancel())
	require.NoError(t, repo.Update(ctx, o2))

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBookRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository()

	t.Run("重复ISBN被拒绝", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx,
			book.NewBook("isbn-1", "书A", "作者", "技术", "出版社", 1000, 3)))
		err := repo.Create(ctx,
			book.NewBook("isbn-1", "书B", "作者", "技术", "出版社", 2000, 1))
		assert.ErrorIs(t, err, book.ErrISBNDuplicate)
	})

	t.Run("读取返回深拷贝", func(t *testing.T) {
		b, err := repo.FindByISBN(ctx, "isbn-1")
		require.NoError(t, err)

		// 对副本的修改(含评论切片)不影响仓储内的记录
		require.NoError(t, b.AddReview("alice", 5, "很好"))
		b.Stock = 0

		stored, err := repo.FindByISBN(ctx, "isbn-1")
		require.NoError(t, err)
		assert.Empty(t, stored.Reviews)
		assert.Equal(t, 3, stored.Stock)
	})

	t.Run("下架返回被移除的记录", func(t *testing.T) {
		removed, err := repo.Delete(ctx, "isbn-1")
		require.NoError(t, err)
		assert.Equal(t, "书A", removed.Title)

		_, err = repo.FindByISBN(ctx, "isbn-1")
		assert.ErrorIs(t, err, book.ErrBookNotFound)

		_, err = repo.Delete(ctx, "isbn-1")
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}
