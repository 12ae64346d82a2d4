package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	b := NewBook("978-7-111", "Go程序设计", "作者", "技术", "机械工业", 5900, 10)

	// 无评论时平均分为0.0
	assert.Equal(t, 0.0, b.AverageRating())

	require.NoError(t, b.AddReview("u1", 5, "很好"))
	require.NoError(t, b.AddReview("u2", 3, "一般"))
	require.NoError(t, b.AddReview("u3", 4, "不错"))

	// [5,3,4] → 4.0
	assert.Equal(t, 4.0, b.AverageRating())
}

func TestAddReview_InvalidRating(t *testing.T) {
	b := NewBook("978-7-111", "Go程序设计", "作者", "技术", "机械工业", 5900, 10)

	assert.ErrorIs(t, b.AddReview("u1", 0, ""), ErrInvalidRating)
	assert.ErrorIs(t, b.AddReview("u1", 6, ""), ErrInvalidRating)
	assert.Empty(t, b.Reviews)
}

func TestDecrStock(t *testing.T) {
	b := NewBook("978-7-111", "Go程序设计", "作者", "技术", "机械工业", 5900, 5)

	require.NoError(t, b.DecrStock(3))
	assert.Equal(t, 2, b.Stock)

	// 扣减超过库存
	assert.ErrorIs(t, b.DecrStock(3), ErrInsufficientStock)
	assert.Equal(t, 2, b.Stock, "失败的扣减不应改变库存")

	// 非正数量
	assert.ErrorIs(t, b.DecrStock(0), ErrInvalidQuantity)
	assert.ErrorIs(t, b.IncrStock(-1), ErrInvalidQuantity)
}

func TestUpdate_Validation(t *testing.T) {
	b := NewBook("978-7-111", "Go程序设计", "作者", "技术", "机械工业", 5900, 5)

	assert.ErrorIs(t, b.Update("新书名", "作者", "技术", "机械工业", -1, 5), ErrInvalidPrice)
	assert.ErrorIs(t, b.Update("新书名", "作者", "技术", "机械工业", 5900, -1), ErrInvalidStock)
	assert.Equal(t, "Go程序设计", b.Title, "失败的更新不应改变字段")

	require.NoError(t, b.Update("新书名", "新作者", "小说", "人民文学", 3900, 8))
	assert.Equal(t, "新书名", b.Title)
	assert.Equal(t, int64(3900), b.Price)
	assert.Equal(t, 8, b.Stock)
}

func TestMatches(t *testing.T) {
	b := NewBook("978-7-111", "The Go Programming Language", "Donovan", "Tech", "AW", 5900, 5)

	// 大小写不敏感,覆盖ISBN/书名/类别/出版社
	assert.True(t, b.Matches("go program"))
	assert.True(t, b.Matches("978-7"))
	assert.True(t, b.Matches("TECH"))
	assert.True(t, b.Matches("aw"))
	assert.False(t, b.Matches("python"))
}
