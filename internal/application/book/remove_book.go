package book

import (
	"context"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/pkg/metrics"
)

// RemoveBookUseCase 图书下架用例(管理员)
// 返回被移除的记录(便于管理台展示"已下架XX")
type RemoveBookUseCase struct {
	bookService book.Service
}

// NewRemoveBookUseCase 创建下架用例
func NewRemoveBookUseCase(bookService book.Service) *RemoveBookUseCase {
	return &RemoveBookUseCase{bookService: bookService}
}

// Execute 执行下架
func (uc *RemoveBookUseCase) Execute(ctx context.Context, isbn string) (*BookInfo, error) {
	b, err := uc.bookService.RemoveBook(ctx, isbn)
	if err != nil {
		return nil, err
	}

	if metrics.BooksInCatalog != nil {
		metrics.BooksInCatalog.Dec()
	}

	info := toBookInfo(b)
	return &info, nil
}
