package book

import (
	"context"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/pkg/metrics"
)

// PublishBookUseCase 图书上架用例(管理员)
type PublishBookUseCase struct {
	bookService book.Service
}

// NewPublishBookUseCase 创建上架用例
func NewPublishBookUseCase(bookService book.Service) *PublishBookUseCase {
	return &PublishBookUseCase{bookService: bookService}
}

// Execute 执行上架
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*BookInfo, error) {
	b, err := uc.bookService.AddBook(ctx, req.ISBN, req.Title, req.Author, req.Genre, req.Publisher, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	if metrics.BooksInCatalog != nil {
		metrics.BooksInCatalog.Inc()
	}

	info := toBookInfo(b)
	return &info, nil
}

// PublishBookRequest 上架请求
type PublishBookRequest struct {
	ISBN      string
	Title     string
	Author    string
	Genre     string
	Publisher string
	Price     int64 // 单位:分
	Stock     int
}
