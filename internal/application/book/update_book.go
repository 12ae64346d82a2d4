package book

import (
	"context"

	"github.com/xiebiao/bookmarket/internal/domain/book"
)

// UpdateBookUseCase 图书信息更新用例(管理员)
// 覆盖式更新:请求中的全部字段整体替换现有记录
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// Execute 执行更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookInfo, error) {
	b, err := uc.bookService.UpdateBook(ctx, req.ISBN, req.Title, req.Author, req.Genre, req.Publisher, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	info := toBookInfo(b)
	return &info, nil
}

// UpdateBookRequest 更新请求(全字段覆盖)
type UpdateBookRequest struct {
	ISBN      string
	Title     string
	Author    string
	Genre     string
	Publisher string
	Price     int64
	Stock     int
}
