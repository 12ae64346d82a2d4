package book

import (
	"context"

	"github.com/xiebiao/bookmarket/internal/domain/book"
)

// AddReviewUseCase 添加评论用例
// 评论者用户名从JWT提取,不信任请求体
type AddReviewUseCase struct {
	bookService book.Service
}

// NewAddReviewUseCase 创建添加评论用例
func NewAddReviewUseCase(bookService book.Service) *AddReviewUseCase {
	return &AddReviewUseCase{bookService: bookService}
}

// Execute 执行添加评论
func (uc *AddReviewUseCase) Execute(ctx context.Context, req AddReviewRequest) error {
	return uc.bookService.AddReview(ctx, req.ISBN, req.Username, req.Rating, req.Text)
}

// AddReviewRequest 添加评论请求
type AddReviewRequest struct {
	ISBN     string
	Username string // 从JWT提取
	Rating   int    // 1~5
	Text     string
}
