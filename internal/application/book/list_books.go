package book

import (
	"context"
	"fmt"

	"github.com/xiebiao/bookmarket/internal/domain/book"
)

// ListBooksUseCase 图书查询用例(列表/详情/搜索)
// 读操作合并在一个用例中,避免三个只有一行差异的结构体
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// List 返回全部图书(按书名升序)
func (uc *ListBooksUseCase) List(ctx context.Context) ([]BookInfo, error) {
	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	return toBookInfos(books), nil
}

// Get 根据ISBN查询图书详情(含评论)
func (uc *ListBooksUseCase) Get(ctx context.Context, isbn string) (*BookDetail, error) {
	b, err := uc.bookService.GetBook(ctx, isbn)
	if err != nil {
		return nil, err
	}

	reviews := make([]ReviewInfo, len(b.Reviews))
	for i, r := range b.Reviews {
		reviews[i] = ReviewInfo{
			Username:  r.Username,
			Rating:    r.Rating,
			Text:      r.Text,
			CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return &BookDetail{
		BookInfo: toBookInfo(b),
		Reviews:  reviews,
	}, nil
}

// Search 搜索图书(无结果返回空列表,不是错误)
func (uc *ListBooksUseCase) Search(ctx context.Context, query string) ([]BookInfo, error) {
	books, err := uc.bookService.SearchBooks(ctx, query)
	if err != nil {
		return nil, err
	}
	return toBookInfos(books), nil
}

// =========================================
// 应用层DTO
// =========================================

// BookInfo 图书信息
type BookInfo struct {
	ISBN          string  `json:"isbn"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Genre         string  `json:"genre"`
	Publisher     string  `json:"publisher"`
	Price         int64   `json:"price"`      // 单位:分
	PriceYuan     string  `json:"price_yuan"` // 展示用,两位小数
	Stock         int     `json:"stock"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

// BookDetail 图书详情(含评论)
type BookDetail struct {
	BookInfo
	Reviews []ReviewInfo `json:"reviews"`
}

// ReviewInfo 评论信息
type ReviewInfo struct {
	Username  string `json:"username"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

func toBookInfo(b *book.Book) BookInfo {
	return BookInfo{
		ISBN:          b.ISBN,
		Title:         b.Title,
		Author:        b.Author,
		Genre:         b.Genre,
		Publisher:     b.Publisher,
		Price:         b.Price,
		PriceYuan:     formatPrice(b.Price),
		Stock:         b.Stock,
		AverageRating: b.AverageRating(),
		ReviewCount:   len(b.Reviews),
	}
}

func toBookInfos(books []*book.Book) []BookInfo {
	infos := make([]BookInfo, len(books))
	for i, b := range books {
		infos[i] = toBookInfo(b)
	}
	return infos
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
