package wishlist

import (
	"context"
	"errors"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/wishlist"
)

// UseCase 心愿单用例
// 加入时图书必须在架且未重复;列表按加入顺序解析,已下架的条目跳过
type UseCase struct {
	wishlistRepo wishlist.Repository
	bookRepo     book.Repository
}

// NewUseCase 创建心愿单用例
func NewUseCase(wishlistRepo wishlist.Repository, bookRepo book.Repository) *UseCase {
	return &UseCase{
		wishlistRepo: wishlistRepo,
		bookRepo:     bookRepo,
	}
}

// EntryInfo 心愿单条目(已解析图书信息)
type EntryInfo struct {
	BookISBN      string  `json:"book_isbn"`
	Title         string  `json:"title"`
	Price         int64   `json:"price"`
	Stock         int     `json:"stock"`
	AverageRating float64 `json:"average_rating"`
}

// Add 加入图书
// 失败场景(均报告给调用方,不是静默忽略):图书不存在、重复加入
func (uc *UseCase) Add(ctx context.Context, username, isbn string) error {
	if _, err := uc.bookRepo.FindByISBN(ctx, isbn); err != nil {
		return err
	}

	w, err := uc.wishlistRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := w.Add(isbn); err != nil {
		return err
	}
	return uc.wishlistRepo.Save(ctx, w)
}

// Remove 移除图书
func (uc *UseCase) Remove(ctx context.Context, username, isbn string) error {
	w, err := uc.wishlistRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := w.Remove(isbn); err != nil {
		return err
	}
	return uc.wishlistRepo.Save(ctx, w)
}

// List 返回心愿单(按加入顺序,已下架的图书跳过)
func (uc *UseCase) List(ctx context.Context, username string) ([]EntryInfo, error) {
	w, err := uc.wishlistRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	entries := make([]EntryInfo, 0, len(w.ISBNs))
	for _, isbn := range w.ISBNs {
		b, err := uc.bookRepo.FindByISBN(ctx, isbn)
		if err != nil {
			if errors.Is(err, book.ErrBookNotFound) {
				continue
			}
			return nil, err
		}
		entries = append(entries, EntryInfo{
			BookISBN:      b.ISBN,
			Title:         b.Title,
			Price:         b.Price,
			Stock:         b.Stock,
			AverageRating: b.AverageRating(),
		})
	}
	return entries, nil
}
