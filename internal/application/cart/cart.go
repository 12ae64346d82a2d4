package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/cart"
)

// UseCase 购物车用例
// 增删改查合并在一个用例中(每个操作都是"取车→改车→存车"三步)
// 加车时校验图书存在;已在车中的图书被下架后,条目保留、展示时标注
type UseCase struct {
	cartRepo cart.Repository
	bookRepo book.Repository
}

// NewUseCase 创建购物车用例
func NewUseCase(cartRepo cart.Repository, bookRepo book.Repository) *UseCase {
	return &UseCase{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
	}
}

// ItemInfo 购物车条目(已解析图书信息)
type ItemInfo struct {
	BookISBN  string `json:"book_isbn"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
	Available bool   `json:"available"` // 图书是否仍在架
}

// CartView 购物车视图
type CartView struct {
	Items     []ItemInfo `json:"items"`
	Total     int64      `json:"total"` // 仅累计在架图书
	TotalYuan string     `json:"total_yuan"`
}

// AddItem 加入图书(已存在时数量合并)
func (uc *UseCase) AddItem(ctx context.Context, username, isbn string, quantity int) error {
	// 校验图书存在(下架的书不能再加车)
	if _, err := uc.bookRepo.FindByISBN(ctx, isbn); err != nil {
		return err
	}

	c, err := uc.cartRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := c.AddItem(isbn, quantity); err != nil {
		return err
	}
	return uc.cartRepo.Save(ctx, c)
}

// UpdateItem 更新条目数量(覆盖式)
func (uc *UseCase) UpdateItem(ctx context.Context, username, isbn string, quantity int) error {
	c, err := uc.cartRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := c.UpdateItem(isbn, quantity); err != nil {
		return err
	}
	return uc.cartRepo.Save(ctx, c)
}

// RemoveItem 移除条目
func (uc *UseCase) RemoveItem(ctx context.Context, username, isbn string) error {
	c, err := uc.cartRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := c.RemoveItem(isbn); err != nil {
		return err
	}
	return uc.cartRepo.Save(ctx, c)
}

// Clear 清空购物车
func (uc *UseCase) Clear(ctx context.Context, username string) error {
	c, err := uc.cartRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	c.Clear()
	return uc.cartRepo.Save(ctx, c)
}

// View 查看购物车(按当前图书信息实时计价)
func (uc *UseCase) View(ctx context.Context, username string) (*CartView, error) {
	c, err := uc.cartRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	items := make([]ItemInfo, 0, len(c.Items))
	var total int64
	for _, item := range c.Items {
		info := ItemInfo{
			BookISBN: item.BookISBN,
			Title:    "(已下架)",
			Quantity: item.Quantity,
		}
		b, err := uc.bookRepo.FindByISBN(ctx, item.BookISBN)
		if err == nil {
			info.Title = b.Title
			info.Price = b.Price
			info.Subtotal = b.Price * int64(item.Quantity)
			info.Available = true
			total += info.Subtotal
		} else if !errors.Is(err, book.ErrBookNotFound) {
			return nil, err
		}
		items = append(items, info)
	}

	return &CartView{
		Items:     items,
		Total:     total,
		TotalYuan: fmt.Sprintf("%.2f", float64(total)/100.0),
	}, nil
}
