package order

import (
	"context"
	"errors"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/order"
)

// ListOrdersUseCase 订单列表用例("我的订单")
type ListOrdersUseCase struct {
	bookRepo  book.Repository
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(bookRepo book.Repository, orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		bookRepo:  bookRepo,
		orderRepo: orderRepo,
	}
}

// OrderInfo 订单信息
// 书名与金额按当前目录实时解析;图书已下架时书名标注为"(已下架)"、金额为0
type OrderInfo struct {
	OrderID   uint64 `json:"order_id"`
	BookISBN  string `json:"book_isbn"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// Execute 返回用户的订单列表(按下单顺序)
func (uc *ListOrdersUseCase) Execute(ctx context.Context, username string) ([]OrderInfo, error) {
	orders, err := uc.orderRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	infos := make([]OrderInfo, len(orders))
	for i, o := range orders {
		title := "(已下架)"
		var total int64
		b, err := uc.bookRepo.FindByISBN(ctx, o.BookISBN)
		if err == nil {
			title = b.Title
			total = b.Price * int64(o.Quantity)
		} else if !errors.Is(err, book.ErrBookNotFound) {
			return nil, err
		}

		infos[i] = OrderInfo{
			OrderID:   o.ID,
			BookISBN:  o.BookISBN,
			Title:     title,
			Quantity:  o.Quantity,
			Total:     total,
			TotalYuan: formatPrice(total),
			Status:    o.Status.String(),
			CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return infos, nil
}
