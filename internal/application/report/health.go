package report

import (
	"context"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/cart"
	"github.com/xiebiao/bookmarket/internal/domain/order"
	"github.com/xiebiao/bookmarket/internal/domain/user"
	"github.com/xiebiao/bookmarket/internal/domain/wishlist"
)

// HealthUseCase 系统状态用例(/healthz数据源)
type HealthUseCase struct {
	userRepo     user.Repository
	bookRepo     book.Repository
	orderRepo    order.Repository
	cartRepo     cart.Repository
	wishlistRepo wishlist.Repository
}

// NewHealthUseCase 创建系统状态用例
func NewHealthUseCase(
	userRepo user.Repository,
	bookRepo book.Repository,
	orderRepo order.Repository,
	cartRepo cart.Repository,
	wishlistRepo wishlist.Repository,
) *HealthUseCase {
	return &HealthUseCase{
		userRepo:     userRepo,
		bookRepo:     bookRepo,
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		wishlistRepo: wishlistRepo,
	}
}

// SystemStatus 系统状态快照
type SystemStatus struct {
	Status       string `json:"status"`
	Users        int    `json:"users"`
	Books        int    `json:"books"`
	ActiveOrders int    `json:"active_orders"`
	Carts        int    `json:"carts"`
	Wishlists    int    `json:"wishlists"`
}

// Execute 汇总各聚合的记录数
func (uc *HealthUseCase) Execute(ctx context.Context) (*SystemStatus, error) {
	users, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	books, err := uc.bookRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeOrders, err := uc.orderRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	carts, err := uc.cartRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	wishlists, err := uc.wishlistRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &SystemStatus{
		Status:       "ok",
		Users:        users,
		Books:        books,
		ActiveOrders: activeOrders,
		Carts:        carts,
		Wishlists:    wishlists,
	}, nil
}
