package wishlist

import (
	"context"
)

// Repository 心愿单仓储接口
// 与购物车一致:用户尚无心愿单时FindByUsername返回空心愿单
type Repository interface {
	// FindByUsername 获取用户心愿单,不存在时返回新的空心愿单
	FindByUsername(ctx context.Context, username string) (*Wishlist, error)

	// Save 保存心愿单
	Save(ctx context.Context, wishlist *Wishlist) error

	// Count 返回有心愿单数据的用户数(用于健康检查)
	Count(ctx context.Context) (int, error)
}
