package cart

import (
	"context"
)

// Repository 购物车仓储接口
// FindByUsername在用户尚无购物车时返回空购物车(而非错误),
// 与"每个用户天然拥有一个购物车"的业务语义一致
type Repository interface {
	// FindByUsername 获取用户购物车,不存在时返回新的空购物车
	FindByUsername(ctx context.Context, username string) (*Cart, error)

	// Save 保存购物车
	Save(ctx context.Context, cart *Cart) error

	// Count 返回有购物车数据的用户数(用于健康检查)
	Count(ctx context.Context) (int, error)
}
