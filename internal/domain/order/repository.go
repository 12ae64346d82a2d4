package order

import (
	"context"
)

// Repository 订单仓储接口(依赖倒置原则)
// 设计说明:
// 1. 订单是追加式账本:只创建、只改状态、永不删除
// 2. Create负责分配顺序ID(从1开始,严格递增,即使订单后来被取消也不复用)
type Repository interface {
	// Create 追加订单并分配下一个顺序ID
	Create(ctx context.Context, order *Order) error

	// FindByID 根据订单号查找订单,不存在时返回ErrOrderNotFound
	FindByID(ctx context.Context, id uint64) (*Order, error)

	// Update 保存订单(主要用于状态更新)
	Update(ctx context.Context, order *Order) error

	// ListByUsername 查询用户的订单列表(按下单顺序)
	ListByUsername(ctx context.Context, username string) ([]*Order, error)

	// List 返回全部订单(按下单顺序),报表与导出的数据源
	List(ctx context.Context) ([]*Order, error)

	// CountActive 返回生效中订单数(用于健康检查)
	CountActive(ctx context.Context) (int, error)
}
