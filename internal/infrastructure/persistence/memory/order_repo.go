package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookmarket/internal/domain/order"
)

// orderRepository 订单仓储实现(内存版)
// 设计说明:
// 1. 订单账本是追加式的:切片按下单顺序保存,永不删除
// 2. nextID从1开始严格递增,只在Create成功时消耗
//    (下单前的校验失败发生在Create之前,不会产生ID空洞)
type orderRepository struct {
	mu     sync.RWMutex
	orders []*order.Order          // 账本(按下单顺序)
	index  map[uint64]*order.Order // 订单号 → 订单
	nextID uint64                  // 下一个待分配订单号
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository() order.Repository {
	return &orderRepository{
		orders: make([]*order.Order, 0),
		index:  make(map[uint64]*order.Order),
		nextID: 1,
	}
}

// Create 追加订单并分配下一个顺序ID
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++

	stored := cloneOrder(o)
	r.orders = append(r.orders, stored)
	r.index[stored.ID] = stored
	return nil
}

// FindByID 根据订单号查找订单
func (r *orderRepository) FindByID(ctx context.Context, id uint64) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, exists := r.index[id]
	if !exists {
		return nil, order.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

// Update 保存订单(主要用于状态更新)
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.index[o.ID]
	if !exists {
		return order.ErrOrderNotFound
	}
	*stored = *o
	return nil
}

// ListByUsername 查询用户的订单列表(按下单顺序)
func (r *orderRepository) ListByUsername(ctx context.Context, username string) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, o := range r.orders {
		if o.Username == username {
			orders = append(orders, cloneOrder(o))
		}
	}
	return orders, nil
}

// List 返回全部订单(按下单顺序)
func (r *orderRepository) List(ctx context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, cloneOrder(o))
	}
	return orders, nil
}

// CountActive 返回生效中订单数
func (r *orderRepository) CountActive(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, o := range r.orders {
		if o.IsActive() {
			count++
		}
	}
	return count, nil
}

func cloneOrder(o *order.Order) *order.Order {
	clone := *o
	return &clone
}
