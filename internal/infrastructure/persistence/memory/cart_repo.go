package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookmarket/internal/domain/cart"
)

// cartRepository 购物车仓储实现(内存版)
// 用户尚无购物车时FindByUsername返回空购物车,不落库
// (只有Save过的购物车才占存储,空车反复查询不产生垃圾记录)
type cartRepository struct {
	mu    sync.RWMutex
	carts map[string]*cart.Cart // 用户名 → 购物车
}

// NewCartRepository 创建购物车仓储
func NewCartRepository() cart.Repository {
	return &cartRepository{
		carts: make(map[string]*cart.Cart),
	}
}

// FindByUsername 获取用户购物车,不存在时返回新的空购物车
func (r *cartRepository) FindByUsername(ctx context.Context, username string) (*cart.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.carts[username]
	if !exists {
		return cart.NewCart(username), nil
	}
	return cloneCart(c), nil
}

// Save 保存购物车
func (r *cartRepository) Save(ctx context.Context, c *cart.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[c.Username] = cloneCart(c)
	return nil
}

// Count 返回有购物车数据的用户数
func (r *cartRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts), nil
}

func cloneCart(c *cart.Cart) *cart.Cart {
	clone := &cart.Cart{
		Username: c.Username,
		Items:    make([]cart.Item, len(c.Items)),
	}
	copy(clone.Items, c.Items)
	return clone
}
