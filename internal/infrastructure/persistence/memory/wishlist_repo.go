package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookmarket/internal/domain/wishlist"
)

// wishlistRepository 心愿单仓储实现(内存版)
type wishlistRepository struct {
	mu        sync.RWMutex
	wishlists map[string]*wishlist.Wishlist // 用户名 → 心愿单
}

// NewWishlistRepository 创建心愿单仓储
func NewWishlistRepository() wishlist.Repository {
	return &wishlistRepository{
		wishlists: make(map[string]*wishlist.Wishlist),
	}
}

// FindByUsername 获取用户心愿单,不存在时返回新的空心愿单
func (r *wishlistRepository) FindByUsername(ctx context.Context, username string) (*wishlist.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, exists := r.wishlists[username]
	if !exists {
		return wishlist.NewWishlist(username), nil
	}
	return cloneWishlist(w), nil
}

// Save 保存心愿单
func (r *wishlistRepository) Save(ctx context.Context, w *wishlist.Wishlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wishlists[w.Username] = cloneWishlist(w)
	return nil
}

// Count 返回有心愿单数据的用户数
func (r *wishlistRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.wishlists), nil
}

func cloneWishlist(w *wishlist.Wishlist) *wishlist.Wishlist {
	clone := &wishlist.Wishlist{
		Username: w.Username,
		ISBNs:    make([]string, len(w.ISBNs)),
	}
	copy(clone.ISBNs, w.ISBNs)
	return clone
}
