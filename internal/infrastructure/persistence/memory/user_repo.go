package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookmarket/internal/domain/user"
)

// userRepository 用户仓储实现(内存版)
// map保证用户名唯一,order切片维护注册顺序
type userRepository struct {
	mu    sync.RWMutex
	users map[string]*user.User // 用户名 → 用户
	order []string              // 注册顺序
}

// NewUserRepository 创建用户仓储
func NewUserRepository() user.Repository {
	return &userRepository{
		users: make(map[string]*user.User),
		order: make([]string, 0),
	}
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.Username]; exists {
		return user.ErrUsernameDuplicate
	}

	r.users[u.Username] = cloneUser(u)
	r.order = append(r.order, u.Username)
	return nil
}

// FindByUsername 根据用户名查找用户
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.users[username]
	if !exists {
		return nil, user.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// Update 保存用户信息
func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.Username]; !exists {
		return user.ErrUserNotFound
	}
	r.users[u.Username] = cloneUser(u)
	return nil
}

// List 返回全部用户(按注册顺序)
func (r *userRepository) List(ctx context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*user.User, 0, len(r.order))
	for _, username := range r.order {
		users = append(users, cloneUser(r.users[username]))
	}
	return users, nil
}

// Count 返回注册用户数
func (r *userRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func cloneUser(u *user.User) *user.User {
	clone := *u
	return &clone
}
