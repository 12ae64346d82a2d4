package user

import (
	"context"
)

// Repository 用户仓储接口(依赖倒置原则)
// 由domain层定义接口,infrastructure层实现
type Repository interface {
	// Create 创建用户,用户名重复时返回ErrUsernameDuplicate
	Create(ctx context.Context, user *User) error

	// FindByUsername 根据用户名查找用户,不存在时返回ErrUserNotFound
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Update 保存用户信息,不存在时返回ErrUserNotFound
	Update(ctx context.Context, user *User) error

	// List 返回全部用户(按注册顺序),用于管理员查看与导出
	List(ctx context.Context) ([]*User, error)

	// Count 返回注册用户数(用于健康检查)
	Count(ctx context.Context) (int, error)
}
