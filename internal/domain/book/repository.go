package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体存储实现
// 3. List按登记顺序返回,排序规则由调用方决定
type Repository interface {
	// Create 登记图书,ISBN重复时返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book) error

	// FindByISBN 根据ISBN查找图书,不存在时返回ErrBookNotFound
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 保存图书信息,不存在时返回ErrBookNotFound
	Update(ctx context.Context, book *Book) error

	// Delete 下架图书并返回被移除的记录,不存在时返回ErrBookNotFound
	Delete(ctx context.Context, isbn string) (*Book, error)

	// List 返回全部图书(按登记顺序)
	List(ctx context.Context) ([]*Book, error)

	// Count 返回在架图书数(用于健康检查)
	Count(ctx context.Context) (int, error)
}
