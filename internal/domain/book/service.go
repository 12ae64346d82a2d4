package book

import (
	"context"
	"sort"
	"strings"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装跨实体的业务逻辑和业务规则校验
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// AddBook 登记图书(上架)
	// 业务规则:
	// - ISBN不能为空
	// - 价格必须>=0,库存必须>=0
	// - ISBN不能重复
	AddBook(ctx context.Context, isbn, title, author, genre, publisher string, price int64, stock int) (*Book, error)

	// UpdateBook 整体更新图书信息(覆盖式更新)
	UpdateBook(ctx context.Context, isbn, title, author, genre, publisher string, price int64, stock int) (*Book, error)

	// RemoveBook 下架图书,返回被移除的记录
	RemoveBook(ctx context.Context, isbn string) (*Book, error)

	// GetBook 根据ISBN获取图书
	GetBook(ctx context.Context, isbn string) (*Book, error)

	// ListBooks 返回全部图书,按书名升序排序
	ListBooks(ctx context.Context) ([]*Book, error)

	// SearchBooks 搜索图书
	// 对ISBN、书名、类别、出版社做大小写不敏感的子串匹配
	// 无结果返回空列表(不是错误)
	SearchBooks(ctx context.Context, query string) ([]*Book, error)

	// AddReview 为图书添加评论
	// 业务规则:评分必须在[1,5]之间
	AddReview(ctx context.Context, isbn, username string, rating int, text string) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddBook 登记图书
func (s *service) AddBook(ctx context.Context, isbn, title, author, genre, publisher string, price int64, stock int) (*Book, error) {
	// 1. 参数校验
	if strings.TrimSpace(isbn) == "" {
		return nil, ErrInvalidISBN
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	// 2. 创建图书实体并登记(重复ISBN由Repository返回ErrISBNDuplicate)
	b := NewBook(isbn, title, author, genre, publisher, price, stock)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// UpdateBook 整体更新图书信息
func (s *service) UpdateBook(ctx context.Context, isbn, title, author, genre, publisher string, price int64, stock int) (*Book, error) {
	b, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	if err := b.Update(title, author, genre, publisher, price, stock); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// RemoveBook 下架图书
func (s *service) RemoveBook(ctx context.Context, isbn string) (*Book, error) {
	return s.repo.Delete(ctx, isbn)
}

// GetBook 根据ISBN获取图书
func (s *service) GetBook(ctx context.Context, isbn string) (*Book, error) {
	return s.repo.FindByISBN(ctx, isbn)
}

// ListBooks 返回全部图书,按书名升序
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]*Book, len(books))
	copy(sorted, books)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Title < sorted[j].Title
	})
	return sorted, nil
}

// SearchBooks 搜索图书
func (s *service) SearchBooks(ctx context.Context, query string) ([]*Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*Book, 0)
	for _, b := range books {
		if b.Matches(query) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// AddReview 为图书添加评论
func (s *service) AddReview(ctx context.Context, isbn, username string, rating int, text string) error {
	b, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		return err
	}

	if err := b.AddReview(username, rating, text); err != nil {
		return err
	}

	return s.repo.Update(ctx, b)
}
