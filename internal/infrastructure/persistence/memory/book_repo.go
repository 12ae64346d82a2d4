package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookmarket/internal/domain/book"
)

// bookRepository 图书仓储实现(内存版)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. map提供ISBN唯一性约束,order切片维护登记顺序
// 3. 存取均做深拷贝,模拟数据库的读写隔离(防止调用方绕过领域行为直接改状态)
type bookRepository struct {
	mu    sync.RWMutex
	books map[string]*book.Book // ISBN → 图书
	order []string              // 登记顺序
}

// NewBookRepository 创建图书仓储
func NewBookRepository() book.Repository {
	return &bookRepository{
		books: make(map[string]*book.Book),
		order: make([]string, 0),
	}
}

// Create 登记图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.books[b.ISBN]; exists {
		return book.ErrISBNDuplicate
	}

	r.books[b.ISBN] = cloneBook(b)
	r.order = append(r.order, b.ISBN)
	return nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.books[isbn]
	if !exists {
		return nil, book.ErrBookNotFound
	}
	return cloneBook(b), nil
}

// Update 保存图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.books[b.ISBN]; !exists {
		return book.ErrBookNotFound
	}
	r.books[b.ISBN] = cloneBook(b)
	return nil
}

// Delete 下架图书并返回被移除的记录
func (r *bookRepository) Delete(ctx context.Context, isbn string) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, exists := r.books[isbn]
	if !exists {
		return nil, book.ErrBookNotFound
	}

	delete(r.books, isbn)
	for i, key := range r.order {
		if key == isbn {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return cloneBook(b), nil
}

// List 返回全部图书(按登记顺序)
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]*book.Book, 0, len(r.order))
	for _, isbn := range r.order {
		books = append(books, cloneBook(r.books[isbn]))
	}
	return books, nil
}

// Count 返回在架图书数
func (r *bookRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books), nil
}

// cloneBook 深拷贝图书实体(评论列表独立复制)
func cloneBook(b *book.Book) *book.Book {
	clone := *b
	clone.Reviews = make([]book.Review, len(b.Reviews))
	copy(clone.Reviews, b.Reviews)
	return &clone
}
