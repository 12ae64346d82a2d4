package book

import (
	"strings"
	"time"
)

// Review 图书评论（值对象）
// 设计说明：
// 1. 评论一经创建不可修改（没有Setter）
// 2. 评分范围[1,5]由聚合根AddReview统一校验
type Review struct {
	Username  string    // 评论者用户名
	Rating    int       // 评分(1~5)
	Text      string    // 评论内容
	CreatedAt time.Time // 评论时间
}

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,评论作为聚合内的值对象列表
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. ISBN作为业务唯一标识(仓储层保证唯一性)
type Book struct {
	ISBN      string   // ISBN号(业务主键)
	Title     string   // 书名
	Author    string   // 作者
	Genre     string   // 类别
	Publisher string   // 出版社
	Price     int64    // 价格(单位:分,1元=100分)
	Stock     int      // 库存数量
	Reviews   []Review // 评论列表(按创建顺序)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
// 参数校验(价格非负、库存非负)由领域服务完成
func NewBook(isbn, title, author, genre, publisher string, price int64, stock int) *Book {
	now := time.Now()
	return &Book{
		ISBN:      isbn,
		Title:     title,
		Author:    author,
		Genre:     genre,
		Publisher: publisher,
		Price:     price,
		Stock:     stock,
		Reviews:   make([]Review, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update 整体更新图书信息(领域行为)
// 业务规则:价格、库存不能为负数
func (b *Book) Update(title, author, genre, publisher string, price int64, stock int) error {
	if price < 0 {
		return ErrInvalidPrice
	}
	if stock < 0 {
		return ErrInvalidStock
	}
	b.Title = title
	b.Author = author
	b.Genre = genre
	b.Publisher = publisher
	b.Price = price
	b.Stock = stock
	b.UpdatedAt = time.Now()
	return nil
}

// DecrStock 扣减库存(用于下单)
// 业务规则:扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Stock < quantity {
		return ErrInsufficientStock
	}
	b.Stock -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// IncrStock 增加库存(用于订单取消、退货、补货)
func (b *Book) IncrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	b.Stock += quantity
	b.UpdatedAt = time.Now()
	return nil
}

// AddReview 添加评论(领域行为)
// 业务规则:评分必须在[1,5]之间
func (b *Book) AddReview(username string, rating int, text string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	b.Reviews = append(b.Reviews, Review{
		Username:  username,
		Rating:    rating,
		Text:      text,
		CreatedAt: time.Now(),
	})
	b.UpdatedAt = time.Now()
	return nil
}

// AverageRating 计算平均评分
// 无评论时返回0.0
func (b *Book) AverageRating() float64 {
	if len(b.Reviews) == 0 {
		return 0.0
	}
	total := 0
	for _, r := range b.Reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(b.Reviews))
}

// Matches 判断图书是否匹配搜索关键词
// 匹配规则:对ISBN、书名、类别、出版社做大小写不敏感的子串匹配
func (b *Book) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.ISBN), q) ||
		strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Genre), q) ||
		strings.Contains(strings.ToLower(b.Publisher), q)
}
