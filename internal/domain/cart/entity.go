package cart

// Item 购物车条目
// 不是独立聚合根,必须通过Cart访问
type Item struct {
	BookISBN string // 图书ISBN
	Quantity int    // 数量
}

// Cart 购物车(聚合根,每个用户一个)
// 设计说明:
// 1. 条目按加入顺序保存,以ISBN去重
// 2. 重复加入同一本书时数量合并
// 3. 购物车只保存ISBN,结算时再按当前图书信息计价
type Cart struct {
	Username string // 所属用户
	Items    []Item // 条目列表(按加入顺序)
}

// NewCart 创建空购物车
func NewCart(username string) *Cart {
	return &Cart{
		Username: username,
		Items:    make([]Item, 0),
	}
}

// AddItem 加入图书(领域行为)
// 已存在时数量合并,数量必须大于0
func (c *Cart) AddItem(isbn string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].BookISBN == isbn {
			c.Items[i].Quantity += quantity
			return nil
		}
	}
	c.Items = append(c.Items, Item{BookISBN: isbn, Quantity: quantity})
	return nil
}

// UpdateItem 更新条目数量(覆盖式)
func (c *Cart) UpdateItem(isbn string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].BookISBN == isbn {
			c.Items[i].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveItem 移除条目
func (c *Cart) RemoveItem(isbn string) error {
	for i := range c.Items {
		if c.Items[i].BookISBN == isbn {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Clear 清空购物车
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}

// IsEmpty 判断购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
