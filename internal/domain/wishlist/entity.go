package wishlist

// Wishlist 心愿单(聚合根,每个用户一个)
// 设计说明:
// 1. 只保存ISBN,按加入顺序排列,同一本书不重复
// 2. 图书下架后条目仍保留,展示时按当前目录解析
type Wishlist struct {
	Username string   // 所属用户
	ISBNs    []string // 图书ISBN列表(按加入顺序)
}

// NewWishlist 创建空心愿单
func NewWishlist(username string) *Wishlist {
	return &Wishlist{
		Username: username,
		ISBNs:    make([]string, 0),
	}
}

// Add 加入图书,已存在时返回错误
func (w *Wishlist) Add(isbn string) error {
	for _, existing := range w.ISBNs {
		if existing == isbn {
			return ErrDuplicateEntry
		}
	}
	w.ISBNs = append(w.ISBNs, isbn)
	return nil
}

// Remove 移除图书,不存在时返回错误
func (w *Wishlist) Remove(isbn string) error {
	for i, existing := range w.ISBNs {
		if existing == isbn {
			w.ISBNs = append(w.ISBNs[:i], w.ISBNs[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// Contains 判断图书是否已在心愿单中
func (w *Wishlist) Contains(isbn string) bool {
	for _, existing := range w.ISBNs {
		if existing == isbn {
			return true
		}
	}
	return false
}
