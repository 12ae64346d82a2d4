package dto

// AddCartItemRequest 购物车加车请求
type AddCartItemRequest struct {
	BookISBN string `json:"book_isbn" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest 购物车条目数量更新请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// AddWishlistRequest 心愿单加入请求
type AddWishlistRequest struct {
	BookISBN string `json:"book_isbn" binding:"required"`
}
