package dto

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	BookISBN string `json:"book_isbn" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}
