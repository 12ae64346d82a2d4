package dto

// PublishBookRequest 图书上架请求(管理员)
// 价格单位为分,避免JSON浮点数带来的精度问题
type PublishBookRequest struct {
	ISBN      string `json:"isbn" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Author    string `json:"author" binding:"required"`
	Genre     string `json:"genre" binding:"required"`
	Publisher string `json:"publisher" binding:"required"`
	Price     int64  `json:"price" binding:"min=0"`
	Stock     int    `json:"stock" binding:"min=0"`
}

// UpdateBookRequest 图书更新请求(全字段覆盖)
type UpdateBookRequest struct {
	Title     string `json:"title" binding:"required"`
	Author    string `json:"author" binding:"required"`
	Genre     string `json:"genre" binding:"required"`
	Publisher string `json:"publisher" binding:"required"`
	Price     int64  `json:"price" binding:"min=0"`
	Stock     int    `json:"stock" binding:"min=0"`
}

// AddReviewRequest 添加评论请求
type AddReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"max=2000"`
}
