package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookmarket/internal/application/book"
	"github.com/xiebiao/bookmarket/internal/interface/http/dto"
	"github.com/xiebiao/bookmarket/internal/interface/http/middleware"
	"github.com/xiebiao/bookmarket/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	publishUseCase   *appbook.PublishBookUseCase
	updateUseCase    *appbook.UpdateBookUseCase
	removeUseCase    *appbook.RemoveBookUseCase
	listUseCase      *appbook.ListBooksUseCase
	addReviewUseCase *appbook.AddReviewUseCase
	recommendUseCase *appbook.RecommendUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	publishUseCase *appbook.PublishBookUseCase,
	updateUseCase *appbook.UpdateBookUseCase,
	removeUseCase *appbook.RemoveBookUseCase,
	listUseCase *appbook.ListBooksUseCase,
	addReviewUseCase *appbook.AddReviewUseCase,
	recommendUseCase *appbook.RecommendUseCase,
) *BookHandler {
	return &BookHandler{
		publishUseCase:   publishUseCase,
		updateUseCase:    updateUseCase,
		removeUseCase:    removeUseCase,
		listUseCase:      listUseCase,
		addReviewUseCase: addReviewUseCase,
		recommendUseCase: recommendUseCase,
	}
}

// PublishBook 图书上架(管理员)
// @Summary      图书上架
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PublishBookRequest true "图书信息"
// @Success      200 {object} response.Response
// @Router       /api/v1/books [post]
func (h *BookHandler) PublishBook(c *gin.Context) {
	var req dto.PublishBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.publishUseCase.Execute(c.Request.Context(), appbook.PublishBookRequest{
		ISBN:      req.ISBN,
		Title:     req.Title,
		Author:    req.Author,
		Genre:     req.Genre,
		Publisher: req.Publisher,
		Price:     req.Price,
		Stock:     req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateBook 图书更新(管理员,全字段覆盖)
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ISBN:      c.Param("isbn"),
		Title:     req.Title,
		Author:    req.Author,
		Genre:     req.Genre,
		Publisher: req.Publisher,
		Price:     req.Price,
		Stock:     req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// RemoveBook 图书下架(管理员)
func (h *BookHandler) RemoveBook(c *gin.Context) {
	result, err := h.removeUseCase.Execute(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListBooks 图书列表(公开,按书名升序)
// 带query参数时执行搜索:GET /api/v1/books?q=fantasy
func (h *BookHandler) ListBooks(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		result, err := h.listUseCase.Search(c.Request.Context(), query)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, result)
		return
	}

	result, err := h.listUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetBook 图书详情(公开,含评论)
func (h *BookHandler) GetBook(c *gin.Context) {
	result, err := h.listUseCase.Get(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AddReview 添加评论(需登录)
func (h *BookHandler) AddReview(c *gin.Context) {
	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	err := h.addReviewUseCase.Execute(c.Request.Context(), appbook.AddReviewRequest{
		ISBN:     c.Param("isbn"),
		Username: middleware.GetUsername(c),
		Rating:   req.Rating,
		Text:     req.Text,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Recommend 图书推荐(需登录)
// 按用户生效中订单的类别推荐有库存的图书,评分降序
func (h *BookHandler) Recommend(c *gin.Context) {
	result, err := h.recommendUseCase.Execute(c.Request.Context(), middleware.GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
