package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/bookmarket/internal/application/cart"
	"github.com/xiebiao/bookmarket/internal/interface/http/dto"
	"github.com/xiebiao/bookmarket/internal/interface/http/middleware"
	"github.com/xiebiao/bookmarket/pkg/response"
)

// CartHandler 购物车HTTP处理器
type CartHandler struct {
	cartUseCase *appcart.UseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(cartUseCase *appcart.UseCase) *CartHandler {
	return &CartHandler{cartUseCase: cartUseCase}
}

// View 查看购物车
func (h *CartHandler) View(c *gin.Context) {
	result, err := h.cartUseCase.View(c.Request.Context(), middleware.GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AddItem 加入图书(已存在时数量合并)
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	err := h.cartUseCase.AddItem(c.Request.Context(), middleware.GetUsername(c), req.BookISBN, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// UpdateItem 更新条目数量
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	err := h.cartUseCase.UpdateItem(c.Request.Context(), middleware.GetUsername(c), c.Param("isbn"), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// RemoveItem 移除条目
func (h *CartHandler) RemoveItem(c *gin.Context) {
	err := h.cartUseCase.RemoveItem(c.Request.Context(), middleware.GetUsername(c), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Clear 清空购物车
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartUseCase.Clear(c.Request.Context(), middleware.GetUsername(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
