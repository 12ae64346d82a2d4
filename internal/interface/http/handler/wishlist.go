package handler

import (
	"github.com/gin-gonic/gin"

	appwishlist "github.com/xiebiao/bookmarket/internal/application/wishlist"
	"github.com/xiebiao/bookmarket/internal/interface/http/dto"
	"github.com/xiebiao/bookmarket/internal/interface/http/middleware"
	"github.com/xiebiao/bookmarket/pkg/response"
)

// WishlistHandler 心愿单HTTP处理器
type WishlistHandler struct {
	wishlistUseCase *appwishlist.UseCase
}

// NewWishlistHandler 创建心愿单处理器
func NewWishlistHandler(wishlistUseCase *appwishlist.UseCase) *WishlistHandler {
	return &WishlistHandler{wishlistUseCase: wishlistUseCase}
}

// List 查看心愿单(按加入顺序)
func (h *WishlistHandler) List(c *gin.Context) {
	result, err := h.wishlistUseCase.List(c.Request.Context(), middleware.GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Add 加入图书
func (h *WishlistHandler) Add(c *gin.Context) {
	var req dto.AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	if err := h.wishlistUseCase.Add(c.Request.Context(), middleware.GetUsername(c), req.BookISBN); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Remove 移除图书
func (h *WishlistHandler) Remove(c *gin.Context) {
	if err := h.wishlistUseCase.Remove(c.Request.Context(), middleware.GetUsername(c), c.Param("isbn")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
