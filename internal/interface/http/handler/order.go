package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookmarket/internal/application/order"
	"github.com/xiebiao/bookmarket/internal/interface/http/dto"
	"github.com/xiebiao/bookmarket/internal/interface/http/middleware"
	"github.com/xiebiao/bookmarket/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	placeUseCase  *apporder.PlaceOrderUseCase
	cancelUseCase *apporder.CancelOrderUseCase
	returnUseCase *apporder.ReturnOrderUseCase
	listUseCase   *apporder.ListOrdersUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	placeUseCase *apporder.PlaceOrderUseCase,
	cancelUseCase *apporder.CancelOrderUseCase,
	returnUseCase *apporder.ReturnOrderUseCase,
	listUseCase *apporder.ListOrdersUseCase,
) *OrderHandler {
	return &OrderHandler{
		placeUseCase:  placeUseCase,
		cancelUseCase: cancelUseCase,
		returnUseCase: returnUseCase,
		listUseCase:   listUseCase,
	}
}

// PlaceOrder 下单
// @Summary      下单
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PlaceOrderRequest true "下单信息"
// @Success      200 {object} response.Response
// @Router       /api/v1/orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.placeUseCase.Execute(c.Request.Context(), apporder.PlaceOrderRequest{
		Username: middleware.GetUsername(c),
		BookISBN: req.BookISBN,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CancelOrder 取消订单
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		response.ErrorWithCode(c, 40900, "订单号格式错误")
		return
	}

	if err := h.cancelUseCase.Execute(c.Request.Context(), middleware.GetUsername(c), orderID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ReturnOrder 退货
func (h *OrderHandler) ReturnOrder(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		response.ErrorWithCode(c, 40900, "订单号格式错误")
		return
	}

	if err := h.returnUseCase.Execute(c.Request.Context(), middleware.GetUsername(c), orderID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListOrders 我的订单列表
func (h *OrderHandler) ListOrders(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), middleware.GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func parseOrderID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
