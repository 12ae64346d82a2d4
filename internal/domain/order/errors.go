package order

import (
	apperrors "github.com/xiebiao/bookmarket/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在(或不属于该用户)
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrInvalidStatusTransition 非法的状态转换
	ErrInvalidStatusTransition = apperrors.New(apperrors.ErrCodeInvalidState, "订单状态不允许此操作")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")

	// ErrPaymentDeclined 支付被拒绝
	ErrPaymentDeclined = apperrors.New(apperrors.ErrCodePaymentDeclined, "支付失败,订单未创建")
)
