package cart

import (
	apperrors "github.com/xiebiao/bookmarket/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrItemNotFound 购物车中不存在该图书
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "购物车中不存在该图书")

	// ErrInvalidQuantity 数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")
)
