package wishlist

import (
	apperrors "github.com/xiebiao/bookmarket/pkg/errors"
)

// 心愿单领域错误定义
var (
	// ErrDuplicateEntry 图书已在心愿单中
	ErrDuplicateEntry = apperrors.New(apperrors.ErrCodeDuplicateEntry, "图书已在心愿单中")

	// ErrEntryNotFound 心愿单中不存在该图书
	ErrEntryNotFound = apperrors.New(apperrors.ErrCodeWishlistNotFound, "心愿单中不存在该图书")
)
