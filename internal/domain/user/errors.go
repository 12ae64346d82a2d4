package user

import (
	apperrors "github.com/xiebiao/bookmarket/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "用户不存在")

	// ErrUsernameDuplicate 用户名已存在
	ErrUsernameDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "用户名已存在")

	// ErrInvalidUsername 用户名不能为空
	ErrInvalidUsername = apperrors.New(apperrors.ErrCodeInvalidParams, "用户名不能为空")

	// ErrInvalidRole 非法的角色
	ErrInvalidRole = apperrors.New(apperrors.ErrCodeInvalidParams, "非法的用户角色")

	// ErrInvalidPoints 非法的积分
	ErrInvalidPoints = apperrors.New(apperrors.ErrCodeInvalidParams, "积分不能为负数")

	// ErrNotAdmin 非管理员执行管理员操作
	ErrNotAdmin = apperrors.New(apperrors.ErrCodeForbidden, "该操作仅管理员可执行")
)
