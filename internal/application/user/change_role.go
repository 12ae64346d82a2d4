package user

import (
	"context"

	"github.com/xiebiao/bookmarket/internal/domain/user"
)

// ChangeRoleUseCase 修改用户角色用例(管理员专用)
// 操作者身份从JWT中提取,由领域服务再次校验管理员角色
// (中间件拦截与领域校验双重保障,领域规则不依赖表现层)
type ChangeRoleUseCase struct {
	userService user.Service
}

// NewChangeRoleUseCase 创建修改角色用例
func NewChangeRoleUseCase(userService user.Service) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{userService: userService}
}

// Execute 执行角色修改
func (uc *ChangeRoleUseCase) Execute(ctx context.Context, req ChangeRoleRequest) error {
	return uc.userService.ChangeRole(ctx, req.ActingAdmin, req.TargetUsername, user.Role(req.NewRole))
}

// ChangeRoleRequest 修改角色请求
type ChangeRoleRequest struct {
	ActingAdmin    string // 操作者用户名(从JWT提取)
	TargetUsername string // 目标用户名
	NewRole        string // 新角色: admin | customer
}
