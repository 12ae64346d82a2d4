package user

import (
	"context"

	"github.com/xiebiao/bookmarket/internal/domain/user"
)

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. Application层负责用例编排，协调多个领域服务
// 2. 当前注册用例比较简单，只调用一个领域服务
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// Execute 执行注册
// 返回：RegisterResponse（应用层DTO，不是领域实体）
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	role := user.Role(req.Role)
	if req.Role == "" {
		role = user.RoleCustomer
	}

	u, err := uc.userService.Register(ctx, req.Username, req.Password, role)
	if err != nil {
		return nil, err
	}

	// 领域实体 → 应用层DTO
	// 说明：不直接返回领域实体，领域模型变更不影响API契约
	return &RegisterResponse{
		Username: u.Username,
		Role:     string(u.Role),
		Level:    string(u.Level),
	}, nil
}

// =========================================
// 应用层DTO（数据传输对象）
// =========================================

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string
	Password string
	Role     string // 空值默认customer
}

// RegisterResponse 注册响应
// 说明：不返回密码字段（安全考虑）
type RegisterResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Level    string `json:"level"`
}
