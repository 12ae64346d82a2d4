package user

import (
	"context"

	"github.com/xiebiao/bookmarket/internal/domain/user"
	"github.com/xiebiao/bookmarket/pkg/jwt"
)

// LoginUseCase 用户登录用例
// 设计说明：
// 1. 验证用户名密码（领域服务）
// 2. 签发JWT Token（Claims携带角色，供管理员接口鉴权）
type LoginUseCase struct {
	userService user.Service
	jwtManager  *jwt.Manager
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(userService user.Service, jwtManager *jwt.Manager) *LoginUseCase {
	return &LoginUseCase{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	// 1. 验证用户名密码
	u, err := uc.userService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	// 2. 签发Token
	token, err := uc.jwtManager.Generate(u.Username, string(u.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User: UserInfo{
			Username:      u.Username,
			Role:          string(u.Role),
			Level:         string(u.Level),
			LoyaltyPoints: u.LoyaltyPoints,
		},
		AccessToken: token.AccessToken,
		ExpiresIn:   token.ExpiresIn,
	}, nil
}

// =========================================
// 应用层DTO
// =========================================

// LoginRequest 登录请求
type LoginRequest struct {
	Username string
	Password string
}

// LoginResponse 登录响应
type LoginResponse struct {
	User        UserInfo `json:"user"`
	AccessToken string   `json:"access_token"`
	ExpiresIn   int64    `json:"expires_in"` // Access Token过期时间（秒）
}

// UserInfo 用户信息
type UserInfo struct {
	Username      string `json:"username"`
	Role          string `json:"role"`
	Level         string `json:"level"`
	LoyaltyPoints int    `json:"loyalty_points"`
}
