package user

import (
	"context"

	"github.com/xiebiao/bookmarket/internal/domain/user"
)

// GetProfileUseCase 查询个人信息用例
type GetProfileUseCase struct {
	userService user.Service
}

// NewGetProfileUseCase 创建查询个人信息用例
func NewGetProfileUseCase(userService user.Service) *GetProfileUseCase {
	return &GetProfileUseCase{userService: userService}
}

// Execute 查询个人信息
func (uc *GetProfileUseCase) Execute(ctx context.Context, username string) (*UserInfo, error) {
	u, err := uc.userService.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	return &UserInfo{
		Username:      u.Username,
		Role:          string(u.Role),
		Level:         string(u.Level),
		LoyaltyPoints: u.LoyaltyPoints,
	}, nil
}
