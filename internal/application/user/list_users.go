package user

import (
	"context"

	"github.com/xiebiao/bookmarket/internal/domain/user"
)

// ListUsersUseCase 用户列表用例(管理员查看)
type ListUsersUseCase struct {
	userService user.Service
}

// NewListUsersUseCase 创建用户列表用例
func NewListUsersUseCase(userService user.Service) *ListUsersUseCase {
	return &ListUsersUseCase{userService: userService}
}

// Execute 返回全部用户(按注册顺序)
func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]UserInfo, error) {
	users, err := uc.userService.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]UserInfo, len(users))
	for i, u := range users {
		infos[i] = UserInfo{
			Username:      u.Username,
			Role:          string(u.Role),
			Level:         string(u.Level),
			LoyaltyPoints: u.LoyaltyPoints,
		}
	}
	return infos, nil
}
