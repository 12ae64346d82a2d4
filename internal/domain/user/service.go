package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookmarket/pkg/errors"
)

// Service 用户领域服务
// 设计说明:
// 1. Service包含不属于单个实体的业务逻辑(密码加密、验证、权限门禁)
// 2. Service依赖Repository接口,不依赖具体实现(依赖倒置)
type Service interface {
	// Register 用户注册
	// 初始状态:普通会员等级、0积分
	Register(ctx context.Context, username, password string, role Role) (*User, error)

	// Authenticate 验证用户名密码
	// 用户不存在返回ErrUserNotFound,密码错误返回ErrInvalidPassword
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// GetUser 根据用户名获取用户
	GetUser(ctx context.Context, username string) (*User, error)

	// AddLoyaltyPoints 为用户增加积分并重算会员等级
	AddLoyaltyPoints(ctx context.Context, username string, points int) (*User, error)

	// ChangeRole 修改用户角色(管理员专用)
	// 业务规则:
	// 1. 操作者必须是管理员
	// 2. 目标用户必须存在
	// 角色修改是唯一入口,实体不提供公开Setter
	ChangeRole(ctx context.Context, actingAdmin, targetUsername string, newRole Role) error

	// ListUsers 返回全部用户(管理员查看与导出)
	ListUsers(ctx context.Context) ([]*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户注册
// 学习要点:
// - bcrypt自动加盐,每次加密结果都不同(即使密码相同)
// - cost=12是推荐值,平衡安全性与性能
func (s *service) Register(ctx context.Context, username, password string, role Role) (*User, error) {
	// 1. 参数校验
	if strings.TrimSpace(username) == "" {
		return nil, ErrInvalidUsername
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	// 2. 密码加密
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	// 3. 创建用户实体并持久化(重名由Repository返回ErrUsernameDuplicate)
	u := NewUser(username, string(hashed), role)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate 验证用户名密码
func (s *service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, apperrors.Wrap(err, "密码验证失败")
	}

	return u, nil
}

// GetUser 根据用户名获取用户
func (s *service) GetUser(ctx context.Context, username string) (*User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// AddLoyaltyPoints 为用户增加积分
func (s *service) AddLoyaltyPoints(ctx context.Context, username string, points int) (*User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := u.AddLoyaltyPoints(points); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ChangeRole 修改用户角色
func (s *service) ChangeRole(ctx context.Context, actingAdmin, targetUsername string, newRole Role) error {
	// 1. 校验操作者身份
	admin, err := s.repo.FindByUsername(ctx, actingAdmin)
	if err != nil {
		return err
	}
	if !admin.IsAdmin() {
		return ErrNotAdmin
	}

	// 2. 校验目标角色与目标用户
	if !newRole.Valid() {
		return ErrInvalidRole
	}
	target, err := s.repo.FindByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	// 3. 修改并持久化
	target.changeRole(newRole)
	return s.repo.Update(ctx, target)
}

// ListUsers 返回全部用户
func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}
