package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmarket/internal/domain/user"
	"github.com/xiebiao/bookmarket/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/bookmarket/pkg/errors"
	"github.com/xiebiao/bookmarket/pkg/jwt"
)

func newUserService(t *testing.T) user.Service {
	t.Helper()
	return user.NewService(memory.NewUserRepository())
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		uc := NewRegisterUseCase(newUserService(t))

		resp, err := uc.Execute(ctx, RegisterRequest{Username: "alice", Password: "password123"})
		require.NoError(t, err, "注册应该成功")

		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "customer", resp.Role, "角色留空默认customer")
		assert.Equal(t, "normal", resp.Level, "初始为普通会员")
	})

	t.Run("重名注册被拒绝", func(t *testing.T) {
		uc := NewRegisterUseCase(newUserService(t))

		_, err := uc.Execute(ctx, RegisterRequest{Username: "alice", Password: "password123"})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, RegisterRequest{Username: "alice", Password: "another456"})
		assert.ErrorIs(t, err, user.ErrUsernameDuplicate)
	})

	t.Run("非法角色被拒绝", func(t *testing.T) {
		uc := NewRegisterUseCase(newUserService(t))

		_, err := uc.Execute(ctx, RegisterRequest{Username: "alice", Password: "password123", Role: "superuser"})
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	service := newUserService(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	register := NewRegisterUseCase(service)
	login := NewLoginUseCase(service, jwtManager)

	_, err := register.Execute(ctx, RegisterRequest{Username: "alice", Password: "password123", Role: "admin"})
	require.NoError(t, err)

	t.Run("正常登录", func(t *testing.T) {
		resp, err := login.Execute(ctx, LoginRequest{Username: "alice", Password: "password123"})
		require.NoError(t, err, "登录应该成功")

		assert.Equal(t, "alice", resp.User.Username)
		assert.NotEmpty(t, resp.AccessToken)

		// Token中应携带用户名与角色(中间件据此鉴权)
		claims, err := jwtManager.Parse(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := login.Execute(ctx, LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户不存在", func(t *testing.T) {
		_, err := login.Execute(ctx, LoginRequest{Username: "nobody", Password: "password123"})
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestChangeRole(t *testing.T) {
	ctx := context.Background()
	service := newUserService(t)
	register := NewRegisterUseCase(service)
	changeRole := NewChangeRoleUseCase(service)

	_, err := register.Execute(ctx, RegisterRequest{Username: "admin", Password: "password123", Role: "admin"})
	require.NoError(t, err)
	_, err = register.Execute(ctx, RegisterRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	t.Run("管理员可以修改角色", func(t *testing.T) {
		err := changeRole.Execute(ctx, ChangeRoleRequest{
			ActingAdmin: "admin", TargetUsername: "alice", NewRole: "admin",
		})
		require.NoError(t, err)

		u, err := service.GetUser(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, u.Role)
	})

	t.Run("非管理员被拒绝", func(t *testing.T) {
		_, err := register.Execute(ctx, RegisterRequest{Username: "bob", Password: "password123"})
		require.NoError(t, err)

		err = changeRole.Execute(ctx, ChangeRoleRequest{
			ActingAdmin: "bob", TargetUsername: "alice", NewRole: "customer",
		})
		assert.ErrorIs(t, err, user.ErrNotAdmin)
	})
}
