package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForPoints(t *testing.T) {
	// 边界值全覆盖(阈值含边界)
	cases := []struct {
		points int
		level  MembershipLevel
	}{
		{0, LevelNormal},
		{99, LevelNormal},
		{100, LevelSilver},
		{299, LevelSilver},
		{300, LevelGold},
		{599, LevelGold},
		{600, LevelPlatinum},
		{10000, LevelPlatinum},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelForPoints(tc.points), "points=%d", tc.points)
	}
}

func TestAddLoyaltyPoints(t *testing.T) {
	u := NewUser("u1", "hashed", RoleCustomer)
	assert.Equal(t, LevelNormal, u.Level)

	// 每次按总积分整体重算等级
	require.NoError(t, u.AddLoyaltyPoints(99))
	assert.Equal(t, LevelNormal, u.Level)

	require.NoError(t, u.AddLoyaltyPoints(1))
	assert.Equal(t, LevelSilver, u.Level)
	assert.Equal(t, 100, u.LoyaltyPoints)

	require.NoError(t, u.AddLoyaltyPoints(500))
	assert.Equal(t, LevelPlatinum, u.Level)

	// 负数积分被拒绝,状态不变
	assert.ErrorIs(t, u.AddLoyaltyPoints(-1), ErrInvalidPoints)
	assert.Equal(t, 600, u.LoyaltyPoints)
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleCustomer.Valid())
	assert.False(t, Role("superuser").Valid())
}
