package user

import (
	"time"
)

// Role 用户角色
type Role string

const (
	RoleAdmin    Role = "admin"    // 管理员
	RoleCustomer Role = "customer" // 普通顾客
)

// Valid 判断角色取值是否合法
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// MembershipLevel 会员等级
// 等级完全由积分决定,是积分的纯函数(见LevelForPoints)
type MembershipLevel string

const (
	LevelNormal   MembershipLevel = "normal"
	LevelSilver   MembershipLevel = "silver"
	LevelGold     MembershipLevel = "gold"
	LevelPlatinum MembershipLevel = "platinum"
)

// 会员等级积分阈值(含边界)
const (
	silverThreshold   = 100
	goldThreshold     = 300
	platinumThreshold = 600
)

// LevelForPoints 根据积分计算会员等级(纯函数)
// 阈值:>=600白金,>=300金,>=100银,其余普通
func LevelForPoints(points int) MembershipLevel {
	switch {
	case points >= platinumThreshold:
		return LevelPlatinum
	case points >= goldThreshold:
		return LevelGold
	case points >= silverThreshold:
		return LevelSilver
	default:
		return LevelNormal
	}
}

// User 用户实体(聚合根)
// DDD设计说明:
// 1. 用户名是业务主键(仓储层保证唯一性)
// 2. 密码已加密存储(bcrypt),不暴露明文
// 3. 角色只能通过领域服务的ChangeRole修改(需要管理员身份),不提供公开Setter
type User struct {
	Username      string          // 用户名(业务主键)
	Password      string          // bcrypt哈希值
	Role          Role            // 角色
	Level         MembershipLevel // 会员等级(由积分派生)
	LoyaltyPoints int             // 积分(只增不减)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser 创建新用户(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewUser(username, hashedPassword string, role Role) *User {
	now := time.Now()
	return &User{
		Username:      username,
		Password:      hashedPassword,
		Role:          role,
		Level:         LevelNormal,
		LoyaltyPoints: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AddLoyaltyPoints 增加积分并重算会员等级(领域行为)
// 每次都按总积分整体重算,而不是增量升级
func (u *User) AddLoyaltyPoints(points int) error {
	if points < 0 {
		return ErrInvalidPoints
	}
	u.LoyaltyPoints += points
	u.Level = LevelForPoints(u.LoyaltyPoints)
	u.UpdatedAt = time.Now()
	return nil
}

// IsAdmin 判断是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// changeRole 修改角色(仅领域服务内部可调用,见service.ChangeRole)
func (u *User) changeRole(role Role) {
	u.Role = role
	u.UpdatedAt = time.Now()
}
