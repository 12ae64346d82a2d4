package order

import (
	"time"
)

// Status 订单状态
// 设计说明:
// 1. 使用int类型而非string(便于比较与存储)
// 2. 定义为具名类型,便于添加方法
type Status int

const (
	StatusActive    Status = 1 // 生效中(初始状态)
	StatusCancelled Status = 2 // 已取消(终态)
	StatusReturned  Status = 3 // 已退货(终态)
)

// String 实现Stringer接口(方便日志与报表输出)
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCancelled:
		return "cancelled"
	case StatusReturned:
		return "returned"
	default:
		return "unknown"
	}
}

// Order 订单实体(聚合根)
// 设计说明:
// 1. ID由仓储层按顺序分配(从1开始,只增不复用,取消的订单也不释放ID)
// 2. 不直接关联Book对象,只保存ISBN(避免跨聚合引用)
//    金额、书名等展示信息在查询时按当前图书信息实时解析
// 3. 取消与退货互斥:两者都只能从Active转入,终态之间不可互转
type Order struct {
	ID        uint64 // 订单号(业务主键,顺序分配)
	Username  string // 买家用户名
	BookISBN  string // 图书ISBN
	Quantity  int    // 购买数量
	Status    Status // 订单状态
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrder 创建新订单(工厂方法)
// ID由仓储层在Create时分配,初始状态为Active
func NewOrder(username, bookISBN string, quantity int) *Order {
	now := time.Now()
	return &Order{
		Username:  username,
		BookISBN:  bookISBN,
		Quantity:  quantity,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CanTransitionTo 检查是否可以转换到目标状态
// 状态机设计,防止非法状态跳转:
// Active → Cancelled / Returned,两个终态都没有后续状态
// 注意:退货后的订单不允许再取消(两个终态互斥)
func (o *Order) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusActive:    {StatusCancelled, StatusReturned},
		StatusCancelled: {},
		StatusReturned:  {},
	}

	allowed, exists := transitions[o.Status]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionTo 状态转换
// 1. 先检查是否可以转换(业务规则校验)
// 2. 转换成功更新UpdatedAt(审计追踪)
func (o *Order) TransitionTo(target Status) error {
	if !o.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// Cancel 取消订单(领域行为)
func (o *Order) Cancel() error {
	return o.TransitionTo(StatusCancelled)
}

// Return 退货(领域行为)
func (o *Order) Return() error {
	return o.TransitionTo(StatusReturned)
}

// IsActive 判断订单是否生效中(未取消且未退货)
func (o *Order) IsActive() bool {
	return o.Status == StatusActive
}

// IsOwnedBy 检查订单是否属于指定用户
// 权限校验,防止用户操作他人订单
func (o *Order) IsOwnedBy(username string) bool {
	return o.Username == username
}

// Month 返回订单所属月份键(格式:YYYY-MM,用于月度报表)
func (o *Order) Month() string {
	return o.CreatedAt.Format("2006-01")
}
