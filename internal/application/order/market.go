package order

import (
	"sync"
)

// Market 市场级互斥协调器
// 设计说明:
// 下单/取消/退货会同时触碰订单账本、图书库存、用户积分三个聚合,
// 各仓储自身的锁只能保护单聚合一致性。三个写用例共享这把锁,
// 把跨聚合的"校验+变更"整体串行化,保证不超卖、不重复取消。
// 读用例(订单列表、报表)不持有此锁。
type Market struct {
	mu sync.Mutex
}

// NewMarket 创建市场协调器(进程内单例,由wire注入)
func NewMarket() *Market {
	return &Market{}
}

// Lock 获取市场锁
func (m *Market) Lock() {
	m.mu.Lock()
}

// Unlock 释放市场锁
func (m *Market) Unlock() {
	m.mu.Unlock()
}
