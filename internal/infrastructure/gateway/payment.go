// Package gateway 封装外部协作方调用(支付网关)
//
// 设计说明:
// 1. PaymentGateway是应用层依赖的端口,实现可替换
// 2. 模拟网关按固定节奏拒绝支付,用于演练下单失败的补偿路径
// 3. 熔断器包装层对调用方透明(装饰器模式)
package gateway

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/xiebiao/bookmarket/internal/domain/order"
	"github.com/xiebiao/bookmarket/internal/infrastructure/config"
	"github.com/xiebiao/bookmarket/pkg/circuitbreaker"
	"github.com/xiebiao/bookmarket/pkg/metrics"
)

// PaymentGateway 支付网关接口
type PaymentGateway interface {
	// Charge 发起扣款,拒绝时返回order.ErrPaymentDeclined
	Charge(ctx context.Context, username string, amountCents int64) error

	// Refund 发起退款(退款总是成功,这是与网关的既定契约)
	Refund(ctx context.Context, username string, amountCents int64) error
}

// simulatedGateway 模拟支付网关
// declineEvery>0时每N笔拒绝一笔(第N、2N、3N...笔),用于测试补偿逻辑
type simulatedGateway struct {
	mu           sync.Mutex
	declineEvery int
	charged      int // 累计发起的扣款笔数
}

// NewSimulatedGateway 创建模拟支付网关
func NewSimulatedGateway(cfg config.PaymentConfig) PaymentGateway {
	return &simulatedGateway{declineEvery: cfg.DeclineEvery}
}

// Charge 发起扣款
func (g *simulatedGateway) Charge(ctx context.Context, username string, amountCents int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.charged++
	if g.declineEvery > 0 && g.charged%g.declineEvery == 0 {
		log.Printf("支付被拒: user=%s amount=%d", username, amountCents)
		return order.ErrPaymentDeclined
	}
	return nil
}

// Refund 发起退款
func (g *simulatedGateway) Refund(ctx context.Context, username string, amountCents int64) error {
	log.Printf("退款成功: user=%s amount=%d", username, amountCents)
	return nil
}

// circuitBreakerGateway 带熔断的支付网关(装饰器)
// 网关连续失败时快速失败,避免每笔订单都等待超时
type circuitBreakerGateway struct {
	inner PaymentGateway
	cb    *circuitbreaker.CircuitBreaker
}

// NewCircuitBreakerGateway 包装支付网关,加入熔断保护
func NewCircuitBreakerGateway(inner PaymentGateway) PaymentGateway {
	cb := circuitbreaker.NewCircuitBreaker("payment-gateway", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	cb.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		log.Printf("熔断器状态变化: %s %s → %s", name, from, to)
		if metrics.CircuitBreakerState != nil {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		}
	})

	return &circuitBreakerGateway{inner: inner, cb: cb}
}

// Charge 发起扣款(经过熔断器)
// 熔断器打开时返回circuitbreaker.ErrOpenState
func (g *circuitBreakerGateway) Charge(ctx context.Context, username string, amountCents int64) error {
	return g.cb.Execute(func() error {
		return g.inner.Charge(ctx, username, amountCents)
	})
}

// Refund 发起退款(按契约总是成功,不参与熔断统计)
func (g *circuitBreakerGateway) Refund(ctx context.Context, username string, amountCents int64) error {
	return g.inner.Refund(ctx, username, amountCents)
}
