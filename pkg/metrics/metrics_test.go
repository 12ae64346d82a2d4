package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestInitMetrics_Idempotent 测试重复初始化不会panic
// promauto注册到默认Registry，重复注册同名指标会panic，必须有防重入保护
func TestInitMetrics_Idempotent(t *testing.T) {
	InitMetrics()
	InitMetrics() // 第二次调用应该直接返回

	if OrdersPlacedTotal == nil {
		t.Fatal("初始化后指标不应为nil")
	}
}

// TestCounters 测试业务计数器可用
func TestCounters(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(OrdersPlacedTotal)
	OrdersPlacedTotal.Inc()
	after := testutil.ToFloat64(OrdersPlacedTotal)

	if after-before != 1 {
		t.Errorf("期望计数器增加1，实际增加%f", after-before)
	}
}

// TestCircuitBreakerState 测试带标签的Gauge
func TestCircuitBreakerState(t *testing.T) {
	InitMetrics()

	CircuitBreakerState.WithLabelValues("payment-gateway").Set(1)
	got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("payment-gateway"))
	if got != 1 {
		t.Errorf("期望状态值1，实际%f", got)
	}
}
