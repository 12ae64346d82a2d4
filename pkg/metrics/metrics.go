// Package metrics 提供基于Prometheus的指标收集
//
// 可观测性三支柱之一（Tracing、Metrics、Logging）：
// - Counter（计数器）：只增不减的累计值，如订单总数
// - Gauge（仪表盘）：可增可减的瞬时值，如在售图书数
// - Histogram（直方图）：观测值的分布，如订单金额
//
// 使用方式：
// 1. 程序启动时调用InitMetrics()注册所有指标
// 2. Gin路由上挂载 GET /metrics → promhttp.Handler()
// 3. 业务代码中直接操作导出的指标变量
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// 业务指标

	// OrdersPlacedTotal 下单成功总数（Counter）
	OrdersPlacedTotal prometheus.Counter

	// OrdersCancelledTotal 取消订单总数（Counter）
	OrdersCancelledTotal prometheus.Counter

	// OrdersReturnedTotal 退货订单总数（Counter）
	OrdersReturnedTotal prometheus.Counter

	// PaymentsDeclinedTotal 支付被拒总数（Counter）
	PaymentsDeclinedTotal prometheus.Counter

	// OrderAmount 订单金额分布（Histogram，单位：分）
	OrderAmount prometheus.Histogram

	// BooksInCatalog 在架图书数（Gauge）
	BooksInCatalog prometheus.Gauge

	// 熔断器指标

	// CircuitBreakerState 熔断器状态（Gauge）
	// 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，使用promauto自动注册到默认Registry
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmarket_http_requests_total",
		Help: "HTTP请求总数",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookmarket_http_request_duration_seconds",
		Help:    "HTTP请求耗时",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
	}, []string{"method", "path"})

	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarket_orders_placed_total",
		Help: "下单成功总数",
	})

	OrdersCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarket_orders_cancelled_total",
		Help: "取消订单总数",
	})

	OrdersReturnedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarket_orders_returned_total",
		Help: "退货订单总数",
	})

	PaymentsDeclinedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarket_payments_declined_total",
		Help: "支付被拒总数",
	})

	OrderAmount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bookmarket_order_amount_cents",
		Help:    "订单金额分布（分）",
		Buckets: []float64{1000, 5000, 10000, 50000, 100000},
	})

	BooksInCatalog = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bookmarket_books_in_catalog",
		Help: "在架图书数",
	})

	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bookmarket_circuit_breaker_state",
		Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
	}, []string{"name"})
}
