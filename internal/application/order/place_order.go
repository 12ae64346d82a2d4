package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/order"
	"github.com/xiebiao/bookmarket/internal/domain/user"
	"github.com/xiebiao/bookmarket/internal/infrastructure/gateway"
	"github.com/xiebiao/bookmarket/internal/infrastructure/notify"
	"github.com/xiebiao/bookmarket/pkg/metrics"
	"github.com/xiebiao/bookmarket/pkg/saga"
	"github.com/xiebiao/bookmarket/pkg/tracing"
)

// PlaceOrderUseCase 下单用例
// 这是整个系统最核心的用例,涉及:
// 1. 跨聚合一致性(库存、账本、积分在市场锁下整体变更)
// 2. 外部协作方调用(支付网关,经过熔断器)
// 3. Saga补偿(后续步骤失败时逆序回退已生效的变更)
type PlaceOrderUseCase struct {
	market      *Market
	bookRepo    book.Repository
	orderRepo   order.Repository
	userService user.Service
	payment     gateway.PaymentGateway
	notifier    notify.Notifier
}

// NewPlaceOrderUseCase 创建下单用例
func NewPlaceOrderUseCase(
	market *Market,
	bookRepo book.Repository,
	orderRepo order.Repository,
	userService user.Service,
	payment gateway.PaymentGateway,
	notifier notify.Notifier,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		market:      market,
		bookRepo:    bookRepo,
		orderRepo:   orderRepo,
		userService: userService,
		payment:     payment,
		notifier:    notifier,
	}
}

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	Username string // 从JWT提取
	BookISBN string
	Quantity int
}

// PlaceOrderResponse 下单响应
type PlaceOrderResponse struct {
	OrderID   uint64 `json:"order_id"`
	BookISBN  string `json:"book_isbn"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Total     int64  `json:"total"`      // 单位:分
	TotalYuan string `json:"total_yuan"` // 展示用
	Points    int    `json:"points"`     // 本单获得积分
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行下单
//
// 流程(市场锁下整体串行):
// 1. 校验:数量>0、图书存在、库存充足(校验全部先于变更,失败时零副作用)
// 2. Saga:支付 → 扣库存 → 记账 → 积分 → 通知
//   - 支付被拒时未发生任何变更,直接失败
//   - 记账失败时逆序回退:恢复库存、退款
//   - 积分与通知是尽力而为步骤,不会让订单失败
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "application/order", "PlaceOrder")
	defer span.End()

	// 1. 参数校验
	if req.Quantity <= 0 {
		return nil, order.ErrInvalidQuantity
	}

	uc.market.Lock()
	defer uc.market.Unlock()

	// 2. 校验图书与库存(先校验后变更)
	b, err := uc.bookRepo.FindByISBN(ctx, req.BookISBN)
	if err != nil {
		return nil, err
	}
	if b.Stock < req.Quantity {
		return nil, book.ErrInsufficientStock
	}

	// 3. 订单金额按下单时价格计算
	total := b.Price * int64(req.Quantity)
	points := int(total / 1000) // 每满10元得1积分

	newOrder := order.NewOrder(req.Username, req.BookISBN, req.Quantity)

	// 4. Saga编排下单流程
	sg := saga.New(30 * time.Second)

	sg.AddStep("支付",
		func(ctx context.Context) error {
			return uc.payment.Charge(ctx, req.Username, total)
		},
		func(ctx context.Context) error {
			return uc.payment.Refund(ctx, req.Username, total)
		},
	)

	sg.AddStep("扣减库存",
		func(ctx context.Context) error {
			if err := b.DecrStock(req.Quantity); err != nil {
				return err
			}
			return uc.bookRepo.Update(ctx, b)
		},
		func(ctx context.Context) error {
			if err := b.IncrStock(req.Quantity); err != nil {
				return err
			}
			return uc.bookRepo.Update(ctx, b)
		},
	)

	sg.AddStep("追加账本",
		func(ctx context.Context) error {
			// 订单号只在追加成功时分配,失败的下单不产生ID空洞
			return uc.orderRepo.Create(ctx, newOrder)
		},
		nil,
	)

	sg.AddStep("累计积分",
		func(ctx context.Context) error {
			// 尽力而为:用户在下单后被移除等异常不影响订单结果
			if _, err := uc.userService.AddLoyaltyPoints(ctx, req.Username, points); err != nil {
				if !errors.Is(err, user.ErrUserNotFound) {
					log.Printf("积分累计失败: user=%s err=%v", req.Username, err)
				}
			}
			return nil
		},
		nil,
	)

	sg.AddStep("通知",
		func(ctx context.Context) error {
			// fire-and-forget:通知失败只记日志
			event := notify.OrderEvent{
				Type:      notify.EventOrderPlaced,
				OrderID:   newOrder.ID,
				Username:  req.Username,
				BookISBN:  req.BookISBN,
				Quantity:  req.Quantity,
				Timestamp: time.Now(),
			}
			if err := uc.notifier.NotifyOrderEvent(ctx, event); err != nil {
				log.Printf("下单通知发送失败: order=%d err=%v", newOrder.ID, err)
			}
			return nil
		},
		nil,
	)

	if err := sg.Execute(ctx); err != nil {
		if errors.Is(err, order.ErrPaymentDeclined) {
			if metrics.PaymentsDeclinedTotal != nil {
				metrics.PaymentsDeclinedTotal.Inc()
			}
			return nil, order.ErrPaymentDeclined
		}
		return nil, err
	}

	// 5. 指标上报
	if metrics.OrdersPlacedTotal != nil {
		metrics.OrdersPlacedTotal.Inc()
		metrics.OrderAmount.Observe(float64(total))
	}

	return &PlaceOrderResponse{
		OrderID:   newOrder.ID,
		BookISBN:  b.ISBN,
		Title:     b.Title,
		Quantity:  req.Quantity,
		Total:     total,
		TotalYuan: formatPrice(total),
		Points:    points,
		Status:    newOrder.Status.String(),
		CreatedAt: newOrder.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
