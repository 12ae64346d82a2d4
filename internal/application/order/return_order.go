package order

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/order"
	"github.com/xiebiao/bookmarket/internal/infrastructure/gateway"
	"github.com/xiebiao/bookmarket/internal/infrastructure/notify"
	"github.com/xiebiao/bookmarket/pkg/metrics"
	"github.com/xiebiao/bookmarket/pkg/tracing"
)

// ReturnOrderUseCase 退货用例
// 与取消的差别:退货额外走一次退款(按当前图书价格计算金额)
type ReturnOrderUseCase struct {
	market    *Market
	bookRepo  book.Repository
	orderRepo order.Repository
	payment   gateway.PaymentGateway
	notifier  notify.Notifier
}

// NewReturnOrderUseCase 创建退货用例
func NewReturnOrderUseCase(
	market *Market,
	bookRepo book.Repository,
	orderRepo order.Repository,
	payment gateway.PaymentGateway,
	notifier notify.Notifier,
) *ReturnOrderUseCase {
	return &ReturnOrderUseCase{
		market:    market,
		bookRepo:  bookRepo,
		orderRepo: orderRepo,
		payment:   payment,
		notifier:  notifier,
	}
}

// Execute 执行退货
func (uc *ReturnOrderUseCase) Execute(ctx context.Context, username string, orderID uint64) error {
	ctx, span := tracing.StartSpan(ctx, "application/order", "ReturnOrder")
	defer span.End()

	uc.market.Lock()
	defer uc.market.Unlock()

	// 1. 查找订单并校验归属
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !o.IsOwnedBy(username) {
		return order.ErrOrderNotFound
	}

	// 2. 状态转换(已取消/已退货的订单不能再退货)
	if err := o.Return(); err != nil {
		return err
	}
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return err
	}

	// 3. 恢复库存并退款
	// 订单不存价格快照,退款金额按当前图书价格解析;图书已下架时两步都跳过
	b, err := uc.bookRepo.FindByISBN(ctx, o.BookISBN)
	if err == nil {
		if err := b.IncrStock(o.Quantity); err == nil {
			if err := uc.bookRepo.Update(ctx, b); err != nil {
				log.Printf("退货恢复库存失败: order=%d err=%v", o.ID, err)
			}
		}
		refund := b.Price * int64(o.Quantity)
		if err := uc.payment.Refund(ctx, o.Username, refund); err != nil {
			log.Printf("退款失败: order=%d amount=%d err=%v", o.ID, refund, err)
		}
	} else if !errors.Is(err, book.ErrBookNotFound) {
		return err
	}

	if metrics.OrdersReturnedTotal != nil {
		metrics.OrdersReturnedTotal.Inc()
	}

	event := notify.OrderEvent{
		Type:      notify.EventOrderReturned,
		OrderID:   o.ID,
		Username:  o.Username,
		BookISBN:  o.BookISBN,
		Quantity:  o.Quantity,
		Timestamp: time.Now(),
	}
	if err := uc.notifier.NotifyOrderEvent(ctx, event); err != nil {
		log.Printf("退货通知发送失败: order=%d err=%v", o.ID, err)
	}

	return nil
}
