package order

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/xiebiao/bookmarket/internal/domain/book"
	"github.com/xiebiao/bookmarket/internal/domain/order"
	"github.com/xiebiao/bookmarket/internal/infrastructure/notify"
	"github.com/xiebiao/bookmarket/pkg/metrics"
	"github.com/xiebiao/bookmarket/pkg/tracing"
)

// CancelOrderUseCase 取消订单用例
// 业务规则:
// 1. 订单必须属于操作者本人(不匹配时按"订单不存在"处理,不泄露他人订单)
// 2. 只有生效中的订单可以取消(已退货的订单不能再取消)
// 3. 取消后恢复库存;图书已下架时跳过恢复,取消仍然成功
type CancelOrderUseCase struct {
	market    *Market
	bookRepo  book.Repository
	orderRepo order.Repository
	notifier  notify.Notifier
}

// NewCancelOrderUseCase 创建取消订单用例
func NewCancelOrderUseCase(
	market *Market,
	bookRepo book.Repository,
	orderRepo order.Repository,
	notifier notify.Notifier,
) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		market:    market,
		bookRepo:  bookRepo,
		orderRepo: orderRepo,
		notifier:  notifier,
	}
}

// Execute 执行取消
func (uc *CancelOrderUseCase) Execute(ctx context.Context, username string, orderID uint64) error {
	ctx, span := tracing.StartSpan(ctx, "application/order", "CancelOrder")
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

	// 2. 状态转换(非Active时返回ErrInvalidStatusTransition,防止重复恢复库存)
	if err := o.Cancel(); err != nil {
		return err
	}
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return err
	}

	// 3. 恢复库存(图书已下架时无处可还,取消本身仍然成立)
	if err := uc.restoreStock(ctx, o); err != nil {
		log.Printf("取消订单恢复库存失败: order=%d isbn=%s err=%v", o.ID, o.BookISBN, err)
	}

	if metrics.OrdersCancelledTotal != nil {
		metrics.OrdersCancelledTotal.Inc()
	}

	uc.notify(ctx, o)
	return nil
}

func (uc *CancelOrderUseCase) restoreStock(ctx context.Context, o *order.Order) error {
	b, err := uc.bookRepo.FindByISBN(ctx, o.BookISBN)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return nil
		}
		return err
	}
	if err := b.IncrStock(o.Quantity); err != nil {
		return err
	}
	return uc.bookRepo.Update(ctx, b)
}

func (uc *CancelOrderUseCase) notify(ctx context.Context, o *order.Order) {
	event := notify.OrderEvent{
		Type:      notify.EventOrderCancelled,
		OrderID:   o.ID,
		Username:  o.Username,
		BookISBN:  o.BookISBN,
		Quantity:  o.Quantity,
		Timestamp: time.Now(),
	}
	if err := uc.notifier.NotifyOrderEvent(ctx, event); err != nil {
		log.Printf("取消订单通知发送失败: order=%d err=%v", o.ID, err)
	}
}
