// Package notify 订单事件通知
//
// 通知是fire-and-forget语义:投递失败只记日志,不影响订单结果。
// 默认使用控制台通知;配置了AMQP地址时改走消息队列,
// 由下游消费者决定如何触达用户(邮件、短信等)。
package notify

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/bookmarket/internal/infrastructure/config"
	"github.com/xiebiao/bookmarket/pkg/mq"
)

// OrderEvent 订单事件
type OrderEvent struct {
	Type      string    `json:"type"` // placed | cancelled | returned
	OrderID   uint64    `json:"order_id"`
	Username  string    `json:"username"`
	BookISBN  string    `json:"book_isbn"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// 事件类型
const (
	EventOrderPlaced    = "placed"
	EventOrderCancelled = "cancelled"
	EventOrderReturned  = "returned"
)

// Notifier 订单事件通知接口
type Notifier interface {
	NotifyOrderEvent(ctx context.Context, event OrderEvent) error
}

// NewNotifier 根据配置创建通知器
// amqp_url为空时退化为控制台通知(本地开发不依赖消息中间件)
func NewNotifier(cfg config.NotifierConfig) (Notifier, error) {
	if cfg.AMQPURL == "" {
		return NewConsoleNotifier(), nil
	}
	return NewAMQPNotifier(cfg.AMQPURL, cfg.Exchange)
}

// consoleNotifier 控制台通知器
type consoleNotifier struct{}

// NewConsoleNotifier 创建控制台通知器
func NewConsoleNotifier() Notifier {
	return &consoleNotifier{}
}

func (n *consoleNotifier) NotifyOrderEvent(ctx context.Context, event OrderEvent) error {
	log.Printf("[通知] 订单事件: type=%s order=%d user=%s isbn=%s qty=%d",
		event.Type, event.OrderID, event.Username, event.BookISBN, event.Quantity)
	return nil
}

// amqpNotifier 基于RabbitMQ的通知器
// routing_key格式: order.<事件类型>,topic交换机下消费者可按事件类型订阅
type amqpNotifier struct {
	publisher *mq.Publisher
}

// NewAMQPNotifier 创建消息队列通知器
func NewAMQPNotifier(url, exchange string) (Notifier, error) {
	publisher, err := mq.NewPublisher(url, exchange, "topic")
	if err != nil {
		return nil, err
	}
	return &amqpNotifier{publisher: publisher}, nil
}

func (n *amqpNotifier) NotifyOrderEvent(ctx context.Context, event OrderEvent) error {
	return n.publisher.Publish("order."+event.Type, event)
}
