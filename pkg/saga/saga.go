// Package saga 实现带补偿的多步骤事务框架
//
// 核心思想：
// 1. 将一个业务流程拆分为多个有序步骤（如下单：支付 → 扣库存 → 记账 → 积分）
// 2. 每个步骤有对应的补偿操作
// 3. 某步失败时，按逆序执行已完成步骤的补偿操作，保证"要么全部生效，要么全部回退"
package saga

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Step 表示Saga中的一个步骤
// 设计要点：
// 1. Action是正向操作（如扣减库存、创建订单）
// 2. Compensate是补偿操作（如释放库存），允许为nil（如最后一步通常无需补偿）
// 3. 补偿操作应只依赖自己Action的结果，用闭包捕获上下文
type Step struct {
	Name       string                          // 步骤名称（用于日志和调试）
	Action     func(ctx context.Context) error // 正向操作
	Compensate func(ctx context.Context) error // 补偿操作
}

// Saga 表示一个多步骤事务
type Saga struct {
	steps    []Step
	executed []Step        // 已执行的步骤（用于补偿）
	timeout  time.Duration // 整体超时时间
}

// New 创建一个新的Saga事务
//
// 示例：
//
//	sg := saga.New(30 * time.Second)
//	sg.AddStep("支付", pay, refund)
//	sg.AddStep("扣减库存", deductStock, restoreStock)
//	err := sg.Execute(ctx)
func New(timeout time.Duration) *Saga {
	return &Saga{
		steps:   make([]Step, 0),
		timeout: timeout,
	}
}

// AddStep 添加一个Saga步骤
// 步骤顺序很重要：按添加顺序执行，按逆序补偿
func (s *Saga) AddStep(name string, action, compensate func(ctx context.Context) error) {
	s.steps = append(s.steps, Step{
		Name:       name,
		Action:     action,
		Compensate: compensate,
	})
}

// Execute 执行Saga事务
// 1. 按顺序执行每个步骤的Action
// 2. 如果某步失败或整体超时，逆序执行已完成步骤的Compensate
// 3. 返回首个失败步骤的错误
func (s *Saga) Execute(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	for i, step := range s.steps {
		select {
		case <-ctx.Done():
			// 补偿使用新Context，避免补偿本身也被超时打断
			s.compensate(context.Background())
			return fmt.Errorf("saga超时: %w", ctx.Err())
		default:
		}

		if step.Action != nil {
			if err := step.Action(ctx); err != nil {
				s.compensate(context.Background())
				return fmt.Errorf("步骤[%d:%s]执行失败: %w", i, step.Name, err)
			}
		}

		s.executed = append(s.executed, step)
	}

	return nil
}

// compensate 按逆序执行补偿流程
// 即使某个Compensate失败也继续执行后续补偿（尽最大努力），失败的步骤记录日志
func (s *Saga) compensate(ctx context.Context) {
	for i := len(s.executed) - 1; i >= 0; i-- {
		step := s.executed[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			log.Printf("saga补偿失败[步骤:%s]: %v", step.Name, err)
		}
	}
	s.executed = nil
}
