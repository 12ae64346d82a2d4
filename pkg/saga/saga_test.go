package saga

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestSaga_Execute_Success 测试所有步骤成功的场景
func TestSaga_Execute_Success(t *testing.T) {
	executed := make([]string, 0)

	sg := New(5 * time.Second)

	sg.AddStep("支付",
		func(ctx context.Context) error {
			executed = append(executed, "支付")
			return nil
		},
		func(ctx context.Context) error {
			executed = append(executed, "退款")
			return nil
		},
	)

	sg.AddStep("扣减库存",
		func(ctx context.Context) error {
			executed = append(executed, "扣减库存")
			return nil
		},
		func(ctx context.Context) error {
			executed = append(executed, "恢复库存")
			return nil
		},
	)

	err := sg.Execute(context.Background())
	if err != nil {
		t.Fatalf("Saga执行失败: %v", err)
	}

	// 验证执行顺序
	if len(executed) != 2 {
		t.Errorf("期望执行2个步骤，实际执行%d个", len(executed))
	}

	if executed[0] != "支付" || executed[1] != "扣减库存" {
		t.Errorf("执行顺序错误: %v", executed)
	}
}

// TestSaga_Execute_FailureAndCompensate 测试步骤失败触发逆序补偿
func TestSaga_Execute_FailureAndCompensate(t *testing.T) {
	executed := make([]string, 0)

	sg := New(5 * time.Second)

	// 步骤1：支付（成功）
	sg.AddStep("支付",
		func(ctx context.Context) error {
			executed = append(executed, "支付")
			return nil
		},
		func(ctx context.Context) error {
			executed = append(executed, "退款")
			return nil
		},
	)

	// 步骤2：扣减库存（成功）
	sg.AddStep("扣减库存",
		func(ctx context.Context) error {
			executed = append(executed, "扣减库存")
			return nil
		},
		func(ctx context.Context) error {
			executed = append(executed, "恢复库存")
			return nil
		},
	)

	// 步骤3：追加账本（失败）
	sg.AddStep("追加账本",
		func(ctx context.Context) error {
			executed = append(executed, "追加账本")
			return errors.New("账本写入失败")
		},
		nil,
	)

	err := sg.Execute(context.Background())
	if err == nil {
		t.Fatal("Saga应该失败但返回成功")
	}

	// 验证执行顺序：正向3步 + 补偿2步（逆序）
	expected := []string{"支付", "扣减库存", "追加账本", "恢复库存", "退款"}

	if len(executed) != len(expected) {
		t.Fatalf("期望执行%d个步骤，实际执行%d个: %v", len(expected), len(executed), executed)
	}

	for i, step := range expected {
		if executed[i] != step {
			t.Errorf("步骤%d期望'%s'，实际'%s'", i, step, executed[i])
		}
	}
}

// TestSaga_Execute_NilCompensate 测试nil补偿被跳过
func TestSaga_Execute_NilCompensate(t *testing.T) {
	executed := make([]string, 0)

	sg := New(5 * time.Second)

	sg.AddStep("累计积分",
		func(ctx context.Context) error {
			executed = append(executed, "累计积分")
			return nil
		},
		nil, // 尽力而为步骤没有补偿
	)

	sg.AddStep("通知",
		func(ctx context.Context) error {
			return errors.New("通知失败")
		},
		nil,
	)

	err := sg.Execute(context.Background())
	if err == nil {
		t.Fatal("Saga应该失败但返回成功")
	}

	// nil补偿不会panic，也不产生额外执行记录
	if len(executed) != 1 {
		t.Errorf("期望执行1个步骤，实际%d个: %v", len(executed), executed)
	}
}

// TestSaga_Execute_Timeout 测试超时触发补偿
func TestSaga_Execute_Timeout(t *testing.T) {
	executed := make([]string, 0)

	sg := New(100 * time.Millisecond)

	sg.AddStep("快速步骤",
		func(ctx context.Context) error {
			executed = append(executed, "快速步骤")
			return nil
		},
		func(ctx context.Context) error {
			executed = append(executed, "快速步骤补偿")
			return nil
		},
	)

	sg.AddStep("慢速步骤",
		func(ctx context.Context) error {
			select {
			case <-time.After(200 * time.Millisecond):
				executed = append(executed, "慢速步骤")
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
		func(ctx context.Context) error {
			executed = append(executed, "慢速步骤补偿")
			return nil
		},
	)

	err := sg.Execute(context.Background())
	if err == nil {
		t.Fatal("Saga应该超时失败但返回成功")
	}

	// 只有已完成的步骤被补偿
	last := executed[len(executed)-1]
	if last != "快速步骤补偿" {
		t.Errorf("期望最后执行'快速步骤补偿'，实际'%s': %v", last, executed)
	}
}
