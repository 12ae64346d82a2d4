package circuitbreaker

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(trip uint32, timeout time.Duration) *CircuitBreaker {
	return NewCircuitBreaker("payment-gateway", Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     timeout,
		ReadyToTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= trip
		},
	})
}

// TestCircuitBreaker_ClosedState 测试关闭状态（正常放行）
func TestCircuitBreaker_ClosedState(t *testing.T) {
	cb := newTestBreaker(5, 30*time.Second)

	for i := 0; i < 10; i++ {
		err := cb.Execute(func() error {
			return nil
		})
		if err != nil {
			t.Fatalf("期望成功，实际失败: %v", err)
		}
	}

	if cb.State() != StateClosed {
		t.Errorf("期望状态为CLOSED，实际%s", cb.State())
	}

	counts := cb.Counts()
	if counts.TotalSuccesses != 10 {
		t.Errorf("期望成功10次，实际%d次", counts.TotalSuccesses)
	}
}

// TestCircuitBreaker_OpenState 测试连续失败触发熔断
func TestCircuitBreaker_OpenState(t *testing.T) {
	cb := newTestBreaker(5, 30*time.Second)

	for i := 0; i < 5; i++ {
		_ = cb.Execute(func() error {
			return errors.New("gateway unavailable")
		})
	}

	if cb.State() != StateOpen {
		t.Errorf("期望状态为OPEN，实际%s", cb.State())
	}

	// 熔断期间快速失败，不调用实际函数
	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})

	if err != ErrOpenState {
		t.Errorf("期望返回ErrOpenState，实际%v", err)
	}
	if called {
		t.Error("熔断器打开时不应该调用实际函数")
	}
}

// TestCircuitBreaker_HalfOpenRecover 测试半开探测成功后恢复
func TestCircuitBreaker_HalfOpenRecover(t *testing.T) {
	cb := newTestBreaker(3, 100*time.Millisecond)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error {
			return errors.New("fail")
		})
	}
	if cb.State() != StateOpen {
		t.Fatalf("期望状态为OPEN，实际%s", cb.State())
	}

	// 等待超时转为半开，探测请求被放行
	time.Sleep(150 * time.Millisecond)

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	if err != nil {
		t.Errorf("半开状态探测请求期望成功，实际%v", err)
	}
	if !called {
		t.Error("半开状态应该放行探测请求")
	}

	if cb.State() != StateClosed {
		t.Errorf("探测成功后期望状态转为CLOSED，实际%s", cb.State())
	}
}

// TestCircuitBreaker_HalfOpenToOpen 测试半开探测失败转回打开
func TestCircuitBreaker_HalfOpenToOpen(t *testing.T) {
	cb := newTestBreaker(3, 100*time.Millisecond)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error {
			return errors.New("fail")
		})
	}

	time.Sleep(150 * time.Millisecond)

	_ = cb.Execute(func() error {
		return errors.New("still fail")
	})

	if cb.State() != StateOpen {
		t.Errorf("期望状态转回OPEN，实际%s", cb.State())
	}
}

// TestCircuitBreaker_StateChangeCallback 测试状态变化回调
func TestCircuitBreaker_StateChangeCallback(t *testing.T) {
	cb := newTestBreaker(3, 30*time.Second)

	var transitions []string
	cb.SetStateChangeCallback(func(name string, from, to State) {
		transitions = append(transitions, from.String()+"→"+to.String())
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error {
			return errors.New("fail")
		})
	}

	if len(transitions) != 1 {
		t.Fatalf("期望1次状态变化，实际%d次: %v", len(transitions), transitions)
	}
	if transitions[0] != "CLOSED→OPEN" {
		t.Errorf("期望CLOSED→OPEN，实际%s", transitions[0])
	}
}

// BenchmarkCircuitBreaker_Execute 熔断器开销基准
func BenchmarkCircuitBreaker_Execute(b *testing.B) {
	cb := newTestBreaker(5, 30*time.Second)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cb.Execute(func() error {
			return nil
		})
	}
}
