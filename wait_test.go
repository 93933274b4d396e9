package sandbox

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sandboxhq/sandbox/apis"
)

// stateSequenceMock 返回一个按调用次数依次给出指定状态的 getSandboxFn。
func stateSequenceMock(calls *atomic.Int32, states ...apis.SandboxState) *mockAPI {
	return &mockAPI{
		getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
			n := int(calls.Add(1)) - 1
			if n >= len(states) {
				n = len(states) - 1
			}
			return &apis.GetSandboxResponse{
				JSON200:      &apis.Sandbox{Id: sandboxID, State: states[n]},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
}

func TestWaitForStartedImmediate(t *testing.T) {
	var calls atomic.Int32
	mock := stateSequenceMock(&calls, apis.SandboxStateStarted)
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	info, err := sb.WaitForStarted(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.State != StateStarted {
		t.Errorf("expected state 'started', got %q", info.State)
	}
	if calls.Load() != 1 {
		t.Errorf("expected exactly 1 status query, got %d", calls.Load())
	}
}

func TestWaitForStartedAfterTransitions(t *testing.T) {
	var calls atomic.Int32
	mock := stateSequenceMock(&calls, apis.SandboxStateCreating, apis.SandboxStateStarting, apis.SandboxStateStarted)
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	info, err := sb.WaitForStarted(context.Background(), WithPollInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.State != StateStarted {
		t.Errorf("expected state 'started', got %q", info.State)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 status queries, got %d", calls.Load())
	}
}

func TestWaitForStoppedImmediate(t *testing.T) {
	var calls atomic.Int32
	mock := stateSequenceMock(&calls, apis.SandboxStateStopping, apis.SandboxStateStopped)
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	info, err := sb.WaitForStopped(context.Background(), WithPollInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.State != StateStopped {
		t.Errorf("expected state 'stopped', got %q", info.State)
	}
}

// 沙箱进入 error 状态后等待立即终止，不再发起后续查询。
func TestWaitForStartedErrorState(t *testing.T) {
	var calls atomic.Int32
	mock := &mockAPI{
		getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
			calls.Add(1)
			reason := "image pull failed"
			return &apis.GetSandboxResponse{
				JSON200:      &apis.Sandbox{Id: sandboxID, State: apis.SandboxStateError, ErrorReason: &reason},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	_, err := sb.WaitForStarted(context.Background(), WithPollInterval(time.Millisecond))
	if err == nil {
		t.Fatal("expected error")
	}
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected *StateError, got %T: %v", err, err)
	}
	if stateErr.Op != "start" {
		t.Errorf("expected op 'start', got %q", stateErr.Op)
	}
	if stateErr.Reason != "image pull failed" {
		t.Errorf("expected reason from API, got %q", stateErr.Reason)
	}
	if calls.Load() != 1 {
		t.Errorf("expected wait to stop after first error state query, got %d queries", calls.Load())
	}
}

func TestWaitForStoppedErrorState(t *testing.T) {
	var calls atomic.Int32
	mock := stateSequenceMock(&calls, apis.SandboxStateError)
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	_, err := sb.WaitForStopped(context.Background(), WithPollInterval(time.Millisecond))
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected *StateError, got %T: %v", err, err)
	}
	if stateErr.Op != "stop" {
		t.Errorf("expected op 'stop', got %q", stateErr.Op)
	}
}

func TestWaitForStartedTimeout(t *testing.T) {
	var calls atomic.Int32
	mock := stateSequenceMock(&calls, apis.SandboxStateStarting)
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	_, err := sb.WaitForStarted(context.Background(),
		WithPollInterval(5*time.Millisecond),
		WithWaitTimeout(30*time.Millisecond),
	)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected *TimeoutError, got %T: %v", err, err)
	}
	if timeoutErr.Target != StateStarted {
		t.Errorf("expected target 'started', got %q", timeoutErr.Target)
	}
	if timeoutErr.Timeout != 30*time.Millisecond {
		t.Errorf("expected timeout 30ms, got %v", timeoutErr.Timeout)
	}
}

// 负超时在发起任何状态查询之前被拒绝。
func TestWaitForStartedNegativeTimeout(t *testing.T) {
	var calls atomic.Int32
	mock := stateSequenceMock(&calls, apis.SandboxStateStarted)
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	_, err := sb.WaitForStarted(context.Background(), WithWaitTimeout(-time.Second))
	if !errors.Is(err, ErrNegativeTimeout) {
		t.Fatalf("expected ErrNegativeTimeout, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("expected no status queries, got %d", calls.Load())
	}
}

func TestWaitForStoppedNegativeInterval(t *testing.T) {
	var calls atomic.Int32
	mock := stateSequenceMock(&calls, apis.SandboxStateStopped)
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	_, err := sb.WaitForStopped(context.Background(), WithPollInterval(-time.Millisecond))
	if !errors.Is(err, ErrNegativeInterval) {
		t.Fatalf("expected ErrNegativeInterval, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("expected no status queries, got %d", calls.Load())
	}
}

// 超时设为 0 表示无限等待，只受上下文取消约束。
func TestWaitForStartedUnboundedTimeout(t *testing.T) {
	var calls atomic.Int32
	mock := stateSequenceMock(&calls, apis.SandboxStateStarting)
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	_, err := sb.WaitForStarted(ctx, WithPollInterval(time.Millisecond), WithWaitTimeout(0))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var timeoutErr *TimeoutError
	if errors.As(err, &timeoutErr) {
		t.Error("caller cancellation must not be reported as a timeout")
	}
	if calls.Load() < 2 {
		t.Errorf("expected polling to continue until cancellation, got %d queries", calls.Load())
	}
}

// 状态查询返回的瞬时校验错误被忽略，轮询继续。启动和停止路径的行为一致。
func TestWaitSwallowsTransientValidationErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		target apis.SandboxState
		wait   func(sb *Sandbox, ctx context.Context) (*Info, error)
	}{
		{"started", apis.SandboxStateStarted, func(sb *Sandbox, ctx context.Context) (*Info, error) {
			return sb.WaitForStarted(ctx, WithPollInterval(time.Millisecond))
		}},
		{"stopped", apis.SandboxStateStopped, func(sb *Sandbox, ctx context.Context) (*Info, error) {
			return sb.WaitForStopped(ctx, WithPollInterval(time.Millisecond))
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int32
			mock := &mockAPI{
				getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
					if calls.Add(1) < 3 {
						return &apis.GetSandboxResponse{
							HTTPResponse: httpResponse(422),
							Body:         []byte(`{"message":"validation error: sandbox is transitioning"}`),
						}, nil
					}
					return &apis.GetSandboxResponse{
						JSON200:      &apis.Sandbox{Id: sandboxID, State: tc.target},
						HTTPResponse: httpResponse(200),
					}, nil
				},
			}
			sb := newTestSandbox(newTestClient(mock), "sb-123")

			info, err := tc.wait(sb, context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if info.State != State(tc.target) {
				t.Errorf("expected state %q, got %q", tc.target, info.State)
			}
			if calls.Load() != 3 {
				t.Errorf("expected 3 queries, got %d", calls.Load())
			}
		})
	}
}

// 非瞬时的查询失败原样向调用方传播。
func TestWaitPropagatesQueryFailure(t *testing.T) {
	mock := &mockAPI{
		getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
			return &apis.GetSandboxResponse{
				HTTPResponse: httpResponse(500),
				Body:         []byte(`{"message":"internal error"}`),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	_, err := sb.WaitForStarted(context.Background(), WithPollInterval(time.Millisecond))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != 500 {
		t.Errorf("expected status 500, got %d", apiErr.StatusCode)
	}
}

func TestWaitBackoff(t *testing.T) {
	var calls atomic.Int32
	var timestamps []time.Time
	mock := &mockAPI{
		getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
			timestamps = append(timestamps, time.Now())
			state := apis.SandboxStateStarting
			if calls.Add(1) >= 4 {
				state = apis.SandboxStateStarted
			}
			return &apis.GetSandboxResponse{
				JSON200:      &apis.Sandbox{Id: sandboxID, State: state},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	_, err := sb.WaitForStarted(context.Background(),
		WithPollInterval(2*time.Millisecond),
		WithBackoff(2.0, 50*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(timestamps) != 4 {
		t.Fatalf("expected 4 queries, got %d", len(timestamps))
	}
	// 间隔应单调增长: 2ms → 4ms → 8ms
	first := timestamps[1].Sub(timestamps[0])
	last := timestamps[3].Sub(timestamps[2])
	if last <= first {
		t.Errorf("expected backoff to grow the interval, first=%v last=%v", first, last)
	}
}

func TestWaitOnPollCallback(t *testing.T) {
	var calls atomic.Int32
	mock := stateSequenceMock(&calls, apis.SandboxStateStarting, apis.SandboxStateStarted)
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	var attempts []int
	_, err := sb.WaitForStarted(context.Background(),
		WithPollInterval(time.Millisecond),
		WithOnPoll(func(attempt int) { attempts = append(attempts, attempt) }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attempts) != 2 || attempts[0] != 1 || attempts[1] != 2 {
		t.Errorf("expected attempts [1 2], got %v", attempts)
	}
}
