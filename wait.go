package sandbox

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// WaitForStarted 轮询沙箱状态直到进入 started 状态。
//
// 沙箱进入 error 状态时立即返回 *StateError，不再重试；
// 超过等待超时（默认 DefaultWaitTimeout，可用 WithWaitTimeout 调整，
// 0 表示无限等待）时返回 *TimeoutError。
// 轮询期间控制面返回的瞬时校验错误会被忽略并继续轮询。
func (s *Sandbox) WaitForStarted(ctx context.Context, opts ...PollOption) (*Info, error) {
	return s.waitForState(ctx, StateStarted, "start", opts)
}

// WaitForStopped 轮询沙箱状态直到进入 stopped 状态。
// 错误处理语义与 WaitForStarted 一致。
func (s *Sandbox) WaitForStopped(ctx context.Context, opts ...PollOption) (*Info, error) {
	return s.waitForState(ctx, StateStopped, "stop", opts)
}

// waitForState 是 WaitForStarted / WaitForStopped 的公共实现。
// 参数非法时在发起任何查询之前返回错误。
func (s *Sandbox) waitForState(ctx context.Context, target State, op string, opts []PollOption) (*Info, error) {
	options := defaultPollOpts()
	for _, opt := range opts {
		opt(options)
	}
	if options.timeout < 0 {
		return nil, fmt.Errorf("wait for sandbox %s: %w", s.id, ErrNegativeTimeout)
	}
	if options.interval < 0 {
		return nil, fmt.Errorf("wait for sandbox %s: %w", s.id, ErrNegativeInterval)
	}

	waitCtx := ctx
	if options.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, options.timeout)
		defer cancel()
	}

	start := time.Now()
	info, err := pollLoop(waitCtx, options, func() (bool, *Info, error) {
		info, err := s.Info(waitCtx)
		if err != nil {
			// 控制面偶发的校验错误属于瞬时故障，忽略后继续轮询。
			if isTransientStatusError(err) {
				return false, nil, nil
			}
			return false, nil, err
		}
		switch info.State {
		case target:
			return true, info, nil
		case StateErrored:
			return false, nil, &StateError{SandboxID: s.id, Op: op, Reason: info.ErrorReason}
		}
		return false, nil, nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, &TimeoutError{
				SandboxID: s.id,
				Target:    target,
				Timeout:   options.timeout,
				Elapsed:   time.Since(start),
			}
		}
		return nil, err
	}
	return info, nil
}
