package sandbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrNegativeTimeout 表示调用方传入了负的等待超时时间。
	ErrNegativeTimeout = errors.New("timeout must be non-negative")

	// ErrNegativeInterval 表示调用方传入了负的轮询间隔。
	ErrNegativeInterval = errors.New("poll interval must be non-negative")

	// ErrNegativeAutostopInterval 表示调用方传入了负的自动停止间隔。
	ErrNegativeAutostopInterval = errors.New("auto-stop interval must be non-negative")
)

// APIError 表示 API 返回的非预期 HTTP 响应。
type APIError struct {
	StatusCode int
	Body       []byte

	// Code 是从响应 body 中解析出的错误码（如果有）。
	Code string
	// Message 是从响应 body 中解析出的错误消息（如果有）。
	Message string
}

// Error 实现 error 接口。
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status %d, body: %s", e.StatusCode, string(e.Body))
}

// newAPIError 创建 APIError 并尝试从 JSON body 中解析结构化字段。
func newAPIError(statusCode int, body []byte) *APIError {
	e := &APIError{StatusCode: statusCode, Body: body}
	e.Code, e.Message = parseAPIErrorBody(body)
	return e
}

// parseAPIErrorBody 尝试从 JSON body 中解析 code 和 message 字段。
func parseAPIErrorBody(body []byte) (code, message string) {
	if len(body) == 0 {
		return "", ""
	}
	var parsed struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &parsed) == nil {
		return parsed.Code, parsed.Message
	}
	return "", ""
}

// StateError 表示沙箱进入了不可恢复的 error 状态。
// 等待循环观察到该状态后立即终止，不再重试。
type StateError struct {
	SandboxID string
	// Op 是触发等待的生命周期操作（"start" 或 "stop"）。
	Op string
	// Reason 是控制面上报的错误原因，可能为空。
	Reason string
}

// Error 实现 error 接口。
func (e *StateError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("sandbox %s failed to %s: entered error state", e.SandboxID, e.Op)
	}
	return fmt.Sprintf("sandbox %s failed to %s: entered error state: %s", e.SandboxID, e.Op, e.Reason)
}

// TimeoutError 表示在超时时间内沙箱未到达目标状态。
type TimeoutError struct {
	SandboxID string
	Target    State
	Timeout   time.Duration
	Elapsed   time.Duration
}

// Error 实现 error 接口。
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("sandbox %s failed to reach state %q within the %s timeout period",
		e.SandboxID, e.Target, e.Timeout)
}

// isNotFoundError 判断错误是否为"未找到"类型。
func isNotFoundError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// isTransientStatusError 判断状态查询失败是否为可重试的瞬态错误。
// 控制面在沙箱状态迁移期间可能返回校验类错误（HTTP 422），继续轮询即可恢复；
// 其余查询失败一律原样向调用方传播。
func isTransientStatusError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnprocessableEntity {
		return true
	}
	return strings.Contains(err.Error(), "validation error")
}
