package sandbox

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sandboxhq/sandbox/apis"
)

// Process 提供沙箱内的命令执行操作。
// 通过 Sandbox.Process() 获取实例。
type Process struct {
	sandbox *Sandbox
}

func newProcess(s *Sandbox) *Process {
	return &Process{sandbox: s}
}

// ExecResult 一次性命令执行的结果。
type ExecResult struct {
	// ExitCode 命令退出码。
	ExitCode int32
	// Result 命令的合并输出（stdout + stderr）。
	Result string
}

// ExecParams 一次性命令执行的参数。
type ExecParams struct {
	// Command 要执行的命令（必填），由沙箱内的 shell 解释。
	Command string `validate:"required"`
	// Cwd 工作目录，可选，默认为用户根目录。
	Cwd string
	// TimeoutSeconds 命令执行超时（秒），可选，0 表示不限制。
	TimeoutSeconds int32 `validate:"gte=0"`
}

// Exec 在沙箱内执行一条命令并等待其完成。
func (p *Process) Exec(ctx context.Context, params ExecParams) (*ExecResult, error) {
	if err := defaultValidator.Validate(&params); err != nil {
		return nil, err
	}
	body := apis.ExecuteCommandJSONRequestBody{Command: params.Command}
	if params.Cwd != "" {
		body.Cwd = &params.Cwd
	}
	if params.TimeoutSeconds > 0 {
		body.Timeout = &params.TimeoutSeconds
	}
	resp, err := p.sandbox.client.api.ExecuteCommandWithResponse(ctx, p.sandbox.id, body)
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return &ExecResult{ExitCode: resp.JSON200.Code, Result: resp.JSON200.Result}, nil
}

// Session 表示沙箱内一个长驻的 shell 会话。
// 会话内的命令共享工作目录和环境变量。
type Session struct {
	process *Process
	id      string
}

// ID 返回会话 ID。
func (s *Session) ID() string { return s.id }

// SessionCommandResult 会话内命令执行的结果。
type SessionCommandResult struct {
	// CommandID 命令 ID，用于后续查询日志。
	CommandID string
	// ExitCode 命令退出码，异步执行时为 nil。
	ExitCode *int32
	// Output 命令输出，异步执行时为空。
	Output string
}

// CreateSession 创建一个新的 shell 会话。
// sessionID 为空时自动生成。
func (p *Process) CreateSession(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	resp, err := p.sandbox.client.api.CreateSessionWithResponse(ctx, p.sandbox.id, apis.CreateSessionJSONRequestBody{
		SessionId: sessionID,
	})
	if err != nil {
		return nil, err
	}
	if err := expectOK(resp.StatusCode(), resp.Body); err != nil {
		return nil, err
	}
	return &Session{process: p, id: sessionID}, nil
}

// Delete 删除会话并终止其中运行的命令。
func (s *Session) Delete(ctx context.Context) error {
	resp, err := s.process.sandbox.client.api.DeleteSessionWithResponse(ctx, s.process.sandbox.id, s.id)
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// Exec 在会话内执行命令。
// async 为 true 时立即返回，通过 Logs 查询输出。
func (s *Session) Exec(ctx context.Context, command, cwd string, async bool) (*SessionCommandResult, error) {
	body := apis.SessionExecuteCommandJSONRequestBody{Command: command}
	if cwd != "" {
		body.Cwd = &cwd
	}
	if async {
		body.RunAsync = &async
	}
	resp, err := s.process.sandbox.client.api.SessionExecuteCommandWithResponse(ctx, s.process.sandbox.id, s.id, body)
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return &SessionCommandResult{
		CommandID: strValue(resp.JSON200.CmdId),
		ExitCode:  resp.JSON200.ExitCode,
		Output:    strValue(resp.JSON200.Output),
	}, nil
}

// Logs 返回会话内指定命令的累积输出。
func (s *Session) Logs(ctx context.Context, commandID string) (string, error) {
	resp, err := s.process.sandbox.client.api.GetSessionCommandLogsWithResponse(ctx, s.process.sandbox.id, s.id, commandID)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != http.StatusOK {
		return "", newAPIError(resp.StatusCode(), resp.Body)
	}
	return string(resp.Body), nil
}
