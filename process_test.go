package sandbox

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/sandboxhq/sandbox/apis"
)

func TestExec(t *testing.T) {
	mock := &mockAPI{
		executeCommandFn: func(ctx context.Context, sandboxID apis.SandboxID, body apis.ExecuteCommandJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.ExecuteCommandResponse, error) {
			if body.Command != "echo hello" {
				t.Errorf("expected command 'echo hello', got %q", body.Command)
			}
			if body.Cwd == nil || *body.Cwd != "/workspace" {
				t.Errorf("expected cwd '/workspace', got %v", body.Cwd)
			}
			return &apis.ExecuteCommandResponse{
				JSON200:      &apis.ExecuteResponse{Code: 0, Result: "hello\n"},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	result, err := sb.Process().Exec(context.Background(), ExecParams{
		Command: "echo hello",
		Cwd:     "/workspace",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 0 || result.Result != "hello\n" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestExecMissingCommand(t *testing.T) {
	sb := newTestSandbox(newTestClient(&mockAPI{}), "sb-123")

	_, err := sb.Process().Exec(context.Background(), ExecParams{})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestExecNonZeroExit(t *testing.T) {
	mock := &mockAPI{
		executeCommandFn: func(ctx context.Context, sandboxID apis.SandboxID, body apis.ExecuteCommandJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.ExecuteCommandResponse, error) {
			return &apis.ExecuteCommandResponse{
				JSON200:      &apis.ExecuteResponse{Code: 127, Result: "command not found"},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	// 非零退出码不是 SDK 层面的错误，由调用方检查
	result, err := sb.Process().Exec(context.Background(), ExecParams{Command: "nope"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 127 {
		t.Errorf("expected exit code 127, got %d", result.ExitCode)
	}
}

func TestCreateSessionGeneratedID(t *testing.T) {
	var gotID string
	mock := &mockAPI{
		createSessionFn: func(ctx context.Context, sandboxID apis.SandboxID, body apis.CreateSessionJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.CreateSessionResponse, error) {
			gotID = body.SessionId
			return &apis.CreateSessionResponse{HTTPResponse: httpResponse(201)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	session, err := sb.Process().CreateSession(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.ID() != gotID {
		t.Errorf("expected session ID %q, got %q", gotID, session.ID())
	}
	if _, err := uuid.Parse(session.ID()); err != nil {
		t.Errorf("expected generated UUID session ID, got %q", session.ID())
	}
}

func TestSessionExecAsync(t *testing.T) {
	cmdID := "cmd-1"
	mock := &mockAPI{
		createSessionFn: func(ctx context.Context, sandboxID apis.SandboxID, body apis.CreateSessionJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.CreateSessionResponse, error) {
			return &apis.CreateSessionResponse{HTTPResponse: httpResponse(201)}, nil
		},
		sessionExecuteCommandFn: func(ctx context.Context, sandboxID apis.SandboxID, sessionID apis.SessionID, body apis.SessionExecuteCommandJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.SessionExecuteCommandResponse, error) {
			if body.RunAsync == nil || !*body.RunAsync {
				t.Error("expected runAsync to be set")
			}
			return &apis.SessionExecuteCommandResponse{
				JSON200:      &apis.SessionExecuteResponse{CmdId: &cmdID},
				HTTPResponse: httpResponse(200),
			}, nil
		},
		getSessionCommandLogsFn: func(ctx context.Context, sandboxID apis.SandboxID, sessionID apis.SessionID, commandID apis.CommandID, editors ...apis.RequestEditorFn) (*apis.GetSessionCommandLogsResponse, error) {
			if commandID != "cmd-1" {
				t.Errorf("expected command ID 'cmd-1', got %q", commandID)
			}
			return &apis.GetSessionCommandLogsResponse{
				Body:         []byte("build output"),
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	session, err := sb.Process().CreateSession(context.Background(), "build")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := session.Exec(context.Background(), "make all", "", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CommandID != "cmd-1" {
		t.Errorf("expected command ID 'cmd-1', got %q", result.CommandID)
	}

	logs, err := session.Logs(context.Background(), result.CommandID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logs != "build output" {
		t.Errorf("unexpected logs %q", logs)
	}
}

func TestSessionDelete(t *testing.T) {
	var deleted string
	mock := &mockAPI{
		createSessionFn: func(ctx context.Context, sandboxID apis.SandboxID, body apis.CreateSessionJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.CreateSessionResponse, error) {
			return &apis.CreateSessionResponse{HTTPResponse: httpResponse(201)}, nil
		},
		deleteSessionFn: func(ctx context.Context, sandboxID apis.SandboxID, sessionID apis.SessionID, editors ...apis.RequestEditorFn) (*apis.DeleteSessionResponse, error) {
			deleted = sessionID
			return &apis.DeleteSessionResponse{HTTPResponse: httpResponse(204)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	session, err := sb.Process().CreateSession(context.Background(), "dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := session.Delete(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "dev" {
		t.Errorf("expected session 'dev' to be deleted, got %q", deleted)
	}
}
