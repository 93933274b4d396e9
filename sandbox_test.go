package sandbox

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sandboxhq/sandbox/apis"
)

func TestStart(t *testing.T) {
	var started atomic.Bool
	var calls atomic.Int32
	mock := &mockAPI{
		startSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.StartSandboxResponse, error) {
			started.Store(true)
			return &apis.StartSandboxResponse{HTTPResponse: httpResponse(204)}, nil
		},
		getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
			state := apis.SandboxStateStarting
			if calls.Add(1) >= 2 {
				state = apis.SandboxStateStarted
			}
			return &apis.GetSandboxResponse{
				JSON200:      &apis.Sandbox{Id: sandboxID, State: state},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	info, err := sb.Start(context.Background(), WithPollInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !started.Load() {
		t.Error("expected start request to be sent")
	}
	if info.State != StateStarted {
		t.Errorf("expected state 'started', got %q", info.State)
	}
}

func TestStop(t *testing.T) {
	var calls atomic.Int32
	mock := &mockAPI{
		stopSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.StopSandboxResponse, error) {
			return &apis.StopSandboxResponse{HTTPResponse: httpResponse(204)}, nil
		},
		getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
			state := apis.SandboxStateStopping
			if calls.Add(1) >= 2 {
				state = apis.SandboxStateStopped
			}
			return &apis.GetSandboxResponse{
				JSON200:      &apis.Sandbox{Id: sandboxID, State: state},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	info, err := sb.Stop(context.Background(), WithPollInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.State != StateStopped {
		t.Errorf("expected state 'stopped', got %q", info.State)
	}
}

func TestStartRequestRejected(t *testing.T) {
	mock := &mockAPI{
		startSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.StartSandboxResponse, error) {
			return &apis.StartSandboxResponse{
				HTTPResponse: httpResponse(409),
				Body:         []byte(`{"message":"sandbox is archived"}`),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	_, err := sb.Start(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != 409 {
		t.Errorf("expected status 409, got %d", apiErr.StatusCode)
	}
}

func TestDelete(t *testing.T) {
	var gotForce *bool
	mock := &mockAPI{
		deleteSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.DeleteSandboxParams, editors ...apis.RequestEditorFn) (*apis.DeleteSandboxResponse, error) {
			gotForce = params.Force
			return &apis.DeleteSandboxResponse{HTTPResponse: httpResponse(204)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	if err := sb.Delete(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotForce == nil || !*gotForce {
		t.Error("expected force flag to be forwarded")
	}
}

func TestArchive(t *testing.T) {
	mock := &mockAPI{
		archiveSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.ArchiveSandboxResponse, error) {
			return &apis.ArchiveSandboxResponse{HTTPResponse: httpResponse(204)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	if err := sb.Archive(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIsStarted(t *testing.T) {
	mock := &mockAPI{
		getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
			return &apis.GetSandboxResponse{
				JSON200:      &apis.Sandbox{Id: sandboxID, State: apis.SandboxStateStopped},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	started, err := sb.IsStarted(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if started {
		t.Error("expected sandbox to not be started")
	}
}

func TestSetLabels(t *testing.T) {
	mock := &mockAPI{
		replaceLabelsFn: func(ctx context.Context, sandboxID apis.SandboxID, body apis.ReplaceLabelsJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.ReplaceLabelsResponse, error) {
			return &apis.ReplaceLabelsResponse{
				JSON200:      &apis.SandboxLabels{Labels: body.Labels},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	labels, err := sb.SetLabels(context.Background(), map[string]string{"env": "ci"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if labels["env"] != "ci" {
		t.Errorf("expected labels to round-trip, got %v", labels)
	}
}

func TestSetAutostopInterval(t *testing.T) {
	var gotInterval int32
	mock := &mockAPI{
		setAutostopIntervalFn: func(ctx context.Context, sandboxID apis.SandboxID, interval int32, editors ...apis.RequestEditorFn) (*apis.SetAutostopIntervalResponse, error) {
			gotInterval = interval
			return &apis.SetAutostopIntervalResponse{HTTPResponse: httpResponse(204)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	if err := sb.SetAutostopInterval(context.Background(), 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotInterval != 30 {
		t.Errorf("expected interval 30, got %d", gotInterval)
	}
}

// 负的自动停止间隔在发起请求前被拒绝。
func TestSetAutostopIntervalNegative(t *testing.T) {
	sb := newTestSandbox(newTestClient(&mockAPI{}), "sb-123")

	err := sb.SetAutostopInterval(context.Background(), -1)
	if !errors.Is(err, ErrNegativeAutostopInterval) {
		t.Fatalf("expected ErrNegativeAutostopInterval, got %v", err)
	}
}

func TestGetPreviewLink(t *testing.T) {
	mock := &mockAPI{
		getPortPreviewUrlFn: func(ctx context.Context, sandboxID apis.SandboxID, port int32, editors ...apis.RequestEditorFn) (*apis.GetPortPreviewUrlResponse, error) {
			return &apis.GetPortPreviewUrlResponse{
				JSON200: &apis.PortPreviewUrl{
					Url:   "https://3000-sb-123.sandboxhq.io",
					Token: "tok-abc",
				},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	link, err := sb.GetPreviewLink(context.Background(), 3000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.URL != "https://3000-sb-123.sandboxhq.io" {
		t.Errorf("unexpected url %q", link.URL)
	}
	if link.Token != "tok-abc" {
		t.Errorf("unexpected token %q", link.Token)
	}
}

// GetUserRootDir 的结果在实例生命周期内缓存，仅在成功后生效。
func TestGetUserRootDirCached(t *testing.T) {
	var calls atomic.Int32
	dir := "/home/user"
	mock := &mockAPI{
		getProjectDirFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetProjectDirResponse, error) {
			calls.Add(1)
			return &apis.GetProjectDirResponse{
				JSON200:      &apis.ProjectDirResponse{Dir: &dir},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	for i := 0; i < 3; i++ {
		got, err := sb.GetUserRootDir(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "/home/user" {
			t.Errorf("expected '/home/user', got %q", got)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 query, got %d", calls.Load())
	}
}

func TestInfoProviderMetadata(t *testing.T) {
	created := "2026-08-01T10:00:00Z"
	metadata := `{"nodeDomain":"node-7.sandboxhq.io","region":"eu","class":"small","updatedAt":"2026-08-02T10:00:00Z"}`
	mock := &mockAPI{
		getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
			return &apis.GetSandboxResponse{
				JSON200: &apis.Sandbox{
					Id:    sandboxID,
					State: apis.SandboxStateStarted,
					Info:  &apis.SandboxInfo{Created: &created, ProviderMetadata: &metadata},
				},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	info, err := sb.Info(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Created != created {
		t.Errorf("expected created %q, got %q", created, info.Created)
	}
	if info.NodeDomain != "node-7.sandboxhq.io" {
		t.Errorf("expected node domain from metadata, got %q", info.NodeDomain)
	}
	if info.Region != "eu" {
		t.Errorf("expected region 'eu', got %q", info.Region)
	}
	if info.Class != "small" {
		t.Errorf("expected class 'small', got %q", info.Class)
	}
}

// provider metadata 解析失败不应影响其余字段。
func TestInfoMalformedProviderMetadata(t *testing.T) {
	metadata := `not-json`
	mock := &mockAPI{
		getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
			return &apis.GetSandboxResponse{
				JSON200: &apis.Sandbox{
					Id:    sandboxID,
					State: apis.SandboxStateStarted,
					Info:  &apis.SandboxInfo{ProviderMetadata: &metadata},
				},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	info, err := sb.Info(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.State != StateStarted {
		t.Errorf("expected state 'started', got %q", info.State)
	}
	if info.NodeDomain != "" {
		t.Errorf("expected empty node domain, got %q", info.NodeDomain)
	}
}

func TestCreateAndWait(t *testing.T) {
	var calls atomic.Int32
	mock := &mockAPI{
		createSandboxFn: func(ctx context.Context, body apis.CreateSandboxJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.CreateSandboxResponse, error) {
			return &apis.CreateSandboxResponse{
				JSON200:      &apis.Sandbox{Id: "sb-123", State: apis.SandboxStateCreating},
				HTTPResponse: httpResponse(200),
			}, nil
		},
		getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
			state := apis.SandboxStateCreating
			if calls.Add(1) >= 2 {
				state = apis.SandboxStateStarted
			}
			return &apis.GetSandboxResponse{
				JSON200:      &apis.Sandbox{Id: sandboxID, State: state},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	c := newTestClient(mock)

	sb, info, err := c.CreateAndWait(context.Background(), CreateParams{}, WithPollInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.ID() != "sb-123" {
		t.Errorf("expected sandbox ID 'sb-123', got %q", sb.ID())
	}
	if info.State != StateStarted {
		t.Errorf("expected state 'started', got %q", info.State)
	}
}
