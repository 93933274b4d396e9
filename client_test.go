package sandbox

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/sandboxhq/sandbox/apis"
)

// mockAPI 实现 apis.ClientWithResponsesInterface 用于测试。
// 每个方法字段可按测试设置；未设置的方法会 panic。
type mockAPI struct {
	listSandboxesFn         func(ctx context.Context, params *apis.ListSandboxesParams, editors ...apis.RequestEditorFn) (*apis.ListSandboxesResponse, error)
	createSandboxFn         func(ctx context.Context, body apis.CreateSandboxJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.CreateSandboxResponse, error)
	deleteSandboxFn         func(ctx context.Context, sandboxID apis.SandboxID, params *apis.DeleteSandboxParams, editors ...apis.RequestEditorFn) (*apis.DeleteSandboxResponse, error)
	getSandboxFn            func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error)
	archiveSandboxFn        func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.ArchiveSandboxResponse, error)
	setAutostopIntervalFn   func(ctx context.Context, sandboxID apis.SandboxID, interval int32, editors ...apis.RequestEditorFn) (*apis.SetAutostopIntervalResponse, error)
	replaceLabelsFn         func(ctx context.Context, sandboxID apis.SandboxID, body apis.ReplaceLabelsJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.ReplaceLabelsResponse, error)
	getPortPreviewUrlFn     func(ctx context.Context, sandboxID apis.SandboxID, port int32, editors ...apis.RequestEditorFn) (*apis.GetPortPreviewUrlResponse, error)
	startSandboxFn          func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.StartSandboxResponse, error)
	stopSandboxFn           func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.StopSandboxResponse, error)
	deleteFileFn            func(ctx context.Context, sandboxID apis.SandboxID, params *apis.DeleteFileParams, editors ...apis.RequestEditorFn) (*apis.DeleteFileResponse, error)
	listFilesFn             func(ctx context.Context, sandboxID apis.SandboxID, params *apis.ListFilesParams, editors ...apis.RequestEditorFn) (*apis.ListFilesResponse, error)
	downloadFileFn          func(ctx context.Context, sandboxID apis.SandboxID, params *apis.DownloadFileParams, editors ...apis.RequestEditorFn) (*apis.DownloadFileResponse, error)
	findInFilesFn           func(ctx context.Context, sandboxID apis.SandboxID, params *apis.FindInFilesParams, editors ...apis.RequestEditorFn) (*apis.FindInFilesResponse, error)
	createFolderFn          func(ctx context.Context, sandboxID apis.SandboxID, params *apis.CreateFolderParams, editors ...apis.RequestEditorFn) (*apis.CreateFolderResponse, error)
	getFileInfoFn           func(ctx context.Context, sandboxID apis.SandboxID, params *apis.GetFileInfoParams, editors ...apis.RequestEditorFn) (*apis.GetFileInfoResponse, error)
	moveFileFn              func(ctx context.Context, sandboxID apis.SandboxID, params *apis.MoveFileParams, editors ...apis.RequestEditorFn) (*apis.MoveFileResponse, error)
	setFilePermissionsFn    func(ctx context.Context, sandboxID apis.SandboxID, params *apis.SetFilePermissionsParams, editors ...apis.RequestEditorFn) (*apis.SetFilePermissionsResponse, error)
	replaceInFilesFn        func(ctx context.Context, sandboxID apis.SandboxID, body apis.ReplaceInFilesJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.ReplaceInFilesResponse, error)
	searchFilesFn           func(ctx context.Context, sandboxID apis.SandboxID, params *apis.SearchFilesParams, editors ...apis.RequestEditorFn) (*apis.SearchFilesResponse, error)
	uploadFileWithBodyFn    func(ctx context.Context, sandboxID apis.SandboxID, params *apis.UploadFileParams, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.UploadFileResponse, error)
	gitAddFn                func(ctx context.Context, sandboxID apis.SandboxID, body apis.GitAddJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.GitAddResponse, error)
	gitBranchListFn         func(ctx context.Context, sandboxID apis.SandboxID, params *apis.GitBranchListParams, editors ...apis.RequestEditorFn) (*apis.GitBranchListResponse, error)
	gitCreateBranchFn       func(ctx context.Context, sandboxID apis.SandboxID, body apis.GitCreateBranchJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.GitCreateBranchResponse, error)
	gitCloneFn              func(ctx context.Context, sandboxID apis.SandboxID, body apis.GitCloneJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.GitCloneResponse, error)
	gitCommitFn             func(ctx context.Context, sandboxID apis.SandboxID, body apis.GitCommitJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.GitCommitResponse, error)
	gitPullFn               func(ctx context.Context, sandboxID apis.SandboxID, body apis.GitPullJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.GitPullResponse, error)
	gitPushFn               func(ctx context.Context, sandboxID apis.SandboxID, body apis.GitPushJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.GitPushResponse, error)
	gitStatusFn             func(ctx context.Context, sandboxID apis.SandboxID, params *apis.GitStatusParams, editors ...apis.RequestEditorFn) (*apis.GitStatusResponse, error)
	lspCompletionsFn        func(ctx context.Context, sandboxID apis.SandboxID, body apis.LspCompletionsJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspCompletionsResponse, error)
	lspDidCloseFn           func(ctx context.Context, sandboxID apis.SandboxID, body apis.LspDidCloseJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspDidCloseResponse, error)
	lspDidOpenFn            func(ctx context.Context, sandboxID apis.SandboxID, body apis.LspDidOpenJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspDidOpenResponse, error)
	lspDocumentSymbolsFn    func(ctx context.Context, sandboxID apis.SandboxID, params *apis.LspDocumentSymbolsParams, editors ...apis.RequestEditorFn) (*apis.LspDocumentSymbolsResponse, error)
	lspStartFn              func(ctx context.Context, sandboxID apis.SandboxID, body apis.LspStartJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspStartResponse, error)
	lspStopFn               func(ctx context.Context, sandboxID apis.SandboxID, body apis.LspStopJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspStopResponse, error)
	executeCommandFn        func(ctx context.Context, sandboxID apis.SandboxID, body apis.ExecuteCommandJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.ExecuteCommandResponse, error)
	createSessionFn         func(ctx context.Context, sandboxID apis.SandboxID, body apis.CreateSessionJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.CreateSessionResponse, error)
	deleteSessionFn         func(ctx context.Context, sandboxID apis.SandboxID, sessionID apis.SessionID, editors ...apis.RequestEditorFn) (*apis.DeleteSessionResponse, error)
	getSessionCommandLogsFn func(ctx context.Context, sandboxID apis.SandboxID, sessionID apis.SessionID, commandID apis.CommandID, editors ...apis.RequestEditorFn) (*apis.GetSessionCommandLogsResponse, error)
	sessionExecuteCommandFn func(ctx context.Context, sandboxID apis.SandboxID, sessionID apis.SessionID, body apis.SessionExecuteCommandJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.SessionExecuteCommandResponse, error)
	getProjectDirFn         func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetProjectDirResponse, error)
}

func httpResponse(statusCode int) *http.Response {
	return &http.Response{StatusCode: statusCode}
}

func (m *mockAPI) ListSandboxesWithResponse(ctx context.Context, params *apis.ListSandboxesParams, editors ...apis.RequestEditorFn) (*apis.ListSandboxesResponse, error) {
	return m.listSandboxesFn(ctx, params, editors...)
}

func (m *mockAPI) CreateSandboxWithBodyWithResponse(ctx context.Context, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.CreateSandboxResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) CreateSandboxWithResponse(ctx context.Context, body apis.CreateSandboxJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.CreateSandboxResponse, error) {
	return m.createSandboxFn(ctx, body, editors...)
}

func (m *mockAPI) DeleteSandboxWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.DeleteSandboxParams, editors ...apis.RequestEditorFn) (*apis.DeleteSandboxResponse, error) {
	return m.deleteSandboxFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) GetSandboxWithResponse(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
	return m.getSandboxFn(ctx, sandboxID, editors...)
}

func (m *mockAPI) ArchiveSandboxWithResponse(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.ArchiveSandboxResponse, error) {
	return m.archiveSandboxFn(ctx, sandboxID, editors...)
}

func (m *mockAPI) SetAutostopIntervalWithResponse(ctx context.Context, sandboxID apis.SandboxID, interval int32, editors ...apis.RequestEditorFn) (*apis.SetAutostopIntervalResponse, error) {
	return m.setAutostopIntervalFn(ctx, sandboxID, interval, editors...)
}

func (m *mockAPI) ReplaceLabelsWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.ReplaceLabelsResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) ReplaceLabelsWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.ReplaceLabelsJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.ReplaceLabelsResponse, error) {
	return m.replaceLabelsFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) GetPortPreviewUrlWithResponse(ctx context.Context, sandboxID apis.SandboxID, port int32, editors ...apis.RequestEditorFn) (*apis.GetPortPreviewUrlResponse, error) {
	return m.getPortPreviewUrlFn(ctx, sandboxID, port, editors...)
}

func (m *mockAPI) StartSandboxWithResponse(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.StartSandboxResponse, error) {
	return m.startSandboxFn(ctx, sandboxID, editors...)
}

func (m *mockAPI) StopSandboxWithResponse(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.StopSandboxResponse, error) {
	return m.stopSandboxFn(ctx, sandboxID, editors...)
}

func (m *mockAPI) DeleteFileWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.DeleteFileParams, editors ...apis.RequestEditorFn) (*apis.DeleteFileResponse, error) {
	return m.deleteFileFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) ListFilesWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.ListFilesParams, editors ...apis.RequestEditorFn) (*apis.ListFilesResponse, error) {
	return m.listFilesFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) DownloadFileWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.DownloadFileParams, editors ...apis.RequestEditorFn) (*apis.DownloadFileResponse, error) {
	return m.downloadFileFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) FindInFilesWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.FindInFilesParams, editors ...apis.RequestEditorFn) (*apis.FindInFilesResponse, error) {
	return m.findInFilesFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) CreateFolderWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.CreateFolderParams, editors ...apis.RequestEditorFn) (*apis.CreateFolderResponse, error) {
	return m.createFolderFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) GetFileInfoWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.GetFileInfoParams, editors ...apis.RequestEditorFn) (*apis.GetFileInfoResponse, error) {
	return m.getFileInfoFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) MoveFileWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.MoveFileParams, editors ...apis.RequestEditorFn) (*apis.MoveFileResponse, error) {
	return m.moveFileFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) SetFilePermissionsWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.SetFilePermissionsParams, editors ...apis.RequestEditorFn) (*apis.SetFilePermissionsResponse, error) {
	return m.setFilePermissionsFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) ReplaceInFilesWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.ReplaceInFilesResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) ReplaceInFilesWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.ReplaceInFilesJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.ReplaceInFilesResponse, error) {
	return m.replaceInFilesFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) SearchFilesWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.SearchFilesParams, editors ...apis.RequestEditorFn) (*apis.SearchFilesResponse, error) {
	return m.searchFilesFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) UploadFileWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.UploadFileParams, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.UploadFileResponse, error) {
	return m.uploadFileWithBodyFn(ctx, sandboxID, params, contentType, body, editors...)
}

func (m *mockAPI) GitAddWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.GitAddResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) GitAddWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.GitAddJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.GitAddResponse, error) {
	return m.gitAddFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) GitBranchListWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.GitBranchListParams, editors ...apis.RequestEditorFn) (*apis.GitBranchListResponse, error) {
	return m.gitBranchListFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) GitCreateBranchWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.GitCreateBranchResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) GitCreateBranchWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.GitCreateBranchJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.GitCreateBranchResponse, error) {
	return m.gitCreateBranchFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) GitCloneWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.GitCloneResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) GitCloneWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.GitCloneJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.GitCloneResponse, error) {
	return m.gitCloneFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) GitCommitWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.GitCommitResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) GitCommitWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.GitCommitJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.GitCommitResponse, error) {
	return m.gitCommitFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) GitPullWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.GitPullResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) GitPullWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.GitPullJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.GitPullResponse, error) {
	return m.gitPullFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) GitPushWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.GitPushResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) GitPushWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.GitPushJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.GitPushResponse, error) {
	return m.gitPushFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) GitStatusWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.GitStatusParams, editors ...apis.RequestEditorFn) (*apis.GitStatusResponse, error) {
	return m.gitStatusFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) LspCompletionsWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.LspCompletionsResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) LspCompletionsWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.LspCompletionsJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspCompletionsResponse, error) {
	return m.lspCompletionsFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) LspDidCloseWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.LspDidCloseResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) LspDidCloseWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.LspDidCloseJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspDidCloseResponse, error) {
	return m.lspDidCloseFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) LspDidOpenWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.LspDidOpenResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) LspDidOpenWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.LspDidOpenJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspDidOpenResponse, error) {
	return m.lspDidOpenFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) LspDocumentSymbolsWithResponse(ctx context.Context, sandboxID apis.SandboxID, params *apis.LspDocumentSymbolsParams, editors ...apis.RequestEditorFn) (*apis.LspDocumentSymbolsResponse, error) {
	return m.lspDocumentSymbolsFn(ctx, sandboxID, params, editors...)
}

func (m *mockAPI) LspStartWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.LspStartResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) LspStartWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.LspStartJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspStartResponse, error) {
	return m.lspStartFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) LspStopWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.LspStopResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) LspStopWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.LspStopJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspStopResponse, error) {
	return m.lspStopFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) ExecuteCommandWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.ExecuteCommandResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) ExecuteCommandWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.ExecuteCommandJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.ExecuteCommandResponse, error) {
	return m.executeCommandFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) CreateSessionWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.CreateSessionResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) CreateSessionWithResponse(ctx context.Context, sandboxID apis.SandboxID, body apis.CreateSessionJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.CreateSessionResponse, error) {
	return m.createSessionFn(ctx, sandboxID, body, editors...)
}

func (m *mockAPI) DeleteSessionWithResponse(ctx context.Context, sandboxID apis.SandboxID, sessionID apis.SessionID, editors ...apis.RequestEditorFn) (*apis.DeleteSessionResponse, error) {
	return m.deleteSessionFn(ctx, sandboxID, sessionID, editors...)
}

func (m *mockAPI) GetSessionCommandLogsWithResponse(ctx context.Context, sandboxID apis.SandboxID, sessionID apis.SessionID, commandID apis.CommandID, editors ...apis.RequestEditorFn) (*apis.GetSessionCommandLogsResponse, error) {
	return m.getSessionCommandLogsFn(ctx, sandboxID, sessionID, commandID, editors...)
}

func (m *mockAPI) SessionExecuteCommandWithBodyWithResponse(ctx context.Context, sandboxID apis.SandboxID, sessionID apis.SessionID, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.SessionExecuteCommandResponse, error) {
	panic("not implemented")
}

func (m *mockAPI) SessionExecuteCommandWithResponse(ctx context.Context, sandboxID apis.SandboxID, sessionID apis.SessionID, body apis.SessionExecuteCommandJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.SessionExecuteCommandResponse, error) {
	return m.sessionExecuteCommandFn(ctx, sandboxID, sessionID, body, editors...)
}

func (m *mockAPI) GetProjectDirWithResponse(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetProjectDirResponse, error) {
	return m.getProjectDirFn(ctx, sandboxID, editors...)
}

func newTestClient(api apis.ClientWithResponsesInterface) *Client {
	return &Client{
		config: &Config{APIKey: "test-key", Endpoint: DefaultEndpoint, Domain: DefaultDomain},
		api:    api,
	}
}

func newTestSandbox(c *Client, id string) *Sandbox {
	return newSandbox(c, &apis.Sandbox{Id: id})
}

// --- Client.Create ---

func TestCreate(t *testing.T) {
	var gotBody apis.CreateSandboxJSONRequestBody
	mock := &mockAPI{
		createSandboxFn: func(ctx context.Context, body apis.CreateSandboxJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.CreateSandboxResponse, error) {
			gotBody = body
			return &apis.CreateSandboxResponse{
				JSON200:      &apis.Sandbox{Id: "sb-123", State: apis.SandboxStateCreating},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	c := newTestClient(mock)
	sb, err := c.Create(context.Background(), CreateParams{
		Labels: map[string]string{"project": "demo"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.ID() != "sb-123" {
		t.Errorf("expected sandbox ID 'sb-123', got %q", sb.ID())
	}
	if gotBody.Image == nil || *gotBody.Image != DefaultImage {
		t.Errorf("expected default image %q, got %v", DefaultImage, gotBody.Image)
	}
	if gotBody.User == nil || *gotBody.User != DefaultUser {
		t.Errorf("expected default user %q, got %v", DefaultUser, gotBody.User)
	}
	if gotBody.Labels == nil || (*gotBody.Labels)["project"] != "demo" {
		t.Errorf("expected labels to be forwarded, got %v", gotBody.Labels)
	}
}

func TestCreateInvalidTarget(t *testing.T) {
	c := newTestClient(&mockAPI{})
	_, err := c.Create(context.Background(), CreateParams{Target: "mars"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 400 {
		t.Errorf("expected status 400, got %d", apiErr.StatusCode)
	}
}

func TestCreateAPIError(t *testing.T) {
	mock := &mockAPI{
		createSandboxFn: func(ctx context.Context, body apis.CreateSandboxJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.CreateSandboxResponse, error) {
			return &apis.CreateSandboxResponse{
				HTTPResponse: httpResponse(400),
				Body:         []byte(`{"message":"bad request"}`),
			}, nil
		},
	}
	c := newTestClient(mock)
	_, err := c.Create(context.Background(), CreateParams{})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 400 {
		t.Errorf("expected status 400, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "bad request" {
		t.Errorf("expected message 'bad request', got %q", apiErr.Message)
	}
}

// --- Client.Get ---

func TestGet(t *testing.T) {
	mock := &mockAPI{
		getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
			return &apis.GetSandboxResponse{
				JSON200:      &apis.Sandbox{Id: sandboxID, State: apis.SandboxStateStarted},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	c := newTestClient(mock)
	sb, err := c.Get(context.Background(), "sb-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.ID() != "sb-123" {
		t.Errorf("expected sandbox ID 'sb-123', got %q", sb.ID())
	}
}

func TestClientDelete(t *testing.T) {
	var gotID string
	var gotForce *bool
	mock := &mockAPI{
		deleteSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.DeleteSandboxParams, editors ...apis.RequestEditorFn) (*apis.DeleteSandboxResponse, error) {
			gotID = sandboxID
			gotForce = params.Force
			return &apis.DeleteSandboxResponse{HTTPResponse: httpResponse(204)}, nil
		},
	}
	c := newTestClient(mock)

	if err := c.Delete(context.Background(), "sb-123", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "sb-123" {
		t.Errorf("expected sandbox id 'sb-123', got %q", gotID)
	}
	if gotForce == nil || !*gotForce {
		t.Error("expected force flag to be forwarded")
	}
}

func TestClientDeleteAPIError(t *testing.T) {
	mock := &mockAPI{
		deleteSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.DeleteSandboxParams, editors ...apis.RequestEditorFn) (*apis.DeleteSandboxResponse, error) {
			return &apis.DeleteSandboxResponse{
				HTTPResponse: httpResponse(404),
				Body:         []byte(`{"message":"sandbox not found"}`),
			}, nil
		},
	}
	c := newTestClient(mock)

	err := c.Delete(context.Background(), "sb-missing", false)
	if err == nil {
		t.Fatal("expected error")
	}
	if !isNotFoundError(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	mock := &mockAPI{
		getSandboxFn: func(ctx context.Context, sandboxID apis.SandboxID, editors ...apis.RequestEditorFn) (*apis.GetSandboxResponse, error) {
			return &apis.GetSandboxResponse{
				HTTPResponse: httpResponse(404),
				Body:         []byte(`{"message":"sandbox not found"}`),
			}, nil
		},
	}
	c := newTestClient(mock)
	_, err := c.Get(context.Background(), "sb-missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !isNotFoundError(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

// --- Client.List ---

func TestList(t *testing.T) {
	var gotLabels *string
	mock := &mockAPI{
		listSandboxesFn: func(ctx context.Context, params *apis.ListSandboxesParams, editors ...apis.RequestEditorFn) (*apis.ListSandboxesResponse, error) {
			gotLabels = params.Labels
			list := []apis.Sandbox{
				{Id: "sb-1", State: apis.SandboxStateStarted},
				{Id: "sb-2", State: apis.SandboxStateStopped},
			}
			return &apis.ListSandboxesResponse{
				JSON200:      &list,
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	c := newTestClient(mock)
	sandboxes, err := c.List(context.Background(), map[string]string{"project": "demo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sandboxes) != 2 {
		t.Errorf("expected 2 sandboxes, got %d", len(sandboxes))
	}
	if gotLabels == nil || *gotLabels != `{"project":"demo"}` {
		t.Errorf("expected JSON encoded labels filter, got %v", gotLabels)
	}
}

func TestListNoFilter(t *testing.T) {
	mock := &mockAPI{
		listSandboxesFn: func(ctx context.Context, params *apis.ListSandboxesParams, editors ...apis.RequestEditorFn) (*apis.ListSandboxesResponse, error) {
			if params.Labels != nil {
				t.Errorf("expected nil labels filter, got %q", *params.Labels)
			}
			list := []apis.Sandbox{}
			return &apis.ListSandboxesResponse{JSON200: &list, HTTPResponse: httpResponse(200)}, nil
		},
	}
	c := newTestClient(mock)
	if _, err := c.List(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
