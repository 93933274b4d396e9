package sandbox

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"sync/atomic"
	"testing"

	"github.com/sandboxhq/sandbox/apis"
)

func TestListDir(t *testing.T) {
	mock := &mockAPI{
		listFilesFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.ListFilesParams, editors ...apis.RequestEditorFn) (*apis.ListFilesResponse, error) {
			if params.Path == nil || *params.Path != "/workspace" {
				t.Errorf("expected path '/workspace', got %v", params.Path)
			}
			list := []apis.FileInfo{
				{Name: "main.go", Size: 120},
				{Name: "pkg", IsDir: true},
			}
			return &apis.ListFilesResponse{JSON200: &list, HTTPResponse: httpResponse(200)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	entries, err := sb.FS().ListDir(context.Background(), "/workspace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "main.go" || entries[0].IsDir {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
	if !entries[1].IsDir {
		t.Errorf("expected second entry to be a directory")
	}
}

func TestUpload(t *testing.T) {
	var gotPath string
	var gotContent []byte
	mock := &mockAPI{
		uploadFileWithBodyFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.UploadFileParams, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.UploadFileResponse, error) {
			gotPath = params.Path
			mediaType, mtParams, err := mime.ParseMediaType(contentType)
			if err != nil || mediaType != "multipart/form-data" {
				t.Fatalf("expected multipart/form-data, got %q", contentType)
			}
			r := multipart.NewReader(body, mtParams["boundary"])
			part, err := r.NextPart()
			if err != nil {
				t.Fatalf("read part: %v", err)
			}
			gotContent, _ = io.ReadAll(part)
			return &apis.UploadFileResponse{HTTPResponse: httpResponse(200)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	err := sb.FS().Upload(context.Background(), "/workspace/hello.txt", []byte("Hello!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/workspace/hello.txt" {
		t.Errorf("expected path query param, got %q", gotPath)
	}
	if !bytes.Equal(gotContent, []byte("Hello!")) {
		t.Errorf("expected uploaded content 'Hello!', got %q", gotContent)
	}
}

func TestUploadFiles(t *testing.T) {
	var uploads atomic.Int32
	mock := &mockAPI{
		uploadFileWithBodyFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.UploadFileParams, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.UploadFileResponse, error) {
			uploads.Add(1)
			return &apis.UploadFileResponse{HTTPResponse: httpResponse(200)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	err := sb.FS().UploadFiles(context.Background(), []FileUpload{
		{Path: "/a.txt", Content: []byte("a")},
		{Path: "/b.txt", Content: []byte("b")},
		{Path: "/c.txt", Content: []byte("c")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uploads.Load() != 3 {
		t.Errorf("expected 3 uploads, got %d", uploads.Load())
	}
}

func TestUploadFilesPartialFailure(t *testing.T) {
	mock := &mockAPI{
		uploadFileWithBodyFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.UploadFileParams, contentType string, body io.Reader, editors ...apis.RequestEditorFn) (*apis.UploadFileResponse, error) {
			if params.Path == "/bad.txt" {
				return &apis.UploadFileResponse{
					HTTPResponse: httpResponse(500),
					Body:         []byte(`{"message":"disk full"}`),
				}, nil
			}
			return &apis.UploadFileResponse{HTTPResponse: httpResponse(200)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	err := sb.FS().UploadFiles(context.Background(), []FileUpload{
		{Path: "/ok.txt", Content: []byte("x")},
		{Path: "/bad.txt", Content: []byte("y")},
	})
	if err == nil {
		t.Fatal("expected error from failed upload")
	}
}

func TestDownload(t *testing.T) {
	mock := &mockAPI{
		downloadFileFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.DownloadFileParams, editors ...apis.RequestEditorFn) (*apis.DownloadFileResponse, error) {
			return &apis.DownloadFileResponse{
				Body:         []byte("file content"),
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	content, err := sb.FS().Download(context.Background(), "/workspace/hello.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != "file content" {
		t.Errorf("unexpected content %q", content)
	}
}

func TestExists(t *testing.T) {
	mock := &mockAPI{
		getFileInfoFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.GetFileInfoParams, editors ...apis.RequestEditorFn) (*apis.GetFileInfoResponse, error) {
			if params.Path == "/workspace/main.go" {
				info := apis.FileInfo{Name: "main.go", Size: 120}
				return &apis.GetFileInfoResponse{JSON200: &info, HTTPResponse: httpResponse(200)}, nil
			}
			return &apis.GetFileInfoResponse{
				HTTPResponse: httpResponse(404),
				Body:         []byte(`{"message":"file not found"}`),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	ok, err := sb.FS().Exists(context.Background(), "/workspace/main.go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected existing file to report true")
	}

	ok, err = sb.FS().Exists(context.Background(), "/workspace/missing.go")
	if err != nil {
		t.Fatalf("expected not-found to be swallowed, got %v", err)
	}
	if ok {
		t.Error("expected missing file to report false")
	}
}

func TestExistsQueryFailure(t *testing.T) {
	mock := &mockAPI{
		getFileInfoFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.GetFileInfoParams, editors ...apis.RequestEditorFn) (*apis.GetFileInfoResponse, error) {
			return &apis.GetFileInfoResponse{
				HTTPResponse: httpResponse(500),
				Body:         []byte(`{"message":"internal error"}`),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	_, err := sb.FS().Exists(context.Background(), "/workspace/main.go")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 500 {
		t.Fatalf("expected status 500 error, got %v", err)
	}
}

func TestRemoveRecursive(t *testing.T) {
	mock := &mockAPI{
		deleteFileFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.DeleteFileParams, editors ...apis.RequestEditorFn) (*apis.DeleteFileResponse, error) {
			if params.Recursive == nil || !*params.Recursive {
				t.Error("expected recursive delete")
			}
			return &apis.DeleteFileResponse{HTTPResponse: httpResponse(204)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	if err := sb.FS().Remove(context.Background(), "/workspace/tmp"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMkDirDefaultMode(t *testing.T) {
	mock := &mockAPI{
		createFolderFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.CreateFolderParams, editors ...apis.RequestEditorFn) (*apis.CreateFolderResponse, error) {
			if params.Mode != "755" {
				t.Errorf("expected default mode '755', got %q", params.Mode)
			}
			return &apis.CreateFolderResponse{HTTPResponse: httpResponse(201)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	if err := sb.FS().MkDir(context.Background(), "/workspace/newdir", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFindFiles(t *testing.T) {
	mock := &mockAPI{
		findInFilesFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.FindInFilesParams, editors ...apis.RequestEditorFn) (*apis.FindInFilesResponse, error) {
			matches := []apis.Match{
				{File: "/workspace/main.go", Line: 10, Content: "func main() {"},
			}
			return &apis.FindInFilesResponse{JSON200: &matches, HTTPResponse: httpResponse(200)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	matches, err := sb.FS().FindFiles(context.Background(), "/workspace", "func main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Line != 10 {
		t.Errorf("unexpected matches %+v", matches)
	}
}

func TestReplaceInFiles(t *testing.T) {
	mock := &mockAPI{
		replaceInFilesFn: func(ctx context.Context, sandboxID apis.SandboxID, body apis.ReplaceInFilesJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.ReplaceInFilesResponse, error) {
			ok := true
			file := body.Files[0]
			results := []apis.ReplaceResult{{File: &file, Success: &ok}}
			return &apis.ReplaceInFilesResponse{JSON200: &results, HTTPResponse: httpResponse(200)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	outcomes, err := sb.FS().ReplaceInFiles(context.Background(), []string{"/workspace/main.go"}, "foo", "bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 1 || !outcomes[0].Success {
		t.Errorf("unexpected outcomes %+v", outcomes)
	}
}
