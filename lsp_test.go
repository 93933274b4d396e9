package sandbox

import (
	"context"
	"testing"

	"github.com/sandboxhq/sandbox/apis"
)

func TestLspStartStop(t *testing.T) {
	var startedBody, stoppedBody apis.LspStartJSONRequestBody
	mock := &mockAPI{
		lspStartFn: func(ctx context.Context, sandboxID apis.SandboxID, body apis.LspStartJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspStartResponse, error) {
			startedBody = body
			return &apis.LspStartResponse{HTTPResponse: httpResponse(204)}, nil
		},
		lspStopFn: func(ctx context.Context, sandboxID apis.SandboxID, body apis.LspStopJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspStopResponse, error) {
			stoppedBody = body
			return &apis.LspStopResponse{HTTPResponse: httpResponse(204)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	lsp := sb.CreateLspServer("typescript", "/workspace/repo")
	if err := lsp.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := lsp.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if startedBody.LanguageId != "typescript" || startedBody.PathToProject != "/workspace/repo" {
		t.Errorf("unexpected start body %+v", startedBody)
	}
	if stoppedBody != startedBody {
		t.Errorf("expected stop body to match start body, got %+v", stoppedBody)
	}
}

func TestLspCompletions(t *testing.T) {
	mock := &mockAPI{
		lspCompletionsFn: func(ctx context.Context, sandboxID apis.SandboxID, body apis.LspCompletionsJSONRequestBody, editors ...apis.RequestEditorFn) (*apis.LspCompletionsResponse, error) {
			if body.Position.Line != 10 || body.Position.Character != 4 {
				t.Errorf("unexpected position %+v", body.Position)
			}
			kind := 3
			return &apis.LspCompletionsResponse{
				JSON200: &apis.CompletionList{
					Items: []apis.CompletionItem{{Label: "fmt.Println", Kind: &kind}},
				},
				HTTPResponse: httpResponse(200),
			}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	lsp := sb.CreateLspServer("go", "/workspace/repo")
	list, err := lsp.Completions(context.Background(), "file:///workspace/repo/main.go", Position{Line: 10, Character: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Label != "fmt.Println" || list.Items[0].Kind != 3 {
		t.Errorf("unexpected completions %+v", list.Items)
	}
}

func TestLspDocumentSymbols(t *testing.T) {
	mock := &mockAPI{
		lspDocumentSymbolsFn: func(ctx context.Context, sandboxID apis.SandboxID, params *apis.LspDocumentSymbolsParams, editors ...apis.RequestEditorFn) (*apis.LspDocumentSymbolsResponse, error) {
			if params.LanguageId != "go" {
				t.Errorf("expected languageId 'go', got %q", params.LanguageId)
			}
			symbols := []apis.LspSymbol{{Name: "main", Kind: 12, Location: "main.go:5"}}
			return &apis.LspDocumentSymbolsResponse{JSON200: &symbols, HTTPResponse: httpResponse(200)}, nil
		},
	}
	sb := newTestSandbox(newTestClient(mock), "sb-123")

	lsp := sb.CreateLspServer("go", "/workspace/repo")
	symbols, err := lsp.DocumentSymbols(context.Background(), "file:///workspace/repo/main.go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(symbols) != 1 || symbols[0].Name != "main" {
		t.Errorf("unexpected symbols %+v", symbols)
	}
}
