package sandbox

import (
	"context"

	"github.com/sandboxhq/sandbox/apis"
)

// LspServer 表示沙箱内一个语言服务器实例。
// 通过 Sandbox.CreateLspServer 创建，使用前需调用 Start。
type LspServer struct {
	sandbox       *Sandbox
	languageID    string
	pathToProject string
}

func newLspServer(s *Sandbox, languageID, pathToProject string) *LspServer {
	return &LspServer{sandbox: s, languageID: languageID, pathToProject: pathToProject}
}

// LanguageID 返回语言标识。
func (l *LspServer) LanguageID() string { return l.languageID }

// Position 文档中的位置（0 起始的行号和列号）。
type Position struct {
	Line      int
	Character int
}

// CompletionItem 单条补全建议。
type CompletionItem struct {
	Label         string
	Kind          int
	Detail        string
	Documentation string
	SortText      string
	FilterText    string
	InsertText    string
}

// CompletionList 补全结果。
type CompletionList struct {
	IsIncomplete bool
	Items        []CompletionItem
}

// SymbolInfo 文档中的符号信息。
type SymbolInfo struct {
	Name     string
	Kind     int
	Location string
}

// Start 启动语言服务器。
func (l *LspServer) Start(ctx context.Context) error {
	resp, err := l.sandbox.client.api.LspStartWithResponse(ctx, l.sandbox.id, l.serverBody())
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// Stop 停止语言服务器。
func (l *LspServer) Stop(ctx context.Context) error {
	resp, err := l.sandbox.client.api.LspStopWithResponse(ctx, l.sandbox.id, l.serverBody())
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// DidOpen 通知语言服务器文件已打开。
// uri 为沙箱内文件路径（file:// 前缀可省略，由服务端补全）。
func (l *LspServer) DidOpen(ctx context.Context, uri string) error {
	resp, err := l.sandbox.client.api.LspDidOpenWithResponse(ctx, l.sandbox.id, l.documentBody(uri))
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// DidClose 通知语言服务器文件已关闭。
func (l *LspServer) DidClose(ctx context.Context, uri string) error {
	resp, err := l.sandbox.client.api.LspDidCloseWithResponse(ctx, l.sandbox.id, l.documentBody(uri))
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// Completions 返回指定位置的补全建议。
func (l *LspServer) Completions(ctx context.Context, uri string, pos Position) (*CompletionList, error) {
	resp, err := l.sandbox.client.api.LspCompletionsWithResponse(ctx, l.sandbox.id, apis.LspCompletionsJSONRequestBody{
		LanguageId:    l.languageID,
		PathToProject: l.pathToProject,
		Uri:           uri,
		Position: apis.LspPosition{
			Line:      pos.Line,
			Character: pos.Character,
		},
	})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return completionListFromAPI(resp.JSON200), nil
}

// DocumentSymbols 返回文件中的符号列表。
func (l *LspServer) DocumentSymbols(ctx context.Context, uri string) ([]SymbolInfo, error) {
	resp, err := l.sandbox.client.api.LspDocumentSymbolsWithResponse(ctx, l.sandbox.id, &apis.LspDocumentSymbolsParams{
		LanguageId:    l.languageID,
		PathToProject: l.pathToProject,
		Uri:           uri,
	})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	symbols := make([]SymbolInfo, 0, len(*resp.JSON200))
	for _, s := range *resp.JSON200 {
		symbols = append(symbols, SymbolInfo{Name: s.Name, Kind: s.Kind, Location: s.Location})
	}
	return symbols, nil
}

func (l *LspServer) serverBody() apis.LspServerRequest {
	return apis.LspServerRequest{
		LanguageId:    l.languageID,
		PathToProject: l.pathToProject,
	}
}

func (l *LspServer) documentBody(uri string) apis.LspDocumentRequest {
	return apis.LspDocumentRequest{
		LanguageId:    l.languageID,
		PathToProject: l.pathToProject,
		Uri:           uri,
	}
}

func completionListFromAPI(d *apis.CompletionList) *CompletionList {
	list := &CompletionList{}
	if d.IsIncomplete != nil {
		list.IsIncomplete = *d.IsIncomplete
	}
	for _, item := range d.Items {
		ci := CompletionItem{
			Label:         item.Label,
			Detail:        strValue(item.Detail),
			Documentation: strValue(item.Documentation),
			SortText:      strValue(item.SortText),
			FilterText:    strValue(item.FilterText),
			InsertText:    strValue(item.InsertText),
		}
		if item.Kind != nil {
			ci.Kind = *item.Kind
		}
		list.Items = append(list.Items, ci)
	}
	return list
}
