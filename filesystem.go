package sandbox

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/sandboxhq/sandbox/apis"
)

// uploadConcurrency 是批量上传的最大并发数。
const uploadConcurrency = 8

// FileSystem 提供沙箱内的文件系统操作。
// 通过 Sandbox.FS() 获取实例。
type FileSystem struct {
	sandbox *Sandbox
}

func newFileSystem(s *Sandbox) *FileSystem {
	return &FileSystem{sandbox: s}
}

// FileUpload 批量上传中的单个文件。
type FileUpload struct {
	// Path 是沙箱内的目标路径。
	Path string
	// Content 是文件内容。
	Content []byte
}

// FileEntry 文件或目录的元信息。
type FileEntry struct {
	Name        string
	IsDir       bool
	Size        int64
	Mode        string
	Permissions string
	Owner       string
	Group       string
	ModTime     string
}

func fileEntryFromAPI(f *apis.FileInfo) *FileEntry {
	if f == nil {
		return nil
	}
	return &FileEntry{
		Name:        f.Name,
		IsDir:       f.IsDir,
		Size:        f.Size,
		Mode:        f.Mode,
		Permissions: f.Permissions,
		Owner:       f.Owner,
		Group:       f.Group,
		ModTime:     f.ModTime,
	}
}

// SearchMatch 文件内容搜索的单条匹配结果。
type SearchMatch struct {
	File    string
	Line    int
	Content string
}

// ReplaceOutcome 批量替换中单个文件的处理结果。
type ReplaceOutcome struct {
	File    string
	Success bool
	Error   string
}

// FilePermissions 文件权限修改参数，零值字段保持不变。
type FilePermissions struct {
	Mode  string
	Owner string
	Group string
}

// ListDir 列出指定目录下的文件和子目录。
func (f *FileSystem) ListDir(ctx context.Context, path string) ([]*FileEntry, error) {
	resp, err := f.sandbox.client.api.ListFilesWithResponse(ctx, f.sandbox.id, &apis.ListFilesParams{Path: &path})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	entries := make([]*FileEntry, 0, len(*resp.JSON200))
	for i := range *resp.JSON200 {
		entries = append(entries, fileEntryFromAPI(&(*resp.JSON200)[i]))
	}
	return entries, nil
}

// Stat 返回指定路径的文件元信息。
func (f *FileSystem) Stat(ctx context.Context, path string) (*FileEntry, error) {
	resp, err := f.sandbox.client.api.GetFileInfoWithResponse(ctx, f.sandbox.id, &apis.GetFileInfoParams{Path: path})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return fileEntryFromAPI(resp.JSON200), nil
}

// Exists 检查文件或目录是否存在。
func (f *FileSystem) Exists(ctx context.Context, path string) (bool, error) {
	_, err := f.Stat(ctx, path)
	if err != nil {
		if isNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MkDir 创建目录，mode 为八进制权限字符串（如 "755"）。
func (f *FileSystem) MkDir(ctx context.Context, path, mode string) error {
	if mode == "" {
		mode = "755"
	}
	resp, err := f.sandbox.client.api.CreateFolderWithResponse(ctx, f.sandbox.id, &apis.CreateFolderParams{
		Path: path,
		Mode: mode,
	})
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// Remove 删除文件或目录，目录会递归删除。
func (f *FileSystem) Remove(ctx context.Context, path string) error {
	recursive := true
	resp, err := f.sandbox.client.api.DeleteFileWithResponse(ctx, f.sandbox.id, &apis.DeleteFileParams{
		Path:      path,
		Recursive: &recursive,
	})
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// Move 移动或重命名文件/目录。
func (f *FileSystem) Move(ctx context.Context, source, destination string) error {
	resp, err := f.sandbox.client.api.MoveFileWithResponse(ctx, f.sandbox.id, &apis.MoveFileParams{
		Source:      source,
		Destination: destination,
	})
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// SetPermissions 修改文件的权限和属主。
func (f *FileSystem) SetPermissions(ctx context.Context, path string, perms FilePermissions) error {
	params := &apis.SetFilePermissionsParams{Path: path}
	if perms.Mode != "" {
		params.Mode = &perms.Mode
	}
	if perms.Owner != "" {
		params.Owner = &perms.Owner
	}
	if perms.Group != "" {
		params.Group = &perms.Group
	}
	resp, err := f.sandbox.client.api.SetFilePermissionsWithResponse(ctx, f.sandbox.id, params)
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// Download 下载文件内容。
func (f *FileSystem) Download(ctx context.Context, path string) ([]byte, error) {
	resp, err := f.sandbox.client.api.DownloadFileWithResponse(ctx, f.sandbox.id, &apis.DownloadFileParams{Path: path})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return resp.Body, nil
}

// Upload 将内容上传为沙箱内的文件，必要的父目录由服务端创建。
func (f *FileSystem) Upload(ctx context.Context, path string, content []byte) error {
	body, contentType, err := multipartFileBody(path, content)
	if err != nil {
		return err
	}
	resp, err := f.sandbox.client.api.UploadFileWithBodyWithResponse(ctx, f.sandbox.id,
		&apis.UploadFileParams{Path: path}, contentType, body)
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// UploadFiles 并发上传多个文件，任一文件失败则整体返回错误。
func (f *FileSystem) UploadFiles(ctx context.Context, files []FileUpload) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)
	for _, file := range files {
		file := file
		g.Go(func() error {
			return f.Upload(ctx, file.Path, file.Content)
		})
	}
	return g.Wait()
}

// SearchFiles 按文件名模式搜索文件，返回匹配的路径列表。
func (f *FileSystem) SearchFiles(ctx context.Context, path, pattern string) ([]string, error) {
	resp, err := f.sandbox.client.api.SearchFilesWithResponse(ctx, f.sandbox.id, &apis.SearchFilesParams{
		Path:    path,
		Pattern: pattern,
	})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return resp.JSON200.Files, nil
}

// FindFiles 在文件内容中搜索模式，返回匹配的行。
func (f *FileSystem) FindFiles(ctx context.Context, path, pattern string) ([]SearchMatch, error) {
	resp, err := f.sandbox.client.api.FindInFilesWithResponse(ctx, f.sandbox.id, &apis.FindInFilesParams{
		Path:    path,
		Pattern: pattern,
	})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	matches := make([]SearchMatch, 0, len(*resp.JSON200))
	for _, m := range *resp.JSON200 {
		matches = append(matches, SearchMatch{File: m.File, Line: m.Line, Content: m.Content})
	}
	return matches, nil
}

// ReplaceInFiles 在多个文件中替换模式，返回每个文件的处理结果。
func (f *FileSystem) ReplaceInFiles(ctx context.Context, files []string, pattern, newValue string) ([]ReplaceOutcome, error) {
	resp, err := f.sandbox.client.api.ReplaceInFilesWithResponse(ctx, f.sandbox.id, apis.ReplaceInFilesJSONRequestBody{
		Files:    files,
		Pattern:  pattern,
		NewValue: newValue,
	})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	outcomes := make([]ReplaceOutcome, 0, len(*resp.JSON200))
	for _, r := range *resp.JSON200 {
		outcome := ReplaceOutcome{File: strValue(r.File), Error: strValue(r.Error)}
		if r.Success != nil {
			outcome.Success = *r.Success
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// multipartFileBody 将文件内容封装为 multipart/form-data 请求体。
func multipartFileBody(path string, content []byte) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("file", path)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// expectOK 检查写操作的响应码。
func expectOK(statusCode int, body []byte) error {
	if statusCode != http.StatusOK && statusCode != http.StatusCreated && statusCode != http.StatusNoContent {
		return newAPIError(statusCode, body)
	}
	return nil
}
