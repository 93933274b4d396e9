package sandbox

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/sandboxhq/sandbox/apis"
)

// Sandbox 表示一个远程沙箱实例。
// 持有客户端引用，用于执行生命周期操作和工具链（文件、命令、git、LSP）访问。
type Sandbox struct {
	id string

	client *Client

	// 工具链子模块（懒初始化）
	fsOnce sync.Once
	fs     *FileSystem

	gitOnce sync.Once
	git     *Git

	processOnce sync.Once
	process     *Process

	// rootDir 缓存沙箱内默认用户的项目根目录，仅在查询成功后写入。
	rootDirMu sync.Mutex
	rootDir   string
}

// newSandbox 从 API 响应创建 Sandbox 实例。
func newSandbox(c *Client, d *apis.Sandbox) *Sandbox {
	return &Sandbox{id: d.Id, client: c}
}

// ID 返回沙箱 ID。
func (s *Sandbox) ID() string { return s.id }

// Info 返回沙箱的最新详细信息。
func (s *Sandbox) Info(ctx context.Context) (*Info, error) {
	resp, err := s.client.api.GetSandboxWithResponse(ctx, s.id)
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return infoFromAPI(resp.JSON200), nil
}

// IsStarted 检查沙箱是否处于 started 状态。
func (s *Sandbox) IsStarted(ctx context.Context) (bool, error) {
	info, err := s.Info(ctx)
	if err != nil {
		return false, err
	}
	return info.State == StateStarted, nil
}

// Start 启动沙箱并等待其进入 started 状态。
// 等待行为（超时、轮询间隔）可通过 opts 调整。
func (s *Sandbox) Start(ctx context.Context, opts ...PollOption) (*Info, error) {
	resp, err := s.client.api.StartSandboxWithResponse(ctx, s.id)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return s.WaitForStarted(ctx, opts...)
}

// Stop 停止沙箱并等待其进入 stopped 状态。
func (s *Sandbox) Stop(ctx context.Context, opts ...PollOption) (*Info, error) {
	resp, err := s.client.api.StopSandboxWithResponse(ctx, s.id)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return s.WaitForStopped(ctx, opts...)
}

// Delete 删除沙箱。force 为 true 时强制删除运行中的沙箱。
func (s *Sandbox) Delete(ctx context.Context, force bool) error {
	params := &apis.DeleteSandboxParams{}
	if force {
		params.Force = &force
	}
	resp, err := s.client.api.DeleteSandboxWithResponse(ctx, s.id, params)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return newAPIError(resp.StatusCode(), resp.Body)
	}
	return nil
}

// Archive 归档沙箱。沙箱必须处于 stopped 状态。
// 归档后沙箱的文件系统会迁移到低成本存储，再次启动时恢复。
func (s *Sandbox) Archive(ctx context.Context) error {
	resp, err := s.client.api.ArchiveSandboxWithResponse(ctx, s.id)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return newAPIError(resp.StatusCode(), resp.Body)
	}
	return nil
}

// SetLabels 整体替换沙箱的标签，返回替换后的标签集。
func (s *Sandbox) SetLabels(ctx context.Context, labels map[string]string) (map[string]string, error) {
	resp, err := s.client.api.ReplaceLabelsWithResponse(ctx, s.id, apis.ReplaceLabelsJSONRequestBody{
		Labels: labels,
	})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return resp.JSON200.Labels, nil
}

// SetAutostopInterval 设置沙箱的自动停止间隔（分钟）。
// 0 表示禁用自动停止，负值非法。
func (s *Sandbox) SetAutostopInterval(ctx context.Context, interval int32) error {
	if interval < 0 {
		return fmt.Errorf("sandbox %s: %w", s.id, ErrNegativeAutostopInterval)
	}
	resp, err := s.client.api.SetAutostopIntervalWithResponse(ctx, s.id, interval)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return newAPIError(resp.StatusCode(), resp.Body)
	}
	return nil
}

// GetPreviewLink 返回访问沙箱指定端口的预览链接。
// 私有沙箱的链接会附带访问令牌。
func (s *Sandbox) GetPreviewLink(ctx context.Context, port int32) (*PreviewURL, error) {
	resp, err := s.client.api.GetPortPreviewUrlWithResponse(ctx, s.id, port)
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return previewURLFromAPI(resp.JSON200), nil
}

// GetUserRootDir 返回沙箱内默认用户的项目根目录。
// 结果在 Sandbox 实例生命周期内缓存。
func (s *Sandbox) GetUserRootDir(ctx context.Context) (string, error) {
	s.rootDirMu.Lock()
	defer s.rootDirMu.Unlock()
	if s.rootDir != "" {
		return s.rootDir, nil
	}
	resp, err := s.client.api.GetProjectDirWithResponse(ctx, s.id)
	if err != nil {
		return "", err
	}
	if resp.JSON200 == nil {
		return "", newAPIError(resp.StatusCode(), resp.Body)
	}
	s.rootDir = strValue(resp.JSON200.Dir)
	return s.rootDir, nil
}

// FS 返回文件系统操作接口。
func (s *Sandbox) FS() *FileSystem {
	s.fsOnce.Do(func() {
		s.fs = newFileSystem(s)
	})
	return s.fs
}

// Git 返回 git 操作接口。
func (s *Sandbox) Git() *Git {
	s.gitOnce.Do(func() {
		s.git = newGit(s)
	})
	return s.git
}

// Process 返回命令执行操作接口。
func (s *Sandbox) Process() *Process {
	s.processOnce.Do(func() {
		s.process = newProcess(s)
	})
	return s.process
}

// CreateLspServer 创建一个 LSP 服务器句柄。
// languageID 为语言标识（如 "typescript"），pathToProject 为项目根目录。
func (s *Sandbox) CreateLspServer(languageID, pathToProject string) *LspServer {
	return newLspServer(s, languageID, pathToProject)
}
