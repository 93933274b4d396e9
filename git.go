package sandbox

import (
	"context"

	"github.com/sandboxhq/sandbox/apis"
)

// Git 提供沙箱内仓库的 git 操作。
// 通过 Sandbox.Git() 获取实例。
type Git struct {
	sandbox *Sandbox
}

func newGit(s *Sandbox) *Git {
	return &Git{sandbox: s}
}

// CloneParams git clone 参数。
type CloneParams struct {
	// URL 仓库地址（必填）。
	URL string
	// Path 沙箱内的目标目录（必填）。
	Path string
	// Branch 要检出的分支，可选。
	Branch string
	// CommitID 要检出的提交，可选，优先于 Branch。
	CommitID string
	// Username / Password 私有仓库的认证信息，可选。
	Username string
	Password string
}

// GitStatus 仓库状态。
type GitStatus struct {
	CurrentBranch   string
	Ahead           int
	Behind          int
	BranchPublished bool
	FileStatus      []GitFileStatus
}

// GitFileStatus 单个文件的 git 状态。
type GitFileStatus struct {
	Name     string
	Staging  string
	Worktree string
	Extra    string
}

// Clone 克隆仓库到沙箱内的指定目录。
func (g *Git) Clone(ctx context.Context, params CloneParams) error {
	body := apis.GitCloneJSONRequestBody{
		Url:  params.URL,
		Path: params.Path,
	}
	if params.Branch != "" {
		body.Branch = &params.Branch
	}
	if params.CommitID != "" {
		body.CommitId = &params.CommitID
	}
	if params.Username != "" {
		body.Username = &params.Username
	}
	if params.Password != "" {
		body.Password = &params.Password
	}
	resp, err := g.sandbox.client.api.GitCloneWithResponse(ctx, g.sandbox.id, body)
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// Add 将文件加入暂存区。files 为相对仓库根目录的路径。
func (g *Git) Add(ctx context.Context, path string, files []string) error {
	resp, err := g.sandbox.client.api.GitAddWithResponse(ctx, g.sandbox.id, apis.GitAddJSONRequestBody{
		Path:  path,
		Files: files,
	})
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// Commit 提交暂存区的修改，返回提交哈希。
func (g *Git) Commit(ctx context.Context, path, message, author, email string) (string, error) {
	resp, err := g.sandbox.client.api.GitCommitWithResponse(ctx, g.sandbox.id, apis.GitCommitJSONRequestBody{
		Path:    path,
		Message: message,
		Author:  author,
		Email:   email,
	})
	if err != nil {
		return "", err
	}
	if resp.JSON200 == nil {
		return "", newAPIError(resp.StatusCode(), resp.Body)
	}
	return resp.JSON200.Hash, nil
}

// Push 推送本地提交到远端。username/password 为空时使用仓库已保存的凭据。
func (g *Git) Push(ctx context.Context, path, username, password string) error {
	resp, err := g.sandbox.client.api.GitPushWithResponse(ctx, g.sandbox.id, gitRepoBody(path, username, password))
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// Pull 从远端拉取更新。
func (g *Git) Pull(ctx context.Context, path, username, password string) error {
	resp, err := g.sandbox.client.api.GitPullWithResponse(ctx, g.sandbox.id, gitRepoBody(path, username, password))
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// Branches 列出仓库的所有分支。
func (g *Git) Branches(ctx context.Context, path string) ([]string, error) {
	resp, err := g.sandbox.client.api.GitBranchListWithResponse(ctx, g.sandbox.id, &apis.GitBranchListParams{Path: path})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return resp.JSON200.Branches, nil
}

// CreateBranch 创建新分支。
func (g *Git) CreateBranch(ctx context.Context, path, name string) error {
	resp, err := g.sandbox.client.api.GitCreateBranchWithResponse(ctx, g.sandbox.id, apis.GitCreateBranchJSONRequestBody{
		Path: path,
		Name: name,
	})
	if err != nil {
		return err
	}
	return expectOK(resp.StatusCode(), resp.Body)
}

// Status 返回仓库状态。
func (g *Git) Status(ctx context.Context, path string) (*GitStatus, error) {
	resp, err := g.sandbox.client.api.GitStatusWithResponse(ctx, g.sandbox.id, &apis.GitStatusParams{Path: path})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return gitStatusFromAPI(resp.JSON200), nil
}

func gitStatusFromAPI(d *apis.GitStatusResult) *GitStatus {
	status := &GitStatus{CurrentBranch: d.CurrentBranch}
	if d.Ahead != nil {
		status.Ahead = *d.Ahead
	}
	if d.Behind != nil {
		status.Behind = *d.Behind
	}
	if d.BranchPublished != nil {
		status.BranchPublished = *d.BranchPublished
	}
	for _, f := range d.FileStatus {
		status.FileStatus = append(status.FileStatus, GitFileStatus{
			Name:     f.Name,
			Staging:  f.Staging,
			Worktree: f.Worktree,
			Extra:    f.Extra,
		})
	}
	return status
}

func gitRepoBody(path, username, password string) apis.GitRepoRequest {
	body := apis.GitRepoRequest{Path: path}
	if username != "" {
		body.Username = &username
	}
	if password != "" {
		body.Password = &password
	}
	return body
}
