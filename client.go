package sandbox

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sandboxhq/sandbox/apis"
	"github.com/sandboxhq/sandbox/internal/configfile"
	"github.com/sandboxhq/sandbox/internal/env"
)

// DefaultEndpoint 是沙箱 API 的默认服务地址。
const DefaultEndpoint = "https://app.sandboxhq.io/api"

// DefaultDomain 是沙箱预览链接的默认域名后缀。
const DefaultDomain = "sandboxhq.io"

// ErrMissingAPIKey 表示未能从配置、环境变量或配置文件中解析到 API 密钥。
var ErrMissingAPIKey = errors.New("api key is required: set Config.APIKey, the SANDBOX_API_KEY environment variable, or a config file profile")

// Config 是沙箱客户端的配置。
// 字段为空时按 环境变量 → 配置文件 的顺序解析默认值。
type Config struct {
	// APIKey 是用于身份认证的 API 密钥。
	// 为空时依次尝试 SANDBOX_API_KEY 环境变量和配置文件。
	APIKey string

	// Endpoint 是沙箱 API 服务地址（可选，默认值：DefaultEndpoint）。
	Endpoint string

	// Domain 是沙箱预览链接的域名后缀（可选，默认值：DefaultDomain）。
	Domain string

	// HTTPClient 自定义 HTTP 客户端（可选，默认值：http.DefaultClient）。
	HTTPClient *http.Client
}

// resolve 按 显式配置 → 环境变量 → 配置文件 → 内置默认值 的顺序补全配置。
func (c *Config) resolve() error {
	if c.APIKey == "" {
		c.APIKey = env.APIKeyFromEnvironment()
	}
	if c.APIKey == "" {
		apiKey, err := configfile.APIKeyFromConfigFile()
		if err != nil {
			return fmt.Errorf("load config file: %w", err)
		}
		c.APIKey = apiKey
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	if c.Endpoint == "" {
		c.Endpoint = env.EndpointFromEnvironment()
	}
	if c.Endpoint == "" {
		c.Endpoint, _ = configfile.EndpointFromConfigFile()
	}
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}

	if c.Domain == "" {
		c.Domain = env.DomainFromEnvironment()
	}
	if c.Domain == "" {
		c.Domain, _ = configfile.DomainFromConfigFile()
	}
	if c.Domain == "" {
		c.Domain = DefaultDomain
	}
	return nil
}

// Client 是沙箱 SDK 的高级客户端。
type Client struct {
	config *Config
	api    apis.ClientWithResponsesInterface
}

// NewClient 创建一个新的沙箱客户端。
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = &Config{}
	}
	if err := config.resolve(); err != nil {
		return nil, err
	}

	opts := []apis.ClientOption{
		apis.WithRequestEditorFn(bearerAuthEditor(config.APIKey)),
	}
	if config.HTTPClient != nil {
		opts = append(opts, apis.WithHTTPClient(config.HTTPClient))
	}

	client, err := apis.NewClientWithResponses(config.Endpoint, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{config: config, api: client}, nil
}

// bearerAuthEditor 返回一个 RequestEditorFn，用于注入 Bearer 认证头。
func bearerAuthEditor(apiKey string) apis.RequestEditorFn {
	return func(ctx context.Context, req *http.Request) error {
		req.Header.Set("Authorization", "Bearer "+apiKey)
		return nil
	}
}

// API 返回底层 API 客户端，用于直接访问生成的 API 方法。
func (c *Client) API() apis.ClientWithResponsesInterface {
	return c.api
}

// Create 创建一个新的沙箱。
// 未指定的字段使用默认值（镜像 DefaultImage、用户 DefaultUser）。
func (c *Client) Create(ctx context.Context, params CreateParams) (*Sandbox, error) {
	if err := defaultValidator.Validate(&params); err != nil {
		return nil, err
	}
	resp, err := c.api.CreateSandboxWithResponse(ctx, params.toAPI())
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return newSandbox(c, resp.JSON200), nil
}

// CreateAndWait 创建沙箱并等待其进入 started 状态。
func (c *Client) CreateAndWait(ctx context.Context, params CreateParams, opts ...PollOption) (*Sandbox, *Info, error) {
	sb, err := c.Create(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("create sandbox: %w", err)
	}
	info, err := sb.WaitForStarted(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}
	return sb, info, nil
}

// Get 获取已有沙箱的句柄。
func (c *Client) Get(ctx context.Context, sandboxID string) (*Sandbox, error) {
	resp, err := c.api.GetSandboxWithResponse(ctx, sandboxID)
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	return newSandbox(c, resp.JSON200), nil
}

// Delete 按 ID 删除沙箱。force 为 true 时强制删除运行中的沙箱。
func (c *Client) Delete(ctx context.Context, sandboxID string, force bool) error {
	params := &apis.DeleteSandboxParams{}
	if force {
		params.Force = &force
	}
	resp, err := c.api.DeleteSandboxWithResponse(ctx, sandboxID, params)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return newAPIError(resp.StatusCode(), resp.Body)
	}
	return nil
}

// List 列出所有沙箱，labels 非空时按标签过滤。
func (c *Client) List(ctx context.Context, labels map[string]string) ([]*Sandbox, error) {
	filter, err := labelsFilter(labels)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.ListSandboxesWithResponse(ctx, &apis.ListSandboxesParams{Labels: filter})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.StatusCode(), resp.Body)
	}
	sandboxes := make([]*Sandbox, 0, len(*resp.JSON200))
	for i := range *resp.JSON200 {
		sandboxes = append(sandboxes, newSandbox(c, &(*resp.JSON200)[i]))
	}
	return sandboxes, nil
}
