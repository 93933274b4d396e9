package sandbox

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sandboxhq/sandbox/apis"
)

// DefaultImage 是创建沙箱时使用的默认镜像。
const DefaultImage = "sandboxhq/base:0.4.3"

// DefaultUser 是沙箱内命令执行和文件操作的默认用户名。
const DefaultUser = "user"

// State 沙箱状态。
type State string

// 沙箱状态常量。
const (
	StatePending   State = "pending"
	StateCreating  State = "creating"
	StateStarting  State = "starting"
	StateStarted   State = "started"
	StateStopping  State = "stopping"
	StateStopped   State = "stopped"
	StateErrored   State = "error"
	StateArchiving State = "archiving"
	StateArchived  State = "archived"
	StateRestoring State = "restoring"
	StateUnknown   State = "unknown"
)

// TargetRegion 沙箱的目标部署区域。
type TargetRegion string

// 目标区域常量。
const (
	TargetEU   TargetRegion = "eu"
	TargetUS   TargetRegion = "us"
	TargetAsia TargetRegion = "asia"
)

// Resources 沙箱的资源配额。
type Resources struct {
	// CPU 核数（如 "1"、"2"）。
	CPU string
	// GPU 数量，无 GPU 时为空。
	GPU string
	// Memory 内存大小，带单位（如 "2Gi"）。
	Memory string
	// Disk 磁盘大小，带单位（如 "10Gi"）。
	Disk string
}

// CreateParams 创建沙箱的请求参数。
type CreateParams struct {
	// ID 沙箱 ID（可选，为空时由控制面生成）。
	ID string

	// Image 沙箱镜像（可选，默认值：DefaultImage）。
	Image string

	// User 沙箱内的操作系统用户（可选，默认值：DefaultUser）。
	User string

	// Env 环境变量，可选。
	Env map[string]string

	// Labels 自定义标签，可选。
	Labels map[string]string

	// Public 是否允许公开访问，可选。
	Public bool

	// Target 目标部署区域，可选。
	Target TargetRegion `validate:"omitempty,oneof=eu us asia"`

	// CPU 核数，可选，0 表示使用控制面默认值。
	CPU int32 `validate:"gte=0"`

	// GPU 数量，可选。
	GPU int32 `validate:"gte=0"`

	// Memory 内存大小（Gi），可选。
	Memory int32 `validate:"gte=0"`

	// Disk 磁盘大小（Gi），可选。
	Disk int32 `validate:"gte=0"`

	// AutoStopInterval 自动停止间隔（分钟），可选，0 表示禁用自动停止。
	AutoStopInterval *int32 `validate:"omitempty,gte=0"`
}

// Info 沙箱的详细信息。
type Info struct {
	ID                string
	Image             string
	User              string
	Env               map[string]string
	Labels            map[string]string
	Public            bool
	Target            TargetRegion
	Resources         Resources
	State             State
	ErrorReason       string
	SnapshotState     string
	SnapshotCreatedAt string
	AutoStopInterval  int32
	Created           string

	// 以下字段从控制面的 provider metadata 中展开。
	NodeDomain   string
	Region       string
	Class        string
	UpdatedAt    string
	LastSnapshot string
}

// PreviewURL 沙箱端口预览链接。
// 私有沙箱的链接会附带访问令牌。
type PreviewURL struct {
	URL   string
	Token string
}

// ---------------------------------------------------------------------------
// 转换函数 — apis → SDK
// ---------------------------------------------------------------------------

func infoFromAPI(d *apis.Sandbox) *Info {
	if d == nil {
		return nil
	}
	info := &Info{
		ID:     d.Id,
		State:  State(d.State),
		Target: TargetRegion(strValue(d.Target)),
		Resources: Resources{
			CPU:    resourceValue(d.Cpu, "1", ""),
			GPU:    resourceValue(d.Gpu, "", ""),
			Memory: resourceValue(d.Memory, "2", "Gi"),
			Disk:   resourceValue(d.Disk, "10", "Gi"),
		},
		Image:       strValue(d.Image),
		User:        strValue(d.User),
		ErrorReason: strValue(d.ErrorReason),
	}
	if d.Env != nil {
		info.Env = *d.Env
	}
	if d.Labels != nil {
		info.Labels = *d.Labels
	}
	if d.Public != nil {
		info.Public = *d.Public
	}
	if d.SnapshotState != nil {
		info.SnapshotState = string(*d.SnapshotState)
	}
	info.SnapshotCreatedAt = strValue(d.SnapshotCreatedAt)
	if d.AutoStopInterval != nil {
		info.AutoStopInterval = *d.AutoStopInterval
	}
	if d.Info != nil {
		info.Created = strValue(d.Info.Created)
		applyProviderMetadata(info, strValue(d.Info.ProviderMetadata))
	}
	return info
}

// applyProviderMetadata 将控制面的 provider metadata JSON 展开到 Info 字段。
// metadata 解析失败时保持字段为空，不视为错误。
func applyProviderMetadata(info *Info, metadata string) {
	if metadata == "" {
		return
	}
	var parsed struct {
		NodeDomain   string `json:"nodeDomain"`
		Region       string `json:"region"`
		Class        string `json:"class"`
		UpdatedAt    string `json:"updatedAt"`
		LastSnapshot string `json:"lastSnapshot"`
	}
	if err := json.Unmarshal([]byte(metadata), &parsed); err != nil {
		return
	}
	info.NodeDomain = parsed.NodeDomain
	info.Region = parsed.Region
	info.Class = parsed.Class
	info.UpdatedAt = parsed.UpdatedAt
	info.LastSnapshot = parsed.LastSnapshot
}

func previewURLFromAPI(p *apis.PortPreviewUrl) *PreviewURL {
	if p == nil {
		return nil
	}
	return &PreviewURL{URL: p.Url, Token: p.Token}
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// resourceValue 将数值型资源配额转为带单位的字符串，0 值使用默认值。
func resourceValue(v *int32, def, unit string) string {
	if v == nil || *v == 0 {
		if def == "" {
			return ""
		}
		return def + unit
	}
	return strconv.FormatInt(int64(*v), 10) + unit
}

// ---------------------------------------------------------------------------
// 转换函数 — SDK → apis
// ---------------------------------------------------------------------------

func (p *CreateParams) toAPI() apis.CreateSandboxJSONRequestBody {
	body := apis.CreateSandboxJSONRequestBody{}
	if p.ID != "" {
		body.Id = &p.ID
	}
	image := p.Image
	if image == "" {
		image = DefaultImage
	}
	body.Image = &image
	user := p.User
	if user == "" {
		user = DefaultUser
	}
	body.User = &user
	if p.Env != nil {
		env := p.Env
		body.Env = &env
	}
	if p.Labels != nil {
		labels := p.Labels
		body.Labels = &labels
	}
	if p.Public {
		public := p.Public
		body.Public = &public
	}
	if p.Target != "" {
		target := string(p.Target)
		body.Target = &target
	}
	if p.CPU > 0 {
		cpu := p.CPU
		body.Cpu = &cpu
	}
	if p.GPU > 0 {
		gpu := p.GPU
		body.Gpu = &gpu
	}
	if p.Memory > 0 {
		memory := p.Memory
		body.Memory = &memory
	}
	if p.Disk > 0 {
		disk := p.Disk
		body.Disk = &disk
	}
	if p.AutoStopInterval != nil {
		body.AutoStopInterval = p.AutoStopInterval
	}
	return body
}

// labelsFilter 将标签过滤条件编码为列表查询参数。
func labelsFilter(labels map[string]string) (*string, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	encoded, err := json.Marshal(labels)
	if err != nil {
		return nil, fmt.Errorf("encode labels filter: %w", err)
	}
	s := string(encoded)
	return &s, nil
}
