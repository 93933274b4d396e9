// Package sandbox 提供远程沙箱编排服务的 Go SDK，用于管理安全隔离的云端开发环境。
//
// 沙箱是一个完整的云端工作空间（文件系统、shell、git、语言服务器），
// 专为 AI Agent 和远程开发场景设计。SDK 通过控制面 REST API 管理沙箱的
// 完整生命周期，并通过工具链接口操作沙箱内部资源。
//
// # 快速开始
//
// 创建客户端并启动沙箱:
//
//	c, err := sandbox.NewClient(&sandbox.Config{
//	    APIKey: os.Getenv("SANDBOX_API_KEY"),
//	})
//
//	sb, _, err := c.CreateAndWait(ctx, sandbox.CreateParams{
//	    Labels: map[string]string{"project": "demo"},
//	})
//
//	defer sb.Delete(ctx, true)
//
// API 密钥也可以通过 SANDBOX_API_KEY 环境变量或 ~/.sandbox/config.toml
// 配置文件提供，按 显式配置 → 环境变量 → 配置文件 的顺序解析。
//
// # 沙箱生命周期
//
//   - [Client.Create] / [Client.CreateAndWait]: 创建沙箱（后者会轮询等待就绪）
//   - [Client.Get]: 获取已有沙箱的句柄
//   - [Client.List]: 列出沙箱，支持按标签过滤
//   - [Sandbox.Start] / [Sandbox.Stop]: 启动和停止沙箱（内部会等待目标状态）
//   - [Sandbox.Delete]: 删除沙箱
//   - [Sandbox.Archive]: 归档已停止的沙箱到低成本存储
//   - [Sandbox.Info] / [Sandbox.IsStarted]: 查询沙箱状态
//   - [Sandbox.WaitForStarted] / [Sandbox.WaitForStopped]: 轮询等待目标状态
//
// 等待操作默认每 DefaultPollInterval 轮询一次，超时 DefaultWaitTimeout。
// 沙箱进入 error 状态时等待立即失败并返回 [StateError]；超时返回 [TimeoutError]。
//
// # 命令执行
//
// 通过 [Sandbox.Process] 在沙箱内执行命令:
//
//	result, err := sb.Process().Exec(ctx, sandbox.ExecParams{
//	    Command: "echo hello",
//	    Cwd:     "/workspace",
//	})
//	fmt.Println(result.Result)
//
// 长驻会话（共享工作目录和环境变量）通过 [Process.CreateSession] 创建，
// 支持异步执行和日志查询（[Session.Exec] / [Session.Logs]）。
//
// # 文件系统操作
//
// 通过 [Sandbox.FS] 进行文件读写:
//
//	sb.FS().Upload(ctx, "/workspace/hello.txt", []byte("Hello!"))
//	content, err := sb.FS().Download(ctx, "/workspace/hello.txt")
//	entries, err := sb.FS().ListDir(ctx, "/workspace")
//
// FileSystem 还提供 [FileSystem.UploadFiles]（并发批量上传）、
// [FileSystem.SearchFiles]、[FileSystem.FindFiles]、[FileSystem.ReplaceInFiles]
// 等操作。
//
// # Git 操作
//
// 通过 [Sandbox.Git] 操作沙箱内的仓库:
//
//	sb.Git().Clone(ctx, sandbox.CloneParams{
//	    URL:  "https://github.com/user/repo.git",
//	    Path: "/workspace/repo",
//	})
//	status, err := sb.Git().Status(ctx, "/workspace/repo")
//
// # 语言服务器
//
// 通过 [Sandbox.CreateLspServer] 获取沙箱内语言服务器的句柄，
// 支持补全（[LspServer.Completions]）和符号查询（[LspServer.DocumentSymbols]）。
//
// # 轮询选项
//
// [Sandbox.WaitForStarted] 等等待操作支持通过 [PollOption] 自定义轮询行为:
//
//   - [WithPollInterval]: 设置轮询间隔
//   - [WithWaitTimeout]: 设置等待超时（0 表示无限等待）
//   - [WithBackoff]: 启用指数退避
//   - [WithOnPoll]: 注册轮询回调（用于日志或进度展示）
package sandbox
