package client

import (
	"fmt"
	"net/url"
)

// Config 客户端配置
type Config struct {
	// Endpoint 节点端点地址
	Endpoint string

	// Timeout 超时时间（秒），0 表示沿用传输层默认值
	// ko_waitRequestTransactionCommitted 由节点阻塞直到上链，超时应留足余量
	Timeout int

	// Headers 附加的 HTTP 请求头
	Headers map[string]string

	// 调试模式：记录请求与响应内容
	Debug bool

	// 日志器（可选）
	Logger Logger
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Endpoint: "http://127.0.0.1:8090",
		Timeout:  120,
		Debug:    false,
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}
