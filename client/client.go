package client

import (
	"context"
	"encoding/json"
)

// Client 节点 JSON-RPC 客户端接口
type Client interface {
	// Call 调用 JSON-RPC 方法，返回原始 result
	//
	// 失败统一返回 *types.RPCError：传输失败、HTTP 状态码非 200、
	// 响应包含 error 对象、或 result 缺失/为 null
	Call(ctx context.Context, method string, params interface{}) (json.RawMessage, error)

	// Close 关闭连接
	Close() error
}

// NewClient 创建新的客户端
func NewClient(config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return NewHTTPClient(config)
}
