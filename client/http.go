package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/weisyn/tiktok-sdk-go/types"
)

// requestID 节点不依赖请求 ID 做匹配，固定为 1
const requestID = 1

// httpClient HTTP客户端实现
type httpClient struct {
	endpoint string
	client   *http.Client
	headers  map[string]string
	logger   Logger
	debug    bool
}

// NewHTTPClient 创建HTTP客户端
func NewHTTPClient(config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	// 不设置 Transport，使用 http.DefaultTransport
	httpCli := &http.Client{
		Timeout: time.Duration(config.Timeout) * time.Second,
	}

	logger := config.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	return &httpClient{
		endpoint: config.Endpoint,
		client:   httpCli,
		headers:  config.Headers,
		logger:   logger,
		debug:    config.Debug,
	}, nil
}

// Call 调用JSON-RPC方法
func (c *httpClient) Call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	req := &jsonRPCRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      requestID,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request failed: %w", err)
	}

	if c.debug {
		c.logger.Debug("JSON-RPC request", "method", method, "body", string(reqBody))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")
	httpReq.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, types.NewRPCError(method, 0, "send request failed", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("Failed to close response body", "error", err)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.NewRPCError(method, resp.StatusCode, "read response failed", err)
	}

	if c.debug {
		c.logger.Debug("JSON-RPC response", "method", method, "status", resp.StatusCode, "body", string(respBody))
	}

	var jsonResp jsonRPCResponse
	decodeErr := json.Unmarshal(respBody, &jsonResp)

	// 检查HTTP状态码，尽量带上节点返回的错误对象
	if resp.StatusCode != http.StatusOK {
		var rpcErr *types.RPCError
		if decodeErr == nil && len(jsonResp.Error) > 0 {
			rpcErr = types.ParseRPCErrorObject(method, resp.StatusCode, jsonResp.Error)
		} else {
			rpcErr = types.NewRPCError(method, resp.StatusCode, "", nil)
			if len(respBody) > 0 {
				rpcErr.Data = rawOrString(respBody)
			}
		}
		return nil, rpcErr
	}

	if decodeErr != nil {
		return nil, types.NewRPCError(method, resp.StatusCode, "unmarshal response failed", decodeErr)
	}

	if len(jsonResp.Error) > 0 && string(jsonResp.Error) != "null" {
		return nil, types.ParseRPCErrorObject(method, resp.StatusCode, jsonResp.Error)
	}

	if len(jsonResp.Result) == 0 || string(jsonResp.Result) == "null" {
		return nil, types.NewRPCError(method, resp.StatusCode, "", nil)
	}

	return jsonResp.Result, nil
}

// Close 关闭连接
func (c *httpClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// rawOrString 合法 JSON 原样保留，否则包装成 JSON 字符串
func rawOrString(body []byte) json.RawMessage {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}

// jsonRPCRequest JSON-RPC请求结构
type jsonRPCRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      uint64      `json:"id"`
}

// jsonRPCResponse JSON-RPC响应结构
type jsonRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}
