package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MessageBadRPCCall 节点未给出错误对象时使用的默认错误信息
const MessageBadRPCCall = "bad jsonrpc call"

// RPCError JSON-RPC 调用错误
//
// 以下情况统一返回 RPCError：
// - 网络/传输失败（Cause 保存底层错误）
// - HTTP 状态码不是 200
// - 响应中包含 error 对象
// - 响应中缺少 result 字段或 result 为 null
type RPCError struct {
	Method     string
	StatusCode int // HTTP 状态码（传输失败时为 0）
	Code       int // JSON-RPC 错误码（节点未返回时为 0）
	Message    string
	Data       json.RawMessage // 节点返回的原始错误对象
	TraceID    string
	Timestamp  string
	Cause      error
}

func (e *RPCError) Error() string {
	msg := fmt.Sprintf("rpc %s failed", e.Method)
	if e.StatusCode != 0 && e.StatusCode != 200 {
		msg += fmt.Sprintf(" [http %d]", e.StatusCode)
	}
	if e.Code != 0 {
		msg += fmt.Sprintf(" [code %d]", e.Code)
	}
	msg += ": " + e.Message
	if len(e.Data) > 0 {
		msg += ", data: " + string(e.Data)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause=%v)", e.Cause)
	}
	return msg
}

func (e *RPCError) Unwrap() error {
	return e.Cause
}

// NewRPCError 创建 RPCError，并生成追踪 ID
func NewRPCError(method string, statusCode int, message string, cause error) *RPCError {
	if message == "" {
		message = MessageBadRPCCall
	}
	return &RPCError{
		Method:     method,
		StatusCode: statusCode,
		Message:    message,
		TraceID:    uuid.New().String(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Cause:      cause,
	}
}

// ParseRPCErrorObject 从节点返回的 error 对象构造 RPCError
// 节点的 error 对象可能是标准 {code, message, data}，也可能是任意 JSON（字符串等）
func ParseRPCErrorObject(method string, statusCode int, raw json.RawMessage) *RPCError {
	rpcErr := NewRPCError(method, statusCode, "", nil)
	if len(raw) == 0 || string(raw) == "null" {
		return rpcErr
	}
	rpcErr.Data = raw

	var obj struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		// 非对象形式（例如纯字符串）原样保留在 Data 中
		var text string
		if json.Unmarshal(raw, &text) == nil && text != "" {
			rpcErr.Message = text
		}
		return rpcErr
	}

	// 非标准对象（没有 code 与 message）整体保留在 Data 中
	if obj.Code == 0 && obj.Message == "" {
		return rpcErr
	}

	rpcErr.Code = obj.Code
	if obj.Message != "" {
		rpcErr.Message = obj.Message
	}
	if len(obj.Data) > 0 && string(obj.Data) != "null" {
		rpcErr.Data = obj.Data
	} else {
		rpcErr.Data = nil
	}
	return rpcErr
}

// IsRPCError 检查错误链中是否包含 RPCError
func IsRPCError(err error) (*RPCError, bool) {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr, true
	}
	return nil, false
}

// DecodeError 节点返回内容无法解析
// 与 RPCError 区分：RPC 调用本身成功，但业务数据格式不符合预期
type DecodeError struct {
	What  string
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode %s: %v", e.What, e.Cause)
	}
	return fmt.Sprintf("decode %s failed", e.What)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// NewDecodeError 创建 DecodeError
func NewDecodeError(what string, cause error) *DecodeError {
	return &DecodeError{What: what, Cause: cause}
}

// IsDecodeError 检查错误链中是否包含 DecodeError
func IsDecodeError(err error) (*DecodeError, bool) {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr, true
	}
	return nil, false
}
