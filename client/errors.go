package client

import (
	"github.com/weisyn/tiktok-sdk-go/types"
)

// IsRPCError 检查错误是否为 RPCError
func IsRPCError(err error) (*types.RPCError, bool) {
	return types.IsRPCError(err)
}

// IsDecodeError 检查错误是否为 DecodeError
func IsDecodeError(err error) (*types.DecodeError, bool) {
	return types.IsDecodeError(err)
}
