package services

import (
	"fmt"
	"strings"

	"github.com/weisyn/tiktok-sdk-go/client"
	"github.com/weisyn/tiktok-sdk-go/utils"
)

// SignatureEncoding 提交给节点的签名编码方式
type SignatureEncoding string

const (
	// SignatureEncodingHex 0x 前缀的 65 字节 r || s || v 十六进制
	SignatureEncodingHex SignatureEncoding = "hex"
	// SignatureEncodingHexNoPrefix 同上，但去掉 0x 前缀
	SignatureEncodingHexNoPrefix SignatureEncoding = "hex-no-prefix"
)

// Config 业务服务配置，为 Service 提供项目 type args 等运行时参数
//
// **设计目的**：
// - 避免在 service 内部硬编码项目 type args
// - 所有调用都限定在该项目（链上合约实例）范围内
type Config struct {
	// ProjectTypeArgs 项目 type script args（32 字节，十六进制）
	ProjectTypeArgs string

	// SignatureEncoding 签名编码方式，默认 SignatureEncodingHex
	SignatureEncoding SignatureEncoding

	// Logger 日志器（可选）
	Logger client.Logger
}

// Validate 校验配置并补齐默认值
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("service config is required")
	}

	typeArgs := strings.TrimSpace(c.ProjectTypeArgs)
	if typeArgs == "" {
		return fmt.Errorf("project type args is required")
	}
	raw, err := utils.DecodeHex(typeArgs)
	if err != nil {
		return fmt.Errorf("invalid project type args: %w", err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("invalid project type args length: expected 32 bytes, got %d", len(raw))
	}
	c.ProjectTypeArgs = utils.AddHexPrefix(typeArgs)

	if c.Logger == nil {
		c.Logger = client.NopLogger{}
	}

	switch c.SignatureEncoding {
	case "":
		c.SignatureEncoding = SignatureEncodingHex
	case SignatureEncodingHex, SignatureEncodingHexNoPrefix:
	default:
		return fmt.Errorf("unsupported signature encoding: %s", c.SignatureEncoding)
	}
	return nil
}
