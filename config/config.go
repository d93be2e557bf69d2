// Package config 加载 tiktok 客户端的 TOML 配置文件
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/weisyn/tiktok-sdk-go/client"
	"github.com/weisyn/tiktok-sdk-go/services"
	"github.com/weisyn/tiktok-sdk-go/utils"
)

// EnvPrivateKey 私钥环境变量，设置后覆盖配置文件中的 private_key
const EnvPrivateKey = "TIKTOK_PRIVATE_KEY"

// Settings 配置文件结构
//
//	endpoint = "http://127.0.0.1:8090"
//	private_key = "0x..."
//	address = "ckt1..."
//	project_type_args = "0x..."
//	timeout = 120
type Settings struct {
	Endpoint          string `toml:"endpoint"`
	PrivateKey        string `toml:"private_key"`
	Address           string `toml:"address"`
	ProjectTypeArgs   string `toml:"project_type_args"`
	Timeout           int    `toml:"timeout"`
	SignatureEncoding string `toml:"signature_encoding"`
	Debug             bool   `toml:"debug"`
	LogLevel          string `toml:"log_level"`
}

// Default 返回默认配置（私钥、地址与项目 type args 必须由使用方提供）
func Default() *Settings {
	def := client.DefaultConfig()
	return &Settings{
		Endpoint:          def.Endpoint,
		Timeout:           def.Timeout,
		SignatureEncoding: string(services.SignatureEncodingHex),
		LogLevel:          "info",
	}
}

// LoadFile 读取配置文件；文件中出现未知字段时报错
func LoadFile(path string) (*Settings, error) {
	s := Default()
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return nil, fmt.Errorf("error loading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("error loading config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	s.ApplyEnv()
	return s, nil
}

// ApplyEnv 使用环境变量覆盖敏感字段
func (s *Settings) ApplyEnv() {
	if key := strings.TrimSpace(os.Getenv(EnvPrivateKey)); key != "" {
		s.PrivateKey = key
	}
}

// Validate 校验配置
func (s *Settings) Validate() error {
	if err := s.ClientConfig().Validate(); err != nil {
		return err
	}
	if s.PrivateKey == "" {
		return fmt.Errorf("private_key is required (or set %s)", EnvPrivateKey)
	}
	if err := utils.ValidateAddress(s.Address); err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}
	return s.ServiceConfig().Validate()
}

// EffectiveLogLevel 开启 debug 时日志级别至少为 debug，否则请求与响应报文会被过滤
func (s *Settings) EffectiveLogLevel() string {
	level := strings.ToLower(strings.TrimSpace(s.LogLevel))
	if s.Debug && level != "debug" && level != "trace" {
		return "debug"
	}
	return level
}

// ClientConfig 转换为节点客户端配置
func (s *Settings) ClientConfig() *client.Config {
	return &client.Config{
		Endpoint: s.Endpoint,
		Timeout:  s.Timeout,
		Debug:    s.Debug,
	}
}

// ServiceConfig 转换为业务服务配置
func (s *Settings) ServiceConfig() *services.Config {
	return &services.Config{
		ProjectTypeArgs:   s.ProjectTypeArgs,
		SignatureEncoding: services.SignatureEncoding(s.SignatureEncoding),
	}
}
