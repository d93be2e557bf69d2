package integration

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/weisyn/tiktok-sdk-go/client"
	"github.com/weisyn/tiktok-sdk-go/config"
	"github.com/weisyn/tiktok-sdk-go/services/tiktok"
	"github.com/weisyn/tiktok-sdk-go/wallet"
)

const (
	// EnvConfigPath 集成测试使用的 TOML 配置文件路径，未设置时跳过
	EnvConfigPath = "TIKTOK_INTEGRATION_CONFIG"
	// CommitTimeout 等待请求交易上链的超时时间
	CommitTimeout = 3 * time.Minute
)

// SetupTestService 按配置文件连接节点并创建 tiktok 服务
//
// 未设置 TIKTOK_INTEGRATION_CONFIG 时跳过测试
func SetupTestService(t *testing.T) tiktok.Service {
	t.Helper()

	path := os.Getenv(EnvConfigPath)
	if path == "" {
		t.Skipf("%s 未设置，跳过集成测试", EnvConfigPath)
	}

	settings, err := config.LoadFile(path)
	require.NoError(t, err, "加载配置失败")
	require.NoError(t, settings.Validate(), "配置无效")

	c, err := client.NewClient(settings.ClientConfig())
	require.NoError(t, err, "创建客户端失败")
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Logf("关闭客户端时出现警告: %v", err)
		}
	})

	w, err := wallet.NewWalletFromPrivateKey(settings.PrivateKey)
	require.NoError(t, err, "创建钱包失败")

	svc, err := tiktok.NewService(c, w, settings.Address, settings.ServiceConfig())
	require.NoError(t, err, "创建服务失败")
	return svc
}
