package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weisyn/tiktok-sdk-go/services/tiktok"
	"github.com/weisyn/tiktok-sdk-go/types"
)

// WaitCommitted 等待请求交易上链，返回上链交易哈希
func WaitCommitted(t *testing.T, svc tiktok.Service, txHash string) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), CommitTimeout)
	defer cancel()

	committedHash, committed, err := svc.WaitTransactionCommitted(ctx, txHash)
	require.NoError(t, err, "等待上链失败: %s", txHash)
	require.True(t, committed, "节点未返回上链结果: %s", txHash)
	require.NotEmpty(t, committedHash)
	return committedHash
}

// EnsureBox 背包中没有卡包时先购买一个，返回任一卡包
func EnsureBox(t *testing.T, svc tiktok.Service) *types.PersonalItem {
	t.Helper()

	ctx := context.Background()
	boxes, err := svc.GetBoxes(ctx)
	require.NoError(t, err, "查询卡包失败")
	if len(boxes) > 0 {
		return boxes[0]
	}

	txHash, err := svc.PurchaseBox(ctx)
	require.NoError(t, err, "购买卡包失败")
	WaitCommitted(t, svc, txHash)

	boxes, err = svc.GetBoxes(ctx)
	require.NoError(t, err, "查询卡包失败")
	require.NotEmpty(t, boxes, "购买后背包中没有卡包")
	return boxes[0]
}
