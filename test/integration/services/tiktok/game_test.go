package tiktok

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	integration "github.com/weisyn/tiktok-sdk-go/test/integration"
	"github.com/weisyn/tiktok-sdk-go/types"
)

// TestOpenBoxFlow 购买卡包 -> 打开 -> 背包中出现卡牌
func TestOpenBoxFlow(t *testing.T) {
	svc := integration.SetupTestService(t)
	ctx := context.Background()

	cardsBefore, err := svc.GetCards(ctx)
	require.NoError(t, err)

	box := integration.EnsureBox(t, svc)
	require.Equal(t, types.ItemKindBox, box.Kind)
	t.Logf("打开卡包 %d (%s)", box.Box.BoxID, box.Outpoint)

	txHash, err := svc.OpenBox(ctx, box.Outpoint)
	require.NoError(t, err, "打开卡包失败")
	integration.WaitCommitted(t, svc, txHash)

	cardsAfter, err := svc.GetCards(ctx)
	require.NoError(t, err)
	assert.Greater(t, len(cardsAfter), len(cardsBefore), "打开卡包后卡牌数量应增加")
	for _, item := range cardsAfter {
		assert.Equal(t, types.ItemKindCard, item.Kind)
		assert.NotNil(t, item.Card)
	}
}

// TestBattleFlow 为两张卡牌上传脚本后发起对战
func TestBattleFlow(t *testing.T) {
	svc := integration.SetupTestService(t)
	ctx := context.Background()

	cards, err := svc.GetCards(ctx)
	require.NoError(t, err)
	if len(cards) < 2 {
		t.Skip("卡牌少于两张，先运行 TestOpenBoxFlow")
	}

	const program = "return function(ctx) return ctx.attack end"
	txHash, err := svc.UploadCardProgram(ctx, cards[0].Outpoint, program)
	require.NoError(t, err, "上传卡牌脚本失败")
	integration.WaitCommitted(t, svc, txHash)

	// 上传后卡牌 outpoint 发生变化，重新查询
	cards, err = svc.GetCards(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cards), 2)

	txHash, err = svc.StartBattle(ctx, cards[0].Outpoint, cards[1].Outpoint)
	require.NoError(t, err, "发起对战失败")
	integration.WaitCommitted(t, svc, txHash)
}
