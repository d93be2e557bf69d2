package tiktok

import (
	"context"
	"fmt"
	"strings"

	"github.com/weisyn/tiktok-sdk-go/types"
)

// UploadCardProgram 为卡牌上传行为脚本
//
// 脚本作为 Lua 字符串字面量传给合约：set_card_program("<program>")
func (s *tiktokService) UploadCardProgram(ctx context.Context, card types.Outpoint, program string) (string, error) {
	if err := validateOutpoint(card); err != nil {
		return "", fmt.Errorf("invalid card outpoint: %w", err)
	}
	if strings.TrimSpace(program) == "" {
		return "", fmt.Errorf("program is required")
	}

	call := types.NewContractCall(CallSetCardProgram, program)
	txHash, err := s.submitCall(ctx, call, []types.Outpoint{card})
	if err != nil {
		return "", fmt.Errorf("upload card program for %s failed: %w", card, err)
	}
	return txHash, nil
}

// StartBattle 发起对战，两张卡牌按顺序作为输入
func (s *tiktokService) StartBattle(ctx context.Context, card1, card2 types.Outpoint) (string, error) {
	if err := validateOutpoint(card1); err != nil {
		return "", fmt.Errorf("invalid first card outpoint: %w", err)
	}
	if err := validateOutpoint(card2); err != nil {
		return "", fmt.Errorf("invalid second card outpoint: %w", err)
	}
	if card1 == card2 {
		return "", fmt.Errorf("a card cannot battle itself: %s", card1)
	}

	txHash, err := s.submitCall(ctx, types.NewContractCall(CallStartTiktokBattle), []types.Outpoint{card1, card2})
	if err != nil {
		return "", fmt.Errorf("start battle failed: %w", err)
	}
	return txHash, nil
}
