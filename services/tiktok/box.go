package tiktok

import (
	"context"
	"fmt"

	"github.com/weisyn/tiktok-sdk-go/types"
)

// PurchaseBox 购买卡包
//
// 不指定输入，节点按 sender 地址选取支付的 cell
func (s *tiktokService) PurchaseBox(ctx context.Context) (string, error) {
	txHash, err := s.submitCall(ctx, types.NewContractCall(CallPurchaseBox), nil)
	if err != nil {
		return "", fmt.Errorf("purchase box failed: %w", err)
	}
	return txHash, nil
}

// OpenBox 打开卡包，卡包 outpoint 作为唯一输入
func (s *tiktokService) OpenBox(ctx context.Context, box types.Outpoint) (string, error) {
	if err := validateOutpoint(box); err != nil {
		return "", fmt.Errorf("invalid box outpoint: %w", err)
	}

	txHash, err := s.submitCall(ctx, types.NewContractCall(CallOpenBox), []types.Outpoint{box})
	if err != nil {
		return "", fmt.Errorf("open box %s failed: %w", box, err)
	}
	return txHash, nil
}

func validateOutpoint(o types.Outpoint) error {
	if o.TxHash == "" {
		return fmt.Errorf("tx hash is required")
	}
	return nil
}
