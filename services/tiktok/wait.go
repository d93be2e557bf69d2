package tiktok

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/weisyn/tiktok-sdk-go/types"
	"github.com/weisyn/tiktok-sdk-go/utils"
)

// waitCommittedParams ko_waitRequestTransactionCommitted 参数
type waitCommittedParams struct {
	RequestHash     string `json:"request_hash"`
	ProjectTypeArgs string `json:"project_type_args"`
}

// WaitTransactionCommitted 等待请求交易上链
//
// 节点阻塞直到交易上链或超时，本地不做轮询和重试；超时由 ctx 与 HTTP 客户端控制。
// 节点的 result 是 JSON 编码的字符串："\"0x..\"" 表示已上链的交易哈希，"null" 表示没有结果
func (s *tiktokService) WaitTransactionCommitted(ctx context.Context, txHash string) (string, bool, error) {
	if strings.TrimSpace(txHash) == "" {
		return "", false, fmt.Errorf("tx hash is required")
	}

	params := &waitCommittedParams{
		RequestHash:     utils.AddHexPrefix(txHash),
		ProjectTypeArgs: s.config.ProjectTypeArgs,
	}

	raw, err := s.client.Call(ctx, MethodWaitRequestTransactionCommitted, []interface{}{params})
	if err != nil {
		return "", false, fmt.Errorf("wait transaction %s committed failed: %w", txHash, err)
	}

	committedHash, committed, err := decodeCommittedResult(raw)
	if err != nil {
		return "", false, err
	}

	if committed {
		s.logger.Info("Transaction committed", "request_hash", txHash, "tx_hash", committedHash)
	} else {
		s.logger.Warn("Transaction not committed", "request_hash", txHash)
	}
	return committedHash, committed, nil
}

// decodeCommittedResult 解析上链结果，兼容直接返回哈希字符串的节点
func decodeCommittedResult(raw json.RawMessage) (string, bool, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", false, types.NewDecodeError("committed transaction hash", err)
	}

	text = strings.TrimSpace(text)
	if text == "" || text == "null" {
		return "", false, nil
	}

	var inner *string
	if err := json.Unmarshal([]byte(text), &inner); err == nil {
		if inner == nil || *inner == "" {
			return "", false, nil
		}
		return *inner, true, nil
	}
	return text, true, nil
}
