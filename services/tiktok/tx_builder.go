package tiktok

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/weisyn/tiktok-sdk-go/services"
	"github.com/weisyn/tiktok-sdk-go/types"
	"github.com/weisyn/tiktok-sdk-go/utils"
)

// makeDigestParams ko_makeRequestTransactionDigest 参数
//
// sender 与 inputs 为 null 时仍需输出字段，节点按字段存在性反序列化
type makeDigestParams struct {
	ContractCall    string           `json:"contract_call"`
	Sender          *string          `json:"sender"`
	Inputs          []types.Outpoint `json:"inputs"`
	Candidates      []string         `json:"candidates"`
	Components      []string         `json:"components"`
	ProjectTypeArgs string           `json:"project_type_args"`
}

// sendSignatureParams ko_sendTransactionSignature 参数
type sendSignatureParams struct {
	Digest    string `json:"digest"`
	Signature string `json:"signature"`
}

// RequestDigest 向节点请求交易摘要
func (s *tiktokService) RequestDigest(ctx context.Context, call types.ContractCall, inputs []types.Outpoint) (string, error) {
	contractCall, err := call.Encode()
	if err != nil {
		return "", fmt.Errorf("encode contract call failed: %w", err)
	}

	params := &makeDigestParams{
		ContractCall:    contractCall,
		Inputs:          inputs,
		Candidates:      []string{},
		Components:      []string{},
		ProjectTypeArgs: s.config.ProjectTypeArgs,
	}
	if inputs == nil {
		address := s.address
		params.Sender = &address
	}

	raw, err := s.client.Call(ctx, MethodMakeRequestTransactionDigest, []interface{}{params})
	if err != nil {
		return "", fmt.Errorf("make request transaction digest failed: %w", err)
	}

	digest, err := decodeStringResult(raw, "transaction digest")
	if err != nil {
		return "", err
	}

	s.logger.Debug("Transaction digest received", "call", contractCall, "inputs", len(inputs), "digest", digest)
	return digest, nil
}

// SignAndSubmit 签名摘要并提交
//
// **流程**：
// 1. 摘要补齐 0x 前缀
// 2. 使用 Wallet 对摘要字节签名（r || s || v）
// 3. 按配置编码签名，调用 ko_sendTransactionSignature
func (s *tiktokService) SignAndSubmit(ctx context.Context, digest string) (string, error) {
	if digest == "" {
		return "", fmt.Errorf("digest is required")
	}
	digest = utils.AddHexPrefix(digest)

	digestBytes, err := utils.DecodeHex(digest)
	if err != nil {
		return "", fmt.Errorf("invalid digest: %w", err)
	}

	signature, err := s.wallet.SignDigest(digestBytes)
	if err != nil {
		return "", fmt.Errorf("sign digest failed: %w", err)
	}

	params := &sendSignatureParams{
		Digest:    digest,
		Signature: encodeSignature(signature, s.config.SignatureEncoding),
	}

	raw, err := s.client.Call(ctx, MethodSendTransactionSignature, []interface{}{params})
	if err != nil {
		return "", fmt.Errorf("send transaction signature failed: %w", err)
	}

	txHash, err := decodeStringResult(raw, "transaction hash")
	if err != nil {
		return "", err
	}

	s.logger.Info("Transaction submitted", "digest", digest, "tx_hash", txHash)
	return txHash, nil
}

// submitCall 请求摘要 -> 签名 -> 提交
func (s *tiktokService) submitCall(ctx context.Context, call types.ContractCall, inputs []types.Outpoint) (string, error) {
	digest, err := s.RequestDigest(ctx, call, inputs)
	if err != nil {
		return "", err
	}
	return s.SignAndSubmit(ctx, digest)
}

func encodeSignature(signature []byte, encoding services.SignatureEncoding) string {
	encoded := hexutil.Encode(signature)
	if encoding == services.SignatureEncodingHexNoPrefix {
		return utils.RemoveHexPrefix(encoded)
	}
	return encoded
}

// decodeStringResult 解析字符串类型的 result
func decodeStringResult(raw json.RawMessage, what string) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", types.NewDecodeError(what, err)
	}
	if s == "" {
		return "", types.NewDecodeError(what, fmt.Errorf("empty string"))
	}
	return s, nil
}
