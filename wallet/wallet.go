package wallet

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// DigestLength 节点生成的交易摘要长度（字节）
const DigestLength = 32

// SignatureLength 可恢复签名长度：r(32) || s(32) || v(1)
const SignatureLength = 65

// Wallet 钱包接口
type Wallet interface {
	// SignDigest 对节点返回的交易摘要做可恢复签名，返回 r || s || v（65 字节）
	SignDigest(digest []byte) ([]byte, error)

	// PublicKey 压缩公钥（33 字节）
	PublicKey() []byte

	// PrivateKey 获取私钥（谨慎使用）
	PrivateKey() *ecdsa.PrivateKey
}

// SimpleWallet 持有单个 secp256k1 私钥的钱包
type SimpleWallet struct {
	privateKey *ecdsa.PrivateKey
}

// NewWallet 随机生成新钱包
func NewWallet() (Wallet, error) {
	privateKey, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}

	return &SimpleWallet{privateKey: privateKey}, nil
}

// NewWalletFromPrivateKey 从十六进制私钥创建钱包（0x 前缀可选）
func NewWalletFromPrivateKey(privateKeyHex string) (Wallet, error) {
	privateKeyBytes, err := hexutil.Decode(addHexPrefix(privateKeyHex))
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}

	if len(privateKeyBytes) != 32 {
		return nil, fmt.Errorf("invalid private key length: expected 32 bytes, got %d", len(privateKeyBytes))
	}

	privateKey, err := ethcrypto.ToECDSA(privateKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("parse secp256k1 private key failed: %w", err)
	}

	return &SimpleWallet{privateKey: privateKey}, nil
}

// SignDigest 签名交易摘要
//
// 摘要由节点通过 ko_makeRequestTransactionDigest 生成，本地不再做哈希；
// v 为恢复 ID（0 或 1），与节点使用的 secp256k1 recoverable 格式一致
func (w *SimpleWallet) SignDigest(digest []byte) ([]byte, error) {
	if len(digest) != DigestLength {
		return nil, fmt.Errorf("invalid digest length: expected %d bytes, got %d", DigestLength, len(digest))
	}

	signature, err := ethcrypto.Sign(digest, w.privateKey)
	if err != nil {
		return nil, fmt.Errorf("secp256k1 sign: %w", err)
	}
	return signature, nil
}

// PublicKey 获取压缩公钥
func (w *SimpleWallet) PublicKey() []byte {
	return ethcrypto.CompressPubkey(&w.privateKey.PublicKey)
}

// PrivateKey 获取私钥
func (w *SimpleWallet) PrivateKey() *ecdsa.PrivateKey {
	return w.privateKey
}

// RecoverPublicKey 从摘要与签名恢复压缩公钥，用于校验签名归属
func RecoverPublicKey(digest, signature []byte) ([]byte, error) {
	if len(signature) != SignatureLength {
		return nil, fmt.Errorf("invalid signature length: expected %d bytes, got %d", SignatureLength, len(signature))
	}
	pub, err := ethcrypto.SigToPub(digest, signature)
	if err != nil {
		return nil, fmt.Errorf("recover public key: %w", err)
	}
	return ethcrypto.CompressPubkey(pub), nil
}

func addHexPrefix(s string) string {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s
	}
	return "0x" + s
}
