package utils

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
)

// CKB 地址前缀（bech32 human-readable part）
const (
	AddressPrefixMainnet = "ckb"
	AddressPrefixTestnet = "ckt"
)

// bech32 规范上限，超过该长度的是 bech32m 编码的完整格式地址
const maxShortAddressLength = 90

// AddressNetwork 返回地址所属网络前缀（ckb / ckt）
//
// **校验规则**：
// - 前缀必须是 ckb1 或 ckt1
// - 短格式地址（不超过 90 字符）额外做 bech32 校验和验证
// - 完整格式地址（bech32m）只校验前缀与字符集
func AddressNetwork(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("empty address")
	}

	lower := strings.ToLower(address)
	if lower != address && strings.ToUpper(address) != address {
		return "", fmt.Errorf("invalid address %q: mixed case", address)
	}

	var hrp string
	switch {
	case strings.HasPrefix(lower, AddressPrefixMainnet+"1"):
		hrp = AddressPrefixMainnet
	case strings.HasPrefix(lower, AddressPrefixTestnet+"1"):
		hrp = AddressPrefixTestnet
	default:
		return "", fmt.Errorf("invalid address %q: expected %s1 or %s1 prefix",
			address, AddressPrefixMainnet, AddressPrefixTestnet)
	}

	if len(address) <= maxShortAddressLength {
		decodedHRP, data, err := bech32.Decode(address)
		if err != nil {
			return "", fmt.Errorf("invalid address %q: %w", address, err)
		}
		if decodedHRP != hrp || len(data) == 0 {
			return "", fmt.Errorf("invalid address %q: bad payload", address)
		}
		return hrp, nil
	}

	const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	for _, c := range lower[len(hrp)+1:] {
		if !strings.ContainsRune(charset, c) {
			return "", fmt.Errorf("invalid address %q: character %q out of charset", address, c)
		}
	}
	return hrp, nil
}

// ValidateAddress 校验 CKB 地址
func ValidateAddress(address string) error {
	_, err := AddressNetwork(address)
	return err
}
