package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// HasHexPrefix 判断字符串是否带 0x/0X 前缀
func HasHexPrefix(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// AddHexPrefix 为十六进制字符串补齐 0x 前缀，大写 0X 统一为 0x
func AddHexPrefix(s string) string {
	return "0x" + RemoveHexPrefix(s)
}

// RemoveHexPrefix 移除十六进制字符串的 0x 前缀
func RemoveHexPrefix(s string) string {
	if HasHexPrefix(s) {
		return s[2:]
	}
	return s
}

// EncodeIndex 将输出索引编码为节点使用的十六进制字符串（1 -> "0x1"）
func EncodeIndex(index uint64) string {
	return hexutil.EncodeUint64(index)
}

// DecodeIndex 将节点返回的十六进制索引解码为整数（"0x1" -> 1）
// 兼容前导零（"0x01"）与缺少前缀的写法
func DecodeIndex(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty index")
	}
	if v, err := hexutil.DecodeUint64(AddHexPrefix(s)); err == nil {
		return v, nil
	}
	v, err := strconv.ParseUint(RemoveHexPrefix(s), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex index %q: %w", s, err)
	}
	return v, nil
}

// DecodeHex 解码十六进制字符串（前缀可选）
func DecodeHex(s string) ([]byte, error) {
	b, err := hexutil.Decode(AddHexPrefix(s))
	if err != nil {
		return nil, fmt.Errorf("decode hex %q: %w", s, err)
	}
	return b, nil
}
