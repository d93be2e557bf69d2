package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// MaxProgramSize 卡牌脚本大小上限（字节）
const MaxProgramSize int64 = 64 * 1024

// ReadProgramFile 读取卡牌行为脚本（Lua 源码）
//
// **校验**：
// - 文件大小不超过 MaxProgramSize
// - 内容必须是合法 UTF-8 且非空
//
// 返回去除首尾空白后的源码；转义由 ContractCall 编码负责，这里不做处理
func ReadProgramFile(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open program file failed: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("get file info failed: %w", err)
	}
	if fileInfo.Size() > MaxProgramSize {
		return "", fmt.Errorf("program file too large: %d bytes (max %d)", fileInfo.Size(), MaxProgramSize)
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxProgramSize+1))
	if err != nil {
		return "", fmt.Errorf("read program file failed: %w", err)
	}
	return ParseProgram(data)
}

// ParseProgram 校验并规整脚本内容
func ParseProgram(data []byte) (string, error) {
	if int64(len(data)) > MaxProgramSize {
		return "", fmt.Errorf("program too large: %d bytes (max %d)", len(data), MaxProgramSize)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("program is not valid UTF-8")
	}
	program := strings.TrimSpace(string(data))
	if program == "" {
		return "", fmt.Errorf("program is empty")
	}
	return program, nil
}
