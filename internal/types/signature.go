package types

import (
	"github.com/mr-tron/base58"
)

// Signature 表示交易签名（64 字节原始数据）。
type Signature [64]byte

func (s Signature) String() string {
	return base58.Encode(s[:])
}

// Short 返回签名的短格式（前 8 个 base58 字符），用于日志输出。
func (s Signature) Short() string {
	full := base58.Encode(s[:])
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
