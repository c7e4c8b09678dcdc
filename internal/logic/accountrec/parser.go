// Package accountrec 从账户字节缓冲区重建账户状态（core.AccountRecord）。
package accountrec

import (
	"encoding/binary"
	"unicode/utf8"

	"ledger-core-sol/internal/errs"
	"ledger-core-sol/internal/logic/core"
)

const (
	fixedSize      = 12 // 固定头部：tag(1) + 保留(3) + authority(4) + 名称长度(1) + 保留(3)
	authorityStart = 4
	authorityEnd   = 8
	nameLenOffset  = 8
	nameOffset     = 12
)

// Parse 解码账户缓冲区：先读固定字段，再按长度字节读取变长名称。
// 失败路径全部返回类型化错误，绝不 panic：
//   - 固定头部不完整 / 名称长度越过缓冲区末尾 → TruncatedInputError
//   - 名称字节不是合法 UTF-8 → InvalidEncodingError
//
// 名称严格读取长度字节声明的 N 字节，缓冲区尾部多余的字节一律忽略。
func Parse(buf []byte) (core.AccountRecord, error) {
	if len(buf) < fixedSize {
		return core.AccountRecord{}, &errs.TruncatedInputError{Got: len(buf), Want: fixedSize}
	}

	nameLen := int(buf[nameLenOffset])
	if nameOffset+nameLen > len(buf) {
		return core.AccountRecord{}, &errs.TruncatedInputError{Got: len(buf), Want: nameOffset + nameLen}
	}

	nameBytes := buf[nameOffset : nameOffset+nameLen]
	if !utf8.Valid(nameBytes) {
		return core.AccountRecord{}, &errs.InvalidEncodingError{Field: "name"}
	}

	return core.AccountRecord{
		Kind:      buf[0],
		Authority: binary.LittleEndian.Uint32(buf[authorityStart:authorityEnd]),
		Name:      string(nameBytes),
	}, nil
}
