// Package instruction 实现账本指令的二进制编解码与分发。
//
// 线格式（小端序）：
//
//	[0]     opcode（判别字节）
//	[1:4]   保留，编码时写 0
//	[4:8]   amount（uint32），Transfer/Mint/Burn
//	[8:12]  recipient（uint32），仅 Transfer
package instruction

import (
	"encoding/binary"

	"ledger-core-sol/internal/errs"
	"ledger-core-sol/internal/logic/core"
)

const (
	headerSize   = 4  // opcode + 3 字节保留
	amountSize   = 8  // header + amount
	transferSize = 12 // header + amount + recipient
)

// minSizeFor 返回指定 opcode 的最小缓冲区长度；未知 opcode 返回 false。
func minSizeFor(op core.Opcode) (int, bool) {
	switch op {
	case core.OpInitialize, core.OpCreateAccount:
		return headerSize, true
	case core.OpMint, core.OpBurn:
		return amountSize, true
	case core.OpTransfer:
		return transferSize, true
	default:
		return 0, false
	}
}

// Encode 将类型化指令编码为二进制缓冲区。
// 编码是确定性的，且对合法输入满足 Decode(Encode(x)) == x。
func Encode(ins core.Instruction) ([]byte, error) {
	size, ok := minSizeFor(ins.Opcode)
	if !ok {
		return nil, &errs.UnknownInstructionError{Opcode: byte(ins.Opcode)}
	}

	buf := make([]byte, size)
	buf[0] = byte(ins.Opcode)

	switch ins.Opcode {
	case core.OpTransfer:
		binary.LittleEndian.PutUint32(buf[4:8], ins.Amount)
		binary.LittleEndian.PutUint32(buf[8:12], ins.Recipient)
	case core.OpMint, core.OpBurn:
		binary.LittleEndian.PutUint32(buf[4:8], ins.Amount)
	}
	return buf, nil
}

// Decode 将不可信的字节缓冲区解码为类型化指令。
// 失败路径全部返回类型化错误，绝不 panic：
//   - 空缓冲区 / 长度不足 opcode 最小长度 → TruncatedInputError
//   - 判别字节不在已知集合内 → UnknownInstructionError（携带原始字节）
//
// 所有边界检查先于其对应的切片操作。
func Decode(buf []byte) (core.Instruction, error) {
	if len(buf) < 1 {
		return core.Instruction{}, &errs.TruncatedInputError{Got: len(buf), Want: 1}
	}

	op := core.Opcode(buf[0])
	size, ok := minSizeFor(op)
	if !ok {
		return core.Instruction{}, &errs.UnknownInstructionError{Opcode: buf[0]}
	}
	if len(buf) < size {
		// 短 Transfer 负载与其他越界一样直接失败，不降级为空操作，
		// 策略取舍见 DESIGN.md。
		return core.Instruction{}, &errs.TruncatedInputError{Got: len(buf), Want: size}
	}

	ins := core.Instruction{Opcode: op}
	switch op {
	case core.OpTransfer:
		ins.Amount = binary.LittleEndian.Uint32(buf[4:8])
		ins.Recipient = binary.LittleEndian.Uint32(buf[8:12])
	case core.OpMint, core.OpBurn:
		ins.Amount = binary.LittleEndian.Uint32(buf[4:8])
	}
	return ins, nil
}
