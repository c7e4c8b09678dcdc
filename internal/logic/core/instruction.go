package core

import "fmt"

// Opcode 表示指令的判别字节（buffer[0]），决定后续字段布局。
type Opcode byte

const (
	OpInitialize    Opcode = 0
	OpCreateAccount Opcode = 1
	OpTransfer      Opcode = 2
	OpMint          Opcode = 3
	OpBurn          Opcode = 4
)

func (op Opcode) String() string {
	switch op {
	case OpInitialize:
		return "Initialize"
	case OpCreateAccount:
		return "CreateAccount"
	case OpTransfer:
		return "Transfer"
	case OpMint:
		return "Mint"
	case OpBurn:
		return "Burn"
	default:
		return fmt.Sprintf("Unknown(%d)", byte(op))
	}
}

// Instruction 表示一条已解码的类型化指令。
// 字段是否有效由 Opcode 决定：
//   - Transfer: Amount + Recipient
//   - Mint / Burn: Amount
//   - Initialize / CreateAccount: 无负载字段
//
// 指令值为临时对象：由 Decode 构造，交由 Dispatch 消费后即丢弃。
type Instruction struct {
	Opcode    Opcode
	Amount    uint32 // 金额（最小单位），Transfer/Mint/Burn 有效
	Recipient uint32 // 收款账户 ID，仅 Transfer 有效
}
