package core

// OperationReport 表示 Dispatch 对一条指令的处理结果。
// 报告是纯值对象，不修改任何共享状态。
type OperationReport struct {
	Opcode    Opcode // 被处理的指令类型
	Summary   string // 人类可读的一行摘要
	Amount    uint32 // Transfer/Mint/Burn 的金额，其余为 0
	Recipient uint32 // Transfer 的收款账户 ID，其余为 0
}
