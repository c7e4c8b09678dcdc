package instruction

import (
	"sync"

	"ledger-core-sol/internal/errs"
	"ledger-core-sol/internal/logic/core"
)

// OperationHandler 处理一条已解码指令，返回结果报告或类型化错误。
type OperationHandler func(ins core.Instruction) (core.OperationReport, error)

// handlers 是 opcode → 对应操作 handler 的路由表。
var handlers = map[core.Opcode]OperationHandler{}

var initOnce sync.Once

// Init 注册所有操作 handler，幂等。
func Init() {
	initOnce.Do(func() {
		handlers[core.OpInitialize] = handleInitialize
		handlers[core.OpCreateAccount] = handleCreateAccount
		handlers[core.OpTransfer] = handleTransfer
		handlers[core.OpMint] = handleMint
		handlers[core.OpBurn] = handleBurn
	})
}

// Dispatch 按判别字节将指令路由到对应 handler。
// Decode 已拒绝未知 opcode，此处的 default 分支仅覆盖手工构造的指令值，
// 返回同样携带原始字节的 UnknownInstructionError。
// Dispatch 为同步调用，除返回值外不产生任何共享状态副作用。
func Dispatch(ins core.Instruction) (core.OperationReport, error) {
	handler, ok := handlers[ins.Opcode]
	if !ok {
		return core.OperationReport{}, &errs.UnknownInstructionError{Opcode: byte(ins.Opcode)}
	}
	return handler(ins)
}
