package instruction

import (
	"fmt"

	"ledger-core-sol/internal/errs"
	"ledger-core-sol/internal/logic/core"
)

func handleInitialize(ins core.Instruction) (core.OperationReport, error) {
	return core.OperationReport{
		Opcode:  ins.Opcode,
		Summary: "ledger initialized",
	}, nil
}

func handleCreateAccount(ins core.Instruction) (core.OperationReport, error) {
	return core.OperationReport{
		Opcode:  ins.Opcode,
		Summary: "account created",
	}, nil
}

// handleTransfer 处理转账指令。金额为 0 的转账没有业务意义，
// 按业务错误拒绝（与校验层的 amount > 0 规则保持一致）。
func handleTransfer(ins core.Instruction) (core.OperationReport, error) {
	if ins.Amount == 0 {
		return core.OperationReport{}, errs.NewDomainError(
			errs.CodeInvalidAmount, "transfer amount must be positive, recipient=%d", ins.Recipient)
	}
	return core.OperationReport{
		Opcode:    ins.Opcode,
		Summary:   fmt.Sprintf("transfer %d to account %d", ins.Amount, ins.Recipient),
		Amount:    ins.Amount,
		Recipient: ins.Recipient,
	}, nil
}

func handleMint(ins core.Instruction) (core.OperationReport, error) {
	if ins.Amount == 0 {
		return core.OperationReport{}, errs.NewDomainError(errs.CodeInvalidAmount, "mint amount must be positive")
	}
	return core.OperationReport{
		Opcode:  ins.Opcode,
		Summary: fmt.Sprintf("mint %d", ins.Amount),
		Amount:  ins.Amount,
	}, nil
}

func handleBurn(ins core.Instruction) (core.OperationReport, error) {
	if ins.Amount == 0 {
		return core.OperationReport{}, errs.NewDomainError(errs.CodeInvalidAmount, "burn amount must be positive")
	}
	return core.OperationReport{
		Opcode:  ins.Opcode,
		Summary: fmt.Sprintf("burn %d", ins.Amount),
		Amount:  ins.Amount,
	}, nil
}
