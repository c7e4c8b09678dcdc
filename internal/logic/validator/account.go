package validator

import (
	"ledger-core-sol/internal/consts"
	"ledger-core-sol/pkg/logger"
)

// Account 是账户实体的能力接口，覆盖异构的账户变体。
type Account interface {
	Lamports() uint64
	DisplayInfo()       // 渲染一行账户信息（仅日志输出，不影响有效性）
	IsRentExempt() bool // 是否达到免租阈值
}

// defaultRentExempt 是 IsRentExempt 的默认规则：余额不低于 consts.RentExemptMinLamports。
func defaultRentExempt(a Account) bool {
	return a.Lamports() >= consts.RentExemptMinLamports
}

// UserAccount 表示用户账户，余额来自存储状态。
type UserAccount struct {
	Name    string
	Balance uint64 // lamports
}

func (a *UserAccount) Lamports() uint64 {
	return a.Balance
}

func (a *UserAccount) DisplayInfo() {
	logger.Infof("user account: %s, balance: %d lamports", a.Name, a.Balance)
}

func (a *UserAccount) IsRentExempt() bool {
	return defaultRentExempt(a)
}

// ProgramAccount 表示程序账户。余额固定为 consts.ProgramAccountLamports，
// 不读取存储状态（程序账户余额仅用于维持免租）。
type ProgramAccount struct {
	ID         string
	Executable bool
}

func (a *ProgramAccount) Lamports() uint64 {
	return consts.ProgramAccountLamports
}

func (a *ProgramAccount) DisplayInfo() {
	logger.Infof("program account: %s, executable: %v", a.ID, a.Executable)
}

func (a *ProgramAccount) IsRentExempt() bool {
	return defaultRentExempt(a)
}
