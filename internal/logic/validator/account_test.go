package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ledger-core-sol/internal/consts"
)

// 测试免租阈值边界：890_879 不免租，890_880 免租
func TestUserAccount_RentExemptBoundary(t *testing.T) {
	below := &UserAccount{Name: "Alice", Balance: consts.RentExemptMinLamports - 1}
	assert.Equal(t, uint64(890_879), below.Lamports())
	assert.False(t, below.IsRentExempt())

	exact := &UserAccount{Name: "Alice", Balance: consts.RentExemptMinLamports}
	assert.Equal(t, uint64(890_880), exact.Lamports())
	assert.True(t, exact.IsRentExempt())

	zero := &UserAccount{Name: "Bob"}
	assert.False(t, zero.IsRentExempt())
}

// 程序账户余额为固定常量，不读取存储状态，恒为免租
func TestProgramAccount_FixedLamports(t *testing.T) {
	account := &ProgramAccount{ID: "TokenProg", Executable: true}
	assert.Equal(t, consts.ProgramAccountLamports, account.Lamports())
	assert.True(t, account.IsRentExempt())
}

// 两种变体可经能力接口统一处理
func TestAccounts_UniformViaInterface(t *testing.T) {
	accounts := []Account{
		&UserAccount{Name: "Alice", Balance: 50_000_000},
		&ProgramAccount{ID: "TokenProg", Executable: true},
	}

	for _, account := range accounts {
		// DisplayInfo 仅产生日志输出，不影响有效性判定
		account.DisplayInfo()
		assert.True(t, account.IsRentExempt())
	}
}
