package consts

import "ledger-core-sol/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	SystemProgramStr = "11111111111111111111111111111111"
	TokenProgramStr  = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
)

// 公钥形式的地址常量（types.Pubkey），用于比对场景。
var (
	SystemProgram types.Pubkey
	TokenProgram  types.Pubkey
)

// init 自动将 base58 字符串地址转换为 types.Pubkey
func init() {
	SystemProgram = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram = types.PubkeyFromBase58(TokenProgramStr)
}
