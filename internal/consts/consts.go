package consts

const (
	// LamportsPerSol 表示 1 SOL 对应的最小单位数量。
	LamportsPerSol uint64 = 1_000_000_000

	// RentExemptMinLamports 表示账户免租的最低余额阈值（lamports）。
	// 低于该阈值的账户视为非持久账户。
	RentExemptMinLamports uint64 = 890_880

	// ProgramAccountLamports 表示程序账户的固定余额（程序账户不持有用户资金，
	// 余额仅用于维持免租状态）。
	ProgramAccountLamports uint64 = 1_000_000
)
