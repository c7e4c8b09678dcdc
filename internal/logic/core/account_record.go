package core

// AccountRecord 表示从账户字节缓冲区重建出的账户状态。
// 缓冲区布局（小端序）：
//
//	[0]       类型标签
//	[1:4]     保留
//	[4:8]     authority（uint32）
//	[8]       名称长度 N（无符号字节）
//	[9:12]    保留
//	[12:12+N] UTF-8 名称
type AccountRecord struct {
	Kind      byte   // 账户类型标签
	Authority uint32 // 管理方 ID（0xFFFFFFFF 表示无管理方）
	Name      string // UTF-8 名称，长度由长度字节声明
}
