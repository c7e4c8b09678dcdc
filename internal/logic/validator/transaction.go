// Package validator 对异构的交易/账户记录做提交前校验。
// 校验通过能力接口（capability interface）统一访问结构完全不同的具体类型，
// 不依赖任何所有权层级。
package validator

import "strings"

// Transaction 是交易记录的能力接口：任何交易变体只要提供这四个操作即可参与校验。
type Transaction interface {
	Signature() string // 不透明签名串
	Amount() uint64    // 金额（最小单位）
	Verify() bool      // 结构性签名检查（非密码学验证）
	IsValid() bool     // 综合有效性
}

// defaultValid 是 IsValid 的默认组合规则，变体可整体替换（而非叠加）。
func defaultValid(tx Transaction) bool {
	return tx.Verify() && tx.Amount() > 0
}

// TokenTransfer 表示一次代币转账，使用默认有效性规则。
type TokenTransfer struct {
	From           string
	To             string
	AmountLamports uint64
	Sig            string
}

func (t *TokenTransfer) Signature() string {
	return t.Sig
}

func (t *TokenTransfer) Amount() uint64 {
	return t.AmountLamports
}

// Verify 做结构性检查：签名串须带 0x 前缀。密码学验证不在本层范围。
func (t *TokenTransfer) Verify() bool {
	return strings.HasPrefix(t.Sig, "0x")
}

func (t *TokenTransfer) IsValid() bool {
	return defaultValid(t)
}

// NFTTransfer 表示一次 NFT 转移。有效性规则整体替换默认规则：
// 除签名外还要求 token id 为正且集合名非空。
type NFTTransfer struct {
	Collection string
	TokenID    uint64
	NewOwner   string
	SignedBy   string
	Sig        string
}

func (t *NFTTransfer) Signature() string {
	return t.Sig
}

// Amount 恒为 1：NFT 按单件计。
func (t *NFTTransfer) Amount() uint64 {
	return 1
}

func (t *NFTTransfer) Verify() bool {
	return t.Sig != "" && t.SignedBy == "authority"
}

func (t *NFTTransfer) IsValid() bool {
	return t.Verify() && t.TokenID > 0 && t.Collection != ""
}

// ValidationReport 记录单条交易的校验结果，Index 为输入序号。
type ValidationReport struct {
	Index     int
	Signature string
	Valid     bool
}

// ValidateAll 按输入顺序对集合中每条交易出具校验报告。
// 这是完整报告而非门禁：不重排、不在首个失败处短路。
func ValidateAll(txs []Transaction) []ValidationReport {
	reports := make([]ValidationReport, 0, len(txs))
	for i, tx := range txs {
		reports = append(reports, ValidationReport{
			Index:     i,
			Signature: tx.Signature(),
			Valid:     tx.IsValid(),
		})
	}
	return reports
}
