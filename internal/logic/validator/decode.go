package validator

import (
	"github.com/near/borsh-go"

	"ledger-core-sol/internal/errs"
)

// 交易记录的类型标签（fixture / 外部输入的首个判别字节）。
const (
	TxKindTokenTransfer byte = 0
	TxKindNFTTransfer   byte = 1
)

// tokenTransferPayload 是 TokenTransfer 的 borsh 线上结构。
type tokenTransferPayload struct {
	From           string
	To             string
	AmountLamports uint64
	Sig            string
}

// nftTransferPayload 是 NFTTransfer 的 borsh 线上结构。
type nftTransferPayload struct {
	Collection string
	TokenID    uint64
	NewOwner   string
	SignedBy   string
	Sig        string
}

// DecodeTransaction 按类型标签将 borsh 负载解码为对应的交易变体。
// 未知标签返回 UnknownInstructionError（携带原始字节），
// borsh 解码失败包装为序列化层 CompositeError。
func DecodeTransaction(kind byte, data []byte) (Transaction, error) {
	switch kind {
	case TxKindTokenTransfer:
		var p tokenTransferPayload
		if err := borsh.Deserialize(&p, data); err != nil {
			return nil, errs.NewSerializationError(err)
		}
		return &TokenTransfer{
			From:           p.From,
			To:             p.To,
			AmountLamports: p.AmountLamports,
			Sig:            p.Sig,
		}, nil

	case TxKindNFTTransfer:
		var p nftTransferPayload
		if err := borsh.Deserialize(&p, data); err != nil {
			return nil, errs.NewSerializationError(err)
		}
		return &NFTTransfer{
			Collection: p.Collection,
			TokenID:    p.TokenID,
			NewOwner:   p.NewOwner,
			SignedBy:   p.SignedBy,
			Sig:        p.Sig,
		}, nil

	default:
		return nil, &errs.UnknownInstructionError{Opcode: kind}
	}
}
