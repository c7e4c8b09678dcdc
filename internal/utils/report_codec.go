package utils

import (
	"encoding/binary"
	"fmt"

	"github.com/near/borsh-go"

	"ledger-core-sol/internal/errs"
	"ledger-core-sol/internal/logic/core"
)

// EncodeReport 将操作报告编码为带类型前缀的二进制数据：
// - 前 4 字节为报告类型（opcode，uint32 小端序）
// - 后续为 borsh 序列化的报告内容
func EncodeReport(report core.OperationReport) ([]byte, error) {
	payload, err := borsh.Serialize(report)
	if err != nil {
		return nil, fmt.Errorf("EncodeReport: serialize %T: %w", report, err)
	}

	buf := make([]byte, 4, 4+len(payload))
	binary.LittleEndian.PutUint32(buf[:4], uint32(report.Opcode))
	return append(buf, payload...), nil
}

// DecodeReport 是 EncodeReport 的逆操作。
// 前缀与负载中的 opcode 不一致视为序列化层错误。
func DecodeReport(data []byte) (core.OperationReport, error) {
	if len(data) < 4 {
		return core.OperationReport{}, &errs.TruncatedInputError{Got: len(data), Want: 4}
	}

	var report core.OperationReport
	if err := borsh.Deserialize(&report, data[4:]); err != nil {
		return core.OperationReport{}, errs.NewSerializationError(err)
	}

	prefix := binary.LittleEndian.Uint32(data[:4])
	if prefix != uint32(report.Opcode) {
		return core.OperationReport{}, errs.NewSerializationError(
			fmt.Errorf("report type prefix %d does not match payload opcode %d", prefix, report.Opcode))
	}
	return report, nil
}
