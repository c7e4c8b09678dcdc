package service

import (
	"encoding/hex"
	"os"

	"gopkg.in/yaml.v3"

	"ledger-core-sol/internal/logic/accountrec"
	"ledger-core-sol/internal/logic/instruction"
	"ledger-core-sol/internal/logic/validator"
	"ledger-core-sol/internal/svc"
	"ledger-core-sol/internal/utils"
	"ledger-core-sol/pkg/logger"
)

// 账户记录类型标签 → 账户实体变体
const (
	accountKindUser    byte = 1
	accountKindProgram byte = 2
)

// fixtureFile 是 fixture yaml 文件的结构，所有缓冲区为十六进制字符串。
type fixtureFile struct {
	Instructions []string `yaml:"instructions"` // 指令缓冲区
	Accounts     []struct {
		Buffer   string `yaml:"buffer"`   // 账户记录缓冲区
		Lamports uint64 `yaml:"lamports"` // 账户余额（用户账户生效）
	} `yaml:"accounts"`
	Transactions []struct {
		Kind    byte   `yaml:"kind"`    // 交易记录类型标签
		Payload string `yaml:"payload"` // borsh 负载
	} `yaml:"transactions"`
}

// InspectService 将 fixture 文件中的样本缓冲区喂给解码/校验/分发管线，
// 逐条记录结果。处理完成后保持空闲直到 Stop。
type InspectService struct {
	svcCtx   *svc.InspectServiceContext
	stopChan chan struct{}
}

func NewInspectService(svcCtx *svc.InspectServiceContext) *InspectService {
	return &InspectService{
		svcCtx:   svcCtx,
		stopChan: make(chan struct{}),
	}
}

func (s *InspectService) Start() {
	if err := s.run(); err != nil {
		logger.Errorf("[inspect] fixture 处理失败: %v", err)
	}
	<-s.stopChan
}

func (s *InspectService) Stop() {
	close(s.stopChan)
}

func (s *InspectService) run() error {
	raw, err := os.ReadFile(s.svcCtx.Config.FixtureConf.File)
	if err != nil {
		return err
	}

	var fixtures fixtureFile
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return err
	}

	s.inspectInstructions(fixtures)
	s.inspectAccounts(fixtures)
	s.inspectTransactions(fixtures)
	return nil
}

// inspectInstructions 对每条指令缓冲区执行 decode → dispatch → 报告编码。
// 单条失败只记录，不中断整体处理。
func (s *InspectService) inspectInstructions(fixtures fixtureFile) {
	for i, bufHex := range fixtures.Instructions {
		buf, err := hex.DecodeString(bufHex)
		if err != nil {
			logger.Warnf("[inspect] instruction[%d]: 非法十六进制: %v", i, err)
			continue
		}

		ins, err := instruction.Decode(buf)
		if err != nil {
			logger.Warnf("[inspect] instruction[%d]: 解码失败: %v", i, err)
			continue
		}

		report, err := instruction.Dispatch(ins)
		if err != nil {
			logger.Warnf("[inspect] instruction[%d]: %s 分发失败: %v", i, ins.Opcode, err)
			continue
		}

		encoded, err := utils.EncodeReport(report)
		if err != nil {
			logger.Errorf("[inspect] instruction[%d]: 报告编码失败: %v", i, err)
			continue
		}
		logger.Infof("[inspect] instruction[%d]: %s (report %d bytes)", i, report.Summary, len(encoded))
	}
}

// inspectAccounts 解析账户记录并按类型标签构造账户实体，输出免租判定。
func (s *InspectService) inspectAccounts(fixtures fixtureFile) {
	for i, fx := range fixtures.Accounts {
		buf, err := hex.DecodeString(fx.Buffer)
		if err != nil {
			logger.Warnf("[inspect] account[%d]: 非法十六进制: %v", i, err)
			continue
		}

		record, err := accountrec.Parse(buf)
		if err != nil {
			logger.Warnf("[inspect] account[%d]: 解析失败: %v", i, err)
			continue
		}

		var account validator.Account
		switch record.Kind {
		case accountKindProgram:
			account = &validator.ProgramAccount{ID: record.Name, Executable: true}
		case accountKindUser:
			account = &validator.UserAccount{Name: record.Name, Balance: fx.Lamports}
		default:
			logger.Warnf("[inspect] account[%d]: 未知账户类型标签 %d", i, record.Kind)
			continue
		}

		account.DisplayInfo()
		logger.Infof("[inspect] account[%d]: name=%s authority=%d rent_exempt=%v",
			i, record.Name, record.Authority, account.IsRentExempt())
	}
}

// inspectTransactions 解码交易记录后出具完整校验报告（不短路）。
func (s *InspectService) inspectTransactions(fixtures fixtureFile) {
	txs := make([]validator.Transaction, 0, len(fixtures.Transactions))
	for i, fx := range fixtures.Transactions {
		payload, err := hex.DecodeString(fx.Payload)
		if err != nil {
			logger.Warnf("[inspect] transaction[%d]: 非法十六进制: %v", i, err)
			continue
		}

		tx, err := validator.DecodeTransaction(fx.Kind, payload)
		if err != nil {
			logger.Warnf("[inspect] transaction[%d]: 解码失败: %v", i, err)
			continue
		}
		txs = append(txs, tx)
	}

	for _, report := range validator.ValidateAll(txs) {
		logger.Infof("[inspect] transaction[%d]: sig=%s valid=%v",
			report.Index, report.Signature, report.Valid)
	}
}
