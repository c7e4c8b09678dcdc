package svc

import (
	"ledger-core-sol/internal/config"
	"ledger-core-sol/internal/logic/instruction"
	"ledger-core-sol/pkg/logger"
)

// InspectServiceContext 包含检查服务资源
type InspectServiceContext struct {
	Config config.InspectConfig
}

// NewInspectServiceContext 创建一个新的检查服务上下文
func NewInspectServiceContext(c config.InspectConfig) *InspectServiceContext {
	// 注册全部指令操作 handler
	instruction.Init()

	logger.Infof("inspect 服务上下文初始化完成")
	return &InspectServiceContext{Config: c}
}
