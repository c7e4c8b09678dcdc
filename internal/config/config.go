package config

import (
	"ledger-core-sol/pkg/logger"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径），为空输出到 stdout
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// FixtureConfig 表示待检查的样本缓冲区文件配置
type FixtureConfig struct {
	File string `yaml:"file"` // fixture 文件路径（yaml 格式，内容为十六进制缓冲区）
}

// InspectConfig 是主配置结构体，用于驱动检查服务
type InspectConfig struct {
	LogConf     LogConfig     `yaml:"logger"`   // 日志配置
	FixtureConf FixtureConfig `yaml:"fixtures"` // fixture 文件配置
}
