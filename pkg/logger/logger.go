// Package logger 提供进程级日志封装：zap 内核，支持 console / json 两种格式，
// 文件输出时经 lumberjack 轮转。未调用 Init 时默认输出 console 到 stdout（info 级别）。
package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOption 表示日志初始化参数，与 config.LogConfig 一一对应。
type LogOption struct {
	Format   string // "console" 或 "json"
	LogDir   string // 日志目录，为空则输出到 stdout
	Level    string // debug / info / warn / error
	Compress bool   // 是否压缩轮转后的旧日志
}

var sugar = newLogger(LogOption{Format: "console", Level: "info"}).Sugar()

// Init 按配置重建全局 logger，覆盖默认 console 输出。
func Init(opt LogOption) {
	sugar = newLogger(opt).Sugar()
}

func newLogger(opt LogOption) *zap.Logger {
	level, err := zapcore.ParseLevel(opt.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if opt.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	var sink zapcore.WriteSyncer
	if opt.LogDir != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(opt.LogDir, "inspect.log"),
			MaxSize:    128, // MB
			MaxBackups: 10,
			MaxAge:     14, // 天
			Compress:   opt.Compress,
		})
	} else {
		sink = zapcore.AddSync(os.Stdout)
	}

	core := zapcore.NewCore(enc, sink, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

func Debugf(format string, args ...any) {
	sugar.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	sugar.Infof(format, args...)
}

func Info(msg string) {
	sugar.Info(msg)
}

func Warnf(format string, args ...any) {
	sugar.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	sugar.Errorf(format, args...)
}

func Error(msg string) {
	sugar.Error(msg)
}

// Sync 刷新缓冲的日志输出，进程退出前调用。
func Sync() {
	_ = sugar.Sync()
}
