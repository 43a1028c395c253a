// Package logger 构建游戏使用的 zap 日志器
//
// 每个系统通过 Named 获得带名字的子日志器（对应旧代码里的 "[SystemName]" 前缀），
// 标准库 log 的输出也被重定向到 zap，保证所有日志走同一条管道。
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger 根据配置创建 zap.Logger
func NewLogger(cfg LoggerConfig) (*zap.Logger, error) {
	var zapConfig zap.Config

	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	switch cfg.Format {
	case "json":
		zapConfig.Encoding = "json"
		zapConfig.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	case "console", "":
		zapConfig.Encoding = "console"
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	if cfg.Output != "" {
		zapConfig.OutputPaths = []string{cfg.Output}
		// 文件里不需要颜色控制符
		if cfg.Format != "json" {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
	}

	// 游戏循环里不需要采样，每帧日志本来就很少
	zapConfig.Sampling = nil

	logger, err := zapConfig.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// RedirectStdLog 将标准库 log 的输出转到 logger，返回恢复函数
func RedirectStdLog(logger *zap.Logger) func() {
	return zap.RedirectStdLog(logger.Named("stdlog"))
}
