package logger

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Format      string `yaml:"format"`      // console 或 json
	Development bool   `yaml:"development"` // 开发模式：彩色级别、DPanic 触发 panic
	// Output 日志输出路径，空表示 stderr
	// 终端模式下 stderr 会破坏画面，需要指定文件
	Output string `yaml:"output"`
}

// DefaultConfig 返回默认配置（控制台输出，info 级别）
func DefaultConfig() LoggerConfig {
	return LoggerConfig{
		Level:       "info",
		Format:      "console",
		Development: true,
	}
}

// ValidFormat 检查日志格式是否受支持
func ValidFormat(format string) bool {
	return format == "console" || format == "json"
}
