package config

import (
	"fmt"
	"os"

	"github.com/gonewx/skeleton-run/pkg/logger"
	"gopkg.in/yaml.v3"
)

// GameConfig 游戏配置数据结构
// 默认值（2304x1296 窗口、5 个下落物体、9 帧金币、8 种墓碑）
type GameConfig struct {
	Window    WindowConfig        `yaml:"window"`
	Spawner   SpawnerConfig       `yaml:"spawner"`
	Animation AnimationConfig     `yaml:"animation"`
	Player    PlayerConfig        `yaml:"player"`
	Input     InputConfig         `yaml:"input"`
	Assets    AssetsConfig        `yaml:"assets"`
	Logging   logger.LoggerConfig `yaml:"logging"`
	Seed      int64               `yaml:"seed"` // 随机种子，0 表示使用当前时间
}

// WindowConfig 窗口和世界坐标尺寸
type WindowConfig struct {
	Width  int     `yaml:"width"`  // 世界宽度（像素），也是逻辑屏幕宽度
	Height int     `yaml:"height"` // 世界高度（像素），下落物体从这里开始下落
	Title  string  `yaml:"title"`
	Scale  float64 `yaml:"scale"` // 桌面窗口相对逻辑尺寸的缩放
}

// SpawnerConfig 下落物体池配置
type SpawnerConfig struct {
	Count          int     `yaml:"count"`
	MinFallSpeed   float64 `yaml:"minFallSpeed"`   // 下落速度下限（像素/秒）
	FallSpeedRange float64 `yaml:"fallSpeedRange"` // 速度随机区间宽度，速度取 [min, min+range)
	ObjectWidth    float64 `yaml:"objectWidth"`
	ObjectHeight   float64 `yaml:"objectHeight"`
}

// AnimationConfig 帧动画配置
type AnimationConfig struct {
	CoinFrames          int     `yaml:"coinFrames"`
	CoinFrameDuration   float64 `yaml:"coinFrameDuration"`
	HazardVariants      int     `yaml:"hazardVariants"`
	PlayerFrameDuration float64 `yaml:"playerFrameDuration"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	StartX         float64 `yaml:"startX"`
	StartY         float64 `yaml:"startY"`
	Velocity       float64 `yaml:"velocity"`       // 每帧移动像素
	SpriteScale    float64 `yaml:"spriteScale"`    // 精灵尺寸相对纹理尺寸的比例
	FallbackWidth  float64 `yaml:"fallbackWidth"`  // 纹理加载失败时使用的宽度
	FallbackHeight float64 `yaml:"fallbackHeight"` // 纹理加载失败时使用的高度
	ClampToScreen  bool    `yaml:"clampToScreen"`  // 是否限制玩家不离开屏幕
}

// InputConfig 输入配置
type InputConfig struct {
	// ReleaseClearsAny 为 true 时松开任意键都会清除移动意图（经典行为）
	ReleaseClearsAny bool `yaml:"releaseClearsAny"`
	// 终端没有按键松开事件，按键超时未重复即视为松开（秒）
	// TUIFirstRepeatDelay 首次按下后等待第一次自动重复的时间
	// TUIReleaseDelay 自动重复开始后两次重复之间的最长间隔
	TUIFirstRepeatDelay float64 `yaml:"tuiFirstRepeatDelay"`
	TUIReleaseDelay     float64 `yaml:"tuiReleaseDelay"`
}

// AssetsConfig 纹理资源路径（相对 Dir）
type AssetsConfig struct {
	Dir          string   `yaml:"dir"`
	Background   string   `yaml:"background"`
	PlayerFrames []string `yaml:"playerFrames"` // 4 帧：居中、向左、居中、向右
	Coins        string   `yaml:"coins"`
	Obstacle     string   `yaml:"obstacle"`
}

// LoadGameConfig 从YAML文件加载游戏配置
func LoadGameConfig(filepath string) (*GameConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", filepath, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析YAML数据，应用默认值并验证
// 空输入得到全默认配置
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := presetDefaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateGameConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return &cfg, nil
}

// DefaultGameConfig 返回全默认配置
func DefaultGameConfig() *GameConfig {
	cfg := presetDefaults()
	applyDefaults(&cfg)
	return &cfg
}

// presetDefaults 返回解析前预置的默认值
// 这些字段的 0 是合法配置（空池、固定下落速度、静止的玩家），不能事后按零值补默认
func presetDefaults() GameConfig {
	return GameConfig{
		Spawner: SpawnerConfig{
			Count:          DefaultObjectCount,
			FallSpeedRange: 200,
		},
		Player: PlayerConfig{
			Velocity: 1.0,
		},
	}
}

// applyDefaults 为缺失的可选字段设置默认值
//
// 数值字段以零值表示"未配置"，因此玩家起点不能显式配置为 (0, 0)。
func applyDefaults(cfg *GameConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = DefaultWorldWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = DefaultWorldHeight
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = DefaultWindowTitle
	}
	if cfg.Window.Scale == 0 {
		cfg.Window.Scale = 0.5
	}

	if cfg.Spawner.MinFallSpeed == 0 {
		cfg.Spawner.MinFallSpeed = 100
	}
	if cfg.Spawner.ObjectWidth == 0 {
		cfg.Spawner.ObjectWidth = 50
	}
	if cfg.Spawner.ObjectHeight == 0 {
		cfg.Spawner.ObjectHeight = 50
	}

	if cfg.Animation.CoinFrames == 0 {
		cfg.Animation.CoinFrames = CoinFrames
	}
	if cfg.Animation.CoinFrameDuration == 0 {
		cfg.Animation.CoinFrameDuration = 0.1
	}
	if cfg.Animation.HazardVariants == 0 {
		cfg.Animation.HazardVariants = HazardVariants
	}
	if cfg.Animation.PlayerFrameDuration == 0 {
		cfg.Animation.PlayerFrameDuration = 0.2
	}

	if cfg.Player.StartX == 0 && cfg.Player.StartY == 0 {
		cfg.Player.StartX = 50
		cfg.Player.StartY = 40
	}
	if cfg.Player.SpriteScale == 0 {
		cfg.Player.SpriteScale = 0.5
	}
	if cfg.Player.FallbackWidth == 0 {
		cfg.Player.FallbackWidth = 64
	}
	if cfg.Player.FallbackHeight == 0 {
		cfg.Player.FallbackHeight = 96
	}

	if cfg.Input.TUIFirstRepeatDelay == 0 {
		cfg.Input.TUIFirstRepeatDelay = 0.6
	}
	if cfg.Input.TUIReleaseDelay == 0 {
		cfg.Input.TUIReleaseDelay = 0.15
	}

	if cfg.Assets.Dir == "" {
		cfg.Assets.Dir = "Sprites"
	}
	if cfg.Assets.Background == "" {
		cfg.Assets.Background = "background.png"
	}
	if len(cfg.Assets.PlayerFrames) == 0 {
		cfg.Assets.PlayerFrames = []string{"centro.png", "esquerda.png", "centro.png", "direita.png"}
	}
	if cfg.Assets.Coins == "" {
		cfg.Assets.Coins = "coins.png"
	}
	if cfg.Assets.Obstacle == "" {
		cfg.Assets.Obstacle = "obstacle.png"
	}

	defaultLogging := logger.DefaultConfig()
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLogging.Format
	}
}

// validateGameConfig 验证配置的完整性和合法性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %v", cfg.Window.Scale)
	}

	if cfg.Spawner.Count < 0 {
		return fmt.Errorf("spawner.count cannot be negative, got %d", cfg.Spawner.Count)
	}
	if cfg.Spawner.MinFallSpeed <= 0 {
		return fmt.Errorf("spawner.minFallSpeed must be positive, got %v", cfg.Spawner.MinFallSpeed)
	}
	if cfg.Spawner.FallSpeedRange < 0 {
		return fmt.Errorf("spawner.fallSpeedRange cannot be negative, got %v", cfg.Spawner.FallSpeedRange)
	}
	if cfg.Spawner.ObjectWidth <= 0 || cfg.Spawner.ObjectHeight <= 0 {
		return fmt.Errorf("spawner object size must be positive, got %vx%v", cfg.Spawner.ObjectWidth, cfg.Spawner.ObjectHeight)
	}

	if cfg.Animation.CoinFrames < 1 {
		return fmt.Errorf("animation.coinFrames must be at least 1, got %d", cfg.Animation.CoinFrames)
	}
	if cfg.Animation.HazardVariants < 1 {
		return fmt.Errorf("animation.hazardVariants must be at least 1, got %d", cfg.Animation.HazardVariants)
	}
	if cfg.Animation.CoinFrameDuration <= 0 || cfg.Animation.PlayerFrameDuration <= 0 {
		return fmt.Errorf("animation frame durations must be positive")
	}

	if cfg.Player.Velocity < 0 {
		return fmt.Errorf("player.velocity cannot be negative, got %v", cfg.Player.Velocity)
	}
	if cfg.Player.SpriteScale <= 0 {
		return fmt.Errorf("player.spriteScale must be positive, got %v", cfg.Player.SpriteScale)
	}
	if cfg.Player.FallbackWidth <= 0 || cfg.Player.FallbackHeight <= 0 {
		return fmt.Errorf("player fallback size must be positive")
	}

	if cfg.Input.TUIReleaseDelay <= 0 {
		return fmt.Errorf("input.tuiReleaseDelay must be positive, got %v", cfg.Input.TUIReleaseDelay)
	}
	if cfg.Input.TUIFirstRepeatDelay < cfg.Input.TUIReleaseDelay {
		return fmt.Errorf("input.tuiFirstRepeatDelay must be at least tuiReleaseDelay, got %v < %v",
			cfg.Input.TUIFirstRepeatDelay, cfg.Input.TUIReleaseDelay)
	}

	if len(cfg.Assets.PlayerFrames) != PlayerWalkFrames {
		return fmt.Errorf("assets.playerFrames must list exactly %d textures, got %d", PlayerWalkFrames, len(cfg.Assets.PlayerFrames))
	}

	if !logger.ValidFormat(cfg.Logging.Format) {
		return fmt.Errorf("logging.format must be one of: console, json, got %q", cfg.Logging.Format)
	}

	return nil
}
