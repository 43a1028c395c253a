// Skeleton Run: 接住金币、躲开墓碑的 2D 小游戏
//
// 用法:
//
//	skeleton-run [-backend ebiten|tui] [-config path] [-assets dir] [-seed n] [-verbose] [-debug]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/skeleton-run/pkg/app"
	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/embedded"
	"github.com/gonewx/skeleton-run/pkg/game"
	"github.com/gonewx/skeleton-run/pkg/logger"
	"github.com/gonewx/skeleton-run/pkg/render"
	"github.com/gonewx/skeleton-run/pkg/scenes"
	"github.com/gonewx/skeleton-run/pkg/tui"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// defaultConfigPath 嵌入的默认配置
const defaultConfigPath = "data/game.yaml"

// tuiLogFile 终端模式下未指定日志输出时写入的文件
const tuiLogFile = "skeleton-run.log"

// tuiFrameInterval 终端模式的帧间隔（约 60 FPS）
const tuiFrameInterval = 16 * time.Millisecond

var (
	backend    = flag.String("backend", "ebiten", "渲染后端: ebiten 或 tui")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内嵌配置）")
	assetsDir  = flag.String("assets", "", "从磁盘目录加载纹理（默认使用内嵌资源）")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示使用配置或当前时间")
	verbose    = flag.Bool("verbose", false, "显示详细调试日志")
	debug      = flag.Bool("debug", false, "显示调试 HUD（FPS、收集数）")
)

func main() {
	flag.Parse()

	embedded.Init(assetsFS, dataFS)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "skeleton-run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if *verbose {
		cfg.Logging.Level = "debug"
	}
	if *backend == "tui" && cfg.Logging.Output == "" {
		cfg.Logging.Output = tuiLogFile
	}

	log, err := logger.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	defer logger.RedirectStdLog(log)()

	assets, err := assetFS()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(resolveSeed(cfg, log)))

	var outcome game.Outcome
	switch *backend {
	case "ebiten":
		outcome, err = runEbiten(cfg, assets, rng, log)
	case "tui":
		outcome, err = runTUI(cfg, assets, rng, log)
	default:
		return fmt.Errorf("unknown backend %q (want ebiten or tui)", *backend)
	}
	if err != nil {
		return err
	}

	log.Info("session finished",
		zap.String("session", outcome.SessionID),
		zap.Stringer("reason", outcome.Reason),
		zap.Int("frames", outcome.Frames),
		zap.Float64("elapsed", outcome.Elapsed),
		zap.Int("collected", outcome.Collected),
	)
	fmt.Printf("%s: collected %d in %d frames (%.1fs)\n",
		outcome.Reason, outcome.Collected, outcome.Frames, outcome.Elapsed)
	return nil
}

// loadConfig 读取 -config 指定的文件，否则读取内嵌的默认配置
func loadConfig() (*config.GameConfig, error) {
	if *configPath != "" {
		return config.LoadGameConfig(*configPath)
	}
	data, err := embedded.ReadFile(defaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	return config.ParseGameConfig(data)
}

// assetFS 返回以 assets/ 为根的纹理文件系统
func assetFS() (fs.FS, error) {
	if *assetsDir != "" {
		return os.DirFS(*assetsDir), nil
	}
	return embedded.Sub("assets")
}

// resolveSeed 命令行种子优先，其次配置，都为 0 时使用当前时间
func resolveSeed(cfg *config.GameConfig, log *zap.Logger) int64 {
	s := *seed
	if s == 0 {
		s = cfg.Seed
	}
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Debug("random seed", zap.Int64("seed", s))
	return s
}

func runEbiten(cfg *config.GameConfig, assets fs.FS, rng *rand.Rand, log *zap.Logger) (game.Outcome, error) {
	renderer := render.NewEbitenRenderer(assets, cfg.Window.Width, cfg.Window.Height, *debug, log)
	scene := scenes.NewGameScene(cfg, renderer, render.NewEbitenInput(), rng, log)

	sm := game.NewSceneManager(log)
	sm.SwitchTo(scene)
	defer sm.Close()

	gameApp := app.NewApp(cfg, sm, renderer, nil, log)

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 场景结束时 Update 返回 ebiten.Termination，RunGame 返回 nil
	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		return game.Outcome{}, fmt.Errorf("game loop failed: %w", err)
	}
	return scene.Outcome(), nil
}

func runTUI(cfg *config.GameConfig, assets fs.FS, rng *rand.Rand, log *zap.Logger) (game.Outcome, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return game.Outcome{}, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return game.Outcome{}, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}

	// renderer.Release 负责 screen.Fini
	renderer := tui.NewRenderer(screen, assets, cfg.Window.Width, cfg.Window.Height, log)
	input := tui.NewInput(screen,
		seconds(cfg.Input.TUIFirstRepeatDelay), seconds(cfg.Input.TUIReleaseDelay), nil, log)
	input.Start()

	scene := scenes.NewGameScene(cfg, renderer, input, rng, log)
	sm := game.NewSceneManager(log)
	sm.SwitchTo(scene)

	ticker := time.NewTicker(tuiFrameInterval)
	defer ticker.Stop()

	last := time.Now()
	for !sm.Terminated() {
		now := <-ticker.C
		dt := now.Sub(last).Seconds()
		last = now
		if dt > config.MaxFrameDelta {
			dt = config.MaxFrameDelta
		}
		sm.Update(dt)
	}

	input.Stop()
	sm.Close()
	return scene.Outcome(), nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
