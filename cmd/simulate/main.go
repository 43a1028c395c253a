// simulate 在没有窗口的情况下运行一局游戏并打印结果
//
// 用法:
//
//	go run ./cmd/simulate -seed 42 -frames 600 -script "L:120,N:30,R:120"
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"math/rand"
	"os"

	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/game"
	"github.com/gonewx/skeleton-run/pkg/logger"
	"github.com/gonewx/skeleton-run/pkg/render"
	"github.com/gonewx/skeleton-run/pkg/scenes"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置默认值）")
	assetsDir  = flag.String("assets", "", "纹理目录（以 assets/ 为根）；为空时所有纹理使用占位")
	seed       = flag.Int64("seed", 1, "随机种子")
	frames     = flag.Int("frames", 600, "最多模拟的帧数")
	dt         = flag.Float64("dt", 1.0/60.0, "每帧时间增量（秒）")
	count      = flag.Int("count", -1, "下落物体数量，-1 表示使用配置")
	script     = flag.String("script", "", "输入脚本，例如 L:30,N:10,R:30（L 左、R 右、N 松开、Q 退出）")
	verbose    = flag.Bool("verbose", false, "显示详细调试日志")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *count >= 0 {
		cfg.Spawner.Count = *count
	}

	logCfg := cfg.Logging
	logCfg.Level = "warn"
	if *verbose {
		logCfg.Level = "debug"
	}
	log, err := logger.NewLogger(logCfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	segs, err := parseScript(*script)
	if err != nil {
		return err
	}

	var assets fs.FS
	if *assetsDir != "" {
		assets = os.DirFS(*assetsDir)
	}

	renderer := render.NewHeadlessRenderer(assets, log)
	scene := scenes.NewGameScene(cfg, renderer, newScriptedInput(segs), rand.New(rand.NewSource(*seed)), log)

	sm := game.NewSceneManager(log)
	sm.SwitchTo(scene)

	outcome := simulate(sm, scene, *frames, *dt)
	draws := renderer.Draws()
	visible := len(renderer.LastFrame())

	log.Debug("simulation finished",
		zap.Stringer("state", scene.State()),
		zap.Int("pool", len(scene.GameState().Pool)),
		zap.Int("presented", renderer.Frames()),
		zap.Int("draws", draws),
		zap.Int("lastFrameSprites", visible))

	sm.Close()
	if !renderer.Released() {
		log.Warn("renderer not released after scene close")
	}

	fmt.Printf("session=%s reason=%s frames=%d elapsed=%.3f collected=%d draws=%d\n",
		outcome.SessionID, outcome.Reason, outcome.Frames, outcome.Elapsed, outcome.Collected, draws)
	return nil
}

// simulate 推进最多 maxFrames 帧，场景结束时提前停止
func simulate(sm *game.SceneManager, scene *scenes.GameScene, maxFrames int, dt float64) game.Outcome {
	for i := 0; i < maxFrames && !sm.Terminated(); i++ {
		sm.Update(dt)
	}
	return scene.Outcome()
}
