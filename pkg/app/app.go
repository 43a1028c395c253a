// Package app 提供游戏应用的核心包装器
//
// 该包把场景管理器和 ebiten 渲染器组装成 ebiten.Game，供 main 的桌面后端使用。
package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Presenter 把最近呈现的一帧画到 ebiten 屏幕
// render.EbitenRenderer 实现此接口
type Presenter interface {
	DrawTo(screen *ebiten.Image)
	SetHUD(text string)
}

// Clock 返回当前时间，测试中可替换
type Clock func() time.Time

// outcomeReporter 能报告会话进度的场景（GameScene）
type outcomeReporter interface {
	Outcome() game.Outcome
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	presenter    Presenter
	clock        Clock
	logger       *zap.Logger

	width  int
	height int
	title  string
	scale  float64

	// lastTick 上一次 Update 的时间，零值表示还没有运行过
	lastTick time.Time
	// collected 窗口标题上显示的收集数
	collected int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建游戏应用
// clock 为 nil 时使用 time.Now
func NewApp(cfg *config.GameConfig, sm *game.SceneManager, presenter Presenter, clock Clock, logger *zap.Logger) *App {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		sceneManager: sm,
		presenter:    presenter,
		clock:        clock,
		logger:       logger.Named("App"),
		width:        cfg.Window.Width,
		height:       cfg.Window.Height,
		title:        cfg.Window.Title,
		scale:        cfg.Window.Scale,
		collected:    -1,
	}
}

// WindowSize 返回桌面窗口尺寸（逻辑尺寸乘以缩放）
func (a *App) WindowSize() (int, int) {
	scale := a.scale
	if scale <= 0 {
		scale = 1
	}
	return int(float64(a.width) * scale), int(float64(a.height) * scale)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）；会话结束后返回 ebiten.Termination
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			a.logger.Debug("delayed SetWindowSize", zap.Int("width", w), zap.Int("height", h))
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.logger.Debug("exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if err := a.step(); err != nil {
		return err
	}

	if title, changed := a.windowTitle(); changed {
		ebiten.SetWindowTitle(title)
	}
	return nil
}

// step 推进一帧
func (a *App) step() error {
	if a.sceneManager.Terminated() {
		return ebiten.Termination
	}

	dt := a.frameDelta()
	a.sceneManager.Update(dt)

	if o, ok := a.outcome(); ok {
		a.presenter.SetHUD(fmt.Sprintf("FPS: %0.1f\nCollected: %d\nFrame: %d",
			ebiten.ActualFPS(), o.Collected, o.Frames))
	}

	if a.sceneManager.Terminated() {
		return ebiten.Termination
	}
	return nil
}

// frameDelta 返回距上一次调用的秒数，上限为 MaxFrameDelta
// 第一次调用没有参照，按 60 FPS 的一帧计算
func (a *App) frameDelta() float64 {
	now := a.clock()
	defer func() { a.lastTick = now }()

	if a.lastTick.IsZero() {
		return 1.0 / 60.0
	}

	dt := now.Sub(a.lastTick).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > config.MaxFrameDelta {
		return config.MaxFrameDelta
	}
	return dt
}

// windowTitle 返回带收集数的窗口标题，收集数变化时 changed 为 true
func (a *App) windowTitle() (string, bool) {
	o, ok := a.outcome()
	if !ok || o.Collected == a.collected {
		return "", false
	}
	a.collected = o.Collected
	return fmt.Sprintf("%s - %d", a.title, o.Collected), true
}

func (a *App) outcome() (game.Outcome, bool) {
	r, ok := a.sceneManager.GetCurrentScene().(outcomeReporter)
	if !ok {
		return game.Outcome{}, false
	}
	return r.Outcome(), true
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.presenter.DrawTo(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
