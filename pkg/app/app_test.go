package app

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 在 terminateAfter 次更新后结束
type stubScene struct {
	deltas         []float64
	terminateAfter int
	collected      int
	closed         int
}

func (s *stubScene) Update(dt float64) { s.deltas = append(s.deltas, dt) }

func (s *stubScene) Terminated() bool {
	return s.terminateAfter > 0 && len(s.deltas) >= s.terminateAfter
}

func (s *stubScene) Close() { s.closed++ }

func (s *stubScene) Outcome() game.Outcome {
	return game.Outcome{Frames: len(s.deltas), Collected: s.collected}
}

type stubPresenter struct {
	hud   string
	draws int
}

func (p *stubPresenter) DrawTo(_ *ebiten.Image) { p.draws++ }
func (p *stubPresenter) SetHUD(text string)     { p.hud = text }

// manualClock 每次调用返回 times 中的下一个时间
type manualClock struct {
	base  time.Time
	times []time.Duration
	i     int
}

func (c *manualClock) Now() time.Time {
	d := c.times[c.i]
	if c.i < len(c.times)-1 {
		c.i++
	}
	return c.base.Add(d)
}

func newTestApp(scene *stubScene, clock Clock) (*App, *stubPresenter) {
	cfg := config.DefaultGameConfig()
	sm := game.NewSceneManager(nil)
	sm.SwitchTo(scene)
	p := &stubPresenter{}
	return NewApp(cfg, sm, p, clock, nil), p
}

func TestApp_FrameDelta(t *testing.T) {
	clock := &manualClock{
		base: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		times: []time.Duration{
			0,
			20 * time.Millisecond,   // 正常帧
			2 * time.Second,         // 窗口卡顿，截断
			1990 * time.Millisecond, // 时钟回退
		},
	}
	scene := &stubScene{}
	a, _ := newTestApp(scene, clock.Now)

	for i := 0; i < 4; i++ {
		if err := a.step(); err != nil {
			t.Fatalf("step %d: unexpected error %v", i, err)
		}
	}

	want := []float64{1.0 / 60.0, 0.02, config.MaxFrameDelta, 0}
	if len(scene.deltas) != len(want) {
		t.Fatalf("got %d updates, want %d", len(scene.deltas), len(want))
	}
	for i, w := range want {
		if math.Abs(scene.deltas[i]-w) > 1e-9 {
			t.Errorf("delta %d = %v, want %v", i, scene.deltas[i], w)
		}
	}
}

func TestApp_TerminationEndsLoop(t *testing.T) {
	scene := &stubScene{terminateAfter: 2}
	a, _ := newTestApp(scene, nil)

	if err := a.step(); err != nil {
		t.Fatalf("first step: %v", err)
	}
	if err := a.step(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("second step error = %v, want ebiten.Termination", err)
	}
	// 结束后不再推进场景
	if err := a.step(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("third step error = %v, want ebiten.Termination", err)
	}
	if len(scene.deltas) != 2 {
		t.Errorf("scene updated %d times after termination, want 2", len(scene.deltas))
	}
}

func TestApp_HUDAndTitle(t *testing.T) {
	scene := &stubScene{collected: 3}
	a, p := newTestApp(scene, nil)

	if err := a.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if !strings.Contains(p.hud, "Collected: 3") || !strings.Contains(p.hud, "Frame: 1") {
		t.Errorf("unexpected HUD %q", p.hud)
	}

	title, changed := a.windowTitle()
	if !changed || title != config.DefaultWindowTitle+" - 3" {
		t.Errorf("windowTitle() = %q, %v", title, changed)
	}
	if _, changed := a.windowTitle(); changed {
		t.Error("title should not change when the count is unchanged")
	}
}

func TestApp_LayoutAndWindowSize(t *testing.T) {
	a, _ := newTestApp(&stubScene{}, nil)

	w, h := a.Layout(100, 100)
	if w != config.DefaultWorldWidth || h != config.DefaultWorldHeight {
		t.Errorf("Layout() = %dx%d", w, h)
	}

	a.scale = 0.5
	if w, h := a.WindowSize(); w != config.DefaultWorldWidth/2 || h != config.DefaultWorldHeight/2 {
		t.Errorf("WindowSize() = %dx%d", w, h)
	}
	a.scale = 0
	if w, h := a.WindowSize(); w != config.DefaultWorldWidth || h != config.DefaultWorldHeight {
		t.Errorf("WindowSize() with zero scale = %dx%d", w, h)
	}
}

func TestApp_Draw(t *testing.T) {
	a, p := newTestApp(&stubScene{}, nil)
	a.Draw(nil)
	if p.draws != 1 {
		t.Errorf("presenter drawn %d times, want 1", p.draws)
	}
}
