package tui

import (
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/types"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	none  = color.RGBA{}
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := newSimScreen(t, 10, 5)
	fsys := fstest.MapFS{
		"Sprites/red.png":   {Data: solidPNG(t, 4, 4, red)},
		"Sprites/sheet.png": {Data: solidPNG(t, 4, 4, red, green, none)},
	}
	// 世界 100x50 对应 10x5 个字符，每个字符 10x10 世界单位
	return NewRenderer(screen, fsys, 100, 50, nil), screen
}

func cellAt(t *testing.T, s tcell.Screen, x, y int) (rune, tcell.Color, tcell.Color) {
	t.Helper()
	ch, _, style, _ := s.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return ch, fg, bg
}

func TestRenderer_LoadTexture(t *testing.T) {
	r, _ := newTestRenderer(t)

	tex := r.LoadTexture("Sprites/sheet.png")
	if !tex.ID.Valid() || tex.Width != 12 || tex.Height != 4 {
		t.Errorf("unexpected texture %+v", tex)
	}
	if got := r.LoadTexture("Sprites/missing.png"); got.ID.Valid() {
		t.Errorf("expected invalid texture, got %+v", got)
	}
}

func TestRenderer_DrawFillsCells(t *testing.T) {
	r, screen := newTestRenderer(t)
	tex := r.LoadTexture("Sprites/red.png")

	r.Clear()
	// 左下角一个字符
	r.Draw(components.SpriteComponent{
		Position:   types.Vec3{X: 0, Y: 0},
		Dimensions: types.Vec3{X: 10, Y: 10},
		Texture:    tex.ID,
	})

	_, _, bg := cellAt(t, screen, 0, 4)
	if bg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("cell (0,4) background = %v, want red", bg)
	}
	if _, _, bg := cellAt(t, screen, 1, 4); bg == tcell.NewRGBColor(255, 0, 0) {
		t.Error("cell (1,4) should not be painted")
	}
	if _, _, bg := cellAt(t, screen, 0, 3); bg == tcell.NewRGBColor(255, 0, 0) {
		t.Error("cell (0,3) should not be painted")
	}
}

func TestRenderer_DrawScalesToGrid(t *testing.T) {
	r, screen := newTestRenderer(t)
	tex := r.LoadTexture("Sprites/red.png")

	r.Clear()
	// 世界 (20,30) 起 30x20 → 列 [2,5)，行 [0,2)
	r.Draw(components.SpriteComponent{
		Position:   types.Vec3{X: 20, Y: 30},
		Dimensions: types.Vec3{X: 30, Y: 20},
		Texture:    tex.ID,
	})

	want := tcell.NewRGBColor(255, 0, 0)
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			_, _, bg := cellAt(t, screen, x, y)
			inside := x >= 2 && x < 5 && y < 2
			if inside != (bg == want) {
				t.Errorf("cell (%d,%d) painted=%v, want %v", x, y, bg == want, inside)
			}
		}
	}
}

func TestRenderer_SheetFrameColor(t *testing.T) {
	r, screen := newTestRenderer(t)
	tex := r.LoadTexture("Sprites/sheet.png")

	sprite := components.SpriteComponent{
		Dimensions:  types.Vec3{X: 10, Y: 10},
		Texture:     tex.ID,
		SheetFrames: 3,
		SheetFrame:  1,
	}

	r.Clear()
	r.Draw(sprite)
	if _, _, bg := cellAt(t, screen, 0, 4); bg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("frame 1 background = %v, want green", bg)
	}

	// 完全透明的格子不绘制
	sprite.SheetFrame = 2
	r.Clear()
	r.Draw(sprite)
	if _, _, bg := cellAt(t, screen, 0, 4); bg == tcell.NewRGBColor(0, 255, 0) || bg == tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("transparent frame should not paint, got %v", bg)
	}
}

func TestRenderer_PlaceholderForInvalidTexture(t *testing.T) {
	r, screen := newTestRenderer(t)

	r.Clear()
	r.Draw(components.SpriteComponent{
		Position:   types.Vec3{X: 90, Y: 40},
		Dimensions: types.Vec3{X: 10, Y: 10},
		Texture:    types.InvalidTexture,
	})

	ch, fg, _ := cellAt(t, screen, 9, 0)
	if ch != '?' {
		t.Errorf("placeholder rune = %q, want '?'", ch)
	}
	if fg != tcell.NewRGBColor(255, 0, 255) {
		t.Errorf("placeholder foreground = %v, want magenta", fg)
	}
}

func TestRenderer_OffscreenIsSkipped(t *testing.T) {
	r, screen := newTestRenderer(t)
	tex := r.LoadTexture("Sprites/red.png")

	r.Clear()
	// 完全在屏幕上方（下落物体刚回收时）
	r.Draw(components.SpriteComponent{
		Position:   types.Vec3{X: 0, Y: 60},
		Dimensions: types.Vec3{X: 10, Y: 10},
		Texture:    tex.ID,
	})

	for x := 0; x < 10; x++ {
		if _, _, bg := cellAt(t, screen, x, 0); bg == tcell.NewRGBColor(255, 0, 0) {
			t.Errorf("cell (%d,0) painted by offscreen sprite", x)
		}
	}
}

func TestRenderer_ReleaseIsIdempotent(t *testing.T) {
	r, _ := newTestRenderer(t)
	r.Present()
	r.Release()
	r.Release()
	if !r.released {
		t.Error("expected released")
	}
}
