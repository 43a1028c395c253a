// Package tui 在终端中运行游戏
//
// Renderer 把世界坐标缩放到字符网格，每个精灵画成一块纯色背景的单元格，
// 颜色取纹理（或精灵图当前格）的平均色。Input 把 tcell 按键事件转换为游戏按键事件。
package tui

import (
	"image"
	"io/fs"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/types"
	"github.com/gonewx/skeleton-run/pkg/utils"
	"go.uber.org/zap"
)

// placeholderRune 无效纹理在终端中的显示字符
const placeholderRune = '?'

type cellKey struct {
	id     types.TextureID
	frames int
	frame  int
}

// cellColor 缓存的单元格颜色，transparent 表示该格完全透明，不绘制
type cellColor struct {
	color       tcell.Color
	transparent bool
}

// Renderer 基于 tcell 的终端渲染器
type Renderer struct {
	screen tcell.Screen
	fsys   fs.FS
	logger *zap.Logger

	worldW float64
	worldH float64

	images map[types.TextureID]image.Image
	nextID types.TextureID
	colors map[cellKey]cellColor

	placeholder tcell.Style
	released    bool
}

// NewRenderer 创建终端渲染器
// screen 必须已经 Init；worldW/worldH 是逻辑世界尺寸，绘制时按屏幕字符数缩放
func NewRenderer(screen tcell.Screen, fsys fs.FS, worldW, worldH int, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	pc := config.PlaceholderColor
	r := &Renderer{
		screen: screen,
		fsys:   fsys,
		logger: logger.Named("TUIRenderer"),
		worldW: float64(worldW),
		worldH: float64(worldH),
		images: make(map[types.TextureID]image.Image),
		colors: make(map[cellKey]cellColor),
		placeholder: tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(pc.R), int32(pc.G), int32(pc.B))).
			Background(tcell.ColorBlack),
	}
	screen.HideCursor()

	cols, rows := screen.Size()
	r.logger.Info("renderer initialized",
		zap.String("backend", "tui"),
		zap.Int("cols", cols),
		zap.Int("rows", rows),
	)
	return r
}

// LoadTexture 解码图片并分配句柄
func (r *Renderer) LoadTexture(path string) types.Texture {
	if r.fsys == nil {
		r.logger.Warn("failed to load texture", zap.String("path", path), zap.String("error", "no asset filesystem"))
		return types.Texture{ID: types.InvalidTexture}
	}

	img, err := utils.DecodeImage(r.fsys, path)
	if err != nil {
		r.logger.Warn("failed to load texture", zap.String("path", path), zap.Error(err))
		return types.Texture{ID: types.InvalidTexture}
	}

	r.nextID++
	r.images[r.nextID] = img
	b := img.Bounds()
	return types.Texture{ID: r.nextID, Width: b.Dx(), Height: b.Dy()}
}

// Clear 清空字符网格
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// Draw 用纹理平均色填充精灵覆盖的单元格
func (r *Renderer) Draw(sprite components.SpriteComponent) {
	x0, y0, x1, y1, ok := r.cellBounds(sprite)
	if !ok {
		return
	}

	ch := ' '
	style := r.placeholder
	if sprite.Texture.Valid() {
		cc := r.colorFor(sprite)
		if cc.transparent {
			return
		}
		style = tcell.StyleDefault.Background(cc.color)
	} else {
		ch = placeholderRune
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// Present 把本帧内容刷到终端
func (r *Renderer) Present() {
	r.screen.Show()
}

// Release 恢复终端
func (r *Renderer) Release() {
	if r.released {
		return
	}
	r.released = true
	r.images = make(map[types.TextureID]image.Image)
	r.colors = make(map[cellKey]cellColor)
	r.screen.Fini()
	r.logger.Debug("renderer released")
}

// cellBounds 计算精灵外接矩形覆盖的单元格 [x0,x1) x [y0,y1)
// 至少覆盖一个单元格；完全在屏幕外时 ok 为 false
func (r *Renderer) cellBounds(sprite components.SpriteComponent) (x0, y0, x1, y1 int, ok bool) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 || r.worldW <= 0 || r.worldH <= 0 {
		return 0, 0, 0, 0, false
	}

	corners := utils.SpriteCorners(sprite)
	minX, maxX := corners[0].X, corners[0].X
	minY, maxY := corners[0].Y, corners[0].Y
	for _, c := range corners[1:] {
		minX = math.Min(minX, c.X)
		maxX = math.Max(maxX, c.X)
		minY = math.Min(minY, c.Y)
		maxY = math.Max(maxY, c.Y)
	}

	sx := float64(cols) / r.worldW
	sy := float64(rows) / r.worldH

	// 世界 Y 向上，终端行号向下
	_, top := utils.WorldToScreen(minX, maxY, r.worldH)
	_, bottom := utils.WorldToScreen(minX, minY, r.worldH)

	x0 = int(math.Floor(minX * sx))
	x1 = int(math.Ceil(maxX * sx))
	y0 = int(math.Floor(top * sy))
	y1 = int(math.Ceil(bottom * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = max(x0, 0), min(x1, cols)
	y0, y1 = max(y0, 0), min(y1, rows)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}

// colorFor 返回精灵当前格的平均色（按纹理和格子缓存）
func (r *Renderer) colorFor(sprite components.SpriteComponent) cellColor {
	key := cellKey{id: sprite.Texture, frames: sprite.SheetFrames, frame: sprite.SheetFrame}
	if cc, ok := r.colors[key]; ok {
		return cc
	}

	img, ok := r.images[sprite.Texture]
	if !ok {
		cc := cellColor{transparent: true}
		r.colors[key] = cc
		return cc
	}

	b := img.Bounds()
	cell := utils.SheetCell(b.Dx(), b.Dy(), sprite.SheetFrames, sprite.SheetFrame).Add(b.Min)
	avg := utils.AverageColor(img, cell)

	cc := cellColor{
		color:       tcell.NewRGBColor(int32(avg.R), int32(avg.G), int32(avg.B)),
		transparent: avg.A == 0,
	}
	r.colors[key] = cc
	return cc
}
