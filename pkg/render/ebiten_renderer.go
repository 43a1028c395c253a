// Package render 提供 game.Renderer 的图形实现
//
// EbitenRenderer 在窗口中绘制，HeadlessRenderer 只记录提交，用于命令行模拟和测试。
package render

import (
	_ "embed"
	"image"
	"image/color"
	"io/fs"

	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/types"
	"github.com/gonewx/skeleton-run/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

//go:embed sprite.kage
var spriteShaderSource []byte

// EbitenRenderer 基于 Ebitengine 的渲染器
//
// 帧在离屏图像上构建，Present 时与已呈现的图像交换；
// ebiten 的 Draw 回调通过 DrawTo 把最近呈现的一帧画到窗口。
type EbitenRenderer struct {
	fsys   fs.FS
	height int
	logger *zap.Logger

	textures map[types.TextureID]*ebiten.Image
	nextID   types.TextureID

	// shader 为 nil 时退回 DrawTriangles
	shader *ebiten.Shader
	// white 3x3 白色图像，取中间 1 像素作为占位色块的纹理
	white *ebiten.Image

	offscreen *ebiten.Image
	presented *ebiten.Image

	debug bool
	hud   string

	released bool
}

// NewEbitenRenderer 创建渲染器并编译精灵着色器
// 着色器编译失败时记录日志，之后所有绘制使用 DrawTriangles
func NewEbitenRenderer(fsys fs.FS, width, height int, debug bool, logger *zap.Logger) *EbitenRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &EbitenRenderer{
		fsys:      fsys,
		height:    height,
		logger:    logger.Named("EbitenRenderer"),
		textures:  make(map[types.TextureID]*ebiten.Image),
		white:     ebiten.NewImage(3, 3),
		offscreen: ebiten.NewImage(width, height),
		presented: ebiten.NewImage(width, height),
		debug:     debug,
	}
	r.white.Fill(color.White)

	shader, err := ebiten.NewShader(spriteShaderSource)
	if err != nil {
		r.logger.Error("sprite shader compilation failed, falling back to DrawTriangles", zap.Error(err))
	} else {
		r.shader = shader
	}

	r.logger.Info("renderer initialized",
		zap.String("backend", "ebiten"),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("shader", r.shader != nil))

	return r
}

// LoadTexture 解码图片并上传为 ebiten 图像
func (r *EbitenRenderer) LoadTexture(path string) types.Texture {
	img, err := utils.DecodeImage(r.fsys, path)
	if err != nil {
		r.logger.Warn("failed to load texture", zap.String("path", path), zap.Error(err))
		return types.Texture{ID: types.InvalidTexture}
	}

	r.nextID++
	r.textures[r.nextID] = ebiten.NewImageFromImage(img)

	b := img.Bounds()
	return types.Texture{ID: r.nextID, Width: b.Dx(), Height: b.Dy()}
}

// Clear 开始新的一帧
func (r *EbitenRenderer) Clear() {
	r.offscreen.Clear()
}

// Draw 绘制一个精灵
func (r *EbitenRenderer) Draw(sprite components.SpriteComponent) {
	tex, ok := r.textures[sprite.Texture]
	if !ok {
		r.drawPlaceholder(sprite)
		return
	}

	b := tex.Bounds()
	cell := utils.SheetCell(b.Dx(), b.Dy(), sprite.SheetFrames, sprite.SheetFrame).Add(b.Min)
	vs := QuadVertices(sprite, cell, float64(r.height), 1, 1, 1, 1)

	if r.shader != nil {
		op := &ebiten.DrawTrianglesShaderOptions{}
		op.Images[0] = tex
		r.offscreen.DrawTrianglesShader(vs, quadIndices, r.shader, op)
		return
	}
	r.offscreen.DrawTriangles(vs, quadIndices, tex, nil)
}

// drawPlaceholder 无效纹理画成洋红色块
func (r *EbitenRenderer) drawPlaceholder(sprite components.SpriteComponent) {
	c := config.PlaceholderColor
	vs := QuadVertices(sprite, image.Rect(1, 1, 2, 2), float64(r.height),
		float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff)
	r.offscreen.DrawTriangles(vs, quadIndices, r.white, nil)
}

// Present 结束当前帧
func (r *EbitenRenderer) Present() {
	r.offscreen, r.presented = r.presented, r.offscreen
}

// SetHUD 设置调试信息文字（只在 debug 模式下显示）
func (r *EbitenRenderer) SetHUD(text string) {
	r.hud = text
}

// DrawTo 把最近呈现的一帧画到 screen
func (r *EbitenRenderer) DrawTo(screen *ebiten.Image) {
	if r.released {
		return
	}
	screen.DrawImage(r.presented, nil)
	if r.debug && r.hud != "" {
		ebitenutil.DebugPrint(screen, r.hud)
	}
}

// Release 释放所有纹理和着色器
func (r *EbitenRenderer) Release() {
	if r.released {
		return
	}
	r.released = true

	for id, img := range r.textures {
		img.Deallocate()
		delete(r.textures, id)
	}
	if r.shader != nil {
		r.shader.Deallocate()
		r.shader = nil
	}
	r.white.Deallocate()
	r.offscreen.Deallocate()
	r.presented.Deallocate()

	r.logger.Debug("renderer released")
}
