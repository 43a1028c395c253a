package render

import (
	"io/fs"

	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/types"
	"github.com/gonewx/skeleton-run/pkg/utils"
	"go.uber.org/zap"
)

// HeadlessRenderer 不需要 GPU 的渲染器
//
// 纹理只读取图片头得到尺寸；绘制只记录提交的精灵。
// 用于 cmd/simulate 和测试。
type HeadlessRenderer struct {
	fsys   fs.FS
	logger *zap.Logger

	nextID types.TextureID
	sizes  map[types.TextureID][2]int

	current   []components.SpriteComponent
	lastFrame []components.SpriteComponent

	frames   int
	draws    int
	released bool
}

// NewHeadlessRenderer 创建无窗口渲染器
// fsys 为 nil 时所有纹理加载失败
func NewHeadlessRenderer(fsys fs.FS, logger *zap.Logger) *HeadlessRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &HeadlessRenderer{
		fsys:   fsys,
		logger: logger.Named("HeadlessRenderer"),
		sizes:  make(map[types.TextureID][2]int),
	}
	r.logger.Info("renderer initialized", zap.String("backend", "headless"))
	return r
}

// LoadTexture 读取图片尺寸
func (r *HeadlessRenderer) LoadTexture(path string) types.Texture {
	if r.fsys == nil {
		r.logger.Warn("failed to load texture", zap.String("path", path), zap.String("error", "no asset filesystem"))
		return types.Texture{ID: types.InvalidTexture}
	}

	cfg, err := utils.DecodeImageConfig(r.fsys, path)
	if err != nil {
		r.logger.Warn("failed to load texture", zap.String("path", path), zap.Error(err))
		return types.Texture{ID: types.InvalidTexture}
	}

	r.nextID++
	r.sizes[r.nextID] = [2]int{cfg.Width, cfg.Height}
	return types.Texture{ID: r.nextID, Width: cfg.Width, Height: cfg.Height}
}

// Clear 开始新的一帧
func (r *HeadlessRenderer) Clear() {
	r.current = r.current[:0]
}

// Draw 记录一次提交
func (r *HeadlessRenderer) Draw(sprite components.SpriteComponent) {
	r.current = append(r.current, sprite)
	r.draws++
}

// Present 结束当前帧
func (r *HeadlessRenderer) Present() {
	r.lastFrame = append(r.lastFrame[:0], r.current...)
	r.frames++
}

// Release 释放资源
func (r *HeadlessRenderer) Release() {
	if r.released {
		return
	}
	r.released = true
	r.sizes = make(map[types.TextureID][2]int)
	r.logger.Debug("renderer released", zap.Int("frames", r.frames), zap.Int("draws", r.draws))
}

// Frames 返回已呈现的帧数
func (r *HeadlessRenderer) Frames() int { return r.frames }

// Draws 返回累计提交的精灵数
func (r *HeadlessRenderer) Draws() int { return r.draws }

// Released 返回是否已释放
func (r *HeadlessRenderer) Released() bool { return r.released }

// LastFrame 返回最近呈现的一帧提交的精灵（副本）
func (r *HeadlessRenderer) LastFrame() []components.SpriteComponent {
	out := make([]components.SpriteComponent, len(r.lastFrame))
	copy(out, r.lastFrame)
	return out
}
