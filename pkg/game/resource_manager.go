package game

import (
	"path"

	"github.com/gonewx/skeleton-run/pkg/types"
	"go.uber.org/zap"
)

// ResourceManager is responsible for centralized management of game textures.
// It resolves texture names against the asset directory and caches the result,
// ensuring that each texture is loaded only once per session.
//
// Failed loads are cached as well, so a missing file is reported once and
// every later request gets the same invalid handle.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Textures are loaded during scene
// construction on the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager(renderer, "Sprites", logger)
//	bg := rm.LoadTexture("background.png") // loads "Sprites/background.png"
type ResourceManager struct {
	renderer Renderer
	dir      string
	cache    map[string]types.Texture // Cache for loaded textures: path -> Texture
	logger   *zap.Logger
}

// NewResourceManager creates a ResourceManager that loads through the given renderer.
// dir is joined in front of every texture name; it may be empty.
func NewResourceManager(renderer Renderer, dir string, logger *zap.Logger) *ResourceManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceManager{
		renderer: renderer,
		dir:      dir,
		cache:    make(map[string]types.Texture),
		logger:   logger.Named("ResourceManager"),
	}
}

// Path returns the path a texture name resolves to.
// Paths use forward slashes because assets are read from an fs.FS.
func (rm *ResourceManager) Path(name string) string {
	if rm.dir == "" {
		return name
	}
	return path.Join(rm.dir, name)
}

// LoadTexture loads a texture by name and caches it for future use.
func (rm *ResourceManager) LoadTexture(name string) types.Texture {
	p := rm.Path(name)
	if tex, exists := rm.cache[p]; exists {
		return tex
	}

	tex := rm.renderer.LoadTexture(p)
	rm.cache[p] = tex

	if tex.ID.Valid() {
		rm.logger.Debug("texture loaded",
			zap.String("path", p),
			zap.Int("width", tex.Width),
			zap.Int("height", tex.Height))
	}
	return tex
}

// LoadedCount 返回缓存中的纹理数量（包括加载失败的）
func (rm *ResourceManager) LoadedCount() int {
	return len(rm.cache)
}
