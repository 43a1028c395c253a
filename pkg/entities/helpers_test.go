package entities

import (
	"math/rand"

	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/ecs"
	"github.com/gonewx/skeleton-run/pkg/game"
	"github.com/gonewx/skeleton-run/pkg/types"
)

// stubRenderer 按路径返回固定尺寸纹理的渲染器
// sizes 中没有的路径加载失败
type stubRenderer struct {
	sizes  map[string][2]int
	nextID types.TextureID
	ids    map[string]types.TextureID
}

func newStubRenderer(sizes map[string][2]int) *stubRenderer {
	return &stubRenderer{sizes: sizes, ids: make(map[string]types.TextureID)}
}

func (r *stubRenderer) LoadTexture(path string) types.Texture {
	size, ok := r.sizes[path]
	if !ok {
		return types.Texture{}
	}
	r.nextID++
	r.ids[path] = r.nextID
	return types.Texture{ID: r.nextID, Width: size[0], Height: size[1]}
}

func (r *stubRenderer) Clear()                            {}
func (r *stubRenderer) Draw(_ components.SpriteComponent) {}
func (r *stubRenderer) Present()                          {}
func (r *stubRenderer) Release()                          {}

// allSprites 默认资源全部可用
func allSprites() map[string][2]int {
	return map[string][2]int{
		"Sprites/background.png": {2304, 1296},
		"Sprites/centro.png":     {128, 192},
		"Sprites/esquerda.png":   {128, 192},
		"Sprites/direita.png":    {128, 192},
		"Sprites/coins.png":      {576, 64},
		"Sprites/obstacle.png":   {512, 64},
	}
}

type fixture struct {
	em       *ecs.EntityManager
	rm       *game.ResourceManager
	renderer *stubRenderer
	cfg      *config.GameConfig
	rng      *rand.Rand
}

func newFixture(sizes map[string][2]int) *fixture {
	cfg := config.DefaultGameConfig()
	r := newStubRenderer(sizes)
	return &fixture{
		em:       ecs.NewEntityManager(),
		rm:       game.NewResourceManager(r, cfg.Assets.Dir, nil),
		renderer: r,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(1)),
	}
}
