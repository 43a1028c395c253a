package entities

import (
	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/ecs"
	"github.com/gonewx/skeleton-run/pkg/game"
	"github.com/gonewx/skeleton-run/pkg/types"
)

// NewBackgroundEntity 创建背景实体
// 背景位于原点，尺寸等于纹理尺寸；纹理缺失时铺满整个世界
func NewBackgroundEntity(em *ecs.EntityManager, rm *game.ResourceManager, cfg *config.GameConfig) ecs.EntityID {
	id := em.CreateEntity()

	tex := rm.LoadTexture(cfg.Assets.Background)

	width := float64(cfg.Window.Width)
	height := float64(cfg.Window.Height)
	if tex.ID.Valid() {
		width = float64(tex.Width)
		height = float64(tex.Height)
	}

	em.AddComponent(id, &components.SpriteComponent{
		Dimensions: types.Vec3{X: width, Y: height},
		Texture:    tex.ID,
	})

	return id
}
