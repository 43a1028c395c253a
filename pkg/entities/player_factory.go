package entities

import (
	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/ecs"
	"github.com/gonewx/skeleton-run/pkg/game"
	"github.com/gonewx/skeleton-run/pkg/types"
)

// NewPlayerEntity 创建玩家（骷髅）实体
//
// 初始纹理为第 0 帧（居中）。精灵尺寸为纹理尺寸乘以 spriteScale，
// 深度为 PlayerDepth；纹理加载失败时使用配置中的备用尺寸。
func NewPlayerEntity(em *ecs.EntityManager, rm *game.ResourceManager, cfg *config.GameConfig) ecs.EntityID {
	id := em.CreateEntity()

	frames := make([]types.TextureID, 0, len(cfg.Assets.PlayerFrames))
	var idle types.Texture
	for i, name := range cfg.Assets.PlayerFrames {
		tex := rm.LoadTexture(name)
		if i == 0 {
			idle = tex
		}
		frames = append(frames, tex.ID)
	}

	width := cfg.Player.FallbackWidth
	height := cfg.Player.FallbackHeight
	if idle.ID.Valid() {
		width = float64(idle.Width) * cfg.Player.SpriteScale
		height = float64(idle.Height) * cfg.Player.SpriteScale
	}

	em.AddComponent(id, &components.SpriteComponent{
		Position:   types.Vec3{X: cfg.Player.StartX, Y: cfg.Player.StartY},
		Dimensions: types.Vec3{X: width, Y: height, Z: config.PlayerDepth},
		Texture:    idle.ID,
	})

	em.AddComponent(id, &components.PlayerComponent{
		Intent:     types.IntentNone,
		WalkFrames: frames,
		Velocity:   cfg.Player.Velocity,
	})

	em.AddComponent(id, &components.AnimationComponent{
		FrameCount:    len(frames),
		FrameDuration: cfg.Animation.PlayerFrameDuration,
	})

	return id
}
