package systems

import (
	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/ecs"
	"github.com/gonewx/skeleton-run/pkg/types"
)

// PlayerMovementSystem 按移动意图水平移动玩家
//
// 速度按帧计算（默认每帧 1 像素），与帧时长无关。
// 意图为 None 时立即切回第 0 帧（站立）。
type PlayerMovementSystem struct {
	em          *ecs.EntityManager
	playerID    ecs.EntityID
	screenWidth float64
	clamp       bool
}

// NewPlayerMovementSystem 创建玩家移动系统
// clamp 为 true 时玩家不能离开 [0, screenWidth] 范围
func NewPlayerMovementSystem(em *ecs.EntityManager, playerID ecs.EntityID, screenWidth float64, clamp bool) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		em:          em,
		playerID:    playerID,
		screenWidth: screenWidth,
		clamp:       clamp,
	}
}

// Update 应用一帧移动
func (s *PlayerMovementSystem) Update() {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, s.playerID)
	if !ok {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	if !ok {
		return
	}

	switch player.Intent {
	case types.IntentLeft:
		sprite.Position.X -= player.Velocity
	case types.IntentRight:
		sprite.Position.X += player.Velocity
	case types.IntentNone:
		if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.em, s.playerID); ok {
			anim.Reset()
		}
		showWalkFrame(sprite, player, 0)
	}

	if s.clamp {
		maxX := s.screenWidth - sprite.Dimensions.X
		if sprite.Position.X > maxX {
			sprite.Position.X = maxX
		}
		if sprite.Position.X < 0 {
			sprite.Position.X = 0
		}
	}
}

// showWalkFrame 把玩家纹理切换到第 frame 帧
func showWalkFrame(sprite *components.SpriteComponent, player *components.PlayerComponent, frame int) {
	if frame >= 0 && frame < len(player.WalkFrames) {
		sprite.Texture = player.WalkFrames[frame]
	}
}
