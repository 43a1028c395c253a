package systems

import (
	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/ecs"
	"github.com/gonewx/skeleton-run/pkg/types"
)

// PlayerAnimationSystem 驱动玩家行走动画
// 移动时按固定时长循环 4 帧（居中、向左、居中、向右），静止时停在第 0 帧
type PlayerAnimationSystem struct {
	em       *ecs.EntityManager
	playerID ecs.EntityID
}

// NewPlayerAnimationSystem 创建玩家动画系统
func NewPlayerAnimationSystem(em *ecs.EntityManager, playerID ecs.EntityID) *PlayerAnimationSystem {
	return &PlayerAnimationSystem{em: em, playerID: playerID}
}

// Update 推进动画计时
func (s *PlayerAnimationSystem) Update(deltaTime float64) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, s.playerID)
	if !ok {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	if !ok {
		return
	}
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.em, s.playerID)
	if !ok {
		return
	}

	if player.Intent == types.IntentNone {
		anim.Reset()
		showWalkFrame(sprite, player, 0)
		return
	}

	if anim.Advance(deltaTime) {
		showWalkFrame(sprite, player, anim.CurrentFrame)
	}
}
