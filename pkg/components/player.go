package components

import "github.com/gonewx/skeleton-run/pkg/types"

// PlayerComponent 玩家专属状态
type PlayerComponent struct {
	// Intent 由 InputSystem 设置，每帧被 PlayerMovementSystem 消费
	Intent types.MoveIntent
	// WalkFrames 行走动画的 4 帧纹理，第 0 帧为站立（居中）
	WalkFrames []types.TextureID
	// Velocity 每帧水平移动的像素数
	Velocity float64
	// CollectedCount 本局收集的金币数（只用于日志和标题栏）
	CollectedCount int
}
