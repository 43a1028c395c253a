package game

import (
	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/ecs"
	"github.com/google/uuid"
)

// State 游戏会话状态
type State int

const (
	// StateRunning 会话进行中
	StateRunning State = iota
	// StateTerminated 会话已结束，不再模拟任何帧
	StateTerminated
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// TerminationReason 会话结束原因
type TerminationReason int

const (
	// ReasonNone 尚未请求结束
	ReasonNone TerminationReason = iota
	// ReasonHazard 玩家撞上墓碑（GAME OVER）
	ReasonHazard
	// ReasonQuit 玩家按下 Escape
	ReasonQuit
)

// String 返回结束原因名称
func (r TerminationReason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonHazard:
		return "Hazard"
	case ReasonQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Outcome 会话结果
type Outcome struct {
	SessionID string
	Reason    TerminationReason
	Frames    int     // 已完成的帧数
	Elapsed   float64 // 累计模拟时间（秒）
	Collected int     // 收集的金币数
}

// GameState 存储一局游戏的全部可变状态
//
// 每局游戏创建一个实例，由场景持有并显式传给各个系统，没有全局单例。
type GameState struct {
	SessionID     uuid.UUID
	EntityManager *ecs.EntityManager

	PlayerID     ecs.EntityID
	BackgroundID ecs.EntityID

	// Pool 下落物体池，按创建顺序排列
	// 物体只会被回收复用，从不销毁
	Pool []ecs.EntityID

	Frames  int
	Elapsed float64

	reason TerminationReason
}

// NewGameState 创建新的会话状态
func NewGameState(em *ecs.EntityManager) *GameState {
	return &GameState{
		SessionID:     uuid.New(),
		EntityManager: em,
	}
}

// RequestTermination 请求结束会话
// 只记录第一个原因；返回 true 表示这次请求生效
func (gs *GameState) RequestTermination(reason TerminationReason) bool {
	if reason == ReasonNone || gs.reason != ReasonNone {
		return false
	}
	gs.reason = reason
	return true
}

// ShouldTerminate 返回会话是否已被请求结束
func (gs *GameState) ShouldTerminate() bool {
	return gs.reason != ReasonNone
}

// Reason 返回结束原因
func (gs *GameState) Reason() TerminationReason {
	return gs.reason
}

// AdvanceFrame 记录一帧完成
func (gs *GameState) AdvanceFrame(dt float64) {
	gs.Frames++
	gs.Elapsed += dt
}

// Collected 返回玩家收集的金币数
func (gs *GameState) Collected() int {
	player, ok := ecs.GetComponent[*components.PlayerComponent](gs.EntityManager, gs.PlayerID)
	if !ok {
		return 0
	}
	return player.CollectedCount
}

// Outcome 返回会话结果快照
func (gs *GameState) Outcome() Outcome {
	return Outcome{
		SessionID: gs.SessionID.String(),
		Reason:    gs.reason,
		Frames:    gs.Frames,
		Elapsed:   gs.Elapsed,
		Collected: gs.Collected(),
	}
}
