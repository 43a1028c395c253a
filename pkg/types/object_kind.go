// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// ObjectKind 定义下落物体的种类
// 创建后不可更改
type ObjectKind int

const (
	// KindCollectible 可收集物（金币），碰到玩家后消失
	KindCollectible ObjectKind = iota
	// KindHazard 障碍物（墓碑），碰到玩家后游戏结束
	KindHazard
)

// String 返回物体种类的字符串表示
func (k ObjectKind) String() string {
	switch k {
	case KindCollectible:
		return "Collectible"
	case KindHazard:
		return "Hazard"
	default:
		return "Unknown"
	}
}

// MoveIntent 玩家的移动意图
type MoveIntent int

const (
	// IntentNone 静止
	IntentNone MoveIntent = iota
	// IntentLeft 向左
	IntentLeft
	// IntentRight 向右
	IntentRight
)

// String 返回移动意图的字符串表示
func (m MoveIntent) String() string {
	switch m {
	case IntentNone:
		return "None"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	default:
		return "Unknown"
	}
}
