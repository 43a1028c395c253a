package components

import "github.com/gonewx/skeleton-run/pkg/types"

// FallingComponent 标记实体为下落物体，并存储下落相关的状态
type FallingComponent struct {
	Kind      types.ObjectKind // 创建后不变
	FallSpeed float64          // 下落速度（像素/秒），创建时随机一次
	Visible   bool             // 金币被收集后为 false，回收时重置；障碍物始终为 true
	Variant   int              // 障碍物外观变体，每次回收重新随机
}
