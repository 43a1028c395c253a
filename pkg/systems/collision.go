package systems

import "github.com/gonewx/skeleton-run/pkg/components"

// Overlaps 检查两个精灵的AABB（轴对齐边界框）是否重叠
//
// Position 是左下角，Dimensions 是 X/Y 方向的尺寸，Z 被忽略。
// 使用严格不等式：边界刚好接触不算重叠。
// 结果与参数顺序无关。
func Overlaps(a, b components.SpriteComponent) bool {
	return a.Position.X < b.Position.X+b.Dimensions.X &&
		a.Position.X+a.Dimensions.X > b.Position.X &&
		a.Position.Y < b.Position.Y+b.Dimensions.Y &&
		a.Position.Y+a.Dimensions.Y > b.Position.Y
}
