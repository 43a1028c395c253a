package components

import "github.com/gonewx/skeleton-run/pkg/types"

// SpriteComponent 一个可定位、可缩放、可旋转的带纹理四边形
//
// 坐标系：原点在屏幕左下角，Y 轴向上。
// Position 是四边形左下角，Dimensions 是 X/Y 方向的尺寸（Z 只参与绘制排序或被忽略）。
type SpriteComponent struct {
	Position   types.Vec3
	Dimensions types.Vec3
	Angle      float64 // 旋转角度（度），绕四边形左下角
	Texture    types.TextureID

	// SheetFrames 纹理横向切分的格数（精灵图），<=1 表示使用整张纹理
	SheetFrames int
	// SheetFrame 当前使用的格子索引，范围 [0, SheetFrames)
	SheetFrame int
}
