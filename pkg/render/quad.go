package render

import (
	"image"

	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// quadIndices 单位四边形的两个三角形（顶点顺序：左下、右下、左上、右上）
var quadIndices = []uint16{0, 1, 2, 1, 3, 2}

// QuadVertices 计算精灵四个角的屏幕顶点
//
// 位置经过平移、旋转、缩放后从世界坐标（Y 向上）翻转到屏幕坐标（Y 向下）。
// 纹理坐标取 cell 区域：四边形顶边对应图片顶行。
func QuadVertices(sprite components.SpriteComponent, cell image.Rectangle, screenHeight float64, r, g, b, a float32) []ebiten.Vertex {
	corners := utils.SpriteCorners(sprite)

	vs := make([]ebiten.Vertex, len(corners))
	for i, c := range corners {
		u := utils.UnitQuad[i]
		x, y := utils.WorldToScreen(c.X, c.Y, screenHeight)

		srcX := float64(cell.Min.X) + u.X*float64(cell.Dx())
		srcY := float64(cell.Max.Y) - u.Y*float64(cell.Dy())

		vs[i] = ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   float32(srcX),
			SrcY:   float32(srcY),
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	return vs
}
