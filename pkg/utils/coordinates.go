// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供坐标转换工具。
//
// # 坐标系统概述
//
// 本项目使用以下坐标系统：
//   - **世界坐标**：原点在左下角，Y 轴向上，范围 [0, W] x [0, H]（正交投影）
//   - **屏幕坐标**：原点在左上角，Y 轴向下（Ebiten 和终端的坐标系）
//   - **精灵锚点**：左下角。SpriteComponent.Position 是单位四边形 (0,0) 角变换后的位置
//
// # 核心转换公式
//
// 单位四边形角 (u, v) 的世界坐标（先缩放、再旋转、最后平移）：
//
//	sx, sy = u*w, v*h
//	wx = px + sx*cos(a) - sy*sin(a)
//	wy = py + sx*sin(a) + sy*cos(a)
//
// 世界坐标 → 屏幕坐标：
//
//	screenX = wx
//	screenY = screenHeight - wy
package utils

import (
	"image"
	"math"

	"github.com/gonewx/skeleton-run/pkg/components"
)

// Point 二维点
type Point struct {
	X, Y float64
}

// UnitQuad 单位四边形的四个角，顺序为左下、右下、左上、右上（三角形带顺序）
var UnitQuad = [4]Point{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// SpriteCorners 计算精灵四个角的世界坐标，顺序同 UnitQuad
// Angle 为角度制，逆时针为正
func SpriteCorners(sprite components.SpriteComponent) [4]Point {
	rad := sprite.Angle * math.Pi / 180
	sin, cos := math.Sincos(rad)

	var corners [4]Point
	for i, c := range UnitQuad {
		sx := c.X * sprite.Dimensions.X
		sy := c.Y * sprite.Dimensions.Y
		corners[i] = Point{
			X: sprite.Position.X + sx*cos - sy*sin,
			Y: sprite.Position.Y + sx*sin + sy*cos,
		}
	}
	return corners
}

// WorldToScreen 把 Y 轴向上的世界坐标转换为 Y 轴向下的屏幕坐标
func WorldToScreen(worldX, worldY, screenHeight float64) (screenX, screenY float64) {
	return worldX, screenHeight - worldY
}

// SheetCell 返回横向精灵图中第 frame 格的像素矩形
//
// frames <= 1 时返回整张图。frame 超出范围时按 frames 取模，
// 各格边界按整数均分，保证所有格子拼起来正好覆盖整张图。
func SheetCell(width, height, frames, frame int) image.Rectangle {
	if frames <= 1 {
		return image.Rect(0, 0, width, height)
	}
	frame %= frames
	if frame < 0 {
		frame += frames
	}
	x0 := frame * width / frames
	x1 := (frame + 1) * width / frames
	return image.Rect(x0, 0, x1, height)
}
