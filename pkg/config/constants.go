package config

import "image/color"

// 游戏常量
// 本文件定义了不随配置变化的参数

const (
	// DefaultWorldWidth 默认窗口宽度（也是正交投影的宽度）
	DefaultWorldWidth = 2304

	// DefaultWorldHeight 默认窗口高度，下落物体从这里开始下落
	DefaultWorldHeight = 1296

	// DefaultWindowTitle 窗口标题
	DefaultWindowTitle = "Corrida do Esqueleto!"

	// DefaultObjectCount 默认下落物体数量
	DefaultObjectCount = 5

	// CoinFrames 金币精灵图的帧数（coins.png 横向 9 格）
	CoinFrames = 9

	// HazardVariants 墓碑精灵图的变体数（obstacle.png 横向 8 格）
	HazardVariants = 8

	// PlayerWalkFrames 玩家行走动画帧数（居中、向左、居中、向右）
	PlayerWalkFrames = 4

	// PlayerDepth 玩家精灵的 Z 方向缩放，只影响绘制
	PlayerDepth = 0.25

	// MaxFrameDelta 单帧时间增量上限（秒）
	// 窗口被拖动或调试暂停后的第一帧会得到很大的 dt，截断它避免物体一次穿过玩家
	MaxFrameDelta = 0.25
)

// PlaceholderColor 无效纹理的占位颜色（洋红色，便于一眼看出缺失资源）
var PlaceholderColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
