package game

import (
	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/types"
)

// Renderer 是游戏核心与图形后端之间的唯一接口
//
// 实现：render.EbitenRenderer（窗口）、render.HeadlessRenderer（无窗口）、tui.Renderer（终端）。
// 核心只提交精灵，不关心着色器、顶点缓冲或纹理上传。
type Renderer interface {
	// LoadTexture 加载纹理
	// 失败时记录日志并返回 ID 为 types.InvalidTexture 的纹理，不中断游戏
	LoadTexture(path string) types.Texture

	// Clear 开始新的一帧
	Clear()

	// Draw 提交一个精灵
	// 变换顺序：平移、旋转（角度制）、缩放，作用于左下角为原点的单位四边形
	Draw(sprite components.SpriteComponent)

	// Present 结束当前帧
	Present()

	// Release 释放所有纹理和着色器
	Release()
}

// EventSource 输入事件源
// Poll 不阻塞，返回自上次调用以来的所有按键事件
type EventSource interface {
	Poll() []types.KeyEvent
}
