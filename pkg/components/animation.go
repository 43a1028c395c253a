package components

// AnimationComponent 基于固定时长的循环帧动画
// 金币的精灵图帧和玩家的行走帧都用它计时
type AnimationComponent struct {
	CurrentFrame  int     // 当前帧索引，始终在 [0, FrameCount)
	FrameCount    int     // 总帧数
	FrameDuration float64 // 每帧持续时间（秒）
	FrameTimer    float64 // 距上次换帧累计的时间（秒），换帧时归零
}

// Advance 累加时间，达到帧时长时前进一帧并返回 true
// 每次调用最多前进一帧
func (a *AnimationComponent) Advance(deltaTime float64) bool {
	if a.FrameCount <= 0 {
		return false
	}
	a.FrameTimer += deltaTime
	if a.FrameTimer < a.FrameDuration {
		return false
	}
	a.CurrentFrame = (a.CurrentFrame + 1) % a.FrameCount
	a.FrameTimer = 0
	return true
}

// Reset 回到第 0 帧并清空计时
func (a *AnimationComponent) Reset() {
	a.CurrentFrame = 0
	a.FrameTimer = 0
}
