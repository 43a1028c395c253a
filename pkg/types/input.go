package types

// Key 是与后端无关的按键标识
// ebiten 和 tcell 的按键都先映射到这里，再交给 InputSystem
type Key int

const (
	// KeyOther 未绑定任何动作的按键（释放时仍会产生事件）
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyA
	KeyD
	KeyEscape
)

// String 返回按键名称
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	case KeyEscape:
		return "Escape"
	default:
		return "Other"
	}
}

// KeyAction 按键事件类型
type KeyAction int

const (
	// KeyPress 按下
	KeyPress KeyAction = iota
	// KeyRelease 松开
	KeyRelease
)

// String 返回事件类型名称
func (a KeyAction) String() string {
	switch a {
	case KeyPress:
		return "Press"
	case KeyRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// KeyEvent 一次离散的按键事件
type KeyEvent struct {
	Key    Key
	Action KeyAction
}
