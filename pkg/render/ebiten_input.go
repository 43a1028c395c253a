package render

import (
	"github.com/gonewx/skeleton-run/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput 把 ebiten 的按键状态变化转换为按键事件
// Poll 必须在 ebiten 的 Update 回调中调用
type EbitenInput struct {
	keys []ebiten.Key
}

// NewEbitenInput 创建输入源
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Poll 返回本 tick 内按下和松开的按键，按下在前
func (in *EbitenInput) Poll() []types.KeyEvent {
	var events []types.KeyEvent

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		events = append(events, types.KeyEvent{Key: MapEbitenKey(k), Action: types.KeyPress})
	}

	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		events = append(events, types.KeyEvent{Key: MapEbitenKey(k), Action: types.KeyRelease})
	}

	return events
}

// MapEbitenKey 把 ebiten 按键映射为游戏按键
func MapEbitenKey(k ebiten.Key) types.Key {
	switch k {
	case ebiten.KeyArrowLeft:
		return types.KeyLeft
	case ebiten.KeyArrowRight:
		return types.KeyRight
	case ebiten.KeyA:
		return types.KeyA
	case ebiten.KeyD:
		return types.KeyD
	case ebiten.KeyEscape:
		return types.KeyEscape
	default:
		return types.KeyOther
	}
}
