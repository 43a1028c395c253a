package systems

import (
	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/ecs"
	"github.com/gonewx/skeleton-run/pkg/game"
	"github.com/gonewx/skeleton-run/pkg/types"
	"go.uber.org/zap"
)

// InputSystem 把按键事件转换为玩家移动意图和退出请求
//
// 按键映射：A/Left 向左，D/Right 向右，Escape 退出。
//
// 默认按键位跟踪：松开不是当前驱动意图的键时意图不变；
// 松开驱动键时回退到仍按住的最近一个方向键，没有则为 None。
// releaseClearsAny 为 true 时使用经典行为：松开任意键都清除意图。
type InputSystem struct {
	gameState        *game.GameState
	releaseClearsAny bool
	logger           *zap.Logger

	// held 按住的方向键，按按下顺序排列，最后一个驱动意图
	held []types.Key
}

// NewInputSystem 创建输入系统
func NewInputSystem(gs *game.GameState, releaseClearsAny bool, logger *zap.Logger) *InputSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InputSystem{
		gameState:        gs,
		releaseClearsAny: releaseClearsAny,
		logger:           logger.Named("InputSystem"),
	}
}

// HandleEvents 按顺序处理一批按键事件
func (s *InputSystem) HandleEvents(events []types.KeyEvent) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.gameState.EntityManager, s.gameState.PlayerID)
	if !ok {
		return
	}

	for _, ev := range events {
		switch ev.Action {
		case types.KeyPress:
			s.press(player, ev.Key)
		case types.KeyRelease:
			s.release(player, ev.Key)
		}
	}
}

func (s *InputSystem) press(player *components.PlayerComponent, key types.Key) {
	if key == types.KeyEscape {
		if s.gameState.RequestTermination(game.ReasonQuit) {
			s.logger.Info("quit requested")
		}
		return
	}

	intent := KeyIntent(key)
	if intent == types.IntentNone {
		return
	}
	s.held = append(removeKey(s.held, key), key)
	s.setIntent(player, intent)
}

func (s *InputSystem) release(player *components.PlayerComponent, key types.Key) {
	s.held = removeKey(s.held, key)

	if s.releaseClearsAny {
		s.setIntent(player, types.IntentNone)
		return
	}

	intent := types.IntentNone
	if n := len(s.held); n > 0 {
		intent = KeyIntent(s.held[n-1])
	}
	s.setIntent(player, intent)
}

func (s *InputSystem) setIntent(player *components.PlayerComponent, intent types.MoveIntent) {
	if player.Intent == intent {
		return
	}
	s.logger.Debug("intent changed",
		zap.Stringer("from", player.Intent),
		zap.Stringer("to", intent))
	player.Intent = intent
}

// KeyIntent 返回按键对应的移动方向，非方向键返回 IntentNone
func KeyIntent(key types.Key) types.MoveIntent {
	switch key {
	case types.KeyA, types.KeyLeft:
		return types.IntentLeft
	case types.KeyD, types.KeyRight:
		return types.IntentRight
	default:
		return types.IntentNone
	}
}

func removeKey(keys []types.Key, key types.Key) []types.Key {
	out := keys[:0]
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}
