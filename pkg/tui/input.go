package tui

import (
	"sort"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/skeleton-run/pkg/types"
	"go.uber.org/zap"
)

// eventBufferSize 输入事件通道容量
const eventBufferSize = 100

// Input 基于 tcell 的输入源
//
// 终端只报告按下（长按时是自动重复），没有松开事件。
// 首次按下后在 firstRepeatDelay 内没有自动重复，或自动重复开始后
// 在 releaseDelay 内没有下一次重复，即视为松开，Poll 时合成一个松开事件。
// 终端自动重复的首次延迟远大于重复间隔。
type Input struct {
	screen tcell.Screen
	logger *zap.Logger

	firstRepeatDelay time.Duration
	releaseDelay     time.Duration
	now              func() time.Time

	held map[types.Key]heldKey

	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool
}

// heldKey 一个按住的键
type heldKey struct {
	last      time.Time // 最近一次按下或自动重复的时间
	repeating bool      // 是否已经收到过自动重复
}

// NewInput 创建输入源；now 为 nil 时使用 time.Now
//
// firstRepeatDelay 小于 releaseDelay 时按 releaseDelay 处理。
func NewInput(screen tcell.Screen, firstRepeatDelay, releaseDelay time.Duration, now func() time.Time, logger *zap.Logger) *Input {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if firstRepeatDelay < releaseDelay {
		firstRepeatDelay = releaseDelay
	}
	return &Input{
		screen:           screen,
		logger:           logger.Named("TUIInput"),
		firstRepeatDelay: firstRepeatDelay,
		releaseDelay:     releaseDelay,
		now:              now,
		held:             make(map[types.Key]heldKey),
		eventCh:          make(chan tcell.Event, eventBufferSize),
		stopCh:           make(chan struct{}),
		doneCh:           make(chan struct{}),
	}
}

// Start 启动后台读取协程
func (in *Input) Start() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.running {
		return
	}
	in.running = true
	go in.pollLoop()
}

// Stop 停止后台读取协程并等待其退出
func (in *Input) Stop() {
	in.mu.Lock()
	if !in.running {
		in.mu.Unlock()
		return
	}
	in.running = false
	in.mu.Unlock()

	close(in.stopCh)
	// 唤醒阻塞在 PollEvent 上的协程
	_ = in.screen.PostEvent(tcell.NewEventInterrupt(nil))
	<-in.doneCh
}

func (in *Input) pollLoop() {
	defer close(in.doneCh)

	for {
		select {
		case <-in.stopCh:
			return
		default:
		}

		// 屏幕 Fini 后返回 nil
		ev := in.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case in.eventCh <- ev:
		case <-in.stopCh:
			return
		}
	}
}

// Poll 取出所有待处理事件（不阻塞），并为超时的按键合成松开事件
func (in *Input) Poll() []types.KeyEvent {
	var events []types.KeyEvent

drain:
	for {
		select {
		case ev := <-in.eventCh:
			events = append(events, in.HandleEvent(ev)...)
		default:
			break drain
		}
	}

	return append(events, in.expire()...)
}

// HandleEvent 处理一个 tcell 事件
// 首次按下产生按下事件；自动重复只刷新计时，不产生事件
func (in *Input) HandleEvent(ev tcell.Event) []types.KeyEvent {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return nil
	}

	key := MapTcellKey(kev)
	_, repeat := in.held[key]
	in.held[key] = heldKey{last: in.now(), repeating: repeat}
	if repeat {
		return nil
	}

	in.logger.Debug("key pressed", zap.Stringer("key", key))
	return []types.KeyEvent{{Key: key, Action: types.KeyPress}}
}

// expire 为超时的按键合成松开事件，按键值升序输出
func (in *Input) expire() []types.KeyEvent {
	if len(in.held) == 0 {
		return nil
	}

	now := in.now()
	var released []types.Key
	for key, h := range in.held {
		window := in.firstRepeatDelay
		if h.repeating {
			window = in.releaseDelay
		}
		if now.Sub(h.last) >= window {
			released = append(released, key)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })

	events := make([]types.KeyEvent, 0, len(released))
	for _, key := range released {
		delete(in.held, key)
		events = append(events, types.KeyEvent{Key: key, Action: types.KeyRelease})
	}
	return events
}

// MapTcellKey 把 tcell 按键映射为游戏按键
// Ctrl+C 与 Escape 一样请求退出
func MapTcellKey(ev *tcell.EventKey) types.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return types.KeyLeft
	case tcell.KeyRight:
		return types.KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.KeyEscape
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return types.KeyA
		case 'd', 'D':
			return types.KeyD
		}
	}
	return types.KeyOther
}
