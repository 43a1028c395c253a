package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gonewx/skeleton-run/pkg/types"
)

// segment 脚本中的一段：在 frames 帧内保持同一个动作
type segment struct {
	action byte // 'L' 左、'R' 右、'N' 松开、'Q' 退出
	frames int
}

// parseScript 解析形如 "L:30,N:10,R:30" 的输入脚本
func parseScript(s string) ([]segment, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var segs []segment
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		name, count, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid script segment %q: want ACTION:FRAMES", part)
		}

		name = strings.ToUpper(strings.TrimSpace(name))
		if len(name) != 1 || !strings.Contains("LRNQ", name) {
			return nil, fmt.Errorf("invalid script action %q: want L, R, N or Q", name)
		}

		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid frame count in %q", part)
		}
		segs = append(segs, segment{action: name[0], frames: n})
	}
	return segs, nil
}

// scriptedInput 按脚本逐帧产生按键事件，每次 Poll 对应一帧
// 脚本用完后不再产生事件
type scriptedInput struct {
	segs  []segment
	seg   int
	frame int
	held  types.Key
	ok    bool // held 是否有效
}

func newScriptedInput(segs []segment) *scriptedInput {
	return &scriptedInput{segs: segs}
}

// Poll 在每段的第一帧发出切换动作所需的事件
func (in *scriptedInput) Poll() []types.KeyEvent {
	if in.seg >= len(in.segs) {
		return nil
	}

	var events []types.KeyEvent
	if in.frame == 0 {
		events = in.enter(in.segs[in.seg].action)
	}

	in.frame++
	if in.frame >= in.segs[in.seg].frames {
		in.seg++
		in.frame = 0
	}
	return events
}

func (in *scriptedInput) enter(action byte) []types.KeyEvent {
	var events []types.KeyEvent
	release := func() {
		if in.ok {
			events = append(events, types.KeyEvent{Key: in.held, Action: types.KeyRelease})
			in.ok = false
		}
	}
	press := func(k types.Key) {
		events = append(events, types.KeyEvent{Key: k, Action: types.KeyPress})
		in.held, in.ok = k, true
	}

	switch action {
	case 'L':
		release()
		press(types.KeyLeft)
	case 'R':
		release()
		press(types.KeyRight)
	case 'N':
		release()
	case 'Q':
		events = append(events, types.KeyEvent{Key: types.KeyEscape, Action: types.KeyPress})
	}
	return events
}
