package scenes

import (
	"math/rand"

	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/types"
)

// frameRecord 一帧内提交的精灵
type frameRecord struct {
	draws []components.SpriteComponent
}

// recordingRenderer 记录每帧的提交；纹理全部加载成功，尺寸 100x200
type recordingRenderer struct {
	frames   []frameRecord
	current  *frameRecord
	loads    int
	nextID   types.TextureID
	released int
	calls    int // Clear/Draw/Present 的总调用次数
}

func (r *recordingRenderer) LoadTexture(string) types.Texture {
	r.loads++
	r.nextID++
	return types.Texture{ID: r.nextID, Width: 100, Height: 200}
}

func (r *recordingRenderer) Clear() {
	r.calls++
	r.current = &frameRecord{}
}

func (r *recordingRenderer) Draw(sprite components.SpriteComponent) {
	r.calls++
	if r.current != nil {
		r.current.draws = append(r.current.draws, sprite)
	}
}

func (r *recordingRenderer) Present() {
	r.calls++
	if r.current != nil {
		r.frames = append(r.frames, *r.current)
		r.current = nil
	}
}

func (r *recordingRenderer) Release() { r.released++ }

// scriptedSource 每次 Poll 返回脚本中的下一批事件
type scriptedSource struct {
	script [][]types.KeyEvent
	polls  int
}

func (s *scriptedSource) Poll() []types.KeyEvent {
	s.polls++
	if len(s.script) == 0 {
		return nil
	}
	batch := s.script[0]
	s.script = s.script[1:]
	return batch
}

func press(k types.Key) types.KeyEvent   { return types.KeyEvent{Key: k, Action: types.KeyPress} }
func release(k types.Key) types.KeyEvent { return types.KeyEvent{Key: k, Action: types.KeyRelease} }

// newTestScene 创建指定数量下落物体的场景
func newTestScene(count int, script ...[]types.KeyEvent) (*GameScene, *recordingRenderer, *scriptedSource) {
	cfg := config.DefaultGameConfig()
	cfg.Spawner.Count = count
	r := &recordingRenderer{}
	src := &scriptedSource{script: script}
	scene := NewGameScene(cfg, r, src, rand.New(rand.NewSource(1)), nil)
	return scene, r, src
}
