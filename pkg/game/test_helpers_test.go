package game

import (
	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/types"
)

// fakeRenderer 记录调用次数的渲染器
// missing 中的路径加载失败
type fakeRenderer struct {
	loads    []string
	missing  map[string]bool
	nextID   types.TextureID
	released int
}

func (r *fakeRenderer) LoadTexture(path string) types.Texture {
	r.loads = append(r.loads, path)
	if r.missing[path] {
		return types.Texture{ID: types.InvalidTexture}
	}
	r.nextID++
	return types.Texture{ID: r.nextID, Width: 32, Height: 16}
}

func (r *fakeRenderer) Clear()                            {}
func (r *fakeRenderer) Draw(_ components.SpriteComponent) {}
func (r *fakeRenderer) Present()                          {}
func (r *fakeRenderer) Release()                          { r.released++ }

// mockScene 记录调用的场景
type mockScene struct {
	updates    int
	deltaTime  float64
	terminated bool
	closed     int
}

func (m *mockScene) Update(deltaTime float64) {
	m.updates++
	m.deltaTime = deltaTime
}

func (m *mockScene) Terminated() bool { return m.terminated }

func (m *mockScene) Close() { m.closed++ }
