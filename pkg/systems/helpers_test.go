package systems

import (
	"math/rand"

	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/ecs"
	"github.com/gonewx/skeleton-run/pkg/game"
	"github.com/gonewx/skeleton-run/pkg/types"
)

// recordingRenderer 记录每次提交的精灵
type recordingRenderer struct {
	draws    []components.SpriteComponent
	clears   int
	presents int
}

func (r *recordingRenderer) LoadTexture(string) types.Texture { return types.Texture{} }
func (r *recordingRenderer) Clear()                           { r.clears++ }
func (r *recordingRenderer) Present()                         { r.presents++ }
func (r *recordingRenderer) Release()                         {}

func (r *recordingRenderer) Draw(sprite components.SpriteComponent) {
	r.draws = append(r.draws, sprite)
}

// testWorld 手工搭建的最小会话
type testWorld struct {
	em       *ecs.EntityManager
	gs       *game.GameState
	renderer *recordingRenderer
	cfg      *config.GameConfig
	sim      *SimulationSystem
}

// 玩家行走帧使用的纹理ID
var walkFrames = []types.TextureID{11, 12, 11, 13}

func newTestWorld(seed int64) *testWorld {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	gs := game.NewGameState(em)
	r := &recordingRenderer{}
	w := &testWorld{em: em, gs: gs, renderer: r, cfg: cfg}
	w.sim = NewSimulationSystem(gs, r, rand.New(rand.NewSource(seed)), cfg, nil)
	return w
}

// addPlayer 在 (x, y) 放置一个 w x h 的玩家
func (w *testWorld) addPlayer(x, y, width, height float64) ecs.EntityID {
	id := w.em.CreateEntity()
	w.em.AddComponent(id, &components.SpriteComponent{
		Position:   types.Vec3{X: x, Y: y},
		Dimensions: types.Vec3{X: width, Y: height, Z: config.PlayerDepth},
		Texture:    walkFrames[0],
	})
	w.em.AddComponent(id, &components.PlayerComponent{
		WalkFrames: walkFrames,
		Velocity:   1.0,
	})
	w.em.AddComponent(id, &components.AnimationComponent{
		FrameCount:    len(walkFrames),
		FrameDuration: 0.2,
	})
	w.gs.PlayerID = id
	return id
}

// addFalling 向池中加入一个 50x50 的下落物体
func (w *testWorld) addFalling(kind types.ObjectKind, x, y, speed float64) ecs.EntityID {
	id := w.em.CreateEntity()
	sprite := &components.SpriteComponent{
		Position:   types.Vec3{X: x, Y: y},
		Dimensions: types.Vec3{X: 50, Y: 50},
		Texture:    1,
	}
	if kind == types.KindCollectible {
		sprite.SheetFrames = config.CoinFrames
		w.em.AddComponent(id, &components.AnimationComponent{
			FrameCount:    config.CoinFrames,
			FrameDuration: 0.1,
		})
	} else {
		sprite.SheetFrames = config.HazardVariants
	}
	w.em.AddComponent(id, sprite)
	w.em.AddComponent(id, &components.FallingComponent{Kind: kind, FallSpeed: speed, Visible: true})
	w.gs.Pool = append(w.gs.Pool, id)
	return id
}

func (w *testWorld) sprite(id ecs.EntityID) *components.SpriteComponent {
	s, _ := ecs.GetComponent[*components.SpriteComponent](w.em, id)
	return s
}

func (w *testWorld) falling(id ecs.EntityID) *components.FallingComponent {
	f, _ := ecs.GetComponent[*components.FallingComponent](w.em, id)
	return f
}

func (w *testWorld) anim(id ecs.EntityID) *components.AnimationComponent {
	a, _ := ecs.GetComponent[*components.AnimationComponent](w.em, id)
	return a
}

func (w *testWorld) player() *components.PlayerComponent {
	p, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.gs.PlayerID)
	return p
}
