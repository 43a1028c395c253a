package systems

import (
	"math/rand"

	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/ecs"
	"github.com/gonewx/skeleton-run/pkg/entities"
	"github.com/gonewx/skeleton-run/pkg/game"
	"github.com/gonewx/skeleton-run/pkg/types"
	"go.uber.org/zap"
)

// SimulationSystem 推进下落物体池
//
// 每帧按池顺序对每个物体依次执行：下落、越界回收、金币动画、提交绘制、与玩家的碰撞。
// 撞到墓碑时请求结束会话，但本轮剩余物体仍会处理完。
type SimulationSystem struct {
	state    *game.GameState
	renderer game.Renderer
	rng      *rand.Rand
	logger   *zap.Logger

	maxScreenWidth float64
	topY           float64
	hazardVariants int
}

// NewSimulationSystem 创建模拟系统
//
// 参数:
//   - gs: 会话状态，提供实体管理器、物体池和玩家ID
//   - renderer: 可见物体提交到这里
//   - rng: 回收时随机横坐标和墓碑变体
//   - cfg: 游戏配置（世界尺寸、墓碑变体数）
func NewSimulationSystem(gs *game.GameState, renderer game.Renderer, rng *rand.Rand, cfg *config.GameConfig, logger *zap.Logger) *SimulationSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulationSystem{
		state:          gs,
		renderer:       renderer,
		rng:            rng,
		logger:         logger.Named("SimulationSystem"),
		maxScreenWidth: float64(cfg.Window.Width),
		topY:           float64(cfg.Window.Height),
		hazardVariants: cfg.Animation.HazardVariants,
	}
}

// Update 执行一帧模拟
// 返回本帧是否有墓碑与玩家重叠
func (s *SimulationSystem) Update(deltaTime float64) (hazardHit bool) {
	em := s.state.EntityManager

	playerSprite, hasPlayer := ecs.GetComponent[*components.SpriteComponent](em, s.state.PlayerID)
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, s.state.PlayerID)

	for _, id := range s.state.Pool {
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
		if !ok {
			continue
		}
		falling, ok := ecs.GetComponent[*components.FallingComponent](em, id)
		if !ok {
			continue
		}

		// 1. 下落
		sprite.Position.Y -= falling.FallSpeed * deltaTime

		// 2. 越出底部时回收到顶部
		if sprite.Position.Y < 0 {
			s.recycle(id, sprite, falling)
		}

		// 3. 金币动画（不可见时也继续计时）
		if falling.Kind == types.KindCollectible {
			if anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id); ok {
				anim.Advance(deltaTime)
				sprite.SheetFrame = anim.CurrentFrame
			}
		}

		// 4. 提交绘制
		if falling.Visible {
			s.renderer.Draw(*sprite)
		}

		// 5. 碰撞
		if !hasPlayer || !Overlaps(*playerSprite, *sprite) {
			continue
		}
		switch falling.Kind {
		case types.KindCollectible:
			if falling.Visible {
				falling.Visible = false
				if player != nil {
					player.CollectedCount++
				}
				s.logger.Debug("coin collected", zap.Uint64("entity", uint64(id)))
			}
		case types.KindHazard:
			hazardHit = true
			if s.state.RequestTermination(game.ReasonHazard) {
				s.logger.Info("GAME OVER!",
					zap.Uint64("entity", uint64(id)),
					zap.Int("frame", s.state.Frames))
			}
		}
	}

	return hazardHit
}

// recycle 把越界物体移回顶部
// 速度和种类不变；墓碑换一个随机变体，金币重新可见
func (s *SimulationSystem) recycle(id ecs.EntityID, sprite *components.SpriteComponent, falling *components.FallingComponent) {
	sprite.Position.X = entities.RandomX(s.rng, s.maxScreenWidth)
	sprite.Position.Y = s.topY

	switch falling.Kind {
	case types.KindHazard:
		if s.hazardVariants > 0 {
			falling.Variant = s.rng.Intn(s.hazardVariants)
		}
		sprite.SheetFrame = falling.Variant
	case types.KindCollectible:
		falling.Visible = true
	}

	s.logger.Debug("falling object recycled",
		zap.Uint64("entity", uint64(id)),
		zap.Stringer("kind", falling.Kind),
		zap.Float64("x", sprite.Position.X))
}
