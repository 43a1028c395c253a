package entities

import (
	"math/rand"

	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/ecs"
	"github.com/gonewx/skeleton-run/pkg/game"
	"github.com/gonewx/skeleton-run/pkg/types"
	"go.uber.org/zap"
)

// NewFallingObjectPool 创建固定数量的下落物体
// 参数:
//   - em: EntityManager 实例
//   - rng: 随机数源（测试时传入固定种子）
//   - rm: ResourceManager 实例,用于加载金币和墓碑精灵图
//   - cfg: 游戏配置（速度区间、物体尺寸、帧数）
//   - count: 物体数量，0 得到空池，负数按 0 处理
//   - maxScreenWidth: 横坐标随机范围 [0, maxScreenWidth)
//   - topY: 初始纵坐标（屏幕顶部）
//
// 返回: 按创建顺序排列的实体ID。偶数下标为金币，奇数下标为墓碑。
func NewFallingObjectPool(
	em *ecs.EntityManager,
	rng *rand.Rand,
	rm *game.ResourceManager,
	cfg *config.GameConfig,
	count int,
	maxScreenWidth, topY float64,
	logger *zap.Logger,
) []ecs.EntityID {
	if logger == nil {
		logger = zap.NewNop()
	}
	if count < 0 {
		logger.Warn("negative falling object count, using 0", zap.Int("count", count))
		count = 0
	}

	coins := rm.LoadTexture(cfg.Assets.Coins)
	obstacle := rm.LoadTexture(cfg.Assets.Obstacle)

	pool := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		kind := types.KindCollectible
		if i%2 == 1 {
			kind = types.KindHazard
		}

		id := em.CreateEntity()

		sprite := &components.SpriteComponent{
			Position:   types.Vec3{X: RandomX(rng, maxScreenWidth), Y: topY},
			Dimensions: types.Vec3{X: cfg.Spawner.ObjectWidth, Y: cfg.Spawner.ObjectHeight},
		}
		falling := &components.FallingComponent{
			Kind:      kind,
			FallSpeed: cfg.Spawner.MinFallSpeed + rng.Float64()*cfg.Spawner.FallSpeedRange,
			Visible:   true,
		}

		switch kind {
		case types.KindCollectible:
			sprite.Texture = coins.ID
			sprite.SheetFrames = cfg.Animation.CoinFrames
			em.AddComponent(id, &components.AnimationComponent{
				FrameCount:    cfg.Animation.CoinFrames,
				FrameDuration: cfg.Animation.CoinFrameDuration,
			})
		case types.KindHazard:
			sprite.Texture = obstacle.ID
			sprite.SheetFrames = cfg.Animation.HazardVariants
		}

		em.AddComponent(id, sprite)
		em.AddComponent(id, falling)
		pool = append(pool, id)

		logger.Debug("falling object spawned",
			zap.Uint64("entity", uint64(id)),
			zap.Stringer("kind", kind),
			zap.Float64("x", sprite.Position.X),
			zap.Float64("fallSpeed", falling.FallSpeed))
	}

	return pool
}

// RandomX 返回 [0, maxScreenWidth) 内均匀分布的横坐标
// maxScreenWidth <= 0 时返回 0
func RandomX(rng *rand.Rand, maxScreenWidth float64) float64 {
	if maxScreenWidth <= 0 {
		return 0
	}
	return rng.Float64() * maxScreenWidth
}
