package scenes

import (
	"math/rand"

	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/config"
	"github.com/gonewx/skeleton-run/pkg/ecs"
	"github.com/gonewx/skeleton-run/pkg/entities"
	"github.com/gonewx/skeleton-run/pkg/game"
	"github.com/gonewx/skeleton-run/pkg/systems"
	"go.uber.org/zap"
)

var _ game.Scene = (*GameScene)(nil)

// GameScene represents the main gameplay screen.
// It owns one session: the entity pool, the player and the systems that drive them.
//
// Each Update runs exactly one loop iteration. Once a hazard hit or a quit
// request is seen, the iteration in progress is finished and presented, the
// scene enters StateTerminated and every later Update is a no-op.
type GameScene struct {
	cfg      *config.GameConfig
	renderer game.Renderer
	input    game.EventSource
	logger   *zap.Logger

	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	resourceManager *game.ResourceManager

	playerAnimationSystem *systems.PlayerAnimationSystem
	simulationSystem      *systems.SimulationSystem
	inputSystem           *systems.InputSystem
	playerMovementSystem  *systems.PlayerMovementSystem

	state  game.State
	closed bool
}

// NewGameScene creates a new session and loads its textures.
//
// 参数:
//   - cfg: 游戏配置
//   - renderer: 绘制目标，纹理也通过它加载
//   - input: 按键事件源
//   - rng: 下落物体的随机源
func NewGameScene(cfg *config.GameConfig, renderer game.Renderer, input game.EventSource, rng *rand.Rand, logger *zap.Logger) *GameScene {
	if logger == nil {
		logger = zap.NewNop()
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState(em)
	logger = logger.With(zap.String("session", gs.SessionID.String()))

	s := &GameScene{
		cfg:             cfg,
		renderer:        renderer,
		input:           input,
		logger:          logger.Named("GameScene"),
		entityManager:   em,
		gameState:       gs,
		resourceManager: game.NewResourceManager(renderer, cfg.Assets.Dir, logger),
		state:           game.StateRunning,
	}

	// 纹理只在这里加载一次，帧循环中不做任何 I/O
	gs.BackgroundID = entities.NewBackgroundEntity(em, s.resourceManager, cfg)
	gs.Pool = entities.NewFallingObjectPool(em, rng, s.resourceManager, cfg,
		cfg.Spawner.Count, float64(cfg.Window.Width), float64(cfg.Window.Height), logger)
	gs.PlayerID = entities.NewPlayerEntity(em, s.resourceManager, cfg)

	s.playerAnimationSystem = systems.NewPlayerAnimationSystem(em, gs.PlayerID)
	s.simulationSystem = systems.NewSimulationSystem(gs, renderer, rng, cfg, logger)
	s.inputSystem = systems.NewInputSystem(gs, cfg.Input.ReleaseClearsAny, logger)
	s.playerMovementSystem = systems.NewPlayerMovementSystem(em, gs.PlayerID,
		float64(cfg.Window.Width), cfg.Player.ClampToScreen)

	s.logger.Info("session started",
		zap.Int("fallingObjects", len(gs.Pool)),
		zap.Int("entities", em.Count()),
		zap.Int("textures", s.resourceManager.LoadedCount()),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	return s
}

// Update runs one loop iteration.
func (s *GameScene) Update(deltaTime float64) {
	if s.state == game.StateTerminated {
		return
	}

	s.playerAnimationSystem.Update(deltaTime)

	s.renderer.Clear()
	s.drawEntity(s.gameState.BackgroundID)

	s.simulationSystem.Update(deltaTime)

	s.inputSystem.HandleEvents(s.input.Poll())
	s.playerMovementSystem.Update()

	s.drawEntity(s.gameState.PlayerID)
	s.renderer.Present()

	s.gameState.AdvanceFrame(deltaTime)

	if s.gameState.ShouldTerminate() {
		s.state = game.StateTerminated
		out := s.gameState.Outcome()
		s.logger.Info("session terminated",
			zap.Stringer("reason", out.Reason),
			zap.Int("frames", out.Frames),
			zap.Float64("elapsed", out.Elapsed),
			zap.Int("collected", out.Collected))
	}
}

func (s *GameScene) drawEntity(id ecs.EntityID) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		s.renderer.Draw(*sprite)
	}
}

// Terminated reports whether the session has ended.
func (s *GameScene) Terminated() bool {
	return s.state == game.StateTerminated
}

// State 返回场景状态
func (s *GameScene) State() game.State {
	return s.state
}

// GameState 返回本局的会话状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// Outcome 返回会话结果
func (s *GameScene) Outcome() game.Outcome {
	return s.gameState.Outcome()
}

// Close releases the renderer resources. Calling it again does nothing.
// A running session is terminated first.
func (s *GameScene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.state = game.StateTerminated
	s.renderer.Release()
	s.logger.Debug("scene closed")
}
