package game

import "go.uber.org/zap"

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update method is called at any given time.
type SceneManager struct {
	currentScene Scene
	logger       *zap.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager(logger *zap.Logger) *SceneManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SceneManager{
		logger: logger.Named("SceneManager"),
	}
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene, if any, is closed.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		sm.currentScene.Close()
		sm.logger.Debug("closed previous scene")
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Terminated reports whether the active scene has finished.
// A manager without a scene counts as terminated.
func (sm *SceneManager) Terminated() bool {
	if sm.currentScene == nil {
		return true
	}
	return sm.currentScene.Terminated()
}

// Close closes the active scene.
func (sm *SceneManager) Close() {
	if sm.currentScene != nil {
		sm.currentScene.Close()
	}
}
