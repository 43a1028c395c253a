package game

// Scene represents a game scene.
// Scenes draw through the Renderer they were built with, so the interface
// carries no backend-specific types.
type Scene interface {
	// Update runs one iteration of the scene.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Terminated reports whether the scene has finished and will not
	// simulate any more frames.
	Terminated() bool

	// Close releases the scene's resources. It must be safe to call twice.
	Close()
}
