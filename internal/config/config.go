// Package config provides YAML-based engine configuration loading.
package config

// EngineConfig contains the tunable engine parameters.
type EngineConfig struct {
	Loop    LoopConfig    `yaml:"loop"`
	Physics PhysicsConfig `yaml:"physics"`
	Fade    FadeSettings  `yaml:"fade"`
	Screen  ScreenConfig  `yaml:"screen"`
}

// LoopConfig defines run-loop timing.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// PhysicsConfig defines the process-wide physics defaults.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

// FadeSettings defines the global state-transition fade.
type FadeSettings struct {
	// Color is a named color understood by the platform layer
	// ("black", "white", ...).
	Color string `yaml:"color"`

	// DurationMs is the length of each fade half in milliseconds;
	// zero disables fade transitions.
	DurationMs int `yaml:"duration_ms"`
}

// ScreenConfig defines the fallback screen size used when the terminal
// size cannot be detected.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns an EngineConfig with sensible defaults.
func Default() EngineConfig {
	return EngineConfig{
		Loop:    LoopConfig{TickRate: 60},
		Physics: PhysicsConfig{Gravity: 0.98},
		Fade:    FadeSettings{Color: "black", DurationMs: 250},
		Screen:  ScreenConfig{Width: 80, Height: 24},
	}
}

// RuntimeConfig is passed to demos at installation time. Demos use it to
// adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // screen width in characters
	ScreenH  int     // screen height in characters
	TickRate int     // simulation ticks per second
	Gravity  float64 // vertical acceleration for demo bodies; 0 keeps the body default
	Seed     int64   // RNG seed; 0 means the platform picks one
}

// DefaultRuntime returns a RuntimeConfig with sensible defaults.
func DefaultRuntime() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
