package config

import "time"

// Board settings
const (
	BoardSize = 10 // Board is BoardSize x BoardSize cells
	StartX    = 4  // Head position after start and every reset
	StartY    = 4
)

// Speed settings
const (
	BaseTick    = 16 * time.Millisecond // Frame interval (~60 FPS)
	ScaleFactor = 0.25                  // Seconds of real time per game tick
	MinScale    = 0.05
	MaxScale    = 2.0
)

// FoodBound selects how the random food index is drawn.
type FoodBound int

const (
	// FoodBoundExact draws from [0, len(available)-1]; every draw places food.
	FoodBoundExact FoodBound = iota
	// FoodBoundInclusive draws from [0, len(available)]; the top value places none.
	FoodBoundInclusive
)

func (b FoodBound) String() string {
	if b == FoodBoundInclusive {
		return "inclusive"
	}
	return "exact"
}

// Recorder settings
const (
	RecordDir       = "records"
	RecordQueueSize = 1000 // Buffered steps before records are dropped
)

// Replay settings
const (
	ReplayFPS = 8
)

// Rendering characters
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharWall  = "⬜"
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFood  = "🔴"
)

// Settings holds the runtime options of a game.
type Settings struct {
	Scale     float64   // Seconds per tick, see ScaleFactor
	FoodBound FoodBound // How food indices are drawn
	AutoPlay  bool      // Start with the autopilot steering
	Record    bool      // Write a step trace under RecordDir
	Seed      uint64    // Random seed for food placement
}

// Default returns the settings used when no flags are given.
func Default() Settings {
	return Settings{
		Scale:     ScaleFactor,
		FoodBound: FoodBoundExact,
		Seed:      uint64(time.Now().UnixNano()),
	}
}

// ClampScale keeps a user supplied scale inside [MinScale, MaxScale].
func ClampScale(scale float64) float64 {
	if scale < MinScale {
		return MinScale
	}
	if scale > MaxScale {
		return MaxScale
	}
	return scale
}
