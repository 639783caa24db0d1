package game

import (
	"time"

	"github.com/golang/glog"

	"github.com/trytobebee/gridsnake/pkg/config"
)

// Game owns the current State and applies input and ticks to it.
// It is not safe for concurrent use; drive it from a single loop.
type Game struct {
	state    State
	pending  Heading // Heading latched at the next tick
	rng      RandomSource
	settings config.Settings
	stats    Stats
	recorder *Recorder

	Paused   bool // Pause state
	AutoPlay bool // Autopilot steers instead of the player
}

// NewGame creates a new game instance
func NewGame(settings config.Settings, rng RandomSource) *Game {
	if settings.Scale <= 0 {
		settings.Scale = config.ScaleFactor
	}
	g := &Game{
		rng:      rng,
		settings: settings,
		AutoPlay: settings.AutoPlay,
	}
	g.Reset()
	return g
}

// SetRecorder attaches a trace recorder; nil detaches it
func (g *Game) SetRecorder(r *Recorder) {
	g.recorder = r
}

// State returns a copy of the current state
func (g *Game) State() State {
	return g.state
}

// Pending returns the heading the next tick will use
func (g *Game) Pending() Heading {
	return g.pending
}

// Stats returns the counters collected since the game was created
func (g *Game) Stats() Stats {
	return g.stats
}

// Reset restarts from the initial state without touching the counters
func (g *Game) Reset() {
	g.state = InitialState()
	g.pending = g.state.Heading
	g.refillFood()
	g.stats.Length = g.state.Length()
}

// SetHeading requests a new heading for the next tick. Reversing the heading
// of the most recent tick is rejected.
func (g *Game) SetHeading(h Heading) bool {
	if h == g.state.Heading.Opposite() {
		return false
	}
	if g.pending == h {
		return false
	}
	g.pending = h
	return true
}

// Advance feeds one frame delta into the clock and ticks when one is due
func (g *Game) Advance(dt time.Duration) bool {
	if g.Paused {
		return false
	}
	next := g.state
	clock, due := next.Clock.Advance(dt.Seconds(), g.settings.Scale)
	next.Clock = clock
	g.state = next
	if !due {
		return false
	}
	g.Tick()
	return true
}

// Tick performs one discrete step and refills food when needed.
// The returned State already carries any newly placed food.
func (g *Game) Tick() StepResult {
	if g.AutoPlay {
		g.SetHeading(ChooseHeading(g.state))
	}

	heading := g.pending
	res := Step(g.state, heading)
	g.stats.Steps++

	switch {
	case res.Reset():
		g.stats.Resets++
		g.pending = res.State.Heading
		glog.V(1).Infof("step %d: %s collision at %v heading %s, length %d",
			g.stats.Steps, res.Collision, g.state.Head.Add(heading.Delta()), heading, g.state.Length())
	case res.NeedFood:
		g.stats.FoodEaten++
		glog.V(2).Infof("step %d: ate food at %v", g.stats.Steps, res.State.Head)
	}

	g.state = res.State
	placed := g.refillFood()

	g.stats.Length = g.state.Length()
	if n := g.state.Tail.Len(); n > g.stats.LongestTail {
		g.stats.LongestTail = n
	}

	if g.recorder != nil {
		g.recorder.RecordStep(newStepRecord(g.recorder.SessionID(), g.stats.Steps, heading, res.Collision, placed, g.state))
	}

	res.State = g.state
	return res
}

// refillFood places food when the board has none and reports whether it did
func (g *Game) refillFood() bool {
	if g.state.HasFood || g.rng == nil {
		return false
	}
	occupied := g.state.Occupied()
	free := len(AvailableCells(occupied))
	if free == 0 && g.settings.FoodBound == config.FoodBoundExact {
		return false
	}

	pos, ok, err := PlaceFood(occupied, drawFoodIndex(g.rng, free, g.settings.FoodBound))
	if err != nil {
		glog.Errorf("refill food: %v", err)
		return false
	}
	if !ok {
		glog.V(2).Infof("no food placed this tick (%d free cells)", free)
		return false
	}

	next := g.state
	next.Food, next.HasFood = pos, true
	g.state = next
	return true
}

// TogglePause toggles the pause state
func (g *Game) TogglePause() {
	g.Paused = !g.Paused
}

// ToggleAutoPlay toggles the autopilot
func (g *Game) ToggleAutoPlay() {
	g.AutoPlay = !g.AutoPlay
	glog.V(1).Infof("autoplay: %v", g.AutoPlay)
}

// Frame returns what a renderer needs to draw the current state
func (g *Game) Frame() Frame {
	return FrameOf(g.state, g.Paused)
}

// FrameOf converts a state into renderer cells, head first
func FrameOf(s State, paused bool) Frame {
	cells := make([]Cell, 0, s.Length())
	cells = append(cells, Cell{Pos: s.Head, Role: RoleHead})
	for _, p := range s.Tail.Points() {
		cells = append(cells, Cell{Pos: p, Role: RoleBody})
	}
	return Frame{
		Cells:   cells,
		Food:    s.Food,
		HasFood: s.HasFood,
		Paused:  paused,
		Time:    s.Clock.Accumulated,
	}
}
