package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/trytobebee/gridsnake/pkg/config"
)

func testSettings() config.Settings {
	return config.Settings{Scale: 0.25, FoodBound: config.FoodBoundExact}
}

func TestNewGamePlacesFood(t *testing.T) {
	rng := &scriptedRand{values: []int{0}}
	g := NewGame(testSettings(), rng)

	s := g.State()
	assert.Equal(t, Point{X: 4, Y: 4}, s.Head)
	assert.True(t, s.HasFood)
	assert.Equal(t, Point{X: 0, Y: 0}, s.Food)
	assert.Equal(t, []int{99}, rng.bounds)
}

func TestGameWithoutRandomSourceHasNoFood(t *testing.T) {
	g := NewGame(testSettings(), nil)
	assert.False(t, g.State().HasFood)
	g.Tick()
	assert.False(t, g.State().HasFood)
}

func TestAdvanceTicksAtCadence(t *testing.T) {
	g := NewGame(testSettings(), &scriptedRand{})

	assert.False(t, g.Advance(100*time.Millisecond))
	assert.False(t, g.Advance(100*time.Millisecond))
	assert.True(t, g.Advance(100*time.Millisecond))
	assert.Equal(t, Point{X: 5, Y: 4}, g.State().Head)
	assert.Equal(t, 1, g.Stats().Steps)
}

func TestAdvanceLongPauseSingleStep(t *testing.T) {
	g := NewGame(testSettings(), &scriptedRand{})

	assert.True(t, g.Advance(time.Minute))
	assert.Equal(t, 1, g.Stats().Steps)
	assert.Equal(t, Point{X: 5, Y: 4}, g.State().Head)
}

func TestAdvanceWhilePaused(t *testing.T) {
	g := NewGame(testSettings(), &scriptedRand{})
	g.TogglePause()

	assert.False(t, g.Advance(time.Minute))
	assert.Equal(t, 0, g.Stats().Steps)
	assert.Equal(t, 0.0, g.State().Clock.Accumulated)
	assert.True(t, g.Frame().Paused)

	g.TogglePause()
	assert.True(t, g.Advance(time.Minute))
}

func TestSetHeadingRejectsReverse(t *testing.T) {
	for _, h := range Headings {
		t.Run(h.String(), func(t *testing.T) {
			g := NewGame(testSettings(), nil)
			if h == Left {
				g.SetHeading(Up)
				g.Tick()
			}
			g.SetHeading(h)
			g.Tick()
			require.Equal(t, h, g.State().Heading)

			assert.False(t, g.SetHeading(h.Opposite()))
			assert.Equal(t, h, g.Pending())

			before := g.State().Head
			g.Tick()
			assert.Equal(t, before.Add(h.Delta()), g.State().Head)
		})
	}
}

func TestSetHeadingComparesWithLastStep(t *testing.T) {
	g := NewGame(testSettings(), nil)

	// Heading of the last step is Right; Up is pending, then Left is still a reversal
	assert.True(t, g.SetHeading(Up))
	assert.False(t, g.SetHeading(Left))
	assert.Equal(t, Up, g.Pending())

	assert.False(t, g.SetHeading(Up), "same heading is not a change")
}

func TestInitialStateRejectsLeft(t *testing.T) {
	g := NewGame(testSettings(), nil)
	assert.False(t, g.SetHeading(Left))
	g.Tick()
	assert.Equal(t, Point{X: 5, Y: 4}, g.State().Head)
}

func TestTickEatsAndRefillsFood(t *testing.T) {
	// Aim the first draw at the cell right of the starting head
	free := AvailableCells([]Point{{X: 4, Y: 4}})
	target := -1
	for i, p := range free {
		if p == (Point{X: 5, Y: 4}) {
			target = i
		}
	}
	require.NotEqual(t, -1, target)

	rng := &scriptedRand{values: []int{target, 0}}
	g := NewGame(testSettings(), rng)
	require.Equal(t, Point{X: 5, Y: 4}, g.State().Food)

	res := g.Tick()

	assert.True(t, res.NeedFood)
	assert.False(t, res.Reset())
	s := g.State()
	assert.Equal(t, []Point{{X: 4, Y: 4}}, s.Tail.Points())
	assert.True(t, s.HasFood)
	assert.Equal(t, Point{X: 0, Y: 0}, s.Food)
	assert.Equal(t, []int{99, 98}, rng.bounds)

	stats := g.Stats()
	assert.Equal(t, 1, stats.FoodEaten)
	assert.Equal(t, 2, stats.Length)
	assert.Equal(t, 1, stats.LongestTail)
}

func TestTickResetAfterBorder(t *testing.T) {
	g := NewGame(testSettings(), nil)
	g.SetHeading(Up)

	for i := 0; i < 5; i++ {
		res := g.Tick()
		require.False(t, res.Reset(), "tick %d", i)
	}
	res := g.Tick()
	assert.Equal(t, HitBorder, res.Collision)
	assert.Equal(t, InitialState(), g.State())
	assert.Equal(t, Right, g.Pending())
	assert.Equal(t, 1, g.Stats().Resets)
}

func TestInclusiveBoundMayPlaceNoFood(t *testing.T) {
	settings := testSettings()
	settings.FoodBound = config.FoodBoundInclusive
	rng := &scriptedRand{values: []int{99, 5}}

	g := NewGame(settings, rng)
	assert.False(t, g.State().HasFood)
	assert.Equal(t, []int{100}, rng.bounds)

	g.Tick()
	assert.True(t, g.State().HasFood)
}

func TestOutOfRangeIndexLeavesFoodAbsent(t *testing.T) {
	g := NewGame(testSettings(), &scriptedRand{values: []int{500}})
	assert.False(t, g.State().HasFood)
}

func TestFrameListsHeadFirst(t *testing.T) {
	g := NewGame(testSettings(), nil)
	g.state = State{
		Head:    Point{X: 2, Y: 2},
		Tail:    NewTail(Point{X: 1, Y: 2}, Point{X: 0, Y: 2}),
		Food:    Point{X: 7, Y: 7},
		HasFood: true,
		Clock:   Clock{Accumulated: 4.5},
	}

	f := g.Frame()
	require.Len(t, f.Cells, 3)
	assert.Equal(t, Cell{Pos: Point{X: 2, Y: 2}, Role: RoleHead}, f.Cells[0])
	assert.Equal(t, Cell{Pos: Point{X: 1, Y: 2}, Role: RoleBody}, f.Cells[1])
	assert.Equal(t, Cell{Pos: Point{X: 0, Y: 2}, Role: RoleBody}, f.Cells[2])
	assert.True(t, f.HasFood)
	assert.Equal(t, Point{X: 7, Y: 7}, f.Food)
	assert.Equal(t, 4.5, f.Time)
}

// TestLongRunInvariants drives a seeded game and checks every tick
func TestLongRunInvariants(t *testing.T) {
	settings := testSettings()
	settings.AutoPlay = true
	g := NewGame(settings, rand.New(rand.NewSource(7)))
	turns := rand.New(rand.NewSource(11))

	for i := 0; i < 3000; i++ {
		// Mix random input with autopilot so both paths are covered
		if i%50 < 10 {
			g.AutoPlay = false
			g.SetHeading(Headings[turns.Intn(len(Headings))])
		} else {
			g.AutoPlay = true
		}

		before := g.State()
		res := g.Tick()
		after := g.State()

		if res.Reset() {
			assert.Equal(t, Point{X: 4, Y: 4}, after.Head)
			assert.Equal(t, 0, after.Tail.Len())
			assert.Equal(t, Right, after.Heading)
			continue
		}

		grow := 0
		if res.NeedFood {
			grow = 1
		}
		require.Equal(t, before.Tail.Len()+grow, after.Tail.Len(), "tick %d", i)
		require.False(t, after.Tail.Contains(after.Head), "tick %d", i)
		if after.Tail.Len() > 0 {
			require.Equal(t, before.Head, after.Tail.At(0), "tick %d", i)
		}
		if after.HasFood {
			require.NotContains(t, after.Occupied(), after.Food, "tick %d", i)
		}
	}
	assert.Equal(t, 3000, g.Stats().Steps)
}
