package game

import (
	"errors"
	"fmt"

	"github.com/trytobebee/gridsnake/pkg/config"
)

// ErrFoodIndexOutOfRange is returned when a random source hands back an
// index outside [0, len(available)].
var ErrFoodIndexOutOfRange = errors.New("food index out of range")

// RandomSource produces uniformly distributed integers in [0, n).
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type RandomSource interface {
	Intn(n int) int
}

// AllBoardCells lists every board cell, x outer and y inner, ascending
func AllBoardCells() []Point {
	cells := make([]Point, 0, config.BoardSize*config.BoardSize)
	for x := 0; x < config.BoardSize; x++ {
		for y := 0; y < config.BoardSize; y++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}

// AvailableCells returns the board cells not in occupied, in board order
func AvailableCells(occupied []Point) []Point {
	taken := make(map[Point]bool, len(occupied))
	for _, p := range occupied {
		taken[p] = true
	}
	var free []Point
	for _, p := range AllBoardCells() {
		if !taken[p] {
			free = append(free, p)
		}
	}
	return free
}

// PlaceFood picks available[index] where available is every cell outside
// occupied. index == len(available) places nothing and reports ok == false.
func PlaceFood(occupied []Point, index int) (pos Point, ok bool, err error) {
	available := AvailableCells(occupied)
	switch {
	case index == len(available):
		return Point{}, false, nil
	case index < 0 || index > len(available):
		return Point{}, false, fmt.Errorf("place food: index %d with %d free cells: %w",
			index, len(available), ErrFoodIndexOutOfRange)
	}
	return available[index], true, nil
}

// drawFoodIndex asks rng for an index into a list of n free cells
func drawFoodIndex(rng RandomSource, n int, bound config.FoodBound) int {
	if bound == config.FoodBoundInclusive {
		return rng.Intn(n + 1)
	}
	if n == 0 {
		return 0
	}
	return rng.Intn(n)
}
