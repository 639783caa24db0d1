package game

import "github.com/trytobebee/gridsnake/pkg/config"

const tailCap = config.BoardSize * config.BoardSize

// Tail is a fixed-capacity ring deque of snake segments, most recent first.
// It is stored inline so copying a Tail copies its contents.
type Tail struct {
	cells [tailCap]Point
	start int
	n     int
}

// NewTail builds a tail from points ordered most recent first
func NewTail(points ...Point) Tail {
	var t Tail
	for i := len(points) - 1; i >= 0; i-- {
		t.PushFront(points[i])
	}
	return t
}

func (t Tail) Len() int { return t.n }

// PushFront adds p as the most recent segment. A full tail drops its oldest segment.
func (t *Tail) PushFront(p Point) {
	t.start = (t.start - 1 + tailCap) % tailCap
	t.cells[t.start] = p
	if t.n < tailCap {
		t.n++
	}
}

// PopBack removes and returns the oldest segment
func (t *Tail) PopBack() (Point, bool) {
	if t.n == 0 {
		return Point{}, false
	}
	t.n--
	return t.cells[(t.start+t.n)%tailCap], true
}

// At returns the i-th segment, 0 being the most recent
func (t Tail) At(i int) Point {
	return t.cells[(t.start+i)%tailCap]
}

func (t Tail) Contains(p Point) bool {
	for i := 0; i < t.n; i++ {
		if t.cells[(t.start+i)%tailCap] == p {
			return true
		}
	}
	return false
}

// Points copies the tail into a slice, most recent first
func (t Tail) Points() []Point {
	out := make([]Point, t.n)
	for i := range out {
		out[i] = t.cells[(t.start+i)%tailCap]
	}
	return out
}
