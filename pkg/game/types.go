package game

import (
	"fmt"

	"github.com/trytobebee/gridsnake/pkg/config"
)

// Point represents a cell on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds reports whether p lies on the board
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < config.BoardSize && p.Y >= 0 && p.Y < config.BoardSize
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Heading is the direction the snake travels in
type Heading int

const (
	Right Heading = iota // Zero value, the heading after every reset
	Up
	Down
	Left
)

// Headings lists every heading in a fixed order
var Headings = [...]Heading{Up, Down, Left, Right}

// Delta returns the cell offset of one move. Up grows y.
func (h Heading) Delta() Point {
	switch h {
	case Up:
		return Point{X: 0, Y: 1}
	case Down:
		return Point{X: 0, Y: -1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse heading
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// ParseHeading converts the String form back into a Heading
func ParseHeading(s string) (Heading, error) {
	for _, h := range Headings {
		if h.String() == s {
			return h, nil
		}
	}
	return Right, fmt.Errorf("unknown heading %q", s)
}

func (h Heading) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Heading) UnmarshalText(b []byte) error {
	parsed, err := ParseHeading(string(b))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Collision describes why a step reset the game
type Collision int

const (
	NoCollision Collision = iota
	HitBorder
	HitTail
)

func (c Collision) String() string {
	switch c {
	case HitBorder:
		return "border"
	case HitTail:
		return "tail"
	default:
		return "none"
	}
}

func (c Collision) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Collision) UnmarshalText(b []byte) error {
	switch string(b) {
	case "border":
		*c = HitBorder
	case "tail":
		*c = HitTail
	case "none", "":
		*c = NoCollision
	default:
		return fmt.Errorf("unknown collision %q", string(b))
	}
	return nil
}

// State is the complete board state. It is a plain value: copies never share storage.
type State struct {
	Head    Point
	Tail    Tail // Most recent segment first
	Food    Point
	HasFood bool
	Heading Heading // Heading used by the most recent step
	Clock   Clock
}

// InitialState returns the state used at start and after every collision
func InitialState() State {
	return State{
		Head:    Point{X: config.StartX, Y: config.StartY},
		Heading: Right,
	}
}

// Occupied returns head followed by the tail, most recent first
func (s State) Occupied() []Point {
	cells := make([]Point, 0, s.Tail.Len()+1)
	cells = append(cells, s.Head)
	return append(cells, s.Tail.Points()...)
}

// Length is the number of cells the snake covers
func (s State) Length() int {
	return s.Tail.Len() + 1
}

// StepResult is the outcome of one discrete step
type StepResult struct {
	State     State
	NeedFood  bool // Food was eaten and must be replaced
	Collision Collision
}

// Reset reports whether the step produced the initial state
func (r StepResult) Reset() bool {
	return r.Collision != NoCollision
}

// Role tells a renderer how to tint a cell
type Role int

const (
	RoleHead Role = iota
	RoleBody
)

// Cell is one occupied board cell handed to a renderer
type Cell struct {
	Pos  Point
	Role Role
}

// Frame is everything a renderer needs to draw one frame
type Frame struct {
	Cells   []Cell
	Food    Point
	HasFood bool
	Paused  bool
	Time    float64 // Accumulated game time, only cosmetic
}

// Stats are in-memory counters for the current process
type Stats struct {
	Steps       int `json:"steps"`
	Resets      int `json:"resets"`
	FoodEaten   int `json:"foodEaten"`
	Length      int `json:"length"`
	LongestTail int `json:"longestTail"`
}
