package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/trytobebee/gridsnake/pkg/config"
	"github.com/trytobebee/gridsnake/pkg/game"
)

// Renderer draws one frame of the game
type Renderer interface {
	Render(f game.Frame, stats game.Stats) error
}

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	out    io.Writer
	board  [][]int
	buffer strings.Builder
	Title  string
}

// Cell types for the board
const (
	cellEmpty = iota
	cellWall
	cellHead
	cellBody
	cellFood
)

// NewTerminalRenderer creates a renderer for the fixed board plus a one-cell wall
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	size := config.BoardSize + 2
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, size)
	for i := range board {
		board[i] = make([]int, size)
	}

	return &TerminalRenderer{
		out:   out,
		board: board,
		Title: "🐍 SNAKE 🐍",
	}
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

// Render writes the frame in one write. Board y grows upward on screen.
func (r *TerminalRenderer) Render(f game.Frame, stats game.Stats) error {
	r.buffer.Reset()
	r.fill(f)

	// Clear with ANSI escape codes
	r.buffer.WriteString("\033[H\033[2J\033[3J")
	r.buffer.WriteString("\n  " + r.Title + "\n")
	fmt.Fprintf(&r.buffer, "  Length: %d  |  Eaten: %d  |  Best: %d  |  Resets: %d\n\n",
		stats.Length, stats.FoodEaten, stats.LongestTail+1, stats.Resets)

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			switch cell {
			case cellWall:
				r.buffer.WriteString(config.CharWall)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			default:
				r.buffer.WriteString(config.CharEmpty)
			}
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  Arrow keys or WASD to steer, T toggles autopilot\n")
	r.buffer.WriteString("  P to pause, R to restart, Q to quit\n")
	if f.Paused {
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press P to continue\n")
	}

	_, err := io.WriteString(r.out, r.buffer.String())
	return err
}

// fill maps board cells to screen rows; row 0 is the top wall
func (r *TerminalRenderer) fill(f game.Frame) {
	last := len(r.board) - 1
	for y := range r.board {
		for x := range r.board[y] {
			if x == 0 || y == 0 || x == last || y == last {
				r.board[y][x] = cellWall
			} else {
				r.board[y][x] = cellEmpty
			}
		}
	}

	put := func(p game.Point, cell int) {
		if !p.InBounds() {
			return
		}
		r.board[config.BoardSize-p.Y][p.X+1] = cell
	}

	if f.HasFood {
		put(f.Food, cellFood)
	}
	// Tail first so the head wins if cells ever overlap
	for i := len(f.Cells) - 1; i >= 0; i-- {
		c := f.Cells[i]
		if c.Role == game.RoleHead {
			put(c.Pos, cellHead)
		} else {
			put(c.Pos, cellBody)
		}
	}
}
