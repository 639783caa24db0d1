package game

import "github.com/trytobebee/gridsnake/pkg/config"

// ChooseHeading picks the next heading for the autopilot. It never reverses
// and never picks a move that collides when a safe one exists. Safe moves are
// ranked by reachable space first, then by distance to food.
func ChooseHeading(s State) Heading {
	best := s.Heading
	bestScore := -1000000.0
	found := false

	for _, h := range Headings {
		if h == s.Heading.Opposite() {
			continue
		}
		res := Step(s, h)
		if res.Reset() {
			continue
		}
		next := res.State

		space := reachableSpace(next)
		score := float64(space) * 50.0
		if space < next.Tail.Len() {
			score -= 5000.0 // Boxed in
		}

		if res.NeedFood {
			score += 1000.0
		} else if s.HasFood {
			score += (100.0 - float64(manhattan(s.Food, next.Head))) * 2.0
		}

		if !found || score > bestScore {
			best, bestScore, found = h, score, true
		}
	}
	return best
}

// reachableSpace counts free cells reachable from the head of s
func reachableSpace(s State) int {
	var blocked [config.BoardSize][config.BoardSize]bool
	for _, p := range s.Tail.Points() {
		blocked[p.X][p.Y] = true
	}
	blocked[s.Head.X][s.Head.Y] = true

	queue := []Point{s.Head}
	count := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, h := range Headings {
			n := p.Add(h.Delta())
			if !n.InBounds() || blocked[n.X][n.Y] {
				continue
			}
			blocked[n.X][n.Y] = true
			count++
			queue = append(queue, n)
		}
	}
	return count
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
