package game

// Clock turns a stream of frame deltas into discrete ticks
type Clock struct {
	Accumulated float64 `json:"accumulated"` // Game time in ticks
	LastStep    float64 `json:"lastStep"`    // Accumulated value at the last tick
}

// Advance adds deltaTime seconds scaled by scale (seconds per tick) and
// reports whether a tick is due. It never reports more than one tick per
// call, however long the gap since the previous call.
func (c Clock) Advance(deltaTime, scale float64) (Clock, bool) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	c.Accumulated += deltaTime / scale
	if c.Accumulated-c.LastStep >= 1.0 {
		c.LastStep = c.Accumulated
		return c, true
	}
	return c, false
}
