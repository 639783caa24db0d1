package game

// Step advances s by one cell in heading h. It never modifies s.
// A border or tail collision yields InitialState.
func Step(s State, h Heading) StepResult {
	newHead := s.Head.Add(h.Delta())
	gotFood := s.HasFood && newHead == s.Food

	newTail := s.Tail
	newTail.PushFront(s.Head)
	food, hasFood := s.Food, s.HasFood
	if gotFood {
		food, hasFood = Point{}, false
	} else {
		newTail.PopBack()
	}

	if !newHead.InBounds() {
		return StepResult{State: InitialState(), Collision: HitBorder}
	}
	if newTail.Contains(newHead) {
		return StepResult{State: InitialState(), Collision: HitTail}
	}

	return StepResult{
		State: State{
			Head:    newHead,
			Tail:    newTail,
			Food:    food,
			HasFood: hasFood,
			Heading: h,
			Clock:   s.Clock,
		},
		NeedFood: gotFood,
	}
}
