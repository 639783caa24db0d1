package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTailPushPop(t *testing.T) {
	var tail Tail
	tail.PushFront(Point{X: 1, Y: 1})
	tail.PushFront(Point{X: 2, Y: 1})
	tail.PushFront(Point{X: 3, Y: 1})

	assert.Equal(t, 3, tail.Len())
	assert.Equal(t, Point{X: 3, Y: 1}, tail.At(0))

	p, ok := tail.PopBack()
	assert.True(t, ok)
	assert.Equal(t, Point{X: 1, Y: 1}, p)
	assert.Equal(t, []Point{{X: 3, Y: 1}, {X: 2, Y: 1}}, tail.Points())
	assert.False(t, tail.Contains(Point{X: 1, Y: 1}))
}

func TestTailPopEmpty(t *testing.T) {
	var tail Tail
	_, ok := tail.PopBack()
	assert.False(t, ok)
	assert.Equal(t, 0, tail.Len())
}

func TestTailWrapsAround(t *testing.T) {
	var tail Tail
	for i := 0; i < 3*tailCap; i++ {
		tail.PushFront(Point{X: i % 10, Y: i / 10 % 10})
		if tail.Len() > 5 {
			tail.PopBack()
		}
	}
	assert.Equal(t, 5, tail.Len())
	last := 3*tailCap - 1
	assert.Equal(t, Point{X: last % 10, Y: last / 10 % 10}, tail.At(0))
}

func TestTailCopiesAreIndependent(t *testing.T) {
	a := NewTail(Point{X: 1, Y: 0}, Point{X: 0, Y: 0})
	b := a
	b.PushFront(Point{X: 2, Y: 0})
	b.PopBack()

	assert.Equal(t, []Point{{X: 1, Y: 0}, {X: 0, Y: 0}}, a.Points())
	assert.Equal(t, []Point{{X: 2, Y: 0}, {X: 1, Y: 0}}, b.Points())
}

func TestNewTailKeepsOrder(t *testing.T) {
	tail := NewTail(Point{X: 5, Y: 5}, Point{X: 5, Y: 4}, Point{X: 5, Y: 3})
	assert.Equal(t, []Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}, tail.Points())
}
