package sketch_test

import (
	"testing"

	"github.com/plus3/sandgrid/sketch"
	"github.com/stretchr/testify/assert"
)

func TestPointerTracker(t *testing.T) {
	var tracker sketch.PointerTracker

	t.Run("first sample only primes", func(t *testing.T) {
		assert.Empty(t, tracker.Sample(10, 10, false, true))
	})

	t.Run("hover without press moves", func(t *testing.T) {
		assert.Equal(t, []sketch.PointerEvent{
			{Kind: sketch.PointerMove, X: 12, Y: 10},
		}, tracker.Sample(12, 10, false, true))
	})

	t.Run("still pointer is silent", func(t *testing.T) {
		assert.Empty(t, tracker.Sample(12, 10, false, true))
	})

	t.Run("press emits down", func(t *testing.T) {
		assert.Equal(t, []sketch.PointerEvent{
			{Kind: sketch.PointerDown, X: 12, Y: 10},
		}, tracker.Sample(12, 10, true, true))
	})

	t.Run("drag emits move", func(t *testing.T) {
		assert.Equal(t, []sketch.PointerEvent{
			{Kind: sketch.PointerMove, X: 20, Y: 30},
		}, tracker.Sample(20, 30, true, true))
	})

	t.Run("release emits up", func(t *testing.T) {
		assert.Equal(t, []sketch.PointerEvent{
			{Kind: sketch.PointerUp, X: 20, Y: 30},
		}, tracker.Sample(20, 30, false, true))
	})

	t.Run("exit emits leave", func(t *testing.T) {
		assert.Equal(t, []sketch.PointerEvent{
			{Kind: sketch.PointerLeave, X: -5, Y: 30},
		}, tracker.Sample(-5, 30, false, false))
	})

	t.Run("outside motion is silent", func(t *testing.T) {
		assert.Empty(t, tracker.Sample(-8, 30, false, false))
	})

	t.Run("press outside is silent", func(t *testing.T) {
		assert.Empty(t, tracker.Sample(-8, 30, true, false))
	})
}

func TestPointerTrackerDragOut(t *testing.T) {
	var tracker sketch.PointerTracker
	tracker.Sample(5, 5, false, true)
	tracker.Sample(5, 5, true, true)

	assert.Equal(t, []sketch.PointerEvent{
		{Kind: sketch.PointerLeave, X: 900, Y: 5},
	}, tracker.Sample(900, 5, true, false))
}

func TestPointerQueue(t *testing.T) {
	var pointer sketch.Pointer
	pointer.Push(sketch.PointerEvent{Kind: sketch.PointerDown})
	pointer.Push(sketch.PointerEvent{Kind: sketch.PointerUp})

	assert.Equal(t, 2, pointer.Pending())
	assert.False(t, pointer.Drawing)
}

func TestPointerKindString(t *testing.T) {
	assert.Equal(t, "down", sketch.PointerDown.String())
	assert.Equal(t, "move", sketch.PointerMove.String())
	assert.Equal(t, "up", sketch.PointerUp.String())
	assert.Equal(t, "leave", sketch.PointerLeave.String())
	assert.Equal(t, "unknown", sketch.PointerKind(42).String())
}
