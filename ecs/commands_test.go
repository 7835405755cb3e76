package ecs_test

import (
	"testing"

	"github.com/plus3/sandgrid/ecs"
	"github.com/stretchr/testify/assert"
)

type testSpawnSystem struct {
	executed bool
}

func (s *testSpawnSystem) Execute(frame *ecs.UpdateFrame) {
	s.executed = true
	frame.Commands.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
	frame.Commands.Spawn(Position{X: 3, Y: 4})
}

type testCountSystem struct {
	Entities ecs.Query[struct{ *Position }]
	seen     []int
}

func (s *testCountSystem) Execute(frame *ecs.UpdateFrame) {
	s.seen = append(s.seen, s.Entities.Len())
}

type testDeferSystem struct {
	log *[]string
}

func (s *testDeferSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Defer(func() {
		*s.log = append(*s.log, "deferred")
	})
	*s.log = append(*s.log, "executed")
}

func TestCommandsFlush(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var order []string
	buffer := &ecs.Commands{}
	buffer.Spawn(Position{X: 1})
	buffer.Defer(func() {
		order = append(order, "defer")
		assert.Equal(t, 1, storage.Len(), "spawns are applied before defers")
	})
	assert.Equal(t, 2, buffer.Pending())

	buffer.Flush(storage)
	assert.Equal(t, []string{"defer"}, order)
	assert.Equal(t, 0, buffer.Pending())

	buffer.Flush(storage)
	assert.Equal(t, 1, storage.Len())
}

func TestCommandsThroughScheduler(t *testing.T) {
	t.Run("spawns are deferred to end of frame", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		scheduler := ecs.NewScheduler(storage)

		spawner := &testSpawnSystem{}
		counter := &testCountSystem{}
		scheduler.Register(spawner)
		scheduler.Register(counter)

		scheduler.Once(1.0)
		assert.True(t, spawner.executed)
		assert.Equal(t, 2, storage.Len())

		scheduler.Once(1.0)
		assert.Equal(t, []int{0, 2}, counter.seen)
	})

	t.Run("defers run after every system", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		scheduler := ecs.NewScheduler(storage)

		var log []string
		scheduler.Register(&testDeferSystem{log: &log})
		scheduler.Register(&testDeferSystem{log: &log})

		scheduler.Once(0)
		assert.Equal(t, []string{"executed", "executed", "deferred", "deferred"}, log)
	})
}
