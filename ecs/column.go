package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry maps component types to column factories. Each Storage
// owns its own registry so independent sketches never share column types.
type ComponentRegistry struct {
	factories map[reflect.Type]func() column
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent registers T so archetypes containing it can be created.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.factories[t] = func() column {
		return &blockColumn[T]{}
	}
}

func (r *ComponentRegistry) factory(t reflect.Type) func() column {
	return r.factories[t]
}

// Registered reports whether T has been registered.
func Registered[T any](r *ComponentRegistry) bool {
	_, ok := r.factories[reflect.TypeFor[T]()]
	return ok
}

// column is the type-erased, append-only storage of one component type
// inside an archetype.
type column interface {
	Append(item any) int
	Get(index int) any
	Len() int
	Iter() iter.Seq[int]
}

const blockSize = 64

// blockColumn stores components in fixed-size blocks. Blocks are never
// reallocated once created, so pointers handed out by Get stay valid while
// the column keeps growing.
type blockColumn[T any] struct {
	blocks []*[blockSize]T
	length int
}

// Append adds a component (value or pointer to value) and returns its index,
// or -1 when the item is not a T.
func (c *blockColumn[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	index := c.length
	blockIdx := index / blockSize
	if blockIdx >= len(c.blocks) {
		c.blocks = append(c.blocks, new([blockSize]T))
	}
	c.blocks[blockIdx][index%blockSize] = value
	c.length++
	return index
}

// Get returns a *T for the component at index, or nil when out of range.
func (c *blockColumn[T]) Get(index int) any {
	if index < 0 || index >= c.length {
		return nil
	}
	return &c.blocks[index/blockSize][index%blockSize]
}

func (c *blockColumn[T]) Len() int {
	return c.length
}

// Iter yields every index in spawn order.
func (c *blockColumn[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.length; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
