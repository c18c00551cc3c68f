// Package entity provides a generational slot map for game entities.
//
// A Set hands out IDs made of a slot index and the slot's generation. Removing
// a value leaves the generation alone and reusing the slot bumps it, so an ID
// held past the removal of its value simply stops resolving. Nothing is ever
// freed behind a caller's back; a stale ID is a lookup miss, not an error.
package entity

import "fmt"

// ID identifies a value in a Set[T]. The type parameter keeps IDs from
// different sets apart at compile time.
type ID[T any] struct {
	index uint32
	gen   uint32
}

// Index returns the slot index.
func (id ID[T]) Index() uint32 { return id.index }

// Generation returns the slot generation the ID was issued for.
func (id ID[T]) Generation() uint32 { return id.gen }

func (id ID[T]) String() string {
	return fmt.Sprintf("%d:%d", id.index, id.gen)
}
