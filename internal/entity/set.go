package entity

import "iter"

type slot[T any] struct {
	value    T
	gen      uint32
	occupied bool
	// detached is set while a pass holds the value outside the slot.
	detached bool
	// stamp records the pass that was running when the value was inserted.
	stamp uint32
}

// Set is an ordered slot map addressed by ID[T]. The zero value is ready to use.
// A Set is not safe for concurrent use.
//
// Pointers returned by Get and yielded by All stay valid until the next
// Insert into the same set.
type Set[T any] struct {
	slots  []slot[T]
	count  int
	pass   uint32
	active int
}

// NewSet returns an empty set.
func NewSet[T any]() *Set[T] {
	return &Set[T]{}
}

// Insert stores v in the first empty slot, bumping that slot's generation, or
// appends a new slot at generation 0.
func (s *Set[T]) Insert(v T) ID[T] {
	s.count++
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.occupied {
			continue
		}
		sl.gen++
		sl.value = v
		sl.occupied = true
		sl.stamp = s.pass
		return ID[T]{index: uint32(i), gen: sl.gen}
	}
	s.slots = append(s.slots, slot[T]{value: v, occupied: true, stamp: s.pass})
	return ID[T]{index: uint32(len(s.slots) - 1)}
}

// lookup returns the live, attached slot for id or nil.
func (s *Set[T]) lookup(id ID[T]) *slot[T] {
	if int(id.index) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[id.index]
	if !sl.occupied || sl.detached || sl.gen != id.gen {
		return nil
	}
	return sl
}

// Get returns the value for id, or nil when the slot is empty, has been
// reused, or its value is currently detached by a running pass.
func (s *Set[T]) Get(id ID[T]) *T {
	sl := s.lookup(id)
	if sl == nil {
		return nil
	}
	return &sl.value
}

// Contains reports whether Get(id) would succeed.
func (s *Set[T]) Contains(id ID[T]) bool {
	return s.lookup(id) != nil
}

// Remove vacates the slot for id and returns its value. The generation is
// left untouched. A stale or detached id reports false.
func (s *Set[T]) Remove(id ID[T]) (T, bool) {
	var zero T
	sl := s.lookup(id)
	if sl == nil {
		return zero, false
	}
	v := sl.value
	sl.value = zero
	sl.occupied = false
	s.count--
	return v, true
}

// Len returns the number of stored values.
func (s *Set[T]) Len() int {
	return s.count
}

// Clear empties every slot. Generations are kept so IDs issued before the
// call stay stale after it.
func (s *Set[T]) Clear() {
	var zero T
	for i := range s.slots {
		s.slots[i].value = zero
		s.slots[i].occupied = false
		s.slots[i].detached = false
	}
	s.count = 0
}

// All iterates over stored values in slot order, skipping values detached
// by a running pass. The pointers may be used to modify values, but the
// caller must not insert into s while ranging.
func (s *Set[T]) All() iter.Seq2[ID[T], *T] {
	return func(yield func(ID[T], *T) bool) {
		for i := range s.slots {
			sl := &s.slots[i]
			if !sl.occupied || sl.detached {
				continue
			}
			if !yield(ID[T]{index: uint32(i), gen: sl.gen}, &sl.value) {
				return
			}
		}
	}
}

// EachDetached calls fn for every stored value, moving the value out of its
// slot for the duration of the call and back afterwards. While a value is
// out, nested lookups and passes over s skip it instead of aliasing it, so fn
// may read siblings, insert into s, or remove other entries. Values inserted
// while the pass runs are not visited by it.
func (s *Set[T]) EachDetached(fn func(ID[T], *T)) {
	s.visit(func(id ID[T], v *T) bool {
		fn(id, v)
		return true
	})
}

// Retain keeps only the values for which keep returns true. keep runs on a
// detached value, with the same guarantees as EachDetached.
func (s *Set[T]) Retain(keep func(ID[T], *T) bool) {
	s.visit(keep)
}

func (s *Set[T]) visit(fn func(ID[T], *T) bool) {
	if s.active == 0 {
		s.pass++
	}
	s.active++
	defer func() { s.active-- }()

	mark := s.pass
	var zero T
	for i := 0; i < len(s.slots); i++ {
		sl := &s.slots[i]
		if !sl.occupied || sl.detached || sl.stamp == mark {
			continue
		}
		id := ID[T]{index: uint32(i), gen: sl.gen}
		v := sl.value
		sl.detached = true

		keep := fn(id, &v)

		// fn may have grown the slice or cleared the set.
		sl = &s.slots[i]
		if !sl.detached {
			continue
		}
		sl.detached = false
		if keep {
			sl.value = v
			continue
		}
		sl.value = zero
		sl.occupied = false
		s.count--
	}
}
