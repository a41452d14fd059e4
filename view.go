package depot

import "iter"

var (
	_ Presence = &Ref[int]{}
	_ Presence = &RefMut[int]{}
)

// Ref is a read-only view of one column. It must be released once the
// caller is done with it; until then the column cannot be borrowed mutably.
type Ref[T any] struct {
	col      *TypedColumn[T]
	released bool
}

// RefMut is an exclusive view that may change present values in place.
// Pointers it hands out are valid until Release.
type RefMut[T any] struct {
	col      *TypedColumn[T]
	released bool
}

func (r *Ref[T]) column() *TypedColumn[T] {
	if r.released {
		panic(ViewReleasedError{Component: r.col.name})
	}
	return r.col
}

func (r *Ref[T]) Len() int {
	return len(r.column().slots)
}

func (r *Ref[T]) Has(entity EntityID) bool {
	_, ok := r.Get(entity)
	return ok
}

// Get returns a copy of the entity's value
func (r *Ref[T]) Get(entity EntityID) (T, bool) {
	return r.Slot(entity).Get()
}

// Slot returns the entity's cell; ids outside the column read as empty
func (r *Ref[T]) Slot(entity EntityID) Slot[T] {
	slots := r.column().slots
	if entity < 0 || int(entity) >= len(slots) {
		return Slot[T]{}
	}
	return slots[entity]
}

// Slots walks every cell in entity order, empty ones included
func (r *Ref[T]) Slots() iter.Seq2[EntityID, Slot[T]] {
	return func(yield func(EntityID, Slot[T]) bool) {
		for i, slot := range r.column().slots {
			if !yield(EntityID(i), slot) {
				return
			}
		}
	}
}

// All walks the populated cells in entity order
func (r *Ref[T]) All() iter.Seq2[EntityID, T] {
	return func(yield func(EntityID, T) bool) {
		for i, slot := range r.column().slots {
			if !slot.present {
				continue
			}
			if !yield(EntityID(i), slot.value) {
				return
			}
		}
	}
}

// Release ends the view. Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.col.borrow.release(BorrowRead)
}

func (r *RefMut[T]) column() *TypedColumn[T] {
	if r.released {
		panic(ViewReleasedError{Component: r.col.name})
	}
	return r.col
}

func (r *RefMut[T]) Len() int {
	return len(r.column().slots)
}

func (r *RefMut[T]) Has(entity EntityID) bool {
	_, ok := r.Get(entity)
	return ok
}

// Get returns a pointer to the entity's value for in-place updates
func (r *RefMut[T]) Get(entity EntityID) (*T, bool) {
	slots := r.column().slots
	if entity < 0 || int(entity) >= len(slots) || !slots[entity].present {
		return nil, false
	}
	return &slots[entity].value, true
}

// Set replaces the value of a populated slot. Empty slots stay empty and
// Set reports false for them.
func (r *RefMut[T]) Set(entity EntityID, value T) bool {
	ptr, ok := r.Get(entity)
	if !ok {
		return false
	}
	*ptr = value
	return true
}

func (r *RefMut[T]) Slot(entity EntityID) Slot[T] {
	slots := r.column().slots
	if entity < 0 || int(entity) >= len(slots) {
		return Slot[T]{}
	}
	return slots[entity]
}

func (r *RefMut[T]) Slots() iter.Seq2[EntityID, Slot[T]] {
	return func(yield func(EntityID, Slot[T]) bool) {
		for i, slot := range r.column().slots {
			if !yield(EntityID(i), slot) {
				return
			}
		}
	}
}

// All walks the populated cells in entity order, yielding writable pointers
func (r *RefMut[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		slots := r.column().slots
		for i := range slots {
			if !slots[i].present {
				continue
			}
			if !yield(EntityID(i), &slots[i].value) {
				return
			}
		}
	}
}

func (r *RefMut[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.col.borrow.release(BorrowWrite)
}
