package depot

// AddTo attaches value to entity in world
func (c AccessibleComponent[T]) AddTo(world World, entity EntityID, value T) error {
	return AddComponentToEntity(world, entity, value)
}

// Borrow returns an immutable view of T's column if one exists
func (c AccessibleComponent[T]) Borrow(world World) (*Ref[T], bool) {
	return BorrowColumn[T](world)
}

// BorrowMut returns a mutable view of T's column if one exists
func (c AccessibleComponent[T]) BorrowMut(world World) (*RefMut[T], bool) {
	return BorrowColumnMut[T](world)
}

// Read runs fn with an immutable view that is released on return
func (c AccessibleComponent[T]) Read(world World, fn func(*Ref[T])) bool {
	return ReadColumn(world, fn)
}

// Write runs fn with a mutable view that is released on return
func (c AccessibleComponent[T]) Write(world World, fn func(*RefMut[T])) bool {
	return WriteColumn(world, fn)
}

// GetFromCursor reads the value for the entity at the cursor position
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor, view *Ref[T]) (T, bool) {
	return view.Get(cursor.Entity())
}

// CheckCursor reports whether the entity at the cursor carries this component
func (c AccessibleComponent[T]) CheckCursor(cursor *Cursor) bool {
	sig, err := cursor.world.Signature(cursor.Entity())
	if err != nil {
		return false
	}
	m, complete := componentMask(cursor.world, c.Component)
	return complete && sig.ContainsAll(m)
}
