package depot

var _ Column = &TypedColumn[int]{}

// Slot is one entity's cell in a column. The zero Slot is empty.
type Slot[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Slot[T] {
	return Slot[T]{value: value, present: true}
}

func None[T any]() Slot[T] {
	return Slot[T]{}
}

// Get returns the stored value and whether the slot is populated
func (s Slot[T]) Get() (T, bool) {
	return s.value, s.present
}

func (s Slot[T]) Present() bool {
	return s.present
}

// TypedColumn stores the optional T of every entity, indexed by EntityID.
type TypedColumn[T any] struct {
	component Component
	name      string
	slots     []Slot[T]
	borrow    borrowFlag
}

// newColumn builds a column of length n with only slot at populated.
func newColumn[T any](component Component, n, capacity int, at EntityID, value T) *TypedColumn[T] {
	slots := make([]Slot[T], n, max(n, capacity))
	slots[at] = Some(value)
	return &TypedColumn[T]{
		component: component,
		name:      typeName[T](),
		slots:     slots,
	}
}

func (c *TypedColumn[T]) Component() Component {
	return c.component
}

func (c *TypedColumn[T]) Name() string {
	return c.name
}

func (c *TypedColumn[T]) Len() int {
	return len(c.slots)
}

func (c *TypedColumn[T]) PushEmptySlot() {
	c.slots = append(c.slots, Slot[T]{})
}

// Borrowed reports whether any view of the column is live
func (c *TypedColumn[T]) Borrowed() bool {
	return c.borrow.busy()
}

func (c *TypedColumn[T]) flag() *borrowFlag {
	return &c.borrow
}

func (c *TypedColumn[T]) set(entity EntityID, value T) {
	c.slots[entity] = Some(value)
}

// TryAs recovers the concrete column behind an erased handle. The check is
// on Go type identity, so distinct named types never match each other even
// when their underlying types agree.
func TryAs[T any](c Column) (*TypedColumn[T], bool) {
	typed, ok := c.(*TypedColumn[T])
	return typed, ok
}
