package depot

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	iter_util "github.com/TheBitDrifter/util/iter"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

var _ World = &world{}

type world struct {
	entitiesCount int
	columns       []Column
	signatures    []mask.Mask
	rows          *SimpleRegistry[table.ElementTypeID, Component]
	capacity      int
	logger        zerolog.Logger
}

func newWorld() World {
	return &world{
		rows:     FactoryNewRegistry[table.ElementTypeID, Component](MaxWorldComponentTypes),
		capacity: Config.initialCapacity,
		logger:   Config.logger,
	}
}

func (w *world) base() *world {
	return w
}

func (w *world) EntitiesCount() int {
	return w.entitiesCount
}

func (w *world) ColumnCount() int {
	return len(w.columns)
}

func (w *world) Columns() iter.Seq[Column] {
	return func(yield func(Column) bool) {
		for _, col := range w.columns {
			if !yield(col) {
				return
			}
		}
	}
}

func (w *world) Components() []Component {
	var components iter.Seq[Component] = func(yield func(Component) bool) {
		for col := range w.Columns() {
			if !yield(col.Component()) {
				return
			}
		}
	}
	return iter_util.Collect(components)
}

// RowIndexFor returns the signature bit c holds in this world. Bits are
// handed out in column creation order; ok is false for a component no entity
// of this world has carried.
func (w *world) RowIndexFor(c Component) (row uint32, ok bool) {
	idx, ok := w.rows.GetIndex(c.ID())
	return uint32(idx), ok
}

func (w *world) assignRow(c Component, name string) (uint32, error) {
	if idx, ok := w.rows.GetIndex(c.ID()); ok {
		return uint32(idx), nil
	}
	idx, err := w.rows.Register(c.ID(), c)
	if err != nil {
		return 0, ComponentLimitError{Component: name, Limit: MaxWorldComponentTypes}
	}
	return uint32(idx), nil
}

// Locked reports whether any column currently has a live view
func (w *world) Locked() bool {
	for _, col := range w.columns {
		if col.Borrowed() {
			return true
		}
	}
	return false
}

func findColumn[T any](w *world) (*TypedColumn[T], bool) {
	for _, col := range w.columns {
		if typed, ok := TryAs[T](col); ok {
			return typed, true
		}
	}
	return nil, false
}

func registerColumn[T any](w *world, col *TypedColumn[T]) {
	if _, exists := findColumn[T](w); exists {
		panic(DuplicateColumnError{Component: col.name})
	}
	w.columns = append(w.columns, col)
	w.logger.Debug().
		Str("component", col.name).
		Int("entities", w.entitiesCount).
		Int("columns", len(w.columns)).
		Msg("column created")
}

// AddComponentToEntity stores value as entity's T, creating T's column on
// first use. An existing value is overwritten. On error the world is left
// unchanged.
func AddComponentToEntity[T any](w World, entity EntityID, value T) error {
	wld := w.base()
	if !wld.valid(entity) {
		return InvalidEntityError{Entity: entity, EntitiesCount: wld.entitiesCount}
	}
	if col, ok := findColumn[T](wld); ok {
		if err := col.borrow.conflict(col.name, BorrowWrite); err != nil {
			wld.logger.Error().Err(err).Int("entity", int(entity)).Msg("component write blocked by live view")
			return err
		}
		col.set(entity, value)
		wld.mark(entity, col.component)
		return nil
	}

	component, err := elementTypeFor[T]()
	if err != nil {
		return eris.Wrap(err, "failed to register component type")
	}
	if _, err := wld.assignRow(component, typeName[T]()); err != nil {
		wld.logger.Error().Err(err).Int("columns", len(wld.columns)).Msg("world component limit reached")
		return eris.Wrap(err, "failed to assign signature bit")
	}
	col := newColumn(component, wld.entitiesCount, wld.capacity, entity, value)
	registerColumn(wld, col)
	wld.mark(entity, component)
	return nil
}

// TryBorrowColumn is BorrowColumn with the conflict returned instead of
// raised. ok is false when no entity has ever had a T.
func TryBorrowColumn[T any](w World) (ref *Ref[T], ok bool, err error) {
	col, ok := findColumn[T](w.base())
	if !ok {
		return nil, false, nil
	}
	if err := col.borrow.acquire(col.name, BorrowRead); err != nil {
		return nil, true, err
	}
	return &Ref[T]{col: col}, true, nil
}

// TryBorrowColumnMut is BorrowColumnMut with the conflict returned instead
// of raised.
func TryBorrowColumnMut[T any](w World) (ref *RefMut[T], ok bool, err error) {
	col, ok := findColumn[T](w.base())
	if !ok {
		return nil, false, nil
	}
	if err := col.borrow.acquire(col.name, BorrowWrite); err != nil {
		return nil, true, err
	}
	return &RefMut[T]{col: col}, true, nil
}

// BorrowColumn returns an immutable view of T's column. It panics with
// BorrowConflictError while a mutable view of the same column is live.
func BorrowColumn[T any](w World) (*Ref[T], bool) {
	ref, ok, err := TryBorrowColumn[T](w)
	if err != nil {
		w.base().logger.Error().Err(err).Msg("borrow conflict")
		panic(err)
	}
	return ref, ok
}

// BorrowColumnMut returns an exclusive view of T's column. It panics with
// BorrowConflictError while any other view of the same column is live.
func BorrowColumnMut[T any](w World) (*RefMut[T], bool) {
	ref, ok, err := TryBorrowColumnMut[T](w)
	if err != nil {
		w.base().logger.Error().Err(err).Msg("borrow conflict")
		panic(err)
	}
	return ref, ok
}

func ReadColumn[T any](w World, fn func(*Ref[T])) bool {
	ref, ok := BorrowColumn[T](w)
	if !ok {
		return false
	}
	defer ref.Release()
	fn(ref)
	return true
}

func WriteColumn[T any](w World, fn func(*RefMut[T])) bool {
	ref, ok := BorrowColumnMut[T](w)
	if !ok {
		return false
	}
	defer ref.Release()
	fn(ref)
	return true
}
