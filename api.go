package depot

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// EntityID is a dense, never reused entity handle. It is also the entity's
// slot index in every column.
type EntityID int

// World owns the entities and one column per component type. CreateEntity
// panics with BorrowConflictError while any view of the world is live.
type World interface {
	CreateEntity() EntityID
	EntitiesCount() int
	ColumnCount() int
	Columns() iter.Seq[Column]
	Components() []Component
	Signature(EntityID) (mask.Mask, error)
	RowIndexFor(Component) (uint32, bool)
	Locked() bool
	base() *world
}

type Component interface {
	table.ElementType
}

// Column is the type-erased handle the world keeps for each component type.
type Column interface {
	Component() Component
	Name() string
	Len() int
	PushEmptySlot()
	Borrowed() bool
	flag() *borrowFlag
}

// Presence is satisfied by every view and is all Join needs.
type Presence interface {
	Len() int
	Has(EntityID) bool
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(signature mask.Mask, world World) bool
}

type iCursor interface {
	Entities() iter.Seq[EntityID]
	Next() bool
}

type Registry[K comparable, T any] interface {
	GetIndex(K) (int, bool)
	GetItem(int) *T
	Register(K, T) (int, error)
}

// Cursor walks the entities whose signatures satisfy a query. It reads the
// world's signatures directly and is only valid for the world it was made for.
type Cursor struct {
	// The query to filter entities
	query QueryNode

	// The world to iterate over
	world World

	// Current iteration state
	current  EntityID
	position int

	// Initialization state
	initialized bool
	matched     []EntityID
}

// AccessibleComponent pairs a Component with the typed operations for T.
// It can be handed to query nodes like any other Component.
type AccessibleComponent[T any] struct {
	Component
}

type SimpleRegistry[K comparable, T any] struct {
	items       []T
	itemIndices map[K]int
	maxCapacity int
}
