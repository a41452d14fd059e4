/*
Package depot provides the storage layer of an Entity-Component-System (ECS).

Depot keeps one column per component type. A column is a dense slice of
optional values indexed by entity id, held behind a type-erased Column
handle so a world can own columns of unrelated types. Callers borrow typed
views over columns and join them by index to find the entities that carry
every requested component.

Core Concepts:

  - Entity: A dense integer id. It is also the entity's index in every column.
  - Component: Any Go value. Its static type picks the column it is stored in.
  - Column: The per-type slice of optional values, one slot per entity.
  - View: A borrowed Ref (read) or RefMut (read-write) over one column.
  - Join: The entities present in every one of a set of views.

Borrowing follows a many readers or one writer rule per column, checked at
runtime. Views of different columns never conflict. Taking a conflicting view
panics with BorrowConflictError; the Try variants return it instead.

Basic Usage:

	world := depot.Factory.NewWorld()

	player := world.CreateEntity()
	rock := world.CreateEntity()

	depot.AddComponentToEntity(world, player, Position{X: 1})
	depot.AddComponentToEntity(world, player, Velocity{X: 2})
	depot.AddComponentToEntity(world, rock, Position{X: 5})

	positions, _ := depot.BorrowColumnMut[Position](world)
	defer positions.Release()
	velocities, _ := depot.BorrowColumn[Velocity](world)
	defer velocities.Release()

	for e := range depot.Join(positions, velocities) {
		pos, _ := positions.Get(e)
		vel, _ := velocities.Get(e)
		pos.X += vel.X
	}

Entities can also be filtered by their component signature:

	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()

	query := depot.Factory.NewQuery()
	cursor := depot.Factory.NewCursor(query.And(position, velocity), world)
	for cursor.Next() {
		fmt.Println(cursor.Entity())
	}
*/
package depot
