package depot

type factory struct{}

var Factory factory

func (f factory) NewWorld() World {
	return newWorld()
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, world World) *Cursor {
	return newCursor(query, world)
}

// FactoryNewComponent returns the accessible component for T. It panics if
// the process already registered MaxComponentTypes distinct types.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	iden, err := elementTypeFor[T]()
	if err != nil {
		panic(err)
	}
	return AccessibleComponent[T]{Component: iden}
}

func FactoryNewRegistry[K comparable, T any](cap int) *SimpleRegistry[K, T] {
	return &SimpleRegistry[K, T]{
		itemIndices: make(map[K]int),
		maxCapacity: cap,
	}
}
