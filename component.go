package depot

// Component identifies one Go type as attachable data. Components double as
// query terms and as the key of their world column.

// ComponentOf returns the component identity for T, registering it on
// first use.
func ComponentOf[T any]() (Component, error) {
	return elementTypeFor[T]()
}
