package depot

import "fmt"

type BorrowMode int

const (
	BorrowRead BorrowMode = iota
	BorrowWrite
)

func (m BorrowMode) String() string {
	if m == BorrowWrite {
		return "mutable"
	}
	return "immutable"
}

type InvalidEntityError struct {
	Entity        EntityID
	EntitiesCount int
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("invalid entity %d (entities count %d)", e.Entity, e.EntitiesCount)
}

// BorrowConflictError reports a view request that would alias a live view
// of the same column.
type BorrowConflictError struct {
	Component string
	Requested BorrowMode
	Readers   int
	Writer    bool
}

func (e BorrowConflictError) Error() string {
	if e.Writer {
		return fmt.Sprintf("cannot take %s view of %s: mutable view outstanding", e.Requested, e.Component)
	}
	return fmt.Sprintf("cannot take %s view of %s: %d immutable view(s) outstanding", e.Requested, e.Component, e.Readers)
}

type DuplicateColumnError struct {
	Component string
}

func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("column already registered for component: %s", e.Component)
}

type ViewReleasedError struct {
	Component string
}

func (e ViewReleasedError) Error() string {
	return fmt.Sprintf("view of %s used after release", e.Component)
}

type ComponentLimitError struct {
	Component string
	Limit     int
}

func (e ComponentLimitError) Error() string {
	return fmt.Sprintf("cannot register component %s: registry at maximum capacity (%d)", e.Component, e.Limit)
}
