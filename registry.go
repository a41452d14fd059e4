package depot

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

const (
	// MaxComponentTypes bounds how many distinct component types a process
	// may register across all worlds.
	MaxComponentTypes = 1024

	// MaxWorldComponentTypes bounds the columns of a single world. Each column
	// owns one bit of the entity signature.
	MaxWorldComponentTypes = mask.MaxBits
)

var _ Registry[string, any] = &SimpleRegistry[string, any]{}

func (r *SimpleRegistry[K, T]) GetIndex(key K) (int, bool) {
	index, ok := r.itemIndices[key]
	return index, ok
}

func (r *SimpleRegistry[K, T]) GetItem(index int) *T {
	return &r.items[index]
}

func (r *SimpleRegistry[K, T]) Register(key K, item T) (int, error) {
	if r.Len() >= r.maxCapacity {
		return -1, fmt.Errorf("registry at maximum capacity (%d)", r.maxCapacity)
	}

	idx := len(r.items)
	r.itemIndices[key] = idx
	r.items = append(r.items, item)

	return idx, nil
}

func (r *SimpleRegistry[K, T]) Len() int {
	return len(r.items)
}

// componentTypes hands out exactly one element type per Go type so that
// worlds and queries agree on identity.
var componentTypes = struct {
	sync.Mutex
	reg *SimpleRegistry[reflect.Type, table.ElementType]
}{
	reg: FactoryNewRegistry[reflect.Type, table.ElementType](MaxComponentTypes),
}

func elementTypeFor[T any]() (Component, error) {
	typ := reflect.TypeFor[T]()

	componentTypes.Lock()
	defer componentTypes.Unlock()

	if idx, ok := componentTypes.reg.GetIndex(typ); ok {
		return *componentTypes.reg.GetItem(idx), nil
	}
	iden := table.FactoryNewElementType[T]()
	if _, err := componentTypes.reg.Register(typ, iden); err != nil {
		return nil, ComponentLimitError{Component: typ.String(), Limit: componentTypes.reg.maxCapacity}
	}
	return iden, nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
