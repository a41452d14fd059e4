package depot

import (
	"errors"
	"reflect"
	"testing"

	"github.com/TheBitDrifter/table"
)

// TestRegistryBasicOperations tests the basic operations of the SimpleRegistry
func TestRegistryBasicOperations(t *testing.T) {
	const capacity = 10
	reg := FactoryNewRegistry[string, string](capacity)

	items := []string{"item1", "item2", "item3", "item4", "item5"}
	indices := make([]int, len(items))

	for i, item := range items {
		index, err := reg.Register(item, item)
		if err != nil {
			t.Errorf("Failed to register item %s: %v", item, err)
		}
		indices[i] = index

		// Verify index starts at 0 and increments
		if index != i {
			t.Errorf("Index for item %s is %d, expected %d", item, index, i)
		}
	}

	for i, item := range items {
		index, found := reg.GetIndex(item)
		if !found {
			t.Errorf("Item %s not found in registry", item)
		}
		if index != indices[i] {
			t.Errorf("Index for item %s is %d, expected %d", item, index, indices[i])
		}
		if got := *reg.GetItem(index); got != item {
			t.Errorf("Item at index %d is %s, expected %s", index, got, item)
		}
	}

	if _, found := reg.GetIndex("nonexistent"); found {
		t.Errorf("Found non-existent item in registry")
	}
}

// TestRegistryCapacity tests the registry capacity limits
func TestRegistryCapacity(t *testing.T) {
	const capacity = 5
	reg := FactoryNewRegistry[int, int](capacity)

	for i := 0; i < capacity; i++ {
		if _, err := reg.Register(i, i); err != nil {
			t.Errorf("Failed to register item %d: %v", i, err)
		}
	}

	if _, err := reg.Register(capacity, 100); err == nil {
		t.Errorf("Expected error when exceeding registry capacity, but got none")
	}
	if reg.Len() != capacity {
		t.Errorf("Len() = %d, want %d", reg.Len(), capacity)
	}
}

// TestRegistryWithTypeKeys mirrors how component identities are stored
func TestRegistryWithTypeKeys(t *testing.T) {
	reg := FactoryNewRegistry[reflect.Type, Position](10)

	keys := []reflect.Type{
		reflect.TypeFor[Health](),
		reflect.TypeFor[Mana](),
		reflect.TypeFor[int](),
	}
	for i, key := range keys {
		if _, err := reg.Register(key, Position{X: float64(i)}); err != nil {
			t.Fatalf("Failed to register %v: %v", key, err)
		}
	}

	for i, key := range keys {
		index, found := reg.GetIndex(key)
		if !found {
			t.Errorf("Type %v not found", key)
			continue
		}
		if pos := reg.GetItem(index); pos.X != float64(i) {
			t.Errorf("Item for %v is %v, expected X=%d", key, pos, i)
		}
	}
}

func TestComponentIdentityIsStable(t *testing.T) {
	first, err := ComponentOf[Position]()
	if err != nil {
		t.Fatal(err)
	}
	second, err := ComponentOf[Position]()
	if err != nil {
		t.Fatal(err)
	}
	posComp := FactoryNewComponent[Position]()

	w := Factory.NewWorld()
	if _, ok := w.RowIndexFor(first); ok {
		t.Errorf("fresh world assigned a row to Position")
	}
	e := w.CreateEntity()
	if err := posComp.AddTo(w, e, Position{}); err != nil {
		t.Fatal(err)
	}
	if err := AddComponentToEntity(w, e, Health(1)); err != nil {
		t.Fatal(err)
	}
	if err := AddComponentToEntity(w, e, Mana(1)); err != nil {
		t.Fatal(err)
	}

	row1, ok1 := w.RowIndexFor(first)
	row2, ok2 := w.RowIndexFor(second)
	row3, ok3 := w.RowIndexFor(posComp)
	if !ok1 || !ok2 || !ok3 {
		t.Fatalf("Position has no row after AddComponentToEntity")
	}
	if row1 != row2 {
		t.Errorf("repeated ComponentOf[Position] gave different rows")
	}
	if row1 != row3 {
		t.Errorf("accessible component and plain component disagree on row")
	}

	health, err := ComponentOf[Health]()
	if err != nil {
		t.Fatal(err)
	}
	mana, err := ComponentOf[Mana]()
	if err != nil {
		t.Fatal(err)
	}
	healthRow, _ := w.RowIndexFor(health)
	manaRow, _ := w.RowIndexFor(mana)
	if healthRow == manaRow {
		t.Errorf("Health and Mana share a row")
	}
}

type tag[T any] int

func attachTag[T any](w World, e EntityID) error {
	return AddComponentToEntity(w, e, tag[T](1))
}

// tagAttachers attach one distinct component type each.
var tagAttachers = []func(World, EntityID) error{
	attachTag[[0]byte], attachTag[[1]byte], attachTag[[2]byte], attachTag[[3]byte], attachTag[[4]byte],
	attachTag[[5]byte], attachTag[[6]byte], attachTag[[7]byte], attachTag[[8]byte], attachTag[[9]byte],
	attachTag[[10]byte], attachTag[[11]byte], attachTag[[12]byte], attachTag[[13]byte], attachTag[[14]byte],
	attachTag[[15]byte], attachTag[[16]byte], attachTag[[17]byte], attachTag[[18]byte], attachTag[[19]byte],
	attachTag[[20]byte], attachTag[[21]byte], attachTag[[22]byte], attachTag[[23]byte], attachTag[[24]byte],
	attachTag[[25]byte], attachTag[[26]byte], attachTag[[27]byte], attachTag[[28]byte], attachTag[[29]byte],
	attachTag[[30]byte], attachTag[[31]byte], attachTag[[32]byte], attachTag[[33]byte], attachTag[[34]byte],
	attachTag[[35]byte], attachTag[[36]byte], attachTag[[37]byte], attachTag[[38]byte], attachTag[[39]byte],
	attachTag[[40]byte], attachTag[[41]byte], attachTag[[42]byte], attachTag[[43]byte], attachTag[[44]byte],
	attachTag[[45]byte], attachTag[[46]byte], attachTag[[47]byte], attachTag[[48]byte], attachTag[[49]byte],
	attachTag[[50]byte], attachTag[[51]byte], attachTag[[52]byte], attachTag[[53]byte], attachTag[[54]byte],
	attachTag[[55]byte], attachTag[[56]byte], attachTag[[57]byte], attachTag[[58]byte], attachTag[[59]byte],
	attachTag[[60]byte], attachTag[[61]byte], attachTag[[62]byte], attachTag[[63]byte], attachTag[[64]byte],
}

func TestWorldComponentLimit(t *testing.T) {
	if len(tagAttachers) <= MaxWorldComponentTypes {
		t.Skipf("need more than %d component types", MaxWorldComponentTypes)
	}

	w := Factory.NewWorld()
	e := w.CreateEntity()
	other := w.CreateEntity()
	for i, attach := range tagAttachers[:MaxWorldComponentTypes] {
		if err := attach(w, e); err != nil {
			t.Fatalf("attach %d: %v", i, err)
		}
	}
	before, err := w.Signature(e)
	if err != nil {
		t.Fatal(err)
	}

	err = tagAttachers[MaxWorldComponentTypes](w, e)
	var limit ComponentLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("AddComponentToEntity() error = %v, want ComponentLimitError", err)
	}
	if limit.Limit != MaxWorldComponentTypes {
		t.Errorf("Limit = %d, want %d", limit.Limit, MaxWorldComponentTypes)
	}
	if w.ColumnCount() != MaxWorldComponentTypes {
		t.Errorf("ColumnCount() = %d, want %d", w.ColumnCount(), MaxWorldComponentTypes)
	}
	assertColumnLengths(t, w)
	if after, _ := w.Signature(e); after != before {
		t.Errorf("signature changed by failed add")
	}

	all := Factory.NewCursor(Factory.NewQuery().And(w.Components()), w)
	if got := all.TotalMatched(); got != 1 {
		t.Errorf("entities with every component = %d, want 1", got)
	}

	if err := tagAttachers[0](w, other); err != nil {
		t.Errorf("existing column rejected a write: %v", err)
	}

	fresh := Factory.NewWorld()
	if err := tagAttachers[MaxWorldComponentTypes](fresh, fresh.CreateEntity()); err != nil {
		t.Errorf("limit leaked into another world: %v", err)
	}
}

func TestProcessComponentLimit(t *testing.T) {
	componentTypes.Lock()
	saved := componentTypes.reg
	componentTypes.reg = FactoryNewRegistry[reflect.Type, table.ElementType](1)
	componentTypes.Unlock()
	t.Cleanup(func() {
		componentTypes.Lock()
		componentTypes.reg = saved
		componentTypes.Unlock()
	})

	w := Factory.NewWorld()
	e := w.CreateEntity()
	if err := AddComponentToEntity(w, e, Health(3)); err != nil {
		t.Fatal(err)
	}

	err := AddComponentToEntity(w, e, Mana(3))
	var limit ComponentLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("AddComponentToEntity() error = %v, want ComponentLimitError", err)
	}
	if limit.Limit != 1 || limit.Component != "depot.Mana" {
		t.Errorf("error = %+v", limit)
	}
	if w.ColumnCount() != 1 {
		t.Errorf("ColumnCount() = %d, want 1", w.ColumnCount())
	}
	if _, ok := BorrowColumn[Mana](w); ok {
		t.Errorf("Mana column exists after failed add")
	}
	assertColumnLengths(t, w)
}
