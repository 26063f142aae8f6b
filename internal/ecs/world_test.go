package ecs

import "testing"

// stub components used only in tests
type cellComp struct{ x, y int }

func (cellComp) Type() ComponentType { return 1 }

type valueComp struct{ v int }

func (valueComp) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
	if w.Len() != 1 {
		t.Fatalf("Len = %d; want 1", w.Len())
	}
}

func TestSpawnAttachesAllComponents(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(cellComp{x: 2, y: 3}, valueComp{v: 1})

	c, ok := w.Get(id, ComponentType(1)).(cellComp)
	if !ok {
		t.Fatal("expected cellComp after Spawn")
	}
	if c.x != 2 || c.y != 3 {
		t.Errorf("cell = (%d,%d); want (2,3)", c.x, c.y)
	}
	if v, ok := w.Get(id, ComponentType(2)).(valueComp); !ok || v.v != 1 {
		t.Errorf("value component = %v, %v; want {1}, true", v, ok)
	}
}

func TestAddReplacesSameType(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(valueComp{v: 0})
	w.Add(id, valueComp{v: 5})
	if got := w.Get(id, ComponentType(2)).(valueComp).v; got != 5 {
		t.Fatalf("value = %d; want 5", got)
	}
}

func TestAddToDeadEntityIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.DestroyEntity(id)
	w.Add(id, valueComp{v: 9})
	if w.Has(id, ComponentType(2)) {
		t.Fatal("dead entity must not gain components")
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(cellComp{}, valueComp{v: 7})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Get(id, ComponentType(1)) != nil || w.Get(id, ComponentType(2)) != nil {
		t.Fatal("components should be gone after DestroyEntity")
	}
	if w.Len() != 0 {
		t.Fatalf("Len = %d; want 0", w.Len())
	}
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()
	both := w.Spawn(cellComp{}, valueComp{})
	w.Spawn(cellComp{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0] != both {
		t.Fatalf("expected entity %v in results, got %v", both, results[0])
	}
}

func TestQuerySortedByID(t *testing.T) {
	w := NewWorld()
	var want []EntityID
	for i := range 20 {
		want = append(want, w.Spawn(valueComp{v: i}))
	}
	got := w.Query(ComponentType(2))
	if len(got) != len(want) {
		t.Fatalf("got %d ids; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Query()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

func TestQueryNoTypes(t *testing.T) {
	w := NewWorld()
	w.Spawn(valueComp{})
	if got := w.Query(); got != nil {
		t.Fatalf("Query() = %v; want nil", got)
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	// Removing a component type that was never added must not panic.
	w.Remove(id, ComponentType(99))
}

func TestHasComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false before Add")
	}
	w.Add(id, cellComp{})
	if !w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return true after Add")
	}
	w.Remove(id, ComponentType(1))
	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false after Remove")
	}
}

func TestQueryExcludesDeadEntities(t *testing.T) {
	w := NewWorld()
	alive := w.Spawn(cellComp{})
	dead := w.Spawn(cellComp{})
	w.DestroyEntity(dead)

	results := w.Query(ComponentType(1))
	if len(results) != 1 || results[0] != alive {
		t.Fatalf("expected only the alive entity; got %v", results)
	}
}

func TestEachYieldsComponentsInOrder(t *testing.T) {
	w := NewWorld()
	w.Spawn(valueComp{v: 10})
	w.Spawn(cellComp{})
	w.Spawn(valueComp{v: 30})

	var vals []int
	for _, c := range w.Each(ComponentType(2)) {
		vals = append(vals, c.(valueComp).v)
	}
	if len(vals) != 2 || vals[0] != 10 || vals[1] != 30 {
		t.Fatalf("Each values = %v; want [10 30]", vals)
	}
}

func TestEachStopsEarly(t *testing.T) {
	w := NewWorld()
	for i := range 5 {
		w.Spawn(valueComp{v: i})
	}
	n := 0
	for range w.Each(ComponentType(2)) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("iterated %d times; want 2", n)
	}
}
