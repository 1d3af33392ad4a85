package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/light-cycle/components"
	"github.com/lixenwraith/light-cycle/core"
)

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore[int]()
	s.Set(3, 30)
	s.Set(1, 10)
	s.Set(2, 20)
	s.Set(1, 11) // update keeps position

	all := s.All()
	expected := []core.Entity{3, 1, 2}
	if len(all) != len(expected) {
		t.Fatalf("Expected %d entities, got %d", len(expected), len(all))
	}
	for i := range expected {
		if all[i] != expected[i] {
			t.Errorf("Expected entity %d at %d, got %d", expected[i], i, all[i])
		}
	}

	if v, _ := s.Get(1); v != 11 {
		t.Errorf("Expected updated value 11, got %d", v)
	}

	s.Remove(1)
	all = s.All()
	if len(all) != 2 || all[0] != 3 || all[1] != 2 {
		t.Errorf("Expected [3 2] after remove, got %v", all)
	}

	sorted := s.SortedAll()
	if sorted[0] != 2 || sorted[1] != 3 {
		t.Errorf("Expected sorted [2 3], got %v", sorted)
	}
}

func TestStoreUpdateAndBatch(t *testing.T) {
	s := NewStore[int]()
	for i := core.Entity(1); i <= 5; i++ {
		s.Set(i, int(i))
	}

	if !s.Update(2, func(v *int) { *v = 200 }) {
		t.Error("Expected Update to succeed for existing entity")
	}
	if s.Update(99, func(v *int) { *v = 1 }) {
		t.Error("Expected Update to fail for missing entity")
	}
	if v, _ := s.Get(2); v != 200 {
		t.Errorf("Expected 200, got %d", v)
	}

	s.RemoveBatch([]core.Entity{1, 3, 99})
	if s.Count() != 3 {
		t.Errorf("Expected 3 entities after batch remove, got %d", s.Count())
	}
	if s.Has(1) || s.Has(3) {
		t.Error("Expected removed entities to be gone")
	}

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("Expected empty store after Clear, got %d", s.Count())
	}
}

func TestWorldDestroyAndClear(t *testing.T) {
	w := NewWorld()

	e := w.CreateEntity()
	w.Motions.Set(e, components.NewMotionComponent(core.Vec2{X: 1, Y: 1}, core.Vec2{X: 1, Y: 1}))
	w.Trails.Set(e, components.TrailSegmentComponent{Owner: e})

	if !w.HasAnyComponent(e) {
		t.Fatal("Expected entity to have components")
	}

	w.DestroyEntity(e)
	if w.HasAnyComponent(e) {
		t.Error("Expected entity to have no components after destroy")
	}

	w.CreateEntity()
	w.Clear()
	if id := w.CreateEntity(); id != 1 {
		t.Errorf("Expected entity ids to restart at 1, got %d", id)
	}
}

type orderSystem struct {
	name     string
	priority int
	log      *[]string
	resets   int
}

func (s *orderSystem) Update(world *World, dt time.Duration) { *s.log = append(*s.log, s.name) }
func (s *orderSystem) Priority() int                         { return s.priority }
func (s *orderSystem) Reset()                                { s.resets++ }

func TestWorldSystemOrder(t *testing.T) {
	w := NewWorld()
	var log []string

	a := &orderSystem{name: "a", priority: 20, log: &log}
	b := &orderSystem{name: "b", priority: 10, log: &log}
	c := &orderSystem{name: "c", priority: 20, log: &log}
	w.AddSystem(a)
	w.AddSystem(b)
	w.AddSystem(c)

	w.Update(16 * time.Millisecond)

	expected := []string{"b", "a", "c"}
	if len(log) != len(expected) {
		t.Fatalf("Expected %d runs, got %d", len(expected), len(log))
	}
	for i := range expected {
		if log[i] != expected[i] {
			t.Errorf("Expected %s at %d, got %s", expected[i], i, log[i])
		}
	}

	w.ResetSystems()
	if a.resets != 1 || b.resets != 1 || c.resets != 1 {
		t.Errorf("Expected every system reset once, got %d %d %d", a.resets, b.resets, c.resets)
	}
}

func TestQueryBuilder(t *testing.T) {
	w := NewWorld()

	e1 := w.CreateEntity()
	w.Players.Set(e1, components.PlayerComponent{})
	w.Motions.Set(e1, components.MotionComponent{})

	e2 := w.CreateEntity()
	w.Motions.Set(e2, components.MotionComponent{})

	e3 := w.CreateEntity()
	w.Trails.Set(e3, components.TrailSegmentComponent{})

	results := w.Query().With(w.Players).With(w.Motions).Execute()
	if len(results) != 1 || results[0] != e1 {
		t.Errorf("Expected [%d], got %v", e1, results)
	}

	if n := len(w.Query().With(w.Motions).Execute()); n != 2 {
		t.Errorf("Expected 2 motion results, got %d", n)
	}

	if n := len(w.Query().Execute()); n != 0 {
		t.Errorf("Expected 0 empty results, got %d", n)
	}

	if n := len(w.Query().With(w.Players).With(w.Trails).Execute()); n != 0 {
		t.Errorf("Expected no intersection, got %d", n)
	}
}

func TestQueryBuilderPanicsAfterExecute(t *testing.T) {
	w := NewWorld()
	qb := w.Query().With(w.Players)
	qb.Execute()

	defer func() {
		if recover() == nil {
			t.Error("Expected panic when modifying executed query")
		}
	}()
	qb.With(w.Motions)
}

func TestArenaBounds(t *testing.T) {
	arena := &ArenaResource{Width: 10, Height: 5, CellSize: core.Vec2{X: 1, Y: 1}}

	tests := []struct {
		name   string
		center core.Vec2
		inside bool
	}{
		{"origin cell", core.Vec2{X: 0, Y: 0}, true},
		{"far corner", core.Vec2{X: 9, Y: 4}, true},
		{"left of arena", core.Vec2{X: -1, Y: 2}, false},
		{"below arena", core.Vec2{X: 3, Y: 5}, false},
		{"right of arena", core.Vec2{X: 10, Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := core.Rect{Center: tt.center, Size: core.Vec2{X: 1, Y: 1}}
			if got := arena.Contains(r); got != tt.inside {
				t.Errorf("Expected Contains=%v, got %v", tt.inside, got)
			}
		})
	}
}
