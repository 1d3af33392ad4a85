package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/light-cycle/components"
	"github.com/lixenwraith/light-cycle/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Component stores (public for direct system access)
	Players *Store[components.PlayerComponent]
	Motions *Store[components.MotionComponent]
	Trails  *Store[components.TrailSegmentComponent]

	Resources *Resources

	// Lifecycle registry, all stores for uniform cleanup
	allStores []AnyStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Players:      NewStore[components.PlayerComponent](),
		Motions:      NewStore[components.MotionComponent](),
		Trails:       NewStore[components.TrailSegmentComponent](),
		Resources:    NewResources(),
		systems:      make([]System, 0, 8),
	}

	w.allStores = []AnyStore{
		w.Players,
		w.Motions,
		w.Trails,
	}

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// HasAnyComponent checks if an entity has at least one component
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
// Systems and resources are kept
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Stable insertion sort by priority, small N
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// ResetSystems calls Reset on every system that holds per-round state
func (w *World) ResetSystems() {
	for _, s := range w.Systems() {
		if r, ok := s.(Resettable); ok {
			r.Reset()
		}
	}
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially with frame delta dt
func (w *World) Update(dt time.Duration) {
	w.RunSafe(func() {
		for _, system := range w.Systems() {
			system.Update(w, dt)
		}
	})
}
