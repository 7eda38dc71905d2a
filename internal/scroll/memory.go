package scroll

import (
	"math"
	"sync"
)

// MemorySource is an in-memory Source. Moving or resizing it notifies the
// subscribers synchronously, the way a browser scroll event would.
type MemorySource struct {
	mu          sync.Mutex
	position    float64
	extent      float64
	viewport    float64
	nextID      int
	subscribers map[int]func()
}

var _ Source = (*MemorySource)(nil)

// NewMemorySource builds a source with the given scrollable extent and
// viewport size, positioned at 0.
func NewMemorySource(extent, viewport float64) *MemorySource {
	return &MemorySource{
		extent:      math.Max(extent, 0),
		viewport:    math.Max(viewport, 0),
		subscribers: map[int]func(){},
	}
}

func (m *MemorySource) Position() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *MemorySource) ScrollExtent() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.extent
}

func (m *MemorySource) ViewportExtent() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewport
}

// ScrollTo moves to position clamped to [0, extent].
func (m *MemorySource) ScrollTo(position float64) {
	m.mu.Lock()
	m.position = clamp(position, 0, m.extent)
	m.mu.Unlock()
	m.notify()
}

// Resize changes the extents, keeping the position inside the new range.
func (m *MemorySource) Resize(extent, viewport float64) {
	m.mu.Lock()
	m.extent = math.Max(extent, 0)
	m.viewport = math.Max(viewport, 0)
	m.position = clamp(m.position, 0, m.extent)
	m.mu.Unlock()
	m.notify()
}

func (m *MemorySource) Subscribe(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subscribers, id)
			m.mu.Unlock()
		})
	}
}

// Subscribers reports the number of live subscriptions.
func (m *MemorySource) Subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subscribers)
}

func (m *MemorySource) notify() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		fns = append(fns, fn)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
