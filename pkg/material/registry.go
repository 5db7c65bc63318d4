package material

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry holds materials keyed by name. It is safe for concurrent
// readers and writers.
type Registry struct {
	mu        sync.RWMutex
	materials map[string]*Material
	log       *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		materials: make(map[string]*Material),
		log:       logger(log),
	}
}

// Add registers a material. Re-adding a name replaces the previous entry
// with a warning.
func (r *Registry) Add(m *Material) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.materials[m.Name()]; exists {
		r.log.Warn("replacing existing material", zap.String("material", m.Name()))
	}
	r.materials[m.Name()] = m
	r.log.Debug("registered material", zap.String("material", m.Name()))
}

func (r *Registry) Get(name string) (*Material, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.materials[name]
	return m, ok
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.materials[name]
	return ok
}

func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.materials[name]; !ok {
		return false
	}
	delete(r.materials, name)
	return true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.materials)
}

// Names returns the registered material names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.materials))
	for name := range r.materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered materials ordered by name.
func (r *Registry) All() []*Material {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.materials))
	for name := range r.materials {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Material, 0, len(names))
	for _, name := range names {
		out = append(out, r.materials[name])
	}
	return out
}

// TemperatureDependent returns the materials with more than one
// temperature sample.
func (r *Registry) TemperatureDependent() []*Material {
	var out []*Material
	for _, m := range r.All() {
		if m.TemperatureDependent() {
			out = append(out, m)
		}
	}
	return out
}

// Validate validates every registered material and aggregates the
// findings.
func (r *Registry) Validate() []Issue {
	var issues []Issue
	for _, m := range r.All() {
		issues = append(issues, m.Validate()...)
	}
	return issues
}
