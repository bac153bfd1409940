package dashboard

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultRegistrySize = 1000

// Factory builds the dashboard of a visitor seen for the first time.
type Factory func(visitorID string) *Dashboard

// Registry keeps the most recently used dashboards. The least recently used
// one is dropped when the registry is full.
type Registry struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *Dashboard]
	build Factory
}

func NewRegistry(size int, build Factory) (*Registry, error) {
	if size <= 0 {
		size = DefaultRegistrySize
	}
	cache, err := lru.New[string, *Dashboard](size)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Registry{cache: cache, build: build}, nil
}

// Get returns the dashboard of visitorID, creating it on first use.
func (r *Registry) Get(visitorID string) *Dashboard {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.cache.Get(visitorID); ok {
		return d
	}
	d := r.build(visitorID)
	r.cache.Add(visitorID, d)
	return d
}

func (r *Registry) Len() int {
	return r.cache.Len()
}
