package study_service

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"saes/study-app/core"
)

// SurfaceRegistry keeps one SessionManager per UI surface. Idle surfaces
// expire after the configured TTL; every access restarts the clock.
type SurfaceRegistry struct {
	mu    sync.Mutex
	cache *cache.Cache
	start core.ChatStarter
}

func NewSurfaceRegistry(ttl time.Duration, start core.ChatStarter) *SurfaceRegistry {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SurfaceRegistry{
		cache: cache.New(ttl, ttl/6),
		start: start,
	}
}

// Get returns the surface's manager, creating an empty one on first use.
func (r *SurfaceRegistry) Get(surfaceID string) *core.SessionManager {
	r.mu.Lock()
	defer r.mu.Unlock()
	manager, ok := r.lookup(surfaceID)
	if !ok {
		manager = core.NewSessionManager(r.start)
	}
	r.cache.Set(surfaceID, manager, cache.DefaultExpiration)
	return manager
}

func (r *SurfaceRegistry) Peek(surfaceID string) (*core.SessionManager, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookup(surfaceID)
}

func (r *SurfaceRegistry) lookup(surfaceID string) (*core.SessionManager, bool) {
	if x, found := r.cache.Get(surfaceID); found {
		return x.(*core.SessionManager), true
	}
	return nil, false
}

// Reset invalidates the surface's session, if it has one.
func (r *SurfaceRegistry) Reset(surfaceID string) {
	if manager, ok := r.Peek(surfaceID); ok {
		manager.Invalidate()
	}
}

func (r *SurfaceRegistry) Count() int {
	return r.cache.ItemCount()
}
