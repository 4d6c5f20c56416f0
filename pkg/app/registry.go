package app

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ghuser/backoffice/pkg/logger"
)

// Registry keeps the most recently used workspaces in memory. Evicting a
// workspace drops its fetched collections and drafts; its token lives in the
// token store and survives.
type Registry struct {
	mu    sync.Mutex
	cache *lru.Cache[uuid.UUID, *Workspace]
	build func(uuid.UUID) *Workspace
}

// NewRegistry holds up to size workspaces created by build.
func NewRegistry(size int, build func(uuid.UUID) *Workspace, log logger.Logger) (*Registry, error) {
	c, err := lru.NewWithEvict(size, func(id uuid.UUID, _ *Workspace) {
		log.Info("workspace evicted", "workspace_id", id)
	})
	if err != nil {
		return nil, fmt.Errorf("workspace registry: %w", err)
	}
	return &Registry{cache: c, build: build}, nil
}

// Get returns the workspace for id, creating it on first use.
func (r *Registry) Get(id uuid.UUID) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ws, ok := r.cache.Get(id); ok {
		return ws
	}
	ws := r.build(id)
	r.cache.Add(id, ws)
	return ws
}

// Len reports the number of live workspaces.
func (r *Registry) Len() int { return r.cache.Len() }

// Forget drops the workspace for id.
func (r *Registry) Forget(id uuid.UUID) { r.cache.Remove(id) }
