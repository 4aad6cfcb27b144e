package repository

import (
	"context"
	"sync"

	"estimate_wizard/internal/usecase/interfaces"
)

// DraftMemoryRepository keeps drafts in process memory. Drafts do not
// survive a restart; use it for tests and local runs.
type DraftMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]string
}

var _ interfaces.IDraftMedium = (*DraftMemoryRepository)(nil)

func NewDraftMemoryRepository() *DraftMemoryRepository {
	return &DraftMemoryRepository{items: make(map[string]string)}
}

func (r *DraftMemoryRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[key]
	return v, ok, nil
}

func (r *DraftMemoryRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = value
	return nil
}

func (r *DraftMemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, key)
	return nil
}
