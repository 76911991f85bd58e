package repository

import (
	"context"
	"sync"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"
)

// SnapshotMemoryRepository keeps the snapshot in process memory. Used by
// tests and ephemeral demo runs; state is lost on shutdown.

type SnapshotMemoryRepository struct {
	mu    sync.Mutex
	snap  entities.Snapshot
	saved bool
}

var _ interfaces.ISnapshotRepository = (*SnapshotMemoryRepository)(nil)

func NewSnapshotMemoryRepository() *SnapshotMemoryRepository {
	return &SnapshotMemoryRepository{}
}

func (r *SnapshotMemoryRepository) Load(ctx context.Context) (entities.Snapshot, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap, r.saved, nil
}

func (r *SnapshotMemoryRepository) Save(ctx context.Context, snap entities.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = snap
	r.saved = true
	return nil
}
