package usecase

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"
)

// Store holds the in-memory snapshot that every job and procurement
// operation reads and mutates. It is the single source of truth: there is no
// separate read path.
//
// Concurrency model: one logical writer. The mutex serializes operations so
// each one runs to completion against a consistent snapshot; there is no
// interleaving within an operation.
//
// Persistence is write-through: a mutation is applied to a working copy,
// saved in full through the repository, and only then made visible. A failed
// operation or a failed save leaves the visible snapshot untouched.

type Store struct {
	mu   sync.Mutex
	repo interfaces.ISnapshotRepository
	snap entities.Snapshot
}

// NewStore loads the persisted snapshot (normalizing legacy status labels)
// and returns a ready store. A missing snapshot starts the store empty.
func NewStore(ctx context.Context, repo interfaces.ISnapshotRepository) (*Store, error) {
	snap, found, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		log.Printf("[store] no persisted snapshot; starting empty")
		snap = entities.Snapshot{}
	}
	snap.Normalize()
	log.Printf("[store] snapshot loaded jobs=%d purchase_orders=%d", len(snap.Jobs), len(snap.PurchaseOrders))
	return &Store{repo: repo, snap: snap}, nil
}

// mutate runs fn against a deep copy of the snapshot and persists the result
// before publishing it. fn returning an error aborts with no visible change.
func (s *Store) mutate(ctx context.Context, fn func(snap *entities.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := cloneSnapshot(s.snap)
	if err := fn(&working); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, working); err != nil {
		log.Printf("[store] snapshot save failed err=%v", err)
		return err
	}
	s.snap = working
	return nil
}

// view runs fn against a deep copy of the snapshot. Callers may keep what fn
// extracts without aliasing store-owned state.
func (s *Store) view(fn func(snap *entities.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	working := cloneSnapshot(s.snap)
	fn(&working)
}

// cloneSnapshot deep-copies through JSON. The snapshot is plain data with no
// unmarshalable fields, so the round trip cannot fail in practice.
func cloneSnapshot(in entities.Snapshot) entities.Snapshot {
	b, err := json.Marshal(in)
	if err != nil {
		log.Printf("[store] snapshot clone marshal failed err=%v", err)
		return entities.Snapshot{}
	}
	var out entities.Snapshot
	if err := json.Unmarshal(b, &out); err != nil {
		log.Printf("[store] snapshot clone unmarshal failed err=%v", err)
		return entities.Snapshot{}
	}
	return out
}
