package interfaces

import (
	"context"

	"workshop_jobs/internal/domain/entities"
)

// ISnapshotRepository abstracts persistence of the job-store snapshot.
//
// The store rewrites the full document on every mutation, so the contract is
// deliberately small: load once at startup, save after each operation. Backends
// (DynamoDB item, sqlite row, in-memory) are swappable without touching the
// state-machine logic.
//
// Load returns found=false when no snapshot has ever been saved.

type ISnapshotRepository interface {
	Load(ctx context.Context) (snapshot entities.Snapshot, found bool, err error)
	Save(ctx context.Context, snapshot entities.Snapshot) error
}
