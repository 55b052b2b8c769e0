// Package syncstate keeps the replication bookkeeping for the local store:
// the last-sync marker and the journal of hard-deleted menu ids awaiting
// propagation. The journal is not entity state; cleared once acknowledged.
package syncstate

import (
	"context"

	"github.com/daiki-beppu/ui-gohan/internal/syncapi"
)

type Repository interface {
	// LastSyncedAt returns the epoch-millisecond marker of the last
	// successful sync, or 0 when the store has never synced.
	LastSyncedAt(ctx context.Context) (int64, error)

	// SetLastSyncedAt records a new marker.
	SetLastSyncedAt(ctx context.Context, ms int64) error

	// AddDeletion journals a hard-deleted row id with its deletion time.
	AddDeletion(ctx context.Context, id string, deletedAtMs int64) error

	// Deletions lists all journaled deletions.
	Deletions(ctx context.Context) ([]syncapi.Deletion, error)

	// ClearDeletions drops acknowledged journal entries by id.
	ClearDeletions(ctx context.Context, ids []string) error
}
