package client

import (
	"context"

	"github.com/daiki-beppu/ui-gohan/internal/syncapi"
)

// Client is the remote replication transport. Implementations must be
// one-shot per call: no internal retries, bounded by their own timeout.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Sync(ctx context.Context, req *syncapi.SyncRequest) (*syncapi.SyncResponse, error)
}
