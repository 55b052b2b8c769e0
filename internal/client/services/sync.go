package services

import (
	"context"
	"fmt"
	"time"

	"github.com/daiki-beppu/ui-gohan/internal/client/client"
	"github.com/daiki-beppu/ui-gohan/internal/client/models"
	"github.com/daiki-beppu/ui-gohan/internal/client/repositories/menus"
	"github.com/daiki-beppu/ui-gohan/internal/client/repositories/syncstate"
	"github.com/daiki-beppu/ui-gohan/internal/logging"
	"github.com/daiki-beppu/ui-gohan/internal/syncapi"
)

// SyncResult summarizes one replication round for the UI.
type SyncResult struct {
	Pushed  int
	Pulled  int
	Deleted int
}

// SyncService replicates local changes to the remote endpoint and applies
// remote ones last-write-wins. A nil transport turns Sync into a no-op, so
// callers never need to branch on whether a remote is configured.
type SyncService struct {
	client    client.Client
	menus     menus.Repository
	syncState syncstate.Repository
	logger    logging.Logger
}

func NewSyncService(c client.Client, repos *client.Repositories, logger logging.Logger) *SyncService {
	return &SyncService{
		client:    c,
		menus:     repos.Menus,
		syncState: repos.SyncState,
		logger:    logger,
	}
}

// Enabled reports whether a remote endpoint is configured.
func (s *SyncService) Enabled() bool {
	return s.client != nil
}

// Sync runs one replication round: push rows updated since the last marker
// plus journaled deletions, then apply whatever the server returns. Local
// state is never touched when the exchange fails, so the next round retries
// the same changes.
func (s *SyncService) Sync(ctx context.Context) (*SyncResult, error) {
	if s.client == nil {
		return &SyncResult{}, nil
	}

	since, err := s.syncState.LastSyncedAt(ctx)
	if err != nil {
		return nil, err
	}

	changed, err := s.menus.SelectUpdatedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	deletions, err := s.syncState.Deletions(ctx)
	if err != nil {
		return nil, err
	}

	req := &syncapi.SyncRequest{
		Since:     since,
		Menus:     make([]syncapi.Menu, 0, len(changed)),
		Deletions: deletions,
	}
	for i := range changed {
		req.Menus = append(req.Menus, toWire(&changed[i]))
	}

	resp, err := s.client.Sync(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("sync exchange failed: %w", err)
	}

	result := &SyncResult{Pushed: len(req.Menus) + len(req.Deletions)}

	for i := range resp.Menus {
		menu := fromWire(&resp.Menus[i])
		if err := s.menus.Upsert(ctx, menu); err != nil {
			return nil, err
		}
		result.Pulled++
	}

	for _, d := range resp.Deletions {
		removed, err := s.menus.DeleteStale(ctx, d.ID, d.DeletedAt)
		if err != nil {
			return nil, err
		}
		if removed {
			result.Deleted++
		}
	}

	acked := make([]string, 0, len(deletions))
	for _, d := range deletions {
		acked = append(acked, d.ID)
	}
	if err := s.syncState.ClearDeletions(ctx, acked); err != nil {
		return nil, err
	}

	if err := s.syncState.SetLastSyncedAt(ctx, resp.ServerTime); err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "sync round finished",
		"pushed", result.Pushed, "pulled", result.Pulled, "deleted", result.Deleted)
	return result, nil
}

func toWire(m *models.Menu) syncapi.Menu {
	return syncapi.Menu{
		ID:        m.ID,
		UserID:    m.UserID,
		DayOfWeek: int(m.DayOfWeek),
		MealType:  string(m.MealType),
		DishName:  m.DishName,
		Memo:      m.Memo,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt.UnixMilli(),
		UpdatedAt: m.UpdatedAt.UnixMilli(),
	}
}

func fromWire(m *syncapi.Menu) *models.Menu {
	return &models.Menu{
		ID:        m.ID,
		UserID:    m.UserID,
		DayOfWeek: models.Weekday(m.DayOfWeek),
		MealType:  models.MealType(m.MealType),
		DishName:  m.DishName,
		Memo:      m.Memo,
		SortOrder: m.SortOrder,
		CreatedAt: time.UnixMilli(m.CreatedAt),
		UpdatedAt: time.UnixMilli(m.UpdatedAt),
	}
}
