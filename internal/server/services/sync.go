// Package services implements the server-side sync reconciliation.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/daiki-beppu/ui-gohan/internal/common"
	"github.com/daiki-beppu/ui-gohan/internal/dbx"
	"github.com/daiki-beppu/ui-gohan/internal/server/models"
	"github.com/daiki-beppu/ui-gohan/internal/server/repositories/deletions"
	"github.com/daiki-beppu/ui-gohan/internal/server/repositories/menus"
	"github.com/daiki-beppu/ui-gohan/internal/syncapi"
)

var validMealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// SyncService merges one client exchange into the canonical store and returns
// the changes the client is missing. The whole exchange runs inside a single
// transaction so a failed request leaves the store untouched.
type SyncService struct {
	db *sql.DB

	// newRepos is a seam for tests; the default builds the postgres
	// repositories bound to the active transaction.
	newRepos func(db dbx.DBTX) (menus.Repository, deletions.Repository)
}

func NewSyncService(db *sql.DB) *SyncService {
	return &SyncService{
		db: db,
		newRepos: func(db dbx.DBTX) (menus.Repository, deletions.Repository) {
			return menus.NewPostgresRepository(db), deletions.NewPostgresRepository(db)
		},
	}
}

func validateMenu(m *syncapi.Menu) error {
	if m.ID == "" {
		return fmt.Errorf("%w: menu id is required", common.ErrValidation)
	}
	if m.DayOfWeek < 0 || m.DayOfWeek > 6 {
		return fmt.Errorf("%w: day of week must be 0-6, got %d", common.ErrValidation, m.DayOfWeek)
	}
	if !validMealTypes[m.MealType] {
		return fmt.Errorf("%w: unknown meal type %q", common.ErrValidation, m.MealType)
	}
	if m.DishName == "" {
		return fmt.Errorf("%w: dish name is required", common.ErrValidation)
	}
	return nil
}

// Reconcile applies the client's deletions and updates last-write-wins and
// collects everything the client has not seen since its marker. Deletions are
// ordered before updates so a pushed update older than a logged deletion can
// never resurrect the row.
func (s *SyncService) Reconcile(ctx context.Context, userID string, req *syncapi.SyncRequest) (*syncapi.SyncResponse, error) {
	for i := range req.Menus {
		if err := validateMenu(&req.Menus[i]); err != nil {
			return nil, err
		}
	}

	serverTime := time.Now().UnixMilli()
	resp := &syncapi.SyncResponse{ServerTime: serverTime}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		menuRepo, deletionRepo := s.newRepos(tx)

		for _, d := range req.Deletions {
			if err := deletionRepo.Record(ctx, userID, d.ID, d.DeletedAt); err != nil {
				return err
			}
			if _, err := menuRepo.DeleteStale(ctx, userID, d.ID, d.DeletedAt); err != nil {
				return err
			}
		}

		for i := range req.Menus {
			wire := &req.Menus[i]

			deletedAt, logged, err := deletionRepo.DeletedAt(ctx, userID, wire.ID)
			if err != nil {
				return err
			}
			if logged && deletedAt >= wire.UpdatedAt {
				continue
			}

			menu := &models.Menu{
				ID:        wire.ID,
				UserID:    userID,
				DayOfWeek: wire.DayOfWeek,
				MealType:  wire.MealType,
				DishName:  wire.DishName,
				Memo:      wire.Memo,
				SortOrder: wire.SortOrder,
				CreatedAt: wire.CreatedAt,
				UpdatedAt: wire.UpdatedAt,
			}
			if err := menuRepo.Upsert(ctx, menu); err != nil {
				return err
			}
		}

		changed, err := menuRepo.SelectUpdatedSince(ctx, userID, req.Since)
		if err != nil {
			return err
		}
		for i := range changed {
			m := &changed[i]
			resp.Menus = append(resp.Menus, syncapi.Menu{
				ID:        m.ID,
				UserID:    m.UserID,
				DayOfWeek: m.DayOfWeek,
				MealType:  m.MealType,
				DishName:  m.DishName,
				Memo:      m.Memo,
				SortOrder: m.SortOrder,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			})
		}

		deleted, err := deletionRepo.SelectSince(ctx, userID, req.Since)
		if err != nil {
			return err
		}
		for _, d := range deleted {
			resp.Deletions = append(resp.Deletions, syncapi.Deletion{ID: d.ID, DeletedAt: d.DeletedAt})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
