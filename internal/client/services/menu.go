// Package services implements the application operations of the planner:
// the menu CRUD API and the best-effort replication service. Default-value
// policy (ids, timestamps, sort order, memo normalization) lives here so
// every caller gets identical behavior.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/daiki-beppu/ui-gohan/internal/client/client"
	"github.com/daiki-beppu/ui-gohan/internal/client/models"
	"github.com/daiki-beppu/ui-gohan/internal/client/repositories/menus"
	"github.com/daiki-beppu/ui-gohan/internal/client/repositories/syncstate"
	"github.com/daiki-beppu/ui-gohan/internal/common"
	"github.com/daiki-beppu/ui-gohan/internal/dbx"
)

// CreateMenuParams are the caller-supplied fields for a new planned meal.
// SortOrder nil means "append": the count of existing entries for that day.
type CreateMenuParams struct {
	DayOfWeek models.Weekday
	MealType  models.MealType
	DishName  string
	Memo      *string
	SortOrder *int
}

// UpdateMenuParams carry partial updates. Nil fields stay unchanged. Memo is
// tri-state: nil leaves it alone, an invalid NullString clears it, a valid
// one replaces it.
type UpdateMenuParams struct {
	DayOfWeek *models.Weekday
	MealType  *models.MealType
	DishName  *string
	Memo      *sql.NullString
	SortOrder *int
}

// MenuService is the CRUD API consumed by the UI layer.
type MenuService interface {
	List(ctx context.Context) ([]models.Menu, error)
	ListByDay(ctx context.Context, day models.Weekday) ([]models.Menu, error)
	ListByMealType(ctx context.Context, mealType models.MealType) ([]models.Menu, error)
	GetByID(ctx context.Context, id string) (*models.Menu, error)
	Create(ctx context.Context, params CreateMenuParams) (*models.Menu, error)
	Update(ctx context.Context, id string, params UpdateMenuParams) (*models.Menu, error)
	Delete(ctx context.Context, id string) error
}

type menuService struct {
	db        *sql.DB
	menus     menus.Repository
	syncState syncstate.Repository
	userID    string
}

// NewMenuService binds the CRUD API to the repository set. userID scopes new
// rows; empty when auth is disabled.
func NewMenuService(repos *client.Repositories, userID string) MenuService {
	return &menuService{
		db:        repos.DB,
		menus:     repos.Menus,
		syncState: repos.SyncState,
		userID:    userID,
	}
}

func (s *menuService) List(ctx context.Context) ([]models.Menu, error) {
	return s.menus.GetAll(ctx)
}

func (s *menuService) ListByDay(ctx context.Context, day models.Weekday) ([]models.Menu, error) {
	if !day.Valid() {
		return nil, fmt.Errorf("%w: day of week must be 0-6, got %d", common.ErrValidation, int(day))
	}
	return s.menus.GetByDay(ctx, day)
}

func (s *menuService) ListByMealType(ctx context.Context, mealType models.MealType) ([]models.Menu, error) {
	if !mealType.Valid() {
		return nil, fmt.Errorf("%w: unknown meal type %q", common.ErrValidation, string(mealType))
	}
	return s.menus.GetByMealType(ctx, mealType)
}

func (s *menuService) GetByID(ctx context.Context, id string) (*models.Menu, error) {
	return s.menus.GetByID(ctx, id)
}

// normalizeMemo trims the memo and maps the empty result to nil, so an empty
// memo is always persisted as NULL.
func normalizeMemo(memo *string) *string {
	if memo == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*memo)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *menuService) Create(ctx context.Context, params CreateMenuParams) (*models.Menu, error) {
	if !params.DayOfWeek.Valid() {
		return nil, fmt.Errorf("%w: day of week must be 0-6, got %d", common.ErrValidation, int(params.DayOfWeek))
	}
	if !params.MealType.Valid() {
		return nil, fmt.Errorf("%w: unknown meal type %q", common.ErrValidation, string(params.MealType))
	}
	dishName := strings.TrimSpace(params.DishName)
	if dishName == "" {
		return nil, fmt.Errorf("%w: dish name is required", common.ErrValidation)
	}

	sortOrder := 0
	if params.SortOrder != nil {
		if *params.SortOrder < 0 {
			return nil, fmt.Errorf("%w: sort order must not be negative", common.ErrValidation)
		}
		sortOrder = *params.SortOrder
	} else {
		// Append after the existing entries of the same day.
		n, err := s.menus.CountByDay(ctx, params.DayOfWeek)
		if err != nil {
			return nil, err
		}
		sortOrder = n
	}

	id, err := models.NewID()
	if err != nil {
		return nil, err
	}

	now := time.UnixMilli(time.Now().UnixMilli())
	menu := &models.Menu{
		ID:        id,
		UserID:    s.userID,
		DayOfWeek: params.DayOfWeek,
		MealType:  params.MealType,
		DishName:  dishName,
		Memo:      normalizeMemo(params.Memo),
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.menus.Insert(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *menuService) Update(ctx context.Context, id string, params UpdateMenuParams) (*models.Menu, error) {
	existing, err := s.menus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if params.DayOfWeek != nil {
		if !params.DayOfWeek.Valid() {
			return nil, fmt.Errorf("%w: day of week must be 0-6, got %d", common.ErrValidation, int(*params.DayOfWeek))
		}
		merged.DayOfWeek = *params.DayOfWeek
	}
	if params.MealType != nil {
		if !params.MealType.Valid() {
			return nil, fmt.Errorf("%w: unknown meal type %q", common.ErrValidation, string(*params.MealType))
		}
		merged.MealType = *params.MealType
	}
	if params.DishName != nil {
		dishName := strings.TrimSpace(*params.DishName)
		if dishName == "" {
			return nil, fmt.Errorf("%w: dish name is required", common.ErrValidation)
		}
		merged.DishName = dishName
	}
	if params.Memo != nil {
		if params.Memo.Valid {
			merged.Memo = normalizeMemo(&params.Memo.String)
		} else {
			merged.Memo = nil
		}
	}
	if params.SortOrder != nil {
		if *params.SortOrder < 0 {
			return nil, fmt.Errorf("%w: sort order must not be negative", common.ErrValidation)
		}
		merged.SortOrder = *params.SortOrder
	}

	merged.UpdatedAt = time.UnixMilli(time.Now().UnixMilli())

	if err := s.menus.Update(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete hard-deletes the row and journals the id for the next sync in one
// transaction, so a crash cannot lose the pending deletion.
func (s *menuService) Delete(ctx context.Context, id string) error {
	now := time.Now().UnixMilli()
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := menus.NewSQLiteRepository(tx).DeleteByID(ctx, id); err != nil {
			return err
		}
		return syncstate.NewSQLiteRepository(tx).AddDeletion(ctx, id, now)
	})
}
