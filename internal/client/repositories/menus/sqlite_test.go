package menus

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daiki-beppu/ui-gohan/internal/client/models"
	"github.com/daiki-beppu/ui-gohan/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE menus (
  id TEXT PRIMARY KEY NOT NULL,
  user_id TEXT DEFAULT '' NOT NULL,
  day_of_week INTEGER NOT NULL,
  meal_type TEXT NOT NULL,
  dish_name TEXT NOT NULL,
  memo TEXT,
  sort_order INTEGER DEFAULT 0 NOT NULL,
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);`)
	require.NoError(t, err)

	return db
}

func ptr(s string) *string { return &s }

func menuFixture(id string, day models.Weekday, sortOrder int, ms int64) *models.Menu {
	return &models.Menu{
		ID:        id,
		DayOfWeek: day,
		MealType:  models.MealDinner,
		DishName:  "カレーライス",
		Memo:      ptr("辛口"),
		SortOrder: sortOrder,
		CreatedAt: time.UnixMilli(ms),
		UpdatedAt: time.UnixMilli(ms),
	}
}

func TestInsertAndGetByID_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	want := menuFixture("id1", models.Monday, 0, 1736150400000)
	require.NoError(t, r.Insert(ctx, want))

	got, err := r.GetByID(ctx, "id1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByID(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestGetAll_OrderedBySortOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, menuFixture("b", models.Monday, 2, 1000)))
	require.NoError(t, r.Insert(ctx, menuFixture("a", models.Tuesday, 1, 1000)))
	require.NoError(t, r.Insert(ctx, menuFixture("c", models.Monday, 3, 1000)))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestGetByDayAndMealType_Filter(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	m1 := menuFixture("m1", models.Monday, 0, 1000)
	m2 := menuFixture("m2", models.Tuesday, 1, 1000)
	m2.MealType = models.MealBreakfast
	require.NoError(t, r.Insert(ctx, m1))
	require.NoError(t, r.Insert(ctx, m2))

	byDay, err := r.GetByDay(ctx, models.Monday)
	require.NoError(t, err)
	require.Len(t, byDay, 1)
	assert.Equal(t, "m1", byDay[0].ID)

	byMeal, err := r.GetByMealType(ctx, models.MealBreakfast)
	require.NoError(t, err)
	require.Len(t, byMeal, 1)
	assert.Equal(t, "m2", byMeal[0].ID)
}

func TestUpdate_WritesMutableColumnsOnly(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	orig := menuFixture("u1", models.Monday, 0, 1000)
	require.NoError(t, r.Insert(ctx, orig))

	changed := *orig
	changed.DishName = "肉じゃが"
	changed.Memo = nil
	changed.UpdatedAt = time.UnixMilli(2000)
	require.NoError(t, r.Update(ctx, &changed))

	got, err := r.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "肉じゃが", got.DishName)
	assert.Nil(t, got.Memo)
	assert.Equal(t, time.UnixMilli(1000), got.CreatedAt)
	assert.Equal(t, time.UnixMilli(2000), got.UpdatedAt)
}

func TestUpdate_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	err := r.Update(context.Background(), menuFixture("ghost", models.Monday, 0, 1000))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestDeleteByID_SuccessThenNotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, menuFixture("d1", models.Monday, 0, 1000)))
	require.NoError(t, r.DeleteByID(ctx, "d1"))

	err := r.DeleteByID(ctx, "d1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestCountByDay(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, menuFixture("c1", models.Sunday, 0, 1000)))
	require.NoError(t, r.Insert(ctx, menuFixture("c2", models.Sunday, 1, 1000)))
	require.NoError(t, r.Insert(ctx, menuFixture("c3", models.Friday, 0, 1000)))

	n, err := r.CountByDay(ctx, models.Sunday)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = r.CountByDay(ctx, models.Wednesday)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSelectUpdatedSince(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, menuFixture("old", models.Monday, 0, 1000)))
	require.NoError(t, r.Insert(ctx, menuFixture("new", models.Monday, 1, 3000)))

	got, err := r.SelectUpdatedSince(ctx, 2000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)

	// Strictly-after semantics: a row stamped exactly at the marker stays out.
	got, err = r.SelectUpdatedSince(ctx, 3000)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpsert_LastWriteWins(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, menuFixture("w1", models.Monday, 0, 2000)))

	// Older replica must not overwrite.
	older := menuFixture("w1", models.Monday, 0, 1000)
	older.DishName = "stale"
	require.NoError(t, r.Upsert(ctx, older))

	got, err := r.GetByID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "カレーライス", got.DishName)

	// Newer replica wins.
	newer := menuFixture("w1", models.Tuesday, 5, 3000)
	newer.DishName = "おでん"
	require.NoError(t, r.Upsert(ctx, newer))

	got, err = r.GetByID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "おでん", got.DishName)
	assert.Equal(t, models.Tuesday, got.DayOfWeek)
	assert.Equal(t, 5, got.SortOrder)
	assert.Equal(t, time.UnixMilli(3000), got.UpdatedAt)

	// Unknown id inserts.
	require.NoError(t, r.Upsert(ctx, menuFixture("w2", models.Friday, 0, 1000)))
	_, err = r.GetByID(ctx, "w2")
	require.NoError(t, err)
}

func TestDeleteStale(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, menuFixture("s1", models.Monday, 0, 2000)))

	// Row updated after the deletion time survives.
	removed, err := r.DeleteStale(ctx, "s1", 1000)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = r.DeleteStale(ctx, "s1", 2000)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = r.DeleteStale(ctx, "missing", 9000)
	require.NoError(t, err)
	assert.False(t, removed)
}
