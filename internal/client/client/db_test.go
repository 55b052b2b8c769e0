package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daiki-beppu/ui-gohan/internal/client/models"
)

func TestInitDatabase_MigratesEmptyStore(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "gohan.db")

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	v, err := SchemaVersion(ctx, repos.DB)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v, "empty store must migrate to the registry version")

	// The menus table exists and accepts writes.
	m := &models.Menu{
		ID:        "abc1234567",
		DayOfWeek: models.Monday,
		MealType:  models.MealDinner,
		DishName:  "カレーライス",
	}
	require.NoError(t, repos.Menus.Insert(ctx, m))
}

func TestInitDatabase_SecondRunIsNoOp(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "gohan.db")

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, repos.Menus.Insert(ctx, &models.Menu{
		ID:        "persist001",
		DayOfWeek: models.Friday,
		MealType:  models.MealLunch,
		DishName:  "そば",
	}))
	require.NoError(t, repos.DB.Close())

	// Reopen the same file: no statements re-run, committed rows survive.
	repos, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	v, err := SchemaVersion(ctx, repos.DB)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	got, err := repos.Menus.GetByID(ctx, "persist001")
	require.NoError(t, err)
	assert.Equal(t, "そば", got.DishName)
}
