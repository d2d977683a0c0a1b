package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/semo-todo/internal/domain/errors"
	"github.com/wekeepgrowing/semo-todo/internal/testutil"
)

func TestCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice@example.com")
	bob := testutil.CreateUser(t, f.db, "bob@example.com")

	work, err := f.categories.Create(ctx, f.uow, alice, entity.CategoryCreate{Title: "work"})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryLevelLow, work.Level)

	_, err = f.categories.Create(ctx, f.uow, alice, entity.CategoryCreate{Title: "home", Level: entity.CategoryLevelHigh})
	require.NoError(t, err)
	_, err = f.categories.Create(ctx, f.uow, bob, entity.CategoryCreate{Title: "bob"})
	require.NoError(t, err)

	t.Run("other users cannot see it", func(t *testing.T) {
		_, err := f.categories.Get(ctx, f.uow, bob, work.ID)
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

		err = f.categories.Delete(ctx, f.uow, bob, work.ID)
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})

	t.Run("update level", func(t *testing.T) {
		level := entity.CategoryLevelMedium
		updated, err := f.categories.Update(ctx, f.uow, alice, work.ID, entity.CategoryUpdate{Level: &level})
		require.NoError(t, err)
		assert.Equal(t, entity.CategoryLevelMedium, updated.Level)
		assert.Equal(t, "work", updated.Title)
	})

	t.Run("list is owner scoped", func(t *testing.T) {
		categories, total, err := f.categories.List(ctx, f.uow, alice, entity.PaginationParams{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, categories, 2)
	})

	t.Run("delete all", func(t *testing.T) {
		n, err := f.categories.DeleteAll(ctx, f.uow, alice)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		_, total, err := f.categories.List(ctx, f.uow, bob, entity.PaginationParams{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}
