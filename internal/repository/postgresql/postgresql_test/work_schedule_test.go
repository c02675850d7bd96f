package postgresql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamabee-group/tama-hr-sub002/internal/domain/schedule"
	"github.com/tamabee-group/tama-hr-sub002/internal/pkg/validator"
	"github.com/tamabee-group/tama-hr-sub002/internal/repository/postgresql"
)

func setupRepository(t *testing.T) (schedule.WorkScheduleRepository, context.Context) {
	t.Helper()
	ctx := context.Background()

	setup, ok, err := NewTestDatabase(ctx)
	if !ok {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, err)
	t.Cleanup(setup.Close)

	require.NoError(t, setup.TruncateAllTables(ctx))
	return postgresql.NewWorkScheduleRepository(setup.DB), ctx
}

func nightShift(name string) schedule.WorkSchedule {
	return schedule.WorkSchedule{
		Name:              name,
		Category:          schedule.CategoryShift,
		WorkStartTime:     "22:00",
		WorkEndTime:       "06:00",
		IsOvernight:       true,
		TotalBreakMinutes: 90,
		NetWorkMinutes:    390,
		BreakPeriods: []schedule.WorkScheduleBreak{
			{Name: "Midnight", StartTime: "23:30", EndTime: "00:30"},
			{Name: "Meal", StartTime: "02:00", EndTime: "02:30", IsFlexible: true},
		},
	}
}

func TestWorkScheduleRepository_CreateAndGet(t *testing.T) {
	repo, ctx := setupRepository(t)

	created, err := repo.Create(ctx, nightShift("Night Shift"))
	require.NoError(t, err)
	assert.True(t, validator.IsValidUUID(created.ID))
	assert.False(t, created.CreatedAt.IsZero())
	require.Len(t, created.BreakPeriods, 2)
	assert.Equal(t, 1, created.BreakPeriods[1].Position)
	assert.Equal(t, created.ID, created.BreakPeriods[0].WorkScheduleID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Night Shift", got.Name)
	assert.Equal(t, schedule.CategoryShift, got.Category)
	assert.Equal(t, "22:00", got.WorkStartTime)
	assert.True(t, got.IsOvernight)
	assert.Equal(t, 90, got.TotalBreakMinutes)
	require.Len(t, got.BreakPeriods, 2)
	assert.Equal(t, "Midnight", got.BreakPeriods[0].Name)
	assert.Equal(t, "23:30", got.BreakPeriods[0].StartTime)
	assert.True(t, got.BreakPeriods[1].IsFlexible)
}

func TestWorkScheduleRepository_DuplicateNameRollsBack(t *testing.T) {
	repo, ctx := setupRepository(t)

	_, err := repo.Create(ctx, nightShift("Night Shift"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, nightShift("Night Shift"))
	require.Error(t, err)

	_, total, err := repo.List(ctx, schedule.WorkScheduleFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestWorkScheduleRepository_ListAndSoftDelete(t *testing.T) {
	repo, ctx := setupRepository(t)

	first, err := repo.Create(ctx, nightShift("B Night"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, nightShift("A Night"))
	require.NoError(t, err)

	items, total, err := repo.List(ctx, schedule.WorkScheduleFilter{Page: 1, Limit: 20, SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "A Night", items[0].Name)
	assert.Len(t, items[0].BreakPeriods, 2)

	require.NoError(t, repo.SoftDelete(ctx, first.ID))
	assert.ErrorIs(t, repo.SoftDelete(ctx, first.ID), schedule.ErrWorkScheduleNotFound)

	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, schedule.ErrWorkScheduleNotFound)

	name := "night"
	items, total, err = repo.List(ctx, schedule.WorkScheduleFilter{Name: &name, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)
}
