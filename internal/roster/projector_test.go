package roster_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/facilitta/workforce-manager/backend/internal/domain"
	"github.com/facilitta/workforce-manager/backend/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOverrideStore keeps overrides in memory, keyed the same way the real
// table is: one row per (posto, date).
type fakeOverrideStore struct {
	overrides map[int64]map[time.Time]bool
	getErr    error
	upsertErr error
}

func newFakeOverrideStore() *fakeOverrideStore {
	return &fakeOverrideStore{overrides: make(map[int64]map[time.Time]bool)}
}

func (s *fakeOverrideStore) GetOverrides(_ context.Context, postoID int64, from, to time.Time) ([]*domain.RosterOverride, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}

	var result []*domain.RosterOverride
	for day, isDayOff := range s.overrides[postoID] {
		if day.Before(from) || day.After(to) {
			continue
		}
		result = append(result, &domain.RosterOverride{PostoID: postoID, Date: day, IsDayOff: isDayOff})
	}
	return result, nil
}

func (s *fakeOverrideStore) UpsertOverride(_ context.Context, postoID int64, day time.Time, isDayOff bool) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}

	if s.overrides[postoID] == nil {
		s.overrides[postoID] = make(map[time.Time]bool)
	}
	s.overrides[postoID][day] = isDayOff
	return nil
}

func projectionInput(postoID int64) roster.ProjectionInput {
	return roster.ProjectionInput{
		ScheduleLabel: "12x36",
		PivotDate:     date(2024, time.January, 1),
		Days:          roster.MonthDays(2024, time.January, time.UTC),
		PostoID:       postoID,
	}
}

func TestProject_EmptyRange(t *testing.T) {
	projector := roster.NewProjector(newFakeOverrideStore())

	_, err := projector.Project(context.Background(), roster.ProjectionInput{
		ScheduleLabel: "12x36",
		PivotDate:     date(2024, time.January, 1),
		PostoID:       1,
	})

	assert.ErrorIs(t, err, roster.ErrEmptyRange)
}

func TestProject_MatchesInputOrderAndCardinality(t *testing.T) {
	projector := roster.NewProjector(newFakeOverrideStore())
	input := projectionInput(1)

	grid, err := projector.Project(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, grid, len(input.Days))
	for i, cell := range grid {
		assert.Equal(t, input.Days[i], cell.Date)
	}
}

func TestProject_BaselineWithoutOverrides(t *testing.T) {
	projector := roster.NewProjector(newFakeOverrideStore())
	input := projectionInput(1)

	grid, err := projector.Project(context.Background(), input)
	require.NoError(t, err)

	// 12x36 anchored on Jan 1: work on the pivot, then alternating.
	for i, cell := range grid {
		want := roster.StatusWork
		if i%2 == 1 {
			want = roster.StatusOff
		}
		assert.Equal(t, want, cell.Status, "day %d", i+1)
		assert.False(t, cell.Overridden)
	}
}

func TestProject_OverridePrecedence(t *testing.T) {
	store := newFakeOverrideStore()
	projector := roster.NewProjector(store)
	input := projectionInput(7)

	// Jan 1 computes to work, Jan 2 to off; force both the other way.
	require.NoError(t, store.UpsertOverride(context.Background(), 7, date(2024, time.January, 1), true))
	require.NoError(t, store.UpsertOverride(context.Background(), 7, date(2024, time.January, 2), false))

	grid, err := projector.Project(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, roster.StatusOff, grid[0].Status)
	assert.True(t, grid[0].Overridden)
	assert.Equal(t, roster.StatusWork, grid[1].Status)
	assert.True(t, grid[1].Overridden)

	// the rest of the month is untouched
	assert.Equal(t, roster.StatusWork, grid[2].Status)
	assert.False(t, grid[2].Overridden)
}

func TestProject_OverridesDoNotLeakAcrossPostos(t *testing.T) {
	store := newFakeOverrideStore()
	projector := roster.NewProjector(store)

	require.NoError(t, store.UpsertOverride(context.Background(), 7, date(2024, time.January, 1), true))

	grid, err := projector.Project(context.Background(), projectionInput(8))
	require.NoError(t, err)

	assert.Equal(t, roster.StatusWork, grid[0].Status)
	assert.False(t, grid[0].Overridden)
}

func TestProject_StoreFailureDegradesToBaseline(t *testing.T) {
	store := newFakeOverrideStore()
	store.getErr = errors.New("connection refused")
	projector := roster.NewProjector(store)

	grid, err := projector.Project(context.Background(), projectionInput(1))

	// The grid request still succeeds; it just carries no overrides.
	require.NoError(t, err)
	require.Len(t, grid, 31)
	for _, cell := range grid {
		assert.False(t, cell.Overridden)
	}
}

func TestToggle_AlternatesDisplayedStatus(t *testing.T) {
	store := newFakeOverrideStore()
	projector := roster.NewProjector(store)
	ctx := context.Background()
	input := projectionInput(3)
	jan1 := date(2024, time.January, 1)

	// Jan 1 starts out displayed as work.
	grid, err := projector.Project(ctx, input)
	require.NoError(t, err)
	require.Equal(t, roster.StatusWork, grid[0].Status)

	// First toggle: displayed work -> overridden to off.
	require.NoError(t, projector.Toggle(ctx, 3, jan1, grid[0].Status))

	grid, err = projector.Project(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, roster.StatusOff, grid[0].Status)
	assert.True(t, grid[0].Overridden)

	// Second toggle from the new displayed state: back to work.
	require.NoError(t, projector.Toggle(ctx, 3, jan1, grid[0].Status))

	grid, err = projector.Project(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, roster.StatusWork, grid[0].Status)
}

func TestToggle_PropagatesStoreError(t *testing.T) {
	store := newFakeOverrideStore()
	store.upsertErr = errors.New("constraint violation")
	projector := roster.NewProjector(store)

	err := projector.Toggle(context.Background(), 1, date(2024, time.January, 1), roster.StatusWork)
	assert.Error(t, err)
}

func TestExportCells(t *testing.T) {
	grid := []roster.DayStatus{
		{Status: roster.StatusWork},
		{Status: roster.StatusOff},
		{Status: roster.StatusWork},
	}

	assert.Equal(t, []string{"T", "F", "T"}, roster.ExportCells(grid))
}
