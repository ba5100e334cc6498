package roster

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/facilitta/workforce-manager/backend/internal/domain"
)

// ErrEmptyRange is returned when a projection is requested for zero days.
// Every known caller renders a grid, so an empty range is a caller bug and
// fails fast instead of silently producing an empty grid.
var ErrEmptyRange = errors.New("roster: empty day range")

// OverrideStore is the persistence surface for per-day manual overrides,
// keyed uniquely by (posto, date). The repository implements it.
type OverrideStore interface {
	GetOverrides(ctx context.Context, postoID int64, from, to time.Time) ([]*domain.RosterOverride, error)
	UpsertOverride(ctx context.Context, postoID int64, date time.Time, isDayOff bool) error
}

// DayStatus is one cell of a projected roster grid.
type DayStatus struct {
	Date       time.Time `json:"date"`
	Status     Status    `json:"status"`
	Overridden bool      `json:"overridden"`
}

type ProjectionInput struct {
	ScheduleLabel string
	PivotDate     time.Time
	Days          []time.Time
	PostoID       int64
}

// Projector computes roster grids: baseline classification per day, then a
// merge with any persisted overrides for the posto. It holds no state of its
// own; grids are recomputed on every call so that schedule or start-date
// edits retroactively reclassify without any materialized state to invalidate.
type Projector struct {
	store OverrideStore
}

func NewProjector(store OverrideStore) *Projector {
	return &Projector{store: store}
}

// Project returns one DayStatus per input day, in input order. The override
// lookup is a single batched read over the whole requested range; if it
// fails, the grid degrades to the computed baseline rather than failing,
// since a roster without manual overrides is still usable.
func (p *Projector) Project(ctx context.Context, input ProjectionInput) ([]DayStatus, error) {
	if len(input.Days) == 0 {
		return nil, ErrEmptyRange
	}

	family := ParseLabel(input.ScheduleLabel)
	if family == FamilyUnknown {
		// Intentionally not an error: unrecognized labels classify every day
		// as work. The log line is the operator's signal that a posto has a
		// mistyped schedule label.
		slog.Warn("schedule label matched no known family, every day classified as work",
			"label", input.ScheduleLabel, "postoID", input.PostoID)
	}

	from, to := input.Days[0], input.Days[0]
	for _, day := range input.Days[1:] {
		if day.Before(from) {
			from = day
		}
		if day.After(to) {
			to = day
		}
	}

	overrideByDay := make(map[time.Time]bool)
	overrides, err := p.store.GetOverrides(ctx, input.PostoID, NormalizeDate(from), NormalizeDate(to))
	if err != nil {
		slog.Warn("override lookup failed, falling back to computed schedule",
			"postoID", input.PostoID, "error", err)
	} else {
		for _, o := range overrides {
			overrideByDay[NormalizeDate(o.Date)] = o.IsDayOff
		}
	}

	grid := make([]DayStatus, 0, len(input.Days))
	for _, day := range input.Days {
		cell := DayStatus{Date: day, Status: Classify(family, input.PivotDate, day)}
		if isDayOff, exists := overrideByDay[NormalizeDate(day)]; exists {
			// an override supersedes the computed value unconditionally
			cell.Overridden = true
			if isDayOff {
				cell.Status = StatusOff
			} else {
				cell.Status = StatusWork
			}
		}
		grid = append(grid, cell)
	}

	return grid, nil
}

// Toggle flips one day relative to what the caller currently displays: a day
// shown as work is overridden to off and vice versa. The write is an
// idempotent upsert on (posto, date), so two supervisors toggling the same
// cell concurrently resolve to last-write-wins instead of duplicate rows.
func (p *Projector) Toggle(ctx context.Context, postoID int64, date time.Time, displayed Status) error {
	return p.store.UpsertOverride(ctx, postoID, NormalizeDate(date), displayed == StatusWork)
}
