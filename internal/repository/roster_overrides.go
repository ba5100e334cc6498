package repository

import (
	"context"
	"time"

	"github.com/facilitta/workforce-manager/backend/internal/domain"
)

// GetOverrides returns the overrides recorded for a posto with dates inside
// [from, to], one batched read per projected grid.
func (r *Repository) GetOverrides(ctx context.Context, postoID int64, from, to time.Time) ([]*domain.RosterOverride, error) {
	query := `
		SELECT id, work_date, is_day_off, created_at
		FROM roster_overrides
		WHERE posto_id = $1 AND work_date BETWEEN $2 AND $3
		ORDER BY work_date
	`

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, postoID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make([]*domain.RosterOverride, 0)
	for rows.Next() {
		override := &domain.RosterOverride{PostoID: postoID}
		if err := rows.Scan(&override.ID, &override.Date, &override.IsDayOff, &override.CreatedAt); err != nil {
			return nil, err
		}
		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return overrides, nil
}

// UpsertOverride records an override for (posto, date), replacing any
// existing row. The unique constraint plus ON CONFLICT keeps concurrent
// toggles on the same cell from producing duplicate rows; the last write wins.
func (r *Repository) UpsertOverride(ctx context.Context, postoID int64, date time.Time, isDayOff bool) error {
	query := `
		INSERT INTO roster_overrides (posto_id, work_date, is_day_off)
		VALUES ($1, $2, $3)
		ON CONFLICT (posto_id, work_date) DO UPDATE SET is_day_off = EXCLUDED.is_day_off
	`

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, postoID, date, isDayOff); err != nil {
		return err
	}

	return nil
}

// DeleteOverride drops the override for (posto, date), restoring the
// computed schedule for that day.
func (r *Repository) DeleteOverride(ctx context.Context, postoID int64, date time.Time) error {
	query := `
		DELETE FROM roster_overrides WHERE posto_id = $1 AND work_date = $2
	`

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, postoID, date); err != nil {
		return err
	}

	return nil
}
