package repository

import (
	"context"
	"time"

	"github.com/facilitta/workforce-manager/backend/internal/domain"
)

func (r *Repository) GetAllPostos() ([]*domain.Posto, error) {
	query := `
		SELECT id, name, client_name, address, schedule_label, supervisor_email, created_at, version
		FROM postos
		ORDER BY client_name, name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	postos := make([]*domain.Posto, 0)
	for rows.Next() {
		posto := &domain.Posto{}
		dst := []any{&posto.ID, &posto.Name, &posto.ClientName, &posto.Address, &posto.ScheduleLabel, &posto.SupervisorEmail, &posto.CreatedAt, &posto.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		postos = append(postos, posto)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return postos, nil
}

func (r *Repository) GetPostoByID(id int64) (*domain.Posto, error) {
	query := `
		SELECT name, client_name, address, schedule_label, supervisor_email, created_at, version
		FROM postos WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	posto := &domain.Posto{
		ID: id,
	}

	dst := []any{&posto.Name, &posto.ClientName, &posto.Address, &posto.ScheduleLabel, &posto.SupervisorEmail, &posto.CreatedAt, &posto.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return posto, nil
}

func (r *Repository) CreatePosto(posto *domain.Posto) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO postos (name, client_name, address, schedule_label, supervisor_email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	args := []any{posto.Name, posto.ClientName, posto.Address, posto.ScheduleLabel, posto.SupervisorEmail}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&posto.ID, &posto.CreatedAt, &posto.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdatePosto(posto *domain.Posto) error {
	query := `
		UPDATE postos
		SET
			name = $1,
			client_name = $2,
			address = $3,
			schedule_label = $4,
			supervisor_email = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{posto.Name, posto.ClientName, posto.Address, posto.ScheduleLabel, posto.SupervisorEmail, posto.ID, posto.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&posto.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePosto(id int64) error {
	query := `
		DELETE FROM postos WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
