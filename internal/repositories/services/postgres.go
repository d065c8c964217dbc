package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"salonbook/internal/common"
	"salonbook/internal/dbx"
	"salonbook/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Service, error) {
	query := `SELECT id, self_id, name, price, creator, created_at FROM services`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select services: %w", err)
	}
	defer rows.Close()

	var result []models.Service
	for rows.Next() {
		var item models.Service
		if err := rows.Scan(&item.ID, &item.SelfID, &item.Name, &item.Price, &item.Creator, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create assigns the identity at the store boundary and inserts the record.
// The self_id column starts empty; StampID fills it with a second write.
func (r *PostgresRepository) Create(ctx context.Context, svc *models.Service) error {
	svc.ID = uuid.NewString()

	query :=
		`INSERT INTO services (id, self_id, name, price, creator, created_at)
		 VALUES ($1, '', $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query, svc.ID, svc.Name, svc.Price, svc.Creator, svc.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) StampID(ctx context.Context, id string) error {
	query := `UPDATE services SET self_id = $1 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdateNamePrice(ctx context.Context, id, name, price string) error {
	query := `UPDATE services SET name = $2, price = $3 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, name, price)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM services WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
