package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) FindByCredentials(ctx context.Context, phone, password string) (*models.User, error) {
	query :=
		`SELECT phone, password, full_name FROM users
		 WHERE phone = $1 AND password = $2
		 LIMIT 1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, phone, password).Scan(&user.Phone, &user.Password, &user.FullName)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
