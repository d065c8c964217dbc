package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"salonbook/internal/logging"
	"salonbook/internal/repositories/services"
	"salonbook/internal/repositories/users"
	"salonbook/internal/storage/migrations"
)

type PostgresManager struct {
	db       *sql.DB
	users    users.Repository
	services services.Repository
}

func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresManager) Users() users.Repository {
	return m.users
}

func (m *PostgresManager) Services() services.Repository {
	return m.services
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, m.db, ".")
}

// NewPostgresManager opens the remote store and tries to bring its schema
// up to date. An unreachable store is not fatal here: the app must still
// reach the login gate, and every operation surfaces its own transport
// failure. The connection itself is lazy, so a store that comes back later
// just starts answering.
func NewPostgresManager(dsn string, logger logging.Logger) (Manager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{
		db:       db,
		users:    users.NewPostgresRepository(db),
		services: services.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		logger.Warn(context.Background(), "schema migration failed, continuing", "error", err)
	}

	return m, nil
}
