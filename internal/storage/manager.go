// Package storage wires the remote store: it opens the connection, runs
// schema migrations and hands out the collection repositories.
package storage

import (
	"context"
	"database/sql"

	"salonbook/internal/repositories/services"
	"salonbook/internal/repositories/users"
)

type Manager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Services() services.Repository
}
