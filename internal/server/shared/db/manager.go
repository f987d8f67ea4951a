package db

import (
	"context"
	"database/sql"

	"github.com/streamify-app/auth-server/internal/server/accounts"
)

// RepositoryManager hands out the repositories backed by one shared
// connection pool.
type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Accounts() accounts.Repository
}
