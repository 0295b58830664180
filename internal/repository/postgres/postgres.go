// Package postgres implements the event and booking repositories on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"

	"devevents/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// Open connects to the database at databaseURL, configures the pool and verifies connectivity.
func Open(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Migrate applies pending schema migrations. It is a no-op when the schema is current.
func Migrate(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// NewStore wraps db in a domain.Store.
func NewStore(db *sql.DB) *domain.Store {
	return domain.NewStore(NewEventRepository(db), NewBookingRepository(db), db.PingContext, db.Close)
}

// mapError translates unique violations into domain.ErrDuplicate.
func mapError(err error) error {
	var perr *pq.Error
	if errors.As(err, &perr) && perr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, perr.Constraint)
	}
	return err
}
