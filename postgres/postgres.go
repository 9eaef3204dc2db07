// Package postgres provides PostgreSQL implementations of domain service interfaces.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// DB wraps the database connection pool and exposes domain services.
type DB struct {
	pool *pgxpool.Pool

	// Domain services (initialized in NewDB)
	InspectionService evaluator.InspectionService
	SequenceService   evaluator.SequenceService
}

// NewDB creates a new database wrapper with all services initialized.
func NewDB(pool *pgxpool.Pool) *DB {
	db := &DB{pool: pool}
	db.InspectionService = &InspectionService{db: db}
	db.SequenceService = &SequenceService{db: db}
	return db
}

// Pool returns the underlying connection pool.
// Use sparingly - prefer using service methods.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Close closes the database connection pool.
func (db *DB) Close() {
	db.pool.Close()
}
