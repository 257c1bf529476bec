/*
Package sqlite provides a SQLite-backed implementation of rent.LeaseStore.

PURPOSE:
  Persists lease definitions (terms, not computed schedules - schedules
  are always derived on demand). In production, the same patterns apply
  to PostgreSQL - only minor SQL dialect differences.

KEY TABLE:
  leases: One row per lease. Rent and rate columns are stored as TEXT
          decimals to avoid floating-point drift; dates as YYYY-MM-DD.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/rent.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - rent/types.go: LeaseStore interface
  - rent/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/rent-engine/calendar"
	"github.com/warp/rent-engine/rent"
)

// Store implements rent.LeaseStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS leases (
		id TEXT PRIMARY KEY,
		unit_name TEXT NOT NULL,
		base_monthly_rent TEXT NOT NULL,
		lease_start TEXT NOT NULL,
		due_day INTEGER NOT NULL,
		change_frequency_months INTEGER NOT NULL DEFAULT 0,
		change_rate TEXT NOT NULL DEFAULT '0',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_leases_unit_name
		ON leases(unit_name);
	CREATE INDEX IF NOT EXISTS idx_leases_lease_start
		ON leases(lease_start);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// LEASE STORE (rent.LeaseStore interface)
// =============================================================================

// Save inserts or updates a lease definition.
func (s *Store) Save(ctx context.Context, lease rent.Lease) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO leases
		(id, unit_name, base_monthly_rent, lease_start, due_day, change_frequency_months, change_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			unit_name = excluded.unit_name,
			base_monthly_rent = excluded.base_monthly_rent,
			lease_start = excluded.lease_start,
			due_day = excluded.due_day,
			change_frequency_months = excluded.change_frequency_months,
			change_rate = excluded.change_rate
	`

	createdAt := lease.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, query,
		lease.ID,
		lease.UnitName,
		lease.Terms.BaseMonthlyRent.String(),
		lease.Terms.LeaseStart.String(),
		lease.Terms.DueDay,
		lease.Terms.ChangeFrequencyMonths,
		lease.Terms.ChangeRate.String(),
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save lease: %w", err)
	}
	return nil
}

// Get retrieves a lease by ID. Returns nil without error when absent.
func (s *Store) Get(ctx context.Context, id rent.LeaseID) (*rent.Lease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, unit_name, base_monthly_rent, lease_start, due_day,
		        change_frequency_months, change_rate, created_at
		 FROM leases WHERE id = ?`,
		id,
	)

	lease, err := scanLease(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lease, nil
}

// List returns all leases ordered by unit name.
func (s *Store) List(ctx context.Context) ([]rent.Lease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, unit_name, base_monthly_rent, lease_start, due_day,
		        change_frequency_months, change_rate, created_at
		 FROM leases ORDER BY unit_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query leases: %w", err)
	}
	defer rows.Close()

	var leases []rent.Lease
	for rows.Next() {
		lease, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		leases = append(leases, *lease)
	}
	return leases, rows.Err()
}

// Delete removes a lease.
func (s *Store) Delete(ctx context.Context, id rent.LeaseID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM leases WHERE id = ?", id)
	return err
}

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM leases")
	return err
}

// =============================================================================
// SCANNING
// =============================================================================

type scanner interface {
	Scan(dest ...any) error
}

func scanLease(row scanner) (*rent.Lease, error) {
	var (
		lease      rent.Lease
		baseRent   string
		leaseStart string
		changeRate string
		createdAt  string
	)

	err := row.Scan(
		&lease.ID, &lease.UnitName, &baseRent, &leaseStart,
		&lease.Terms.DueDay, &lease.Terms.ChangeFrequencyMonths,
		&changeRate, &createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan lease: %w", err)
	}

	lease.Terms.BaseMonthlyRent, err = decimal.NewFromString(baseRent)
	if err != nil {
		return nil, fmt.Errorf("invalid base rent %q: %w", baseRent, err)
	}
	lease.Terms.ChangeRate, err = decimal.NewFromString(changeRate)
	if err != nil {
		return nil, fmt.Errorf("invalid change rate %q: %w", changeRate, err)
	}
	lease.Terms.LeaseStart, err = calendar.Parse(leaseStart)
	if err != nil {
		return nil, fmt.Errorf("invalid lease start %q: %w", leaseStart, err)
	}
	lease.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &lease, nil
}
