package database

import (
	"context"
	"database/sql"
	"time"

	"solar-stats-service/internal/platform/metrics"
)

// Rows is the subset of *sql.Rows the repositories read through.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Querier is the read-only seam repositories depend on, so they can be
// tested without a live database.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
}

type sqlRows struct {
	rows *sql.Rows
}

func (r *sqlRows) Next() bool {
	return r.rows.Next()
}

func (r *sqlRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *sqlRows) Err() error {
	return r.rows.Err()
}

func (r *sqlRows) Close() error {
	return r.rows.Close()
}

type sqlQuerier struct {
	db        *sql.DB
	component string
}

// NewQuerier wraps db and records query latency under the component label.
func NewQuerier(db *sql.DB, component string) Querier {
	return &sqlQuerier{db: db, component: component}
}

func (q *sqlQuerier) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	start := time.Now()
	rows, err := q.db.QueryContext(ctx, query, args...)
	metrics.ObserveDBQuery(q.component, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &sqlRows{rows: rows}, nil
}
