package postgres

import (
	"context"
	"time"

	"solar-stats-service/internal/overview/core/ports"
	"solar-stats-service/internal/platform/database"
)

type OverviewRepository struct {
	db database.Querier
}

func NewOverviewRepository(db database.Querier) *OverviewRepository {
	return &OverviewRepository{db: db}
}

var _ ports.OverviewReaderPort = (*OverviewRepository)(nil)

const (
	countUsersSQL  = `SELECT COUNT(*) FROM users`
	countSitesSQL  = `SELECT COUNT(*) FROM sites`
	countActiveSQL = `
SELECT COUNT(DISTINCT device_id)
FROM telemetry_data
WHERE recorded_at >= $1`
	countSamplesSQL = `SELECT COUNT(*) FROM telemetry_data`
)

func (r *OverviewRepository) CountUsers(ctx context.Context) (int, error) {
	n, err := r.count(ctx, countUsersSQL)
	return int(n), err
}

func (r *OverviewRepository) CountSites(ctx context.Context) (int, error) {
	n, err := r.count(ctx, countSitesSQL)
	return int(n), err
}

func (r *OverviewRepository) CountDevicesActiveSince(ctx context.Context, since time.Time) (int, error) {
	n, err := r.count(ctx, countActiveSQL, since.UTC())
	return int(n), err
}

func (r *OverviewRepository) CountAllTelemetrySamples(ctx context.Context) (int64, error) {
	return r.count(ctx, countSamplesSQL)
}

func (r *OverviewRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var n int64
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, err
		}
	}

	if err := rows.Err(); err != nil {
		return 0, err
	}

	return n, nil
}
