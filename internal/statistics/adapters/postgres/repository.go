package postgres

import (
	"context"

	"solar-stats-service/internal/platform/database"
	"solar-stats-service/internal/statistics/core/domain"
	"solar-stats-service/internal/statistics/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TelemetryRepository struct {
	db database.Querier
}

func NewTelemetryRepository(db database.Querier) *TelemetryRepository {
	return &TelemetryRepository{db: db}
}

var _ ports.TelemetryReaderPort = (*TelemetryRepository)(nil)

const siteOwnedSQL = `
SELECT EXISTS (
    SELECT 1 FROM sites WHERE id = $1 AND user_id = $2
)`

const deviceOwnedSQL = `
SELECT EXISTS (
    SELECT 1
    FROM devices d
    JOIN sites s ON s.id = d.site_id
    WHERE d.id = $1 AND s.user_id = $2
)`

const siteDevicesSQL = `
SELECT id
FROM devices
WHERE site_id = $1
ORDER BY id`

const samplesInRangeSQL = `
SELECT
    device_id,
    recorded_at,
    generation_watts,
    consumption_watts
FROM telemetry_data
WHERE device_id = ANY($1::uuid[])
  AND recorded_at BETWEEN $2 AND $3`

func (r *TelemetryRepository) SiteExistsForUser(ctx context.Context, siteID, userID uuid.UUID) (bool, error) {
	return r.exists(ctx, siteOwnedSQL, siteID, userID)
}

func (r *TelemetryRepository) DeviceOwnedByUser(ctx context.Context, deviceID, userID uuid.UUID) (bool, error) {
	return r.exists(ctx, deviceOwnedSQL, deviceID, userID)
}

func (r *TelemetryRepository) DeviceIDsForSite(ctx context.Context, siteID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, siteDevicesSQL, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *TelemetryRepository) SamplesInRange(ctx context.Context, f ports.SampleFilter) ([]domain.TelemetrySample, error) {
	if len(f.DeviceIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(f.DeviceIDs))
	for i, id := range f.DeviceIDs {
		ids[i] = id.String()
	}

	rows, err := r.db.QueryContext(ctx, samplesInRangeSQL, pq.Array(ids), f.From.UTC(), f.To.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []domain.TelemetrySample
	for rows.Next() {
		var s domain.TelemetrySample
		if err := rows.Scan(&s.DeviceID, &s.Timestamp, &s.GenerationWatts, &s.ConsumptionWatts); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}

func (r *TelemetryRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	var found bool
	if rows.Next() {
		if err := rows.Scan(&found); err != nil {
			return false, err
		}
	}

	if err := rows.Err(); err != nil {
		return false, err
	}

	return found, nil
}
