package ports

import (
	"context"
	"time"

	"solar-stats-service/internal/statistics/core/domain"

	"github.com/google/uuid"
)

type SampleFilter struct {
	DeviceIDs []uuid.UUID
	From      time.Time // inclusive
	To        time.Time // inclusive
}

type TelemetryReaderPort interface {
	SiteExistsForUser(ctx context.Context, siteID, userID uuid.UUID) (bool, error)
	DeviceIDsForSite(ctx context.Context, siteID uuid.UUID) ([]uuid.UUID, error)
	DeviceOwnedByUser(ctx context.Context, deviceID, userID uuid.UUID) (bool, error)
	SamplesInRange(ctx context.Context, f SampleFilter) ([]domain.TelemetrySample, error)
}
