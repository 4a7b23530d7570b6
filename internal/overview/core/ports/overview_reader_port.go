package ports

import (
	"context"
	"time"
)

type OverviewReaderPort interface {
	CountUsers(ctx context.Context) (int, error)
	CountSites(ctx context.Context) (int, error)
	CountDevicesActiveSince(ctx context.Context, since time.Time) (int, error)
	CountAllTelemetrySamples(ctx context.Context) (int64, error)
}
