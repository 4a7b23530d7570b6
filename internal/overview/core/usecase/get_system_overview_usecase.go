package usecase

import (
	"context"
	"fmt"
	"time"

	"solar-stats-service/internal/overview/core/domain"
	"solar-stats-service/internal/overview/core/ports"

	"golang.org/x/sync/errgroup"
)

type GetSystemOverviewUseCase struct {
	reader ports.OverviewReaderPort
	now    func() time.Time
}

func NewGetSystemOverviewUseCase(reader ports.OverviewReaderPort) *GetSystemOverviewUseCase {
	return &GetSystemOverviewUseCase{reader: reader, now: time.Now}
}

// WithClock replaces the clock used to compute the active-device cutoff.
func (uc *GetSystemOverviewUseCase) WithClock(now func() time.Time) *GetSystemOverviewUseCase {
	uc.now = now
	return uc
}

// Execute runs the four counts concurrently. The first failing count cancels
// the others and its error is returned.
func (uc *GetSystemOverviewUseCase) Execute(ctx context.Context) (*domain.SystemOverview, error) {
	since := uc.now().UTC().Add(-domain.ActiveWindow)

	var out domain.SystemOverview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.reader.CountUsers(gctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		out.TotalUsers = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.reader.CountSites(gctx)
		if err != nil {
			return fmt.Errorf("count sites: %w", err)
		}
		out.TotalSites = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.reader.CountDevicesActiveSince(gctx, since)
		if err != nil {
			return fmt.Errorf("count active devices: %w", err)
		}
		out.ActiveDevices = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.reader.CountAllTelemetrySamples(gctx)
		if err != nil {
			return fmt.Errorf("count telemetry samples: %w", err)
		}
		out.TotalTelemetryRecords = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
