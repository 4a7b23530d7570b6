package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"solar-stats-service/internal/overview/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOverviewReader struct {
	CountUsersFn   func(ctx context.Context) (int, error)
	CountSitesFn   func(ctx context.Context) (int, error)
	CountActiveFn  func(ctx context.Context, since time.Time) (int, error)
	CountSamplesFn func(ctx context.Context) (int64, error)

	calls atomic.Int32
}

func (f *fakeOverviewReader) CountUsers(ctx context.Context) (int, error) {
	f.calls.Add(1)
	if f.CountUsersFn != nil {
		return f.CountUsersFn(ctx)
	}
	return 0, nil
}

func (f *fakeOverviewReader) CountSites(ctx context.Context) (int, error) {
	f.calls.Add(1)
	if f.CountSitesFn != nil {
		return f.CountSitesFn(ctx)
	}
	return 0, nil
}

func (f *fakeOverviewReader) CountDevicesActiveSince(ctx context.Context, since time.Time) (int, error) {
	f.calls.Add(1)
	if f.CountActiveFn != nil {
		return f.CountActiveFn(ctx, since)
	}
	return 0, nil
}

func (f *fakeOverviewReader) CountAllTelemetrySamples(ctx context.Context) (int64, error) {
	f.calls.Add(1)
	if f.CountSamplesFn != nil {
		return f.CountSamplesFn(ctx)
	}
	return 0, nil
}

func TestGetSystemOverview_Success(t *testing.T) {
	now := time.Date(2025, 12, 10, 15, 30, 0, 0, time.UTC)

	var gotSince time.Time
	reader := &fakeOverviewReader{
		CountUsersFn:  func(ctx context.Context) (int, error) { return 12, nil },
		CountSitesFn:  func(ctx context.Context) (int, error) { return 20, nil },
		CountActiveFn: func(ctx context.Context, since time.Time) (int, error) { gotSince = since; return 31, nil },
		CountSamplesFn: func(ctx context.Context) (int64, error) {
			return 5_000_000_000, nil
		},
	}

	uc := usecase.NewGetSystemOverviewUseCase(reader).WithClock(func() time.Time { return now })

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, out.TotalUsers)
	assert.Equal(t, 20, out.TotalSites)
	assert.Equal(t, 31, out.ActiveDevices)
	assert.Equal(t, int64(5_000_000_000), out.TotalTelemetryRecords)
	assert.True(t, gotSince.Equal(now.Add(-24*time.Hour)), "since = %s", gotSince)
	assert.Equal(t, int32(4), reader.calls.Load())
}

func TestGetSystemOverview_EmptyStoreIsZeros(t *testing.T) {
	uc := usecase.NewGetSystemOverviewUseCase(&fakeOverviewReader{})

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, *out)
}

func TestGetSystemOverview_CountErrorPropagates(t *testing.T) {
	boom := errors.New("relation \"sites\" does not exist")
	reader := &fakeOverviewReader{
		CountSitesFn: func(ctx context.Context) (int, error) { return 0, boom },
	}

	out, err := usecase.NewGetSystemOverviewUseCase(reader).Execute(context.Background())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "count sites")
}

func TestGetSystemOverview_FailureCancelsSiblings(t *testing.T) {
	boom := errors.New("timeout")
	reader := &fakeOverviewReader{
		CountUsersFn: func(ctx context.Context) (int, error) { return 0, boom },
		CountSamplesFn: func(ctx context.Context) (int64, error) {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(5 * time.Second):
				return 0, errors.New("sibling was not cancelled")
			}
		},
	}

	_, err := usecase.NewGetSystemOverviewUseCase(reader).Execute(context.Background())
	assert.ErrorIs(t, err, boom)
}
