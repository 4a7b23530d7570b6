package usecase

import (
	"context"
	"fmt"
	"time"

	"solar-stats-service/internal/statistics/core/domain"
	"solar-stats-service/internal/statistics/core/ports"

	"github.com/google/uuid"
)

type GetDeviceStatisticsUseCase struct {
	reader ports.TelemetryReaderPort
}

func NewGetDeviceStatisticsUseCase(reader ports.TelemetryReaderPort) *GetDeviceStatisticsUseCase {
	return &GetDeviceStatisticsUseCase{reader: reader}
}

// Execute returns per-day generation figures for a single device. The
// device must sit on a site owned by in.UserID, otherwise ErrNotFound.
func (uc *GetDeviceStatisticsUseCase) Execute(ctx context.Context, deviceID uuid.UUID, in StatisticsInput) (*domain.DeviceStatisticsResult, error) {
	owned, err := uc.reader.DeviceOwnedByUser(ctx, deviceID, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check device ownership: %w", err)
	}
	if !owned {
		return nil, ErrNotFound
	}

	result := &domain.DeviceStatisticsResult{
		DeviceID:   deviceID,
		Totals:     domain.DeviceDailyStatistics{Date: in.Start},
		DailyStats: []domain.DeviceDailyStatistics{},
	}

	if in.End.Before(in.Start) {
		return result, nil
	}

	samples, err := uc.reader.SamplesInRange(ctx, ports.SampleFilter{
		DeviceIDs: []uuid.UUID{deviceID},
		From:      in.Start,
		To:        in.End,
	})
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}

	for _, day := range groupByDay(samples) {
		result.DailyStats = append(result.DailyStats, deviceDailyStatistics(day, in.Tariff))
	}
	result.Totals = deviceTotals(in.Start, result.DailyStats)

	t := result.Totals
	if !allFinite(t.EnergyKwh, t.PeakPowerWatts, t.AveragePowerWatts, t.MoneySaved) {
		return nil, fmt.Errorf("device %s: %w", deviceID, ErrNonFinite)
	}

	return result, nil
}

func deviceDailyStatistics(day *dayAccumulator, tariff float64) domain.DeviceDailyStatistics {
	genWh := day.avgGeneration() * hoursPerDay

	return domain.DeviceDailyStatistics{
		Date:              day.date,
		EnergyKwh:         domain.Round(genWh/1000, domain.EnergyPlaces),
		PeakPowerWatts:    domain.Round(day.maxGeneration, domain.PowerPlaces),
		AveragePowerWatts: domain.Round(day.avgGeneratingPower(), domain.PowerPlaces),
		MoneySaved:        domain.Round(moneySaved(genWh, tariff), domain.MoneyPlaces),
	}
}

// deviceTotals: energy and money are sums of the daily figures, peak is the
// highest daily peak, average power is the mean of the daily averages.
func deviceTotals(start time.Time, days []domain.DeviceDailyStatistics) domain.DeviceDailyStatistics {
	totals := domain.DeviceDailyStatistics{Date: start}
	if len(days) == 0 {
		return totals
	}

	var avgPowerSum float64
	for _, d := range days {
		totals.EnergyKwh += d.EnergyKwh
		totals.MoneySaved += d.MoneySaved
		totals.PeakPowerWatts = max(totals.PeakPowerWatts, d.PeakPowerWatts)
		avgPowerSum += d.AveragePowerWatts
	}

	totals.EnergyKwh = domain.Round(totals.EnergyKwh, domain.EnergyPlaces)
	totals.MoneySaved = domain.Round(totals.MoneySaved, domain.MoneyPlaces)
	totals.AveragePowerWatts = domain.Round(avgPowerSum/float64(len(days)), domain.PowerPlaces)

	return totals
}
