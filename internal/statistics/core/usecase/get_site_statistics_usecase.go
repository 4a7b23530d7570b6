package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solar-stats-service/internal/statistics/core/domain"
	"solar-stats-service/internal/statistics/core/ports"

	"github.com/google/uuid"
)

var (
	// ErrNotFound covers both a missing resource and one owned by someone else.
	ErrNotFound = errors.New("resource not found")
	// ErrNonFinite is returned when a figure overflows float64, from an
	// extreme tariff or non-finite stored readings.
	ErrNonFinite = errors.New("statistics value is not finite")
)

type StatisticsInput struct {
	UserID uuid.UUID
	Start  time.Time
	End    time.Time // inclusive
	Tariff float64   // currency per kWh
}

type GetSiteStatisticsUseCase struct {
	reader ports.TelemetryReaderPort
}

func NewGetSiteStatisticsUseCase(reader ports.TelemetryReaderPort) *GetSiteStatisticsUseCase {
	return &GetSiteStatisticsUseCase{reader: reader}
}

// Execute computes per-day energy and savings figures for every device of
// the site, plus period totals. Returns ErrNotFound unless the site exists
// and belongs to in.UserID.
func (uc *GetSiteStatisticsUseCase) Execute(ctx context.Context, siteID uuid.UUID, in StatisticsInput) (*domain.StatisticsPeriodResult, error) {
	owned, err := uc.reader.SiteExistsForUser(ctx, siteID, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check site ownership: %w", err)
	}
	if !owned {
		return nil, ErrNotFound
	}

	result := &domain.StatisticsPeriodResult{
		Totals:     domain.DailyStatistics{Date: in.Start},
		DailyStats: []domain.DailyStatistics{},
	}

	if in.End.Before(in.Start) {
		return result, nil
	}

	deviceIDs, err := uc.reader.DeviceIDsForSite(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("list site devices: %w", err)
	}
	if len(deviceIDs) == 0 {
		return result, nil
	}

	samples, err := uc.reader.SamplesInRange(ctx, ports.SampleFilter{
		DeviceIDs: deviceIDs,
		From:      in.Start,
		To:        in.End,
	})
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}

	for _, day := range groupByDay(samples) {
		result.DailyStats = append(result.DailyStats, dailyStatistics(day, in.Tariff))
	}
	result.Totals = periodTotals(in.Start, result.DailyStats)

	// Totals aggregate every daily field, so a non-finite day shows up here too.
	t := result.Totals
	if !allFinite(t.TotalGenerationWh, t.TotalConsumptionWh, t.MoneySaved, t.SelfSufficiencyPercent, t.NetGridBalanceWh) {
		return nil, fmt.Errorf("site %s: %w", siteID, ErrNonFinite)
	}

	return result, nil
}

func dailyStatistics(day *dayAccumulator, tariff float64) domain.DailyStatistics {
	genWh := day.avgGeneration() * hoursPerDay
	consWh := day.avgConsumption() * hoursPerDay

	var selfSufficiency float64
	if consWh > 0 {
		if genWh >= consWh {
			selfSufficiency = 100
		} else {
			selfSufficiency = genWh / consWh * 100
		}
	}

	exportWh := max(genWh-consWh, 0)
	importWh := max(consWh-genWh, 0)

	return domain.DailyStatistics{
		Date:                   day.date,
		TotalGenerationWh:      domain.Round(genWh, domain.EnergyPlaces),
		TotalConsumptionWh:     domain.Round(consWh, domain.EnergyPlaces),
		MoneySaved:             domain.Round(moneySaved(genWh, tariff), domain.MoneyPlaces),
		SelfSufficiencyPercent: domain.Round(selfSufficiency, domain.PercentPlaces),
		NetGridBalanceWh:       domain.Round(exportWh-importWh, domain.EnergyPlaces),
	}
}

// periodTotals sums the already rounded daily figures; self-sufficiency is
// the unweighted mean of the daily percentages.
func periodTotals(start time.Time, days []domain.DailyStatistics) domain.DailyStatistics {
	totals := domain.DailyStatistics{Date: start}
	if len(days) == 0 {
		return totals
	}

	var selfSufficiencySum float64
	for _, d := range days {
		totals.TotalGenerationWh += d.TotalGenerationWh
		totals.TotalConsumptionWh += d.TotalConsumptionWh
		totals.MoneySaved += d.MoneySaved
		totals.NetGridBalanceWh += d.NetGridBalanceWh
		selfSufficiencySum += d.SelfSufficiencyPercent
	}

	totals.TotalGenerationWh = domain.Round(totals.TotalGenerationWh, domain.EnergyPlaces)
	totals.TotalConsumptionWh = domain.Round(totals.TotalConsumptionWh, domain.EnergyPlaces)
	totals.MoneySaved = domain.Round(totals.MoneySaved, domain.MoneyPlaces)
	totals.NetGridBalanceWh = domain.Round(totals.NetGridBalanceWh, domain.EnergyPlaces)
	totals.SelfSufficiencyPercent = domain.Round(selfSufficiencySum/float64(len(days)), domain.PercentPlaces)

	return totals
}
