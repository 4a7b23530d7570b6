package usecase

import (
	"sort"
	"time"

	"solar-stats-service/internal/statistics/core/domain"
)

const hoursPerDay = 24

// dayAccumulator collects running sums for one UTC calendar day.
type dayAccumulator struct {
	date time.Time

	count           int
	sumGeneration   float64
	sumConsumption  float64
	maxGeneration   float64
	countGenerating int
	sumGenerating   float64
}

func (a *dayAccumulator) add(s domain.TelemetrySample) {
	a.count++
	a.sumGeneration += s.GenerationWatts
	a.sumConsumption += s.ConsumptionWatts

	if s.GenerationWatts > a.maxGeneration {
		a.maxGeneration = s.GenerationWatts
	}
	if s.GenerationWatts > 0 {
		a.countGenerating++
		a.sumGenerating += s.GenerationWatts
	}
}

func (a *dayAccumulator) avgGeneration() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sumGeneration / float64(a.count)
}

func (a *dayAccumulator) avgConsumption() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sumConsumption / float64(a.count)
}

// avgGeneratingPower averages only samples that were producing.
func (a *dayAccumulator) avgGeneratingPower() float64 {
	if a.countGenerating == 0 {
		return 0
	}
	return a.sumGenerating / float64(a.countGenerating)
}

// groupByDay buckets samples by the UTC date of their timestamp in a single
// pass and returns the buckets ordered by date ascending.
func groupByDay(samples []domain.TelemetrySample) []*dayAccumulator {
	byDay := make(map[time.Time]*dayAccumulator)

	for _, s := range samples {
		day := truncateToDay(s.Timestamp)
		acc, ok := byDay[day]
		if !ok {
			acc = &dayAccumulator{date: day}
			byDay[day] = acc
		}
		acc.add(s)
	}

	days := make([]*dayAccumulator, 0, len(byDay))
	for _, acc := range byDay {
		days = append(days, acc)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].date.Before(days[j].date)
	})

	return days
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// moneySaved converts generated watt-hours to currency at tariff per kWh.
func moneySaved(genWh, tariff float64) float64 {
	return (genWh / 1000) * tariff
}

func allFinite(vals ...float64) bool {
	for _, v := range vals {
		if !domain.IsFinite(v) {
			return false
		}
	}
	return true
}
