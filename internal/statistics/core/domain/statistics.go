package domain

import (
	"time"

	"github.com/google/uuid"
)

// TelemetrySample is one power reading reported by a device.
type TelemetrySample struct {
	DeviceID         uuid.UUID
	Timestamp        time.Time
	GenerationWatts  float64
	ConsumptionWatts float64
}

// DailyStatistics is the site-wide energy balance of one UTC day.
type DailyStatistics struct {
	Date                   time.Time // UTC midnight of the day
	TotalGenerationWh      float64
	TotalConsumptionWh     float64
	MoneySaved             float64
	SelfSufficiencyPercent float64 // 0..100
	NetGridBalanceWh       float64 // > 0 export, < 0 import
}

// StatisticsPeriodResult holds the period totals (Date = period start) and
// the per-day breakdown ordered by date.
type StatisticsPeriodResult struct {
	Totals     DailyStatistics
	DailyStats []DailyStatistics
}

// DeviceDailyStatistics is one device's generation figures for one UTC day.
type DeviceDailyStatistics struct {
	Date              time.Time
	EnergyKwh         float64
	PeakPowerWatts    float64
	AveragePowerWatts float64 // only over samples with generation > 0
	MoneySaved        float64
}

// DeviceStatisticsResult holds a device's period totals and per-day breakdown.
type DeviceStatisticsResult struct {
	DeviceID   uuid.UUID
	Totals     DeviceDailyStatistics
	DailyStats []DeviceDailyStatistics
}
