package fiber

import (
	"time"

	"solar-stats-service/internal/statistics/core/domain"
)

// DailyStatisticsResponse
// @Description Energy and savings figures for one UTC day (or the period totals)
type DailyStatisticsResponse struct {
	Date                   time.Time `json:"date" example:"2025-12-01T00:00:00Z"`
	TotalGenerationWh      float64   `json:"totalGenerationWh" example:"12000"`
	TotalConsumptionWh     float64   `json:"totalConsumptionWh" example:"4800"`
	MoneySaved             float64   `json:"moneySaved" example:"51.84"`
	SelfSufficiencyPercent float64   `json:"selfSufficiencyPercent" example:"100"`
	NetGridBalanceWh       float64   `json:"netGridBalanceWh" example:"7200"`
}

type StatisticsResponse struct {
	Totals     DailyStatisticsResponse   `json:"totals"`
	DailyStats []DailyStatisticsResponse `json:"dailyStats"`
}

type DeviceDailyStatisticsResponse struct {
	Date              time.Time `json:"date" example:"2025-12-01T00:00:00Z"`
	EnergyKwh         float64   `json:"energyKwh" example:"8.4"`
	PeakPowerWatts    float64   `json:"peakPowerWatts" example:"800"`
	AveragePowerWatts float64   `json:"averagePowerWatts" example:"700"`
	MoneySaved        float64   `json:"moneySaved" example:"36.29"`
}

type DeviceStatisticsResponse struct {
	DeviceID   string                          `json:"deviceId" example:"c9d8e7f6-a5b4-4c3d-9e2f-1a0b9c8d7e03"`
	Totals     DeviceDailyStatisticsResponse   `json:"totals"`
	DailyStats []DeviceDailyStatisticsResponse `json:"dailyStats"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"not_found"`
	Message string `json:"message,omitempty" example:"site not found or access denied"`
}

func toDailyResponse(d domain.DailyStatistics) DailyStatisticsResponse {
	return DailyStatisticsResponse{
		Date:                   d.Date,
		TotalGenerationWh:      d.TotalGenerationWh,
		TotalConsumptionWh:     d.TotalConsumptionWh,
		MoneySaved:             d.MoneySaved,
		SelfSufficiencyPercent: d.SelfSufficiencyPercent,
		NetGridBalanceWh:       d.NetGridBalanceWh,
	}
}

func toStatisticsResponse(res *domain.StatisticsPeriodResult) StatisticsResponse {
	resp := StatisticsResponse{
		Totals:     toDailyResponse(res.Totals),
		DailyStats: make([]DailyStatisticsResponse, 0, len(res.DailyStats)),
	}
	for _, d := range res.DailyStats {
		resp.DailyStats = append(resp.DailyStats, toDailyResponse(d))
	}
	return resp
}

func toDeviceDailyResponse(d domain.DeviceDailyStatistics) DeviceDailyStatisticsResponse {
	return DeviceDailyStatisticsResponse{
		Date:              d.Date,
		EnergyKwh:         d.EnergyKwh,
		PeakPowerWatts:    d.PeakPowerWatts,
		AveragePowerWatts: d.AveragePowerWatts,
		MoneySaved:        d.MoneySaved,
	}
}

func toDeviceStatisticsResponse(res *domain.DeviceStatisticsResult) DeviceStatisticsResponse {
	resp := DeviceStatisticsResponse{
		DeviceID:   res.DeviceID.String(),
		Totals:     toDeviceDailyResponse(res.Totals),
		DailyStats: make([]DeviceDailyStatisticsResponse, 0, len(res.DailyStats)),
	}
	for _, d := range res.DailyStats {
		resp.DailyStats = append(resp.DailyStats, toDeviceDailyResponse(d))
	}
	return resp
}
