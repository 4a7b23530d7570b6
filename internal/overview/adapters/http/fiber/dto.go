package fiber

import "solar-stats-service/internal/overview/core/domain"

// SystemOverviewResponse
// @Description System-wide counts
type SystemOverviewResponse struct {
	TotalUsers            int   `json:"totalUsers" example:"12"`
	TotalSites            int   `json:"totalSites" example:"20"`
	ActiveDevices         int   `json:"activeDevices" example:"31"`
	TotalTelemetryRecords int64 `json:"totalTelemetryRecords" example:"1048576"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message,omitempty"`
}

func toOverviewResponse(o *domain.SystemOverview) SystemOverviewResponse {
	return SystemOverviewResponse{
		TotalUsers:            o.TotalUsers,
		TotalSites:            o.TotalSites,
		ActiveDevices:         o.ActiveDevices,
		TotalTelemetryRecords: o.TotalTelemetryRecords,
	}
}
