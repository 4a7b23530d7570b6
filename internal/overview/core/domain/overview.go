package domain

import "time"

// ActiveWindow is how recent a device's last sample must be for the device
// to count as active.
const ActiveWindow = 24 * time.Hour

type SystemOverview struct {
	TotalUsers            int
	TotalSites            int
	ActiveDevices         int
	TotalTelemetryRecords int64
}
