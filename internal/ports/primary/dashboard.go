package primary

import "context"

// DashboardService defines the primary port for aggregate P2H statistics.
type DashboardService interface {
	// GetStatistics returns vehicle and report totals for an optional
	// operational-day range (YYYY-MM-DD bounds, empty for open).
	GetStatistics(ctx context.Context, from, to string) (*Statistics, error)

	// GetMonthlyReports returns per-month status counts for a year.
	GetMonthlyReports(ctx context.Context, year int, vehicleType string) (*MonthlyReport, error)
}

// Statistics summarizes P2H activity.
type Statistics struct {
	TotalVehicles int
	TotalReports  int
	Normal        int
	Warning       int
	Abnormal      int
	PendingToday  int // active vehicles without a report on their current operational day
}

// MonthlyReport holds one entry per calendar month.
type MonthlyReport struct {
	Year        int
	VehicleType string
	Months      []MonthCount
}

// MonthCount is the status breakdown for one month (1-12).
type MonthCount struct {
	Month    int
	Normal   int
	Warning  int
	Abnormal int
}
