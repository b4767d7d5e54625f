package dto

import "github.com/shopspring/decimal"

// DashboardSummary carries the landing-page figures: today's occupancy,
// revenue of the current calendar month and the next check-ins.
type DashboardSummary struct {
	OccupiedToday int64             `json:"occupiedToday"`
	TotalRooms    int64             `json:"totalRooms"`
	MonthRevenue  decimal.Decimal   `json:"monthRevenue"`
	Upcoming      []BookingResponse `json:"upcoming"`
}

// PeriodReport carries the figures for an explicit date range, end exclusive.
// Revenue is attributed to the month of departure. Message is set when the
// requested range was invalid and the report fell back to the current month.
type PeriodReport struct {
	Start          string          `json:"start"`
	End            string          `json:"end"`
	Revenue        decimal.Decimal `json:"revenue"`
	OccupiedNights int             `json:"occupiedNights"`
	OccupancyRate  float64         `json:"occupancyRate"`
	Message        string          `json:"message,omitempty"`
}
