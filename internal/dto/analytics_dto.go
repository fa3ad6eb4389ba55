package dto

import "github.com/google/uuid"

type AnalyticsTotals struct {
	Total             int64   `json:"total"`
	Resolved          int64   `json:"resolved"`
	Pending           int64   `json:"pending"`
	AvgResolutionDays float64 `json:"avg_resolution_days"`
}

type MonthlyCount struct {
	Month    int   `json:"month"`
	Total    int64 `json:"total"`
	Resolved int64 `json:"resolved"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type ConditionStats struct {
	ConditionType     string  `json:"condition_type"`
	Count             int64   `json:"count"`
	AvgResolutionDays float64 `json:"avg_resolution_days"`
}

type TanodPerformance struct {
	TanodID           uuid.UUID `json:"tanod_id"`
	Name              string    `json:"name"`
	Assigned          int64     `json:"assigned"`
	Resolved          int64     `json:"resolved"`
	AvgResolutionDays float64   `json:"avg_resolution_days"`
}

type HistogramBucket struct {
	Bucket string `json:"bucket"`
	Count  int64  `json:"count"`
}

type CostLine struct {
	ConditionType string `json:"condition_type"`
	UnitCost      int64  `json:"unit_cost"`
	Count         int64  `json:"count"`
	Subtotal      int64  `json:"subtotal"`
}

type CostEstimate struct {
	Total int64      `json:"total"`
	Lines []CostLine `json:"lines"`
}

type AnalyticsResponse struct {
	Year                int                `json:"year"`
	Month               int                `json:"month,omitempty"`
	Totals              AnalyticsTotals    `json:"totals"`
	MonthlyTrend        []MonthlyCount     `json:"monthly_trend"`
	ByBarangay          []NameCount        `json:"by_barangay"`
	ByCondition         []ConditionStats   `json:"by_condition"`
	ByReporterRole      []NameCount        `json:"by_reporter_role"`
	TanodPerformance    []TanodPerformance `json:"tanod_performance"`
	ResolutionHistogram []HistogramBucket  `json:"resolution_histogram"`
	CostEstimate        CostEstimate       `json:"cost_estimate"`
}

type AnalyticsFilter struct {
	Year          int
	Month         int
	Barangay      string
	ConditionType string
	Severity      string
}
