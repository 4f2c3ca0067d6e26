package domain

import "time"

// ReportFilters delimita o período de um relatório financeiro
type ReportFilters struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// FinancialSummary é o resumo consolidado dos indicadores do tenant em um
// período
type FinancialSummary struct {
	TenantID          string         `json:"tenant_id"`
	GrossRevenue      float64        `json:"gross_revenue"`
	NetRevenue        float64        `json:"net_revenue"`
	MarginPercent     float64        `json:"margin_percent"`
	AverageTicket     float64        `json:"average_ticket"`
	MarginPerHour     float64        `json:"margin_per_hour"`
	ScheduleOccupancy float64        `json:"schedule_occupancy"`
	IdleCapacity      float64        `json:"idle_capacity"`
	MRR               float64        `json:"mrr"`
	CancellationRate  float64        `json:"cancellation_rate"`
	Filters           *ReportFilters `json:"filters"`
}
