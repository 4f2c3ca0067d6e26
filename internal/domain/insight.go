package domain

import "time"

// Status possíveis de um insight. Módulos sempre criam insights ativos;
// resolved e ignored são transições manuais feitas pelo tenant.
const (
	InsightStatusActive   = "active"
	InsightStatusResolved = "resolved"
	InsightStatusIgnored  = "ignored"
)

// Categorias de insight usadas pelos módulos
const (
	InsightCategoryRevenue = "revenue"
	InsightCategoryMargin  = "margin"
	InsightCategorySales   = "sales"
)

// Insight é uma condição de negócio acionável detectada automaticamente por
// um módulo de insight (ex: ticket médio baixo)
type Insight struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	ModuleID    string `json:"module_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	// Priority: quanto maior, mais urgente
	Priority int `json:"priority"`
	// CooldownHours é o intervalo mínimo sugerido entre disparos do mesmo
	// módulo. Metadado consultivo: o job não o aplica antes de inserir.
	CooldownHours int            `json:"cooldown_hours"`
	Threshold     float64        `json:"threshold"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	ResolvedAt    *time.Time     `json:"resolved_at"`
	Data          map[string]any `json:"data"`
}
