package domain

import "time"

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
)

// Subscription é um plano recorrente de cliente (clube de assinatura).
// Somente assinaturas ativas contam para MRR e previsão de receita.
type Subscription struct {
	ID         string     `json:"id"`
	TenantID   string     `json:"tenant_id"`
	CustomerID string     `json:"customer_id"`
	PlanName   string     `json:"plan_name"`
	Price      float64    `json:"price"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at"`
}
