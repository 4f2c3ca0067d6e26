package domain

import "time"

const (
	CostTypeFixed    = "fixed"
	CostTypeVariable = "variable"
)

// Cost é uma despesa cadastrada do tenant (aluguel, produtos, comissões)
type Cost struct {
	ID       string     `json:"id"`
	TenantID string     `json:"tenant_id"`
	Name     string     `json:"name"`
	Value    float64    `json:"value"`
	Type     string     `json:"type"`
	DueDate  *time.Time `json:"due_date"`
	Paid     bool       `json:"paid"`
}
