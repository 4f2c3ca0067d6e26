package domain

import "time"

// Tipos de lançamento financeiro. Transferências não entram no cálculo de
// receita nem de custo.
const (
	TransactionTypeIncome   = "income"
	TransactionTypeCost     = "cost"
	TransactionTypeTransfer = "transfer"
)

// FinancialTransaction é um lançamento do livro-caixa do tenant
type FinancialTransaction struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenant_id"`
	AppointmentID *string   `json:"appointment_id"`
	Type          string    `json:"type"`
	Value         float64   `json:"value"`
	Description   *string   `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
