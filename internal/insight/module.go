// Package insight define os módulos de insight: unidades de regra
// independentes que avaliam o contexto de um tenant e, quando a condição
// dispara, produzem um registro de Insight acionável.
package insight

import (
	"time"

	"github.com/lfreitas/barber-manager-api/internal/domain"
)

// Context é a fotografia somente-leitura dos dados do tenant consumida pelos
// módulos. Todos os dados chegam por parâmetro; módulo nenhum acessa
// repositório ou estado global.
type Context struct {
	TenantID      string
	Appointments  []*domain.Appointment
	Transactions  []*domain.FinancialTransaction
	Customers     []*domain.Customer
	Professionals []*domain.Professional
	Services      []*domain.Service
	Products      []*domain.Product
	Subscriptions []*domain.Subscription
	Costs         []*domain.Cost
	Now           time.Time
}

// Module é o contrato de um módulo de insight.
//
// Evaluate é barato e roda para todos os módulos a cada execução do job;
// deve retornar false (nunca panicar) com dados vazios ou insuficientes.
// Generate só é chamado quando Evaluate retornou true e faz o trabalho mais
// pesado de enumeração e formatação.
type Module interface {
	ID() string
	Name() string
	Category() string
	Description() string

	Evaluate(ctx *Context) bool
	Generate(ctx *Context) (*domain.Insight, error)
}
