package insight

import (
	"fmt"
	"strings"

	"github.com/lfreitas/barber-manager-api/internal/domain"
	"github.com/lfreitas/barber-manager-api/internal/metrics"
	"github.com/lfreitas/barber-manager-api/pkg/utils"
)

// Faixa de "quase lá": clientes com ticket médio dentro de [35, 45) estão
// perto do ideal e são bons candidatos a upsell. Limite inferior inclusivo,
// superior exclusivo.
const (
	upsellBandLow  = 35.0
	upsellBandHigh = 45.0
)

// UpsellOpportunityModule dispara quando algum cliente tem ticket médio
// individual dentro da faixa de upsell
type UpsellOpportunityModule struct{}

// UpsellCandidate é a entrada de cliente no payload do insight de upsell
type UpsellCandidate struct {
	CustomerID    string  `json:"customer_id"`
	Name          string  `json:"name"`
	AverageTicket float64 `json:"average_ticket"`
}

func NewUpsellOpportunityModule() *UpsellOpportunityModule {
	return &UpsellOpportunityModule{}
}

func (m *UpsellOpportunityModule) ID() string       { return "upsell_opportunity" }
func (m *UpsellOpportunityModule) Name() string     { return "Oportunidade de upsell" }
func (m *UpsellOpportunityModule) Category() string { return domain.InsightCategorySales }

func (m *UpsellOpportunityModule) Description() string {
	return "Identifica clientes com ticket médio pouco abaixo do ideal, candidatos a serviços adicionais"
}

func (m *UpsellOpportunityModule) Evaluate(ctx *Context) bool {
	for _, c := range ctx.Customers {
		avg := metrics.AverageTicketByCustomer(ctx.Appointments, c.ID)
		if avg >= upsellBandLow && avg < upsellBandHigh {
			return true
		}
	}
	return false
}

func (m *UpsellOpportunityModule) Generate(ctx *Context) (*domain.Insight, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	// Enumera todos os clientes na faixa, não apenas o primeiro que disparou
	candidates := make([]UpsellCandidate, 0)
	names := make([]string, 0)
	for _, c := range ctx.Customers {
		avg := metrics.AverageTicketByCustomer(ctx.Appointments, c.ID)
		if avg >= upsellBandLow && avg < upsellBandHigh {
			candidates = append(candidates, UpsellCandidate{
				CustomerID:    c.ID,
				Name:          c.Name,
				AverageTicket: utils.RoundWithTwoDecimalPlace(avg),
			})
			names = append(names, c.Name)
		}
	}

	return &domain.Insight{
		ID:       id,
		TenantID: ctx.TenantID,
		ModuleID: m.ID(),
		Name:     m.Name(),
		Category: m.Category(),
		Description: fmt.Sprintf(
			"%d cliente(s) com ticket médio entre R$ %.2f e R$ %.2f: %s. Ofereça serviços adicionais para elevar o ticket.",
			len(candidates), upsellBandLow, upsellBandHigh, strings.Join(names, ", "),
		),
		Priority:      8,
		CooldownHours: 48,
		Threshold:     upsellBandLow,
		Status:        domain.InsightStatusActive,
		CreatedAt:     ctx.Now,
		Data: map[string]any{
			"customers": candidates,
			"band_low":  upsellBandLow,
			"band_high": upsellBandHigh,
		},
	}, nil
}
