package insight

import (
	"fmt"

	"github.com/lfreitas/barber-manager-api/internal/domain"
	"github.com/lfreitas/barber-manager-api/internal/metrics"
	"github.com/lfreitas/barber-manager-api/pkg/utils"
)

// Margem percentual abaixo deste valor dispara o insight
const lowMarginThreshold = 20.0

// LowMarginModule dispara quando a margem percentual calculada sobre os
// lançamentos financeiros está abaixo do saudável
type LowMarginModule struct{}

func NewLowMarginModule() *LowMarginModule {
	return &LowMarginModule{}
}

func (m *LowMarginModule) ID() string       { return "low_margin" }
func (m *LowMarginModule) Name() string     { return "Margem baixa" }
func (m *LowMarginModule) Category() string { return domain.InsightCategoryMargin }

func (m *LowMarginModule) Description() string {
	return "Detecta quando a margem de lucro sobre a receita está abaixo do saudável"
}

func (m *LowMarginModule) Evaluate(ctx *Context) bool {
	if metrics.GrossRevenue(ctx.Transactions) == 0 {
		return false
	}
	return metrics.MarginPercent(ctx.Transactions) < lowMarginThreshold
}

func (m *LowMarginModule) Generate(ctx *Context) (*domain.Insight, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	gross := metrics.GrossRevenue(ctx.Transactions)
	net := metrics.NetRevenue(ctx.Transactions)
	marginPct := metrics.MarginPercent(ctx.Transactions)

	return &domain.Insight{
		ID:       id,
		TenantID: ctx.TenantID,
		ModuleID: m.ID(),
		Name:     m.Name(),
		Category: m.Category(),
		Description: fmt.Sprintf(
			"A margem de lucro está em %.1f%%, abaixo do mínimo saudável de %.0f%%. Receita bruta R$ %.2f, líquida R$ %.2f. Revise custos fixos e variáveis.",
			marginPct, lowMarginThreshold, gross, net,
		),
		Priority:      9,
		CooldownHours: 24,
		Threshold:     lowMarginThreshold,
		Status:        domain.InsightStatusActive,
		CreatedAt:     ctx.Now,
		Data: map[string]any{
			"margin_percent": utils.RoundWithTwoDecimalPlace(marginPct),
			"gross_revenue":  utils.RoundWithTwoDecimalPlace(gross),
			"net_revenue":    utils.RoundWithTwoDecimalPlace(net),
		},
	}, nil
}
