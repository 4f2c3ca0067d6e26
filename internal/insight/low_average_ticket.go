package insight

import (
	"fmt"

	"github.com/lfreitas/barber-manager-api/internal/domain"
	"github.com/lfreitas/barber-manager-api/internal/metrics"
	"github.com/lfreitas/barber-manager-api/pkg/utils"
)

// Ticket médio global abaixo deste valor dispara o insight
const lowAverageTicketThreshold = 35.0

// LowAverageTicketModule dispara quando o ticket médio global do tenant está
// abaixo do mínimo recomendado
type LowAverageTicketModule struct{}

func NewLowAverageTicketModule() *LowAverageTicketModule {
	return &LowAverageTicketModule{}
}

func (m *LowAverageTicketModule) ID() string       { return "low_average_ticket" }
func (m *LowAverageTicketModule) Name() string     { return "Ticket médio baixo" }
func (m *LowAverageTicketModule) Category() string { return domain.InsightCategoryRevenue }

func (m *LowAverageTicketModule) Description() string {
	return "Detecta quando o ticket médio global está abaixo do mínimo recomendado"
}

func (m *LowAverageTicketModule) Evaluate(ctx *Context) bool {
	if len(ctx.Appointments) == 0 {
		return false
	}
	return metrics.AverageTicketGlobal(ctx.Appointments) < lowAverageTicketThreshold
}

func (m *LowAverageTicketModule) Generate(ctx *Context) (*domain.Insight, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	avgTicket := metrics.AverageTicketGlobal(ctx.Appointments)

	return &domain.Insight{
		ID:       id,
		TenantID: ctx.TenantID,
		ModuleID: m.ID(),
		Name:     m.Name(),
		Category: m.Category(),
		Description: fmt.Sprintf(
			"O ticket médio dos agendamentos está em R$ %.2f, abaixo do mínimo recomendado de R$ %.2f. Considere rever preços ou oferecer combos de serviços.",
			avgTicket, lowAverageTicketThreshold,
		),
		Priority:      10,
		CooldownHours: 24,
		Threshold:     lowAverageTicketThreshold,
		Status:        domain.InsightStatusActive,
		CreatedAt:     ctx.Now,
		Data: map[string]any{
			"average_ticket":     utils.RoundWithTwoDecimalPlace(avgTicket),
			"appointments_count": len(ctx.Appointments),
		},
	}, nil
}
