package insighting

import (
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

// Insighter é a interface do serviço de insights consumida pelos handlers e
// pelo agendador
type Insighter interface {
	// ProcessInsights carrega o contexto completo do tenant, roda todos os
	// módulos registrados e persiste os insights disparados
	ProcessInsights(tenantID string) ([]*domain.Insight, error)

	// ListActiveInsights retorna os insights ativos do tenant, do mais
	// prioritário para o menos
	ListActiveInsights(tenantID string) ([]*domain.Insight, error)

	// ResolveInsight marca um insight como resolvido
	ResolveInsight(insightID string) error

	// IgnoreInsight descarta manualmente um insight
	IgnoreInsight(insightID string) error
}
