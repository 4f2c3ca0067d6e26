package domain

import "time"

// Períodos de previsão suportados
const (
	ForecastPeriod30d = "30d"
	ForecastPeriod60d = "60d"
	ForecastPeriod90d = "90d"
)

// ForecastDetails expõe os valores intermediários da projeção para auditoria
type ForecastDetails struct {
	AdjustedFutureRevenue float64 `json:"adjusted_future_revenue"`
	HistoricalProjection  float64 `json:"historical_projection"`
	SubscriptionRevenue   float64 `json:"subscription_revenue"`
	CancellationRate      float64 `json:"cancellation_rate"`
}

// Forecast é uma projeção de receita persistida para histórico/auditoria.
// Não é alterada depois de criada.
type Forecast struct {
	ID        string           `json:"id"`
	TenantID  string           `json:"tenant_id"`
	Period    string           `json:"period"`
	Value     float64          `json:"value"`
	CreatedAt time.Time        `json:"created_at"`
	Details   *ForecastDetails `json:"details"`
}
