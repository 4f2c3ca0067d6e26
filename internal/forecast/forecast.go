// Package forecast calcula a projeção de receita do tenant combinando três
// sinais com pesos fixos: agendamentos futuros já marcados, média histórica
// de faturamento e assinaturas ativas.
package forecast

import (
	"fmt"

	"github.com/lfreitas/barber-manager-api/internal/domain"
	"github.com/lfreitas/barber-manager-api/internal/metrics"
)

// Pesos da projeção. São constantes de política, não parâmetros: agendamentos
// já marcados são o sinal mais confiável, o histórico suaviza ruído e as
// assinaturas são uma contribuição estável porém minoritária.
const (
	WeightBookings      = 0.6
	WeightHistory       = 0.3
	WeightSubscriptions = 0.1

	// HistoryWindowDays é a janela de histórico assumida. Quem chama deve
	// fornecer exatamente os últimos 90 dias de agendamentos passados para
	// que a média diária faça sentido.
	HistoryWindowDays = 90

	// Assinaturas são precificadas por mês
	subscriptionCycleDays = 30
)

// Revenue projeta a receita para o horizonte informado (em dias).
//
// futureAppointments são agendamentos dentro do horizonte, independente de
// status (são reservas ainda não realizadas). pastAppointments devem cobrir a
// janela de HistoryWindowDays.
func Revenue(
	futureAppointments []*domain.Appointment,
	pastAppointments []*domain.Appointment,
	subscriptions []*domain.Subscription,
	horizonDays int,
) (float64, *domain.ForecastDetails) {
	var futureRevenue float64
	for _, a := range futureAppointments {
		futureRevenue += a.Value
	}

	cancellationRate := metrics.CancellationRate(pastAppointments)

	var historicalRevenue float64
	for _, a := range pastAppointments {
		if a.Status == domain.AppointmentStatusDone {
			historicalRevenue += a.Value
		}
	}
	dailyAverage := historicalRevenue / HistoryWindowDays

	subscriptionRevenue := metrics.MRR(subscriptions) * (float64(horizonDays) / subscriptionCycleDays)

	adjustedFutureRevenue := futureRevenue * (1 - cancellationRate)
	historicalProjection := dailyAverage * float64(horizonDays)

	projected := adjustedFutureRevenue*WeightBookings +
		historicalProjection*WeightHistory +
		subscriptionRevenue*WeightSubscriptions

	return projected, &domain.ForecastDetails{
		AdjustedFutureRevenue: adjustedFutureRevenue,
		HistoricalProjection:  historicalProjection,
		SubscriptionRevenue:   subscriptionRevenue,
		CancellationRate:      cancellationRate,
	}
}

// PeriodFromHorizon converte o horizonte em dias para o período persistido
func PeriodFromHorizon(horizonDays int) (string, error) {
	switch horizonDays {
	case 30:
		return domain.ForecastPeriod30d, nil
	case 60:
		return domain.ForecastPeriod60d, nil
	case 90:
		return domain.ForecastPeriod90d, nil
	default:
		return "", fmt.Errorf("horizonte de previsão inválido: %d (esperado 30, 60 ou 90)", horizonDays)
	}
}
