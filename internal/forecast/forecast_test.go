package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

func TestRevenue(t *testing.T) {
	tests := []struct {
		name               string
		futureAppointments []*domain.Appointment
		pastAppointments   []*domain.Appointment
		subscriptions      []*domain.Subscription
		horizonDays        int
		expectedValue      float64
		expectedDetails    *domain.ForecastDetails
	}{
		{
			name:          "Sem dados - projeção zero",
			horizonDays:   30,
			expectedValue: 0,
			expectedDetails: &domain.ForecastDetails{
				AdjustedFutureRevenue: 0,
				HistoricalProjection:  0,
				SubscriptionRevenue:   0,
				CancellationRate:      0,
			},
		},
		{
			name: "Combinação dos três sinais com taxa de cancelamento de 50%",
			futureAppointments: []*domain.Appointment{
				{Value: 1000, Status: domain.AppointmentStatusScheduled},
			},
			pastAppointments: []*domain.Appointment{
				{Value: 900, Status: domain.AppointmentStatusDone},
				{Value: 100, Status: domain.AppointmentStatusCancelled},
			},
			subscriptions: []*domain.Subscription{
				{Price: 200, Status: domain.SubscriptionStatusActive},
			},
			horizonDays: 30,
			// 500*0.6 + 300*0.3 + 200*0.1 = 300 + 90 + 20
			expectedValue: 410,
			expectedDetails: &domain.ForecastDetails{
				AdjustedFutureRevenue: 500,
				HistoricalProjection:  300,
				SubscriptionRevenue:   200,
				CancellationRate:      0.5,
			},
		},
		{
			name: "Horizonte de 60 dias dobra histórico e assinaturas",
			pastAppointments: []*domain.Appointment{
				{Value: 900, Status: domain.AppointmentStatusDone},
			},
			subscriptions: []*domain.Subscription{
				{Price: 100, Status: domain.SubscriptionStatusActive},
				{Price: 50, Status: domain.SubscriptionStatusCancelled},
			},
			horizonDays: 60,
			// (900/90)*60*0.3 + 100*(60/30)*0.1 = 180 + 20
			expectedValue: 200,
			expectedDetails: &domain.ForecastDetails{
				AdjustedFutureRevenue: 0,
				HistoricalProjection:  600,
				SubscriptionRevenue:   200,
				CancellationRate:      0,
			},
		},
		{
			name: "Agendamentos futuros contam independente do status",
			futureAppointments: []*domain.Appointment{
				{Value: 100, Status: domain.AppointmentStatusScheduled},
				{Value: 100, Status: domain.AppointmentStatusDone},
			},
			horizonDays:   30,
			expectedValue: 120, // 200*0.6
			expectedDetails: &domain.ForecastDetails{
				AdjustedFutureRevenue: 200,
				HistoricalProjection:  0,
				SubscriptionRevenue:   0,
				CancellationRate:      0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, details := Revenue(tt.futureAppointments, tt.pastAppointments, tt.subscriptions, tt.horizonDays)

			assert.InDelta(t, tt.expectedValue, value, 0.0001)
			assert.InDelta(t, tt.expectedDetails.AdjustedFutureRevenue, details.AdjustedFutureRevenue, 0.0001)
			assert.InDelta(t, tt.expectedDetails.HistoricalProjection, details.HistoricalProjection, 0.0001)
			assert.InDelta(t, tt.expectedDetails.SubscriptionRevenue, details.SubscriptionRevenue, 0.0001)
			assert.InDelta(t, tt.expectedDetails.CancellationRate, details.CancellationRate, 0.0001)
		})
	}
}

func TestPeriodFromHorizon(t *testing.T) {
	tests := []struct {
		horizonDays    int
		expectedPeriod string
		expectError    bool
	}{
		{30, domain.ForecastPeriod30d, false},
		{60, domain.ForecastPeriod60d, false},
		{90, domain.ForecastPeriod90d, false},
		{45, "", true},
		{0, "", true},
		{-30, "", true},
	}

	for _, tt := range tests {
		period, err := PeriodFromHorizon(tt.horizonDays)
		if tt.expectError {
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.expectedPeriod, period)
	}
}
