package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestGrossRevenue(t *testing.T) {
	tests := []struct {
		name         string
		transactions []*domain.FinancialTransaction
		expected     float64
	}{
		{
			name:         "Sem lançamentos - deve retornar zero",
			transactions: nil,
			expected:     0,
		},
		{
			name: "Soma apenas os lançamentos de entrada",
			transactions: []*domain.FinancialTransaction{
				{Type: domain.TransactionTypeIncome, Value: 100},
				{Type: domain.TransactionTypeIncome, Value: 100},
				{Type: domain.TransactionTypeCost, Value: 50},
				{Type: domain.TransactionTypeTransfer, Value: 500},
			},
			expected: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GrossRevenue(tt.transactions))
		})
	}
}

func TestNetRevenue(t *testing.T) {
	tests := []struct {
		name         string
		transactions []*domain.FinancialTransaction
		expected     float64
	}{
		{
			name:         "Sem lançamentos - deve retornar zero",
			transactions: []*domain.FinancialTransaction{},
			expected:     0,
		},
		{
			name: "Receita menos custos, ignorando transferências",
			transactions: []*domain.FinancialTransaction{
				{Type: domain.TransactionTypeIncome, Value: 100},
				{Type: domain.TransactionTypeIncome, Value: 100},
				{Type: domain.TransactionTypeCost, Value: 50},
				{Type: domain.TransactionTypeTransfer, Value: 500},
			},
			expected: 150,
		},
		{
			name: "Custos maiores que a receita - margem negativa",
			transactions: []*domain.FinancialTransaction{
				{Type: domain.TransactionTypeIncome, Value: 100},
				{Type: domain.TransactionTypeCost, Value: 150},
			},
			expected: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NetRevenue(tt.transactions))
		})
	}
}

func TestMarginPercent(t *testing.T) {
	tests := []struct {
		name         string
		transactions []*domain.FinancialTransaction
		expected     float64
	}{
		{
			name:         "Receita bruta zero - deve retornar zero, não dividir por zero",
			transactions: []*domain.FinancialTransaction{{Type: domain.TransactionTypeCost, Value: 50}},
			expected:     0,
		},
		{
			name: "Margem de 75 por cento",
			transactions: []*domain.FinancialTransaction{
				{Type: domain.TransactionTypeIncome, Value: 100},
				{Type: domain.TransactionTypeIncome, Value: 100},
				{Type: domain.TransactionTypeCost, Value: 50},
			},
			expected: 75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarginPercent(tt.transactions))
		})
	}
}

func TestAverageTicketGlobal(t *testing.T) {
	tests := []struct {
		name         string
		appointments []*domain.Appointment
		expected     float64
	}{
		{
			name:         "Sem agendamentos - deve retornar zero",
			appointments: nil,
			expected:     0,
		},
		{
			name: "Média simples dos valores",
			appointments: []*domain.Appointment{
				{Value: 20},
				{Value: 40},
				{Value: 60},
			},
			expected: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AverageTicketGlobal(tt.appointments))
		})
	}
}

func TestAverageTicketByCustomer(t *testing.T) {
	appointments := []*domain.Appointment{
		{CustomerID: "CLI001", Value: 30},
		{CustomerID: "CLI001", Value: 50},
		{CustomerID: "CLI002", Value: 100},
	}

	assert.Equal(t, 40.0, AverageTicketByCustomer(appointments, "CLI001"))
	assert.Equal(t, 100.0, AverageTicketByCustomer(appointments, "CLI002"))
	assert.Equal(t, 0.0, AverageTicketByCustomer(appointments, "CLI999"))
}

func TestAverageTicketByProfessional(t *testing.T) {
	appointments := []*domain.Appointment{
		{ProfessionalID: "PRO001", Value: 45},
		{ProfessionalID: "PRO001", Value: 55},
		{ProfessionalID: "PRO002", Value: 70},
	}

	assert.Equal(t, 50.0, AverageTicketByProfessional(appointments, "PRO001"))
	assert.Equal(t, 0.0, AverageTicketByProfessional(appointments, "PRO999"))
}

func TestMarginPerHour(t *testing.T) {
	services := []*domain.Service{
		{ID: "SRV001", DurationMinutes: 30},
		{ID: "SRV002", DurationMinutes: 60},
	}

	tests := []struct {
		name         string
		appointments []*domain.Appointment
		expected     float64
	}{
		{
			name:         "Sem agendamentos - deve retornar zero",
			appointments: nil,
			expected:     0,
		},
		{
			name: "Margem dividida pelas horas trabalhadas",
			appointments: []*domain.Appointment{
				{ServiceID: "SRV001", Value: 50, Cost: floatPtr(20)}, // margem 30 em 30min
				{ServiceID: "SRV002", Value: 100, Cost: floatPtr(40)}, // margem 60 em 60min
			},
			expected: 60, // margem 90 em 1.5h
		},
		{
			name: "Agendamento de serviço removido do catálogo é ignorado",
			appointments: []*domain.Appointment{
				{ServiceID: "SRV001", Value: 50, Cost: floatPtr(20)},
				{ServiceID: "SRV999", Value: 999},
			},
			expected: 60, // margem 30 em 0.5h
		},
		{
			name: "Agendamento sem custo informado conta custo zero",
			appointments: []*domain.Appointment{
				{ServiceID: "SRV002", Value: 90},
			},
			expected: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarginPerHour(tt.appointments, services))
		})
	}
}

func TestScheduleOccupancy(t *testing.T) {
	services := []*domain.Service{
		{ID: "SRV001", DurationMinutes: 60},
	}

	appointments := []*domain.Appointment{
		{ServiceID: "SRV001"},
		{ServiceID: "SRV001"},
	}

	assert.Equal(t, 0.0, ScheduleOccupancy(appointments, 0, services))
	assert.Equal(t, 25.0, ScheduleOccupancy(appointments, 480, services))
}

func TestIdleCapacity(t *testing.T) {
	assert.Equal(t, 100.0, IdleCapacity(0))
	assert.Equal(t, 75.0, IdleCapacity(25))
}

func TestLTV(t *testing.T) {
	// Ticket de 50, duas visitas por mês, retenção de 12 meses
	assert.Equal(t, 1200.0, LTV(50, 2, 12))
	assert.Equal(t, 0.0, LTV(0, 2, 12))
}

func TestMRR(t *testing.T) {
	subscriptions := []*domain.Subscription{
		{Price: 100, Status: domain.SubscriptionStatusActive},
		{Price: 200, Status: domain.SubscriptionStatusCancelled},
	}

	assert.Equal(t, 100.0, MRR(subscriptions))
	assert.Equal(t, 0.0, MRR(nil))
}

func TestMarginReal(t *testing.T) {
	assert.Equal(t, 0.0, MarginReal(0, 50))
	assert.Equal(t, 40.0, MarginReal(100, 60))
}

func TestCancellationRate(t *testing.T) {
	tests := []struct {
		name         string
		appointments []*domain.Appointment
		expected     float64
	}{
		{
			name:         "Sem agendamentos - deve retornar zero",
			appointments: nil,
			expected:     0,
		},
		{
			name: "Um cancelado em quatro",
			appointments: []*domain.Appointment{
				{Status: domain.AppointmentStatusDone},
				{Status: domain.AppointmentStatusDone},
				{Status: domain.AppointmentStatusScheduled},
				{Status: domain.AppointmentStatusCancelled},
			},
			expected: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CancellationRate(tt.appointments))
		})
	}
}
