// Package metrics reúne os cálculos de indicadores financeiros do tenant.
// Todas as funções são puras e totais: coleção vazia resulta em zero, nunca
// em erro ou divisão por zero. Valores malformados (NaN, duração negativa)
// são responsabilidade de quem chama.
package metrics

import (
	"github.com/lfreitas/barber-manager-api/internal/domain"
)

// GrossRevenue soma os lançamentos de entrada (type = income)
func GrossRevenue(transactions []*domain.FinancialTransaction) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type == domain.TransactionTypeIncome {
			total += t.Value
		}
	}
	return total
}

// NetRevenue é a receita bruta menos os lançamentos de custo.
// Transferências ficam de fora dos dois lados.
func NetRevenue(transactions []*domain.FinancialTransaction) float64 {
	var costs float64
	for _, t := range transactions {
		if t.Type == domain.TransactionTypeCost {
			costs += t.Value
		}
	}
	return GrossRevenue(transactions) - costs
}

// MarginAbsolute é a margem em valor absoluto (= receita líquida)
func MarginAbsolute(transactions []*domain.FinancialTransaction) float64 {
	return NetRevenue(transactions)
}

// MarginPercent é a margem percentual sobre a receita bruta
func MarginPercent(transactions []*domain.FinancialTransaction) float64 {
	gross := GrossRevenue(transactions)
	if gross == 0 {
		return 0
	}
	return NetRevenue(transactions) / gross * 100
}

// AverageTicketGlobal é o ticket médio de todos os agendamentos
func AverageTicketGlobal(appointments []*domain.Appointment) float64 {
	if len(appointments) == 0 {
		return 0
	}

	var total float64
	for _, a := range appointments {
		total += a.Value
	}
	return total / float64(len(appointments))
}

// AverageTicketByCustomer é o ticket médio dos agendamentos de um cliente
func AverageTicketByCustomer(appointments []*domain.Appointment, customerID string) float64 {
	var total float64
	var count int
	for _, a := range appointments {
		if a.CustomerID == customerID {
			total += a.Value
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// AverageTicketByProfessional é o ticket médio dos agendamentos de um profissional
func AverageTicketByProfessional(appointments []*domain.Appointment, professionalID string) float64 {
	var total float64
	var count int
	for _, a := range appointments {
		if a.ProfessionalID == professionalID {
			total += a.Value
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// MarginPerHour calcula a margem por hora trabalhada. Agendamentos cujo
// serviço não existe mais no catálogo são ignorados.
func MarginPerHour(appointments []*domain.Appointment, services []*domain.Service) float64 {
	durationByService := make(map[string]int, len(services))
	for _, s := range services {
		durationByService[s.ID] = s.DurationMinutes
	}

	var margin float64
	var totalMinutes int
	for _, a := range appointments {
		duration, ok := durationByService[a.ServiceID]
		if !ok {
			continue
		}

		cost := 0.0
		if a.Cost != nil {
			cost = *a.Cost
		}

		margin += a.Value - cost
		totalMinutes += duration
	}

	if totalMinutes == 0 {
		return 0
	}
	return margin / (float64(totalMinutes) / 60)
}

// ScheduleOccupancy é o percentual da agenda ocupado pelos agendamentos,
// dado o total de minutos disponíveis no período
func ScheduleOccupancy(appointments []*domain.Appointment, availableMinutes int, services []*domain.Service) float64 {
	if availableMinutes == 0 {
		return 0
	}

	durationByService := make(map[string]int, len(services))
	for _, s := range services {
		durationByService[s.ID] = s.DurationMinutes
	}

	var bookedMinutes int
	for _, a := range appointments {
		bookedMinutes += durationByService[a.ServiceID]
	}

	return float64(bookedMinutes) / float64(availableMinutes) * 100
}

// IdleCapacity é o complemento da ocupação da agenda
func IdleCapacity(occupancyPercent float64) float64 {
	return 100 - occupancyPercent
}

// LTV projeta o valor total de um cliente ao longo da retenção
func LTV(avgTicket, monthlyFrequency, retentionMonths float64) float64 {
	return avgTicket * monthlyFrequency * retentionMonths
}

// MRR é a receita recorrente mensal das assinaturas ativas
func MRR(subscriptions []*domain.Subscription) float64 {
	var total float64
	for _, s := range subscriptions {
		if s.Status == domain.SubscriptionStatusActive {
			total += s.Price
		}
	}
	return total
}

// MarginReal é a forma alternativa de margem usada pelos simuladores,
// a partir de receita e custo já agregados
func MarginReal(revenue, cost float64) float64 {
	if revenue == 0 {
		return 0
	}
	return (revenue - cost) / revenue * 100
}

// CancellationRate é a proporção de agendamentos cancelados
func CancellationRate(appointments []*domain.Appointment) float64 {
	if len(appointments) == 0 {
		return 0
	}

	var cancelled int
	for _, a := range appointments {
		if a.Status == domain.AppointmentStatusCancelled {
			cancelled++
		}
	}
	return float64(cancelled) / float64(len(appointments))
}
