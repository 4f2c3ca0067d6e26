package reporting

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/lfreitas/barber-manager-api/infrastructure/repository"
	"github.com/lfreitas/barber-manager-api/internal/domain"
	"github.com/lfreitas/barber-manager-api/internal/forecast"
	"github.com/lfreitas/barber-manager-api/internal/metrics"
	"github.com/lfreitas/barber-manager-api/pkg/utils"
)

// Jornada de trabalho assumida por profissional ao estimar a capacidade da
// agenda no resumo financeiro
const workdayMinutes = 8 * 60

// Reporter expõe os relatórios financeiros consolidados e as previsões de
// receita do tenant
type Reporter interface {
	GetFinancialSummary(tenantID string, filters *domain.ReportFilters) (*domain.FinancialSummary, error)
	GenerateForecast(tenantID string, horizonDays int) (*domain.Forecast, error)
	ListForecasts(tenantID string) ([]*domain.Forecast, error)
}

type Service struct {
	tenantRepo       repository.TenantRepository
	appointmentRepo  repository.AppointmentRepository
	transactionRepo  repository.TransactionRepository
	serviceRepo      repository.ServiceRepository
	professionalRepo repository.ProfessionalRepository
	subscriptionRepo repository.SubscriptionRepository
	forecastRepo     repository.ForecastRepository
}

func NewService(
	tenantRepo repository.TenantRepository,
	appointmentRepo repository.AppointmentRepository,
	transactionRepo repository.TransactionRepository,
	serviceRepo repository.ServiceRepository,
	professionalRepo repository.ProfessionalRepository,
	subscriptionRepo repository.SubscriptionRepository,
	forecastRepo repository.ForecastRepository,
) Reporter {
	return &Service{
		tenantRepo:       tenantRepo,
		appointmentRepo:  appointmentRepo,
		transactionRepo:  transactionRepo,
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		subscriptionRepo: subscriptionRepo,
		forecastRepo:     forecastRepo,
	}
}

// GetFinancialSummary consolida os indicadores do tenant no período pedido
func (s *Service) GetFinancialSummary(tenantID string, filters *domain.ReportFilters) (*domain.FinancialSummary, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil ||
		filters.StartDate.IsZero() || filters.EndDate.IsZero() {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar tenant")
	}
	if tenant == nil {
		return nil, fmt.Errorf("tenant não encontrado: %s", tenantID)
	}

	appointments, err := s.appointmentRepo.GetByTenantAndPeriod(tenantID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar agendamentos do período")
	}

	transactions, err := s.transactionRepo.GetByTenantAndPeriod(tenantID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar lançamentos do período")
	}

	services, err := s.serviceRepo.GetByTenant(tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar serviços")
	}

	professionals, err := s.professionalRepo.GetByTenant(tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar profissionais")
	}

	subscriptions, err := s.subscriptionRepo.GetByTenant(tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar assinaturas")
	}

	availableMinutes := s.availableMinutes(professionals, *filters.StartDate, *filters.EndDate)
	occupancy := metrics.ScheduleOccupancy(appointments, availableMinutes, services)

	summary := &domain.FinancialSummary{
		TenantID:          tenantID,
		GrossRevenue:      utils.RoundWithTwoDecimalPlace(metrics.GrossRevenue(transactions)),
		NetRevenue:        utils.RoundWithTwoDecimalPlace(metrics.NetRevenue(transactions)),
		MarginPercent:     utils.RoundWithTwoDecimalPlace(metrics.MarginPercent(transactions)),
		AverageTicket:     utils.RoundWithTwoDecimalPlace(metrics.AverageTicketGlobal(appointments)),
		MarginPerHour:     utils.RoundWithTwoDecimalPlace(metrics.MarginPerHour(appointments, services)),
		ScheduleOccupancy: utils.RoundWithTwoDecimalPlace(occupancy),
		IdleCapacity:      utils.RoundWithTwoDecimalPlace(metrics.IdleCapacity(occupancy)),
		MRR:               utils.RoundWithTwoDecimalPlace(metrics.MRR(subscriptions)),
		CancellationRate:  utils.RoundWithTwoDecimalPlace(metrics.CancellationRate(appointments)),
		Filters:           filters,
	}

	return summary, nil
}

// availableMinutes estima a capacidade da agenda: profissionais x dias do
// período x jornada de 8 horas
func (s *Service) availableMinutes(professionals []*domain.Professional, startDate, endDate time.Time) int {
	days := int(endDate.Sub(startDate).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return len(professionals) * days * workdayMinutes
}

// GenerateForecast roda o motor de previsão para o horizonte pedido e
// persiste o resultado para histórico
func (s *Service) GenerateForecast(tenantID string, horizonDays int) (*domain.Forecast, error) {
	period, err := forecast.PeriodFromHorizon(horizonDays)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar tenant")
	}
	if tenant == nil {
		return nil, fmt.Errorf("tenant não encontrado: %s", tenantID)
	}

	now := time.Now()

	// Agendamentos dentro do horizonte, independente de status
	futureAppointments, err := s.appointmentRepo.GetByTenantAndPeriod(tenantID, now, now.AddDate(0, 0, horizonDays))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar agendamentos futuros")
	}

	// Janela fixa de histórico exigida pelo motor
	pastAppointments, err := s.appointmentRepo.GetByTenantAndPeriod(tenantID, now.AddDate(0, 0, -forecast.HistoryWindowDays), now)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar histórico de agendamentos")
	}

	subscriptions, err := s.subscriptionRepo.GetByTenant(tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar assinaturas")
	}

	projected, details := forecast.Revenue(futureAppointments, pastAppointments, subscriptions, horizonDays)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da previsão")
	}

	result := &domain.Forecast{
		ID:        id,
		TenantID:  tenantID,
		Period:    period,
		Value:     utils.RoundWithTwoDecimalPlace(projected),
		CreatedAt: now,
		Details:   details,
	}

	if err := s.forecastRepo.Save(result); err != nil {
		return nil, errors.Wrap(err, "erro ao persistir previsão")
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"period":    period,
		"value":     result.Value,
	}).Info("Previsão de receita gerada")

	return result, nil
}

func (s *Service) ListForecasts(tenantID string) ([]*domain.Forecast, error) {
	return s.forecastRepo.ListByTenant(tenantID)
}
