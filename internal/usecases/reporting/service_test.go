package reporting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/lfreitas/barber-manager-api/infrastructure/repository/mocks"
	"github.com/lfreitas/barber-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type reporterMocks struct {
	tenantRepo       *mocks.MockTenantRepository
	appointmentRepo  *mocks.MockAppointmentRepository
	transactionRepo  *mocks.MockTransactionRepository
	serviceRepo      *mocks.MockServiceRepository
	professionalRepo *mocks.MockProfessionalRepository
	subscriptionRepo *mocks.MockSubscriptionRepository
	forecastRepo     *mocks.MockForecastRepository
}

func newReporterWithMocks(ctrl *gomock.Controller) (Reporter, *reporterMocks) {
	m := &reporterMocks{
		tenantRepo:       mocks.NewMockTenantRepository(ctrl),
		appointmentRepo:  mocks.NewMockAppointmentRepository(ctrl),
		transactionRepo:  mocks.NewMockTransactionRepository(ctrl),
		serviceRepo:      mocks.NewMockServiceRepository(ctrl),
		professionalRepo: mocks.NewMockProfessionalRepository(ctrl),
		subscriptionRepo: mocks.NewMockSubscriptionRepository(ctrl),
		forecastRepo:     mocks.NewMockForecastRepository(ctrl),
	}

	service := NewService(
		m.tenantRepo,
		m.appointmentRepo,
		m.transactionRepo,
		m.serviceRepo,
		m.professionalRepo,
		m.subscriptionRepo,
		m.forecastRepo,
	)

	return service, m
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestService_GetFinancialSummary_InvalidFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newReporterWithMocks(ctrl)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		filters *domain.ReportFilters
	}{
		{
			name:    "Filtros nulos",
			filters: nil,
		},
		{
			name:    "Sem data de início",
			filters: &domain.ReportFilters{EndDate: timePtr(end)},
		},
		{
			name:    "Sem data de fim",
			filters: &domain.ReportFilters{StartDate: timePtr(start)},
		},
		{
			name: "Datas zeradas",
			filters: &domain.ReportFilters{
				StartDate: timePtr(time.Time{}),
				EndDate:   timePtr(time.Time{}),
			},
		},
		{
			name: "Início posterior ao fim",
			filters: &domain.ReportFilters{
				StartDate: timePtr(end),
				EndDate:   timePtr(start),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := service.GetFinancialSummary("TEN001", tt.filters)
			assert.Error(t, err)
			assert.Nil(t, summary)
		})
	}
}

func TestService_GetFinancialSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newReporterWithMocks(ctrl)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	filters := &domain.ReportFilters{StartDate: timePtr(start), EndDate: timePtr(end)}

	appointments := []*domain.Appointment{
		{ServiceID: "SRV001", Value: 40, Status: domain.AppointmentStatusDone},
		{ServiceID: "SRV001", Value: 60, Status: domain.AppointmentStatusDone},
	}
	transactions := []*domain.FinancialTransaction{
		{Type: domain.TransactionTypeIncome, Value: 100},
		{Type: domain.TransactionTypeIncome, Value: 100},
		{Type: domain.TransactionTypeCost, Value: 50},
	}
	services := []*domain.Service{
		{ID: "SRV001", DurationMinutes: 60},
	}
	professionals := []*domain.Professional{
		{ID: "PRO001", Name: "Carlos"},
	}
	subscriptions := []*domain.Subscription{
		{Price: 99.90, Status: domain.SubscriptionStatusActive},
	}

	m.tenantRepo.EXPECT().GetByID("TEN001").Return(&domain.Tenant{ID: "TEN001"}, nil)
	m.appointmentRepo.EXPECT().GetByTenantAndPeriod("TEN001", start, end).Return(appointments, nil)
	m.transactionRepo.EXPECT().GetByTenantAndPeriod("TEN001", start, end).Return(transactions, nil)
	m.serviceRepo.EXPECT().GetByTenant("TEN001").Return(services, nil)
	m.professionalRepo.EXPECT().GetByTenant("TEN001").Return(professionals, nil)
	m.subscriptionRepo.EXPECT().GetByTenant("TEN001").Return(subscriptions, nil)

	summary, err := service.GetFinancialSummary("TEN001", filters)

	assert.NoError(t, err)
	assert.Equal(t, "TEN001", summary.TenantID)
	assert.Equal(t, 200.0, summary.GrossRevenue)
	assert.Equal(t, 150.0, summary.NetRevenue)
	assert.Equal(t, 75.0, summary.MarginPercent)
	assert.Equal(t, 50.0, summary.AverageTicket)
	// Margem de 100 (custos não informados) em 2 horas trabalhadas
	assert.Equal(t, 50.0, summary.MarginPerHour)
	// 120 minutos agendados em 480 disponíveis (1 profissional x 1 dia x 8h)
	assert.Equal(t, 25.0, summary.ScheduleOccupancy)
	assert.Equal(t, 75.0, summary.IdleCapacity)
	assert.Equal(t, 99.90, summary.MRR)
	assert.Equal(t, 0.0, summary.CancellationRate)
}

func TestService_GetFinancialSummary_TenantNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newReporterWithMocks(ctrl)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	m.tenantRepo.EXPECT().GetByID("TEN999").Return(nil, nil)

	summary, err := service.GetFinancialSummary("TEN999", &domain.ReportFilters{
		StartDate: timePtr(start),
		EndDate:   timePtr(end),
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tenant não encontrado")
	assert.Nil(t, summary)
}

func TestService_GenerateForecast_InvalidHorizon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newReporterWithMocks(ctrl)

	for _, horizon := range []int{0, 45, 120, -30} {
		result, err := service.GenerateForecast("TEN001", horizon)
		assert.Error(t, err)
		assert.Nil(t, result)
	}
}

func TestService_GenerateForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newReporterWithMocks(ctrl)

	futureAppointments := []*domain.Appointment{
		{Value: 1000, Status: domain.AppointmentStatusScheduled},
	}
	pastAppointments := []*domain.Appointment{
		{Value: 900, Status: domain.AppointmentStatusDone},
		{Value: 100, Status: domain.AppointmentStatusCancelled},
	}
	subscriptions := []*domain.Subscription{
		{Price: 200, Status: domain.SubscriptionStatusActive},
	}

	m.tenantRepo.EXPECT().GetByID("TEN001").Return(&domain.Tenant{ID: "TEN001"}, nil)

	// Primeira busca é a janela futura, a segunda é o histórico de 90 dias
	gomock.InOrder(
		m.appointmentRepo.EXPECT().
			GetByTenantAndPeriod("TEN001", gomock.Any(), gomock.Any()).
			Return(futureAppointments, nil),
		m.appointmentRepo.EXPECT().
			GetByTenantAndPeriod("TEN001", gomock.Any(), gomock.Any()).
			Return(pastAppointments, nil),
	)

	m.subscriptionRepo.EXPECT().GetByTenant("TEN001").Return(subscriptions, nil)

	var saved *domain.Forecast
	m.forecastRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(f *domain.Forecast) error {
		saved = f
		return nil
	})

	result, err := service.GenerateForecast("TEN001", 30)

	assert.NoError(t, err)
	assert.Equal(t, result, saved)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "TEN001", result.TenantID)
	assert.Equal(t, domain.ForecastPeriod30d, result.Period)
	// 500*0.6 + 300*0.3 + 200*0.1
	assert.Equal(t, 410.0, result.Value)
	assert.Equal(t, 500.0, result.Details.AdjustedFutureRevenue)
	assert.Equal(t, 300.0, result.Details.HistoricalProjection)
	assert.Equal(t, 200.0, result.Details.SubscriptionRevenue)
	assert.Equal(t, 0.5, result.Details.CancellationRate)
}

func TestService_GenerateForecast_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newReporterWithMocks(ctrl)

	m.tenantRepo.EXPECT().GetByID("TEN001").Return(&domain.Tenant{ID: "TEN001"}, nil)
	m.appointmentRepo.EXPECT().
		GetByTenantAndPeriod("TEN001", gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(2)
	m.subscriptionRepo.EXPECT().GetByTenant("TEN001").Return(nil, nil)
	m.forecastRepo.EXPECT().Save(gomock.Any()).Return(fmt.Errorf("disco cheio"))

	result, err := service.GenerateForecast("TEN001", 60)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao persistir previsão")
	assert.Nil(t, result)
}

func TestService_ListForecasts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newReporterWithMocks(ctrl)

	forecasts := []*domain.Forecast{
		{ID: "FOR002", Period: domain.ForecastPeriod60d},
		{ID: "FOR001", Period: domain.ForecastPeriod30d},
	}

	m.forecastRepo.EXPECT().ListByTenant("TEN001").Return(forecasts, nil)

	result, err := service.ListForecasts("TEN001")

	assert.NoError(t, err)
	assert.Equal(t, forecasts, result)
}
