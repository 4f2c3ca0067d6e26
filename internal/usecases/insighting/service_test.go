package insighting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/lfreitas/barber-manager-api/infrastructure/repository/mocks"
	"github.com/lfreitas/barber-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	appointmentRepo  *mocks.MockAppointmentRepository
	transactionRepo  *mocks.MockTransactionRepository
	customerRepo     *mocks.MockCustomerRepository
	professionalRepo *mocks.MockProfessionalRepository
	serviceRepo      *mocks.MockServiceRepository
	productRepo      *mocks.MockProductRepository
	subscriptionRepo *mocks.MockSubscriptionRepository
	costRepo         *mocks.MockCostRepository
	insightRepo      *mocks.MockInsightRepository
}

func newServiceWithMocks(ctrl *gomock.Controller) (Insighter, *serviceMocks) {
	m := &serviceMocks{
		appointmentRepo:  mocks.NewMockAppointmentRepository(ctrl),
		transactionRepo:  mocks.NewMockTransactionRepository(ctrl),
		customerRepo:     mocks.NewMockCustomerRepository(ctrl),
		professionalRepo: mocks.NewMockProfessionalRepository(ctrl),
		serviceRepo:      mocks.NewMockServiceRepository(ctrl),
		productRepo:      mocks.NewMockProductRepository(ctrl),
		subscriptionRepo: mocks.NewMockSubscriptionRepository(ctrl),
		costRepo:         mocks.NewMockCostRepository(ctrl),
		insightRepo:      mocks.NewMockInsightRepository(ctrl),
	}

	service := NewService(
		m.appointmentRepo,
		m.transactionRepo,
		m.customerRepo,
		m.professionalRepo,
		m.serviceRepo,
		m.productRepo,
		m.subscriptionRepo,
		m.costRepo,
		m.insightRepo,
	)

	return service, m
}

// expectContextFetch prepara as oito buscas do contexto do tenant
func (m *serviceMocks) expectContextFetch(tenantID string, appointments []*domain.Appointment, transactions []*domain.FinancialTransaction) {
	m.appointmentRepo.EXPECT().GetByTenant(tenantID).Return(appointments, nil)
	m.transactionRepo.EXPECT().GetByTenant(tenantID).Return(transactions, nil)
	m.customerRepo.EXPECT().GetByTenant(tenantID).Return(nil, nil)
	m.professionalRepo.EXPECT().GetByTenant(tenantID).Return(nil, nil)
	m.serviceRepo.EXPECT().GetByTenant(tenantID).Return(nil, nil)
	m.productRepo.EXPECT().GetByTenant(tenantID).Return(nil, nil)
	m.subscriptionRepo.EXPECT().GetByTenant(tenantID).Return(nil, nil)
	m.costRepo.EXPECT().GetByTenant(tenantID).Return(nil, nil)
}

func TestService_ProcessInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	// Ticket médio 30 dispara low_average_ticket; margem de 10% dispara low_margin
	appointments := []*domain.Appointment{
		{ID: "APT001", Value: 30, Status: domain.AppointmentStatusDone},
	}
	transactions := []*domain.FinancialTransaction{
		{Type: domain.TransactionTypeIncome, Value: 100},
		{Type: domain.TransactionTypeCost, Value: 90},
	}

	m.expectContextFetch("TEN001", appointments, transactions)
	m.insightRepo.EXPECT().Save(gomock.Any()).Return(nil).Times(2)

	generated, err := service.ProcessInsights("TEN001")

	assert.NoError(t, err)
	assert.Len(t, generated, 2)
	assert.Equal(t, "low_average_ticket", generated[0].ModuleID)
	assert.Equal(t, "low_margin", generated[1].ModuleID)
	for _, ins := range generated {
		assert.Equal(t, "TEN001", ins.TenantID)
		assert.Equal(t, domain.InsightStatusActive, ins.Status)
	}
}

func TestService_ProcessInsights_NothingTriggers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	// Ticket médio saudável e margem saudável: nenhum módulo dispara e nada
	// é persistido
	appointments := []*domain.Appointment{
		{ID: "APT001", Value: 80, Status: domain.AppointmentStatusDone},
	}
	transactions := []*domain.FinancialTransaction{
		{Type: domain.TransactionTypeIncome, Value: 100},
		{Type: domain.TransactionTypeCost, Value: 30},
	}

	m.expectContextFetch("TEN001", appointments, transactions)

	generated, err := service.ProcessInsights("TEN001")

	assert.NoError(t, err)
	assert.Empty(t, generated)
}

// Duas execuções seguidas com os mesmos dados inserem duas vezes: o cooldown
// é metadado consultivo e não há deduplicação na escrita. Se este teste
// quebrar, deduplicação foi introduzida e o contrato do job mudou.
func TestService_ProcessInsights_DuplicatesOnRerun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	appointments := []*domain.Appointment{
		{ID: "APT001", Value: 30, Status: domain.AppointmentStatusDone},
	}

	saved := make([]*domain.Insight, 0)

	for i := 0; i < 2; i++ {
		m.expectContextFetch("TEN001", appointments, nil)
		m.insightRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(ins *domain.Insight) error {
			saved = append(saved, ins)
			return nil
		})
	}

	first, err := service.ProcessInsights("TEN001")
	assert.NoError(t, err)

	second, err := service.ProcessInsights("TEN001")
	assert.NoError(t, err)

	assert.Len(t, saved, 2)
	assert.Equal(t, first[0].ModuleID, second[0].ModuleID)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestService_ProcessInsights_FetchFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.appointmentRepo.EXPECT().GetByTenant("TEN001").Return(nil, fmt.Errorf("conexão recusada"))
	m.transactionRepo.EXPECT().GetByTenant("TEN001").Return(nil, nil)
	m.customerRepo.EXPECT().GetByTenant("TEN001").Return(nil, nil)
	m.professionalRepo.EXPECT().GetByTenant("TEN001").Return(nil, nil)
	m.serviceRepo.EXPECT().GetByTenant("TEN001").Return(nil, nil)
	m.productRepo.EXPECT().GetByTenant("TEN001").Return(nil, nil)
	m.subscriptionRepo.EXPECT().GetByTenant("TEN001").Return(nil, nil)
	m.costRepo.EXPECT().GetByTenant("TEN001").Return(nil, nil)

	generated, err := service.ProcessInsights("TEN001")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao montar contexto do tenant TEN001")
	assert.Nil(t, generated)
}

func TestService_ProcessInsights_SaveFailureStopsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	appointments := []*domain.Appointment{
		{ID: "APT001", Value: 30, Status: domain.AppointmentStatusDone},
	}
	transactions := []*domain.FinancialTransaction{
		{Type: domain.TransactionTypeIncome, Value: 100},
		{Type: domain.TransactionTypeCost, Value: 90},
	}

	m.expectContextFetch("TEN001", appointments, transactions)

	// O primeiro módulo falha ao persistir; o segundo nem roda
	m.insightRepo.EXPECT().Save(gomock.Any()).Return(fmt.Errorf("disco cheio"))

	generated, err := service.ProcessInsights("TEN001")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao persistir insight do módulo low_average_ticket")
	assert.Empty(t, generated)
}

func TestService_ResolveRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	active := []*domain.Insight{
		{ID: "INS001", Status: domain.InsightStatusActive, Priority: 10},
		{ID: "INS002", Status: domain.InsightStatusActive, Priority: 8},
	}

	m.insightRepo.EXPECT().ListActiveByTenant("TEN001").Return(active, nil)
	m.insightRepo.EXPECT().Resolve("INS001").Return(nil)
	// Depois de resolvido, o insight sai da listagem de ativos
	m.insightRepo.EXPECT().ListActiveByTenant("TEN001").Return(active[1:], nil)

	before, err := service.ListActiveInsights("TEN001")
	assert.NoError(t, err)
	assert.Len(t, before, 2)

	assert.NoError(t, service.ResolveInsight("INS001"))

	after, err := service.ListActiveInsights("TEN001")
	assert.NoError(t, err)
	assert.Len(t, after, 1)
	assert.Equal(t, "INS002", after[0].ID)
}

func TestService_IgnoreInsight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.insightRepo.EXPECT().Ignore("INS001").Return(nil)

	assert.NoError(t, service.IgnoreInsight("INS001"))
}
