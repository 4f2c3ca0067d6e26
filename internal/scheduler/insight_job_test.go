package scheduler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/lfreitas/barber-manager-api/infrastructure/repository/mocks"
	"github.com/lfreitas/barber-manager-api/internal/domain"
	insightermocks "github.com/lfreitas/barber-manager-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func newJobService(tenantRepo *mocks.MockTenantRepository, insighter *insightermocks.MockInsighter) *InsightJobService {
	return &InsightJobService{
		config: InsightJobConfig{
			CronSchedule:         "0 5 * * *",
			MaxConcurrentTenants: 2,
			RequestDelaySeconds:  0,
			JobEnabled:           true,
		},
		tenantRepo:     tenantRepo,
		insightService: insighter,
	}
}

func TestInsightJobService_processAllTenants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)
	mockInsighter := insightermocks.NewMockInsighter(ctrl)

	service := newJobService(mockTenantRepo, mockInsighter)

	tenants := []*domain.Tenant{
		{ID: "TEN001", Name: "Barbearia A"},
		{ID: "TEN002", Name: "Barbearia B"},
		{ID: "TEN003", Name: "Barbearia C"},
	}

	mockTenantRepo.EXPECT().ListTenants().Return(tenants, nil)
	mockInsighter.EXPECT().ProcessInsights("TEN001").Return([]*domain.Insight{{ID: "INS001"}}, nil)
	mockInsighter.EXPECT().ProcessInsights("TEN002").Return(nil, nil)
	mockInsighter.EXPECT().ProcessInsights("TEN003").Return([]*domain.Insight{{ID: "INS002"}}, nil)

	service.processAllTenants()

	assert.False(t, service.IsRunning())
	assert.False(t, service.lastRunStartedAt.IsZero())
	assert.False(t, service.lastRunCompletedAt.IsZero())
}

// Falha em um tenant não interrompe o processamento dos demais
func TestInsightJobService_processAllTenants_ContinuesOnTenantError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)
	mockInsighter := insightermocks.NewMockInsighter(ctrl)

	service := newJobService(mockTenantRepo, mockInsighter)

	tenants := []*domain.Tenant{
		{ID: "TEN001", Name: "Barbearia A"},
		{ID: "TEN002", Name: "Barbearia B"},
	}

	mockTenantRepo.EXPECT().ListTenants().Return(tenants, nil)
	mockInsighter.EXPECT().ProcessInsights("TEN001").Return(nil, fmt.Errorf("erro ao montar contexto"))
	mockInsighter.EXPECT().ProcessInsights("TEN002").Return(nil, nil)

	service.processAllTenants()

	assert.False(t, service.IsRunning())
}

func TestInsightJobService_processAllTenants_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)
	mockInsighter := insightermocks.NewMockInsighter(ctrl)

	service := newJobService(mockTenantRepo, mockInsighter)
	service.jobRunning = true

	// Nenhuma chamada a ListTenants é esperada: o guard descarta a execução
	service.processAllTenants()

	assert.True(t, service.IsRunning())
}

func TestInsightJobService_processAllTenants_ListTenantsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)
	mockInsighter := insightermocks.NewMockInsighter(ctrl)

	service := newJobService(mockTenantRepo, mockInsighter)

	mockTenantRepo.EXPECT().ListTenants().Return(nil, fmt.Errorf("conexão recusada"))

	service.processAllTenants()

	assert.False(t, service.IsRunning())
}

func TestInsightJobService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)
	mockInsighter := insightermocks.NewMockInsighter(ctrl)

	service := newJobService(mockTenantRepo, mockInsighter)

	status := service.GetStatus()

	assert.Equal(t, true, status["job_enabled"])
	assert.Equal(t, "0 5 * * *", status["job_cron"])
	assert.Equal(t, 2, status["job_max_concurrent"])
	assert.Equal(t, false, status["job_running"])
}
