package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/lfreitas/barber-manager-api/infrastructure/repository"
	"github.com/lfreitas/barber-manager-api/internal/config"
	"github.com/lfreitas/barber-manager-api/internal/usecases/insighting"
)

// InsightJobConfig representa a configuração do agendador do job de insights
type InsightJobConfig struct {
	CronSchedule         string
	MaxConcurrentTenants int
	RequestDelaySeconds  int
	JobEnabled           bool
}

// InsightJobService gerencia o agendamento e execução do job de insights
// para todos os tenants
type InsightJobService struct {
	scheduler          *gocron.Scheduler
	config             InsightJobConfig
	appConfig          *config.Config
	tenantRepo         repository.TenantRepository
	insightService     insighting.Insighter
	jobRunning         bool
	jobMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewInsightJobService cria uma nova instância do serviço de job de insights
func NewInsightJobService(
	tenantRepo repository.TenantRepository,
	insightService insighting.Insighter,
	appConfig *config.Config,
) *InsightJobService {
	jobConfig := InsightJobConfig{
		CronSchedule:         appConfig.InsightJob.CronSchedule,
		MaxConcurrentTenants: appConfig.InsightJob.MaxConcurrentTenants,
		RequestDelaySeconds:  appConfig.InsightJob.RequestDelaySeconds,
		JobEnabled:           appConfig.InsightJob.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":          jobConfig.CronSchedule,
		"max_concurrent_tenants": jobConfig.MaxConcurrentTenants,
		"request_delay_seconds":  jobConfig.RequestDelaySeconds,
		"job_enabled":            jobConfig.JobEnabled,
	}).Info("Configuração do agendador do job de insights carregada")

	return &InsightJobService{
		scheduler:      scheduler,
		config:         jobConfig,
		appConfig:      appConfig,
		tenantRepo:     tenantRepo,
		insightService: insightService,
		jobRunning:     false,
	}
}

// Start inicia o agendador
func (s *InsightJobService) Start(ctx context.Context) error {
	if !s.config.JobEnabled {
		logrus.Info("Job de insights desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do job de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.processAllTenants()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar job de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do job de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun dispara o job manualmente (endpoint de cron). A execução
// acontece em background; se já houver uma execução em andamento, o disparo
// é ignorado pelo guard interno.
func (s *InsightJobService) TriggerManualRun() {
	go s.processAllTenants()
}

// IsRunning informa se há uma execução em andamento
func (s *InsightJobService) IsRunning() bool {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()
	return s.jobRunning
}

// GetStatus retorna o status atual do job para o endpoint de monitoramento
func (s *InsightJobService) GetStatus() map[string]any {
	return map[string]any{
		"job_enabled":           s.config.JobEnabled,
		"job_cron":              s.config.CronSchedule,
		"job_max_concurrent":    s.config.MaxConcurrentTenants,
		"job_request_delay_s":   s.config.RequestDelaySeconds,
		"job_running":           s.IsRunning(),
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}

// processAllTenants roda o processamento de insights para cada tenant.
// Falha em um tenant não interrompe os demais: o erro é logado e a execução
// segue para o próximo. Dentro de um tenant a política é fail-fast (ver
// insighting.Service).
func (s *InsightJobService) processAllTenants() {
	s.jobMutex.Lock()
	if s.jobRunning {
		s.jobMutex.Unlock()
		logrus.Info("Job de insights já em andamento, ignorando")
		return
	}
	s.jobRunning = true
	s.jobMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.jobMutex.Lock()
		s.jobRunning = false
		s.jobMutex.Unlock()
	}()

	logrus.Info("Iniciando job de insights para todos os tenants")

	tenants, err := s.tenantRepo.ListTenants()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de tenants para o job de insights")
		return
	}

	if len(tenants) == 0 {
		logrus.Info("Nenhum tenant encontrado para o job de insights")
		return
	}

	// Canal para controlar o número de tenants processados em paralelo
	semaphore := make(chan struct{}, s.config.MaxConcurrentTenants)
	var wg sync.WaitGroup

	var mu sync.Mutex
	succeeded := 0
	failed := 0

	for _, tenant := range tenants {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(tenantID, tenantName string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			generated, err := s.insightService.ProcessInsights(tenantID)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"tenant_id":   tenantID,
					"tenant_name": tenantName,
				}).Error("Erro ao processar insights do tenant")

				mu.Lock()
				failed++
				mu.Unlock()
				return
			}

			logrus.WithFields(logrus.Fields{
				"tenant_id":   tenantID,
				"tenant_name": tenantName,
				"generated":   len(generated),
			}).Info("Insights do tenant processados")

			mu.Lock()
			succeeded++
			mu.Unlock()

			if s.config.RequestDelaySeconds > 0 {
				time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
			}
		}(tenant.ID, tenant.Name)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"tenants":   len(tenants),
		"succeeded": succeeded,
		"failed":    failed,
	}).Info("Job de insights concluído")

	s.lastRunCompletedAt = time.Now()
}
