package insighting

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/lfreitas/barber-manager-api/infrastructure/repository"
	"github.com/lfreitas/barber-manager-api/internal/domain"
	"github.com/lfreitas/barber-manager-api/internal/insight"
)

// Service orquestra a execução dos módulos de insight para um tenant
type Service struct {
	appointmentRepo  repository.AppointmentRepository
	transactionRepo  repository.TransactionRepository
	customerRepo     repository.CustomerRepository
	professionalRepo repository.ProfessionalRepository
	serviceRepo      repository.ServiceRepository
	productRepo      repository.ProductRepository
	subscriptionRepo repository.SubscriptionRepository
	costRepo         repository.CostRepository
	insightRepo      repository.InsightRepository
	modules          []insight.Module
}

func NewService(
	appointmentRepo repository.AppointmentRepository,
	transactionRepo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
	professionalRepo repository.ProfessionalRepository,
	serviceRepo repository.ServiceRepository,
	productRepo repository.ProductRepository,
	subscriptionRepo repository.SubscriptionRepository,
	costRepo repository.CostRepository,
	insightRepo repository.InsightRepository,
) Insighter {
	return &Service{
		appointmentRepo:  appointmentRepo,
		transactionRepo:  transactionRepo,
		customerRepo:     customerRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		productRepo:      productRepo,
		subscriptionRepo: subscriptionRepo,
		costRepo:         costRepo,
		insightRepo:      insightRepo,
		modules:          insight.Registry(),
	}
}

// ProcessInsights roda todos os módulos registrados sobre o contexto do
// tenant e persiste cada insight disparado.
//
// Política de falha: a primeira falha (de busca, de módulo ou de escrita)
// interrompe a execução e sobe para quem chamou. Falha em cálculo de insight
// indica problema de integridade de dados e merece aparecer, não ser engolida.
// Não há deduplicação: duas execuções seguidas com os mesmos dados geram
// insights duplicados — o cooldown do módulo é metadado consultivo.
func (s *Service) ProcessInsights(tenantID string) ([]*domain.Insight, error) {
	startTime := time.Now()

	ctx, err := s.buildContext(tenantID)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao montar contexto do tenant %s", tenantID)
	}

	generated := make([]*domain.Insight, 0)
	for _, module := range s.modules {
		if !module.Evaluate(ctx) {
			continue
		}

		result, err := module.Generate(ctx)
		if err != nil {
			return generated, errors.Wrapf(err, "erro ao gerar insight do módulo %s", module.ID())
		}

		if err := s.insightRepo.Save(result); err != nil {
			return generated, errors.Wrapf(err, "erro ao persistir insight do módulo %s", module.ID())
		}

		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"module_id": module.ID(),
			"priority":  result.Priority,
		}).Info("Insight gerado e persistido")

		generated = append(generated, result)
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":   tenantID,
		"modules":     len(s.modules),
		"generated":   len(generated),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Processamento de insights concluído")

	return generated, nil
}

// buildContext busca as oito coleções do tenant em paralelo e monta a
// fotografia consumida pelos módulos. Não há dependência de ordem entre as
// buscas; a montagem só prossegue quando todas terminam.
func (s *Service) buildContext(tenantID string) (*insight.Context, error) {
	ctx := &insight.Context{
		TenantID: tenantID,
		Now:      time.Now(),
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	wg.Add(8)

	go func() {
		defer wg.Done()
		appointments, err := s.appointmentRepo.GetByTenant(tenantID)
		if err != nil {
			fail(errors.Wrap(err, "erro ao buscar agendamentos"))
			return
		}
		ctx.Appointments = appointments
	}()

	go func() {
		defer wg.Done()
		transactions, err := s.transactionRepo.GetByTenant(tenantID)
		if err != nil {
			fail(errors.Wrap(err, "erro ao buscar lançamentos financeiros"))
			return
		}
		ctx.Transactions = transactions
	}()

	go func() {
		defer wg.Done()
		customers, err := s.customerRepo.GetByTenant(tenantID)
		if err != nil {
			fail(errors.Wrap(err, "erro ao buscar clientes"))
			return
		}
		ctx.Customers = customers
	}()

	go func() {
		defer wg.Done()
		professionals, err := s.professionalRepo.GetByTenant(tenantID)
		if err != nil {
			fail(errors.Wrap(err, "erro ao buscar profissionais"))
			return
		}
		ctx.Professionals = professionals
	}()

	go func() {
		defer wg.Done()
		services, err := s.serviceRepo.GetByTenant(tenantID)
		if err != nil {
			fail(errors.Wrap(err, "erro ao buscar serviços"))
			return
		}
		ctx.Services = services
	}()

	go func() {
		defer wg.Done()
		products, err := s.productRepo.GetByTenant(tenantID)
		if err != nil {
			fail(errors.Wrap(err, "erro ao buscar produtos"))
			return
		}
		ctx.Products = products
	}()

	go func() {
		defer wg.Done()
		subscriptions, err := s.subscriptionRepo.GetByTenant(tenantID)
		if err != nil {
			fail(errors.Wrap(err, "erro ao buscar assinaturas"))
			return
		}
		ctx.Subscriptions = subscriptions
	}()

	go func() {
		defer wg.Done()
		costs, err := s.costRepo.GetByTenant(tenantID)
		if err != nil {
			fail(errors.Wrap(err, "erro ao buscar despesas"))
			return
		}
		ctx.Costs = costs
	}()

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return ctx, nil
}

func (s *Service) ListActiveInsights(tenantID string) ([]*domain.Insight, error) {
	return s.insightRepo.ListActiveByTenant(tenantID)
}

func (s *Service) ResolveInsight(insightID string) error {
	return s.insightRepo.Resolve(insightID)
}

func (s *Service) IgnoreInsight(insightID string) error {
	return s.insightRepo.Ignore(insightID)
}
