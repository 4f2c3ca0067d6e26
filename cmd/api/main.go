package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/lfreitas/barber-manager-api/infrastructure/database/postgres"
	"github.com/lfreitas/barber-manager-api/infrastructure/repository"
	"github.com/lfreitas/barber-manager-api/internal/api"
	"github.com/lfreitas/barber-manager-api/internal/config"
	"github.com/lfreitas/barber-manager-api/internal/scheduler"
	"github.com/lfreitas/barber-manager-api/internal/usecases/authenticating"
	"github.com/lfreitas/barber-manager-api/internal/usecases/insighting"
	"github.com/lfreitas/barber-manager-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tenantRepo := repository.NewTenantRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	appointmentRepo := repository.NewAppointmentRepository(pgConn)
	transactionRepo := repository.NewTransactionRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	professionalRepo := repository.NewProfessionalRepository(pgConn)
	serviceRepo := repository.NewServiceRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)
	costRepo := repository.NewCostRepository(pgConn)
	insightRepo := repository.NewInsightRepository(pgConn)
	forecastRepo := repository.NewForecastRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, tenantRepo, cfg)

	insightService := insighting.NewService(
		appointmentRepo,
		transactionRepo,
		customerRepo,
		professionalRepo,
		serviceRepo,
		productRepo,
		subscriptionRepo,
		costRepo,
		insightRepo,
	)

	reportService := reporting.NewService(
		tenantRepo,
		appointmentRepo,
		transactionRepo,
		serviceRepo,
		professionalRepo,
		subscriptionRepo,
		forecastRepo,
	)

	// Inicializa o agendador do job de insights
	insightJobService := scheduler.NewInsightJobService(tenantRepo, insightService, cfg)

	if err := insightJobService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do job de insights")
	} else {
		logrus.Info("Agendador do job de insights iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		reportService,
		authenticator,
		insightJobService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
