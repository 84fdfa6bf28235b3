package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "oficina_xpto/docs"
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/http/routes"
	"oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/infrastructure/cache"
	"oficina_xpto/internal/infrastructure/config"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/infrastructure/identity"
	"oficina_xpto/internal/infrastructure/logger"
	"oficina_xpto/internal/infrastructure/metrics"
	"oficina_xpto/internal/infrastructure/payments"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

// @title           Oficina XPTO API
// @version         1.0
// @description     Vehicle repair shop: budgets, service orders, invoices and payments.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[api] failed to load config")
	}
	logger.Setup(logger.Options{
		ServiceName: cfg.App.Name,
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("[api] stopped unexpectedly")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	db, err := database.NewGormDB(ctx, cfg.DB)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ddb, err := database.NewDynamoDBClient(ctx, cfg.DynamoDB)
	if err != nil {
		return err
	}

	sqlSequence := repository.NewSequenceGormRepository(db)
	var sequence interfaces.ISequence = sqlSequence
	if cfg.Sequence.UsesRedis() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		sequence = cache.NewRedisSequence(rdb, sqlSequence)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	workflowMetrics := metrics.New(registry)

	jwtGateway, err := identity.NewJWTGateway(cfg.JWT)
	if err != nil {
		return err
	}

	var paymentGateway interfaces.IPaymentGateway
	if !cfg.MercadoPago.Mock {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
		if err != nil {
			log.Warn().Err(err).Msg("[api] mercado pago gateway not configured")
		} else {
			paymentGateway = mpGateway
		}
	}

	tx := repository.NewGormTransactor(db)
	clientRepo := repository.NewClientGormRepository(db)
	vehicleRepo := repository.NewVehicleGormRepository(db)
	serviceRepo := repository.NewServiceGormRepository(db)
	budgetRepo := repository.NewBudgetGormRepository(db)
	orderRepo := repository.NewServiceOrderGormRepository(db)
	invoiceRepo := repository.NewInvoiceGormRepository(db)
	companyRepo := repository.NewCompanyGormRepository(db)
	userRepo := repository.NewUserGormRepository(db)
	paymentRepo := repository.NewInvoicePaymentDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable)

	workflow := usecase.WorkflowOptions{
		StrictTransitions:     cfg.Workflow.StrictTransitions,
		RequireCompletedOrder: cfg.Workflow.RequireCompletedOrder,
	}
	authUseCase := usecase.NewAuthUseCase(userRepo, identity.BcryptHasher{}, jwtGateway)

	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(authUseCase),
		Clients:  handlers.NewClientHandler(usecase.NewClientUseCase(tx, clientRepo)),
		Vehicles: handlers.NewVehicleHandler(usecase.NewVehicleUseCase(vehicleRepo, clientRepo)),
		Catalog: handlers.NewCatalogHandler(
			usecase.NewServiceCatalogUseCase(tx, sequence, serviceRepo),
			usecase.NewCompanyUseCase(companyRepo),
		),
		Budgets: handlers.NewBudgetHandler(
			usecase.NewBudgetUseCase(tx, sequence, budgetRepo, clientRepo, vehicleRepo, serviceRepo, workflowMetrics),
		),
		Orders: handlers.NewServiceOrderHandler(
			usecase.NewServiceOrderUseCase(tx, orderRepo, budgetRepo, clientRepo, vehicleRepo, serviceRepo, workflow),
		),
		Invoices: handlers.NewInvoiceHandler(
			usecase.NewInvoiceUseCase(tx, invoiceRepo, orderRepo, clientRepo, vehicleRepo, serviceRepo, companyRepo, workflowMetrics, workflow),
			usecase.NewReconciliationUseCase(tx, invoiceRepo, orderRepo, workflowMetrics),
		),
		Payments: handlers.NewInvoicePaymentHandler(usecase.NewInvoicePaymentUseCase(paymentRepo, invoiceRepo, paymentGateway, usecase.PaymentOptions{
			Mock:            cfg.MercadoPago.Mock,
			AccessToken:     cfg.MercadoPago.AccessToken,
			TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
			TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
		})),
		Dashboard: handlers.NewDashboardHandler(usecase.NewDashboardUseCase(clientRepo, vehicleRepo, orderRepo)),
	}

	gin.SetMode(gin.ReleaseMode)
	router := routes.NewRouter(h, routes.Options{
		Verifier:   authUseCase,
		Metrics:    workflowMetrics,
		Gatherer:   registry,
		CORSOrigin: cfg.App.CORSOrigin,
	})

	server := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("db_driver", cfg.DB.Driver).Str("sequence_backend", cfg.Sequence.Backend).
			Bool("payment_mock", cfg.MercadoPago.Mock).Msg("[api] starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("[api] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
