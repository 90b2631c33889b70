package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/aydinsoft/backoffice-backend/api/routes"
	"github.com/aydinsoft/backoffice-backend/internal/audit"
	authsvc "github.com/aydinsoft/backoffice-backend/internal/auth"
	"github.com/aydinsoft/backoffice-backend/internal/avatars"
	categorysvc "github.com/aydinsoft/backoffice-backend/internal/categories"
	"github.com/aydinsoft/backoffice-backend/internal/dashboard"
	expensesvc "github.com/aydinsoft/backoffice-backend/internal/expenses"
	invoicesvc "github.com/aydinsoft/backoffice-backend/internal/invoices"
	productsvc "github.com/aydinsoft/backoffice-backend/internal/products"
	"github.com/aydinsoft/backoffice-backend/internal/profiles"
	usersvc "github.com/aydinsoft/backoffice-backend/internal/users"
	"github.com/aydinsoft/backoffice-backend/pkg/auth/session"
	"github.com/aydinsoft/backoffice-backend/pkg/config"
	"github.com/aydinsoft/backoffice-backend/pkg/db"
	"github.com/aydinsoft/backoffice-backend/pkg/logger"
	"github.com/aydinsoft/backoffice-backend/pkg/metrics"
	"github.com/aydinsoft/backoffice-backend/pkg/migrate"
	"github.com/aydinsoft/backoffice-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userRepo := usersvc.NewRepository(dbClient.DB())
	productRepo := productsvc.NewRepository(dbClient.DB())
	invoiceRepo := invoicesvc.NewRepository(dbClient.DB())
	expenseRepo := expensesvc.NewRepository(dbClient.DB())
	categoryRepo := categorysvc.NewRepository(dbClient.DB())
	auditRepo := audit.NewRepository(dbClient.DB())

	if cfg.FeatureFlags.SeedAccounts {
		if err := usersvc.SeedDefaults(context.Background(), userRepo, cfg.Password, logg); err != nil {
			logg.Error(context.Background(), "failed to seed accounts", err)
			os.Exit(1)
		}
	}

	auditService, err := audit.NewService(auditRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create audit service", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	userService, err := usersvc.NewService(userRepo, auditService, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create user service", err)
		os.Exit(1)
	}

	productService, err := productsvc.NewService(productRepo, auditService)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	invoiceService, err := invoicesvc.NewService(invoiceRepo, auditService)
	if err != nil {
		logg.Error(context.Background(), "failed to create invoice service", err)
		os.Exit(1)
	}

	expenseService, err := expensesvc.NewService(expenseRepo, auditService)
	if err != nil {
		logg.Error(context.Background(), "failed to create expense service", err)
		os.Exit(1)
	}

	categoryService, err := categorysvc.NewService(categoryRepo, auditService)
	if err != nil {
		logg.Error(context.Background(), "failed to create category service", err)
		os.Exit(1)
	}

	dashboardService, err := dashboard.NewService(invoiceRepo, expenseRepo, productRepo, cfg.Dashboard)
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	profileStore, err := profiles.NewStore(cfg.Profiles.Path)
	if err != nil {
		logg.Error(context.Background(), "failed to create profile store", err)
		os.Exit(1)
	}

	avatarStore, err := avatars.NewStore(cfg.Avatars.Dir)
	if err != nil {
		logg.Error(context.Background(), "failed to create avatar store", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	handler := routes.NewRouter(routes.Deps{
		Config:      cfg,
		Logger:      logg,
		DB:          dbClient,
		Redis:       redisClient,
		Sessions:    sessionManager,
		Metrics:     httpMetrics,
		MetricsHTTP: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),

		Auth:       authService,
		Users:      userService,
		Products:   productService,
		Invoices:   invoiceService,
		Expenses:   expenseService,
		Categories: categoryService,
		Audit:      auditService,
		Dashboard:  dashboardService,
		Profiles:   profileStore,
		Avatars:    avatarStore,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	var closeErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		closeErr = multierr.Append(closeErr, err)
	}
	closeErr = multierr.Append(closeErr, redisClient.Close())
	closeErr = multierr.Append(closeErr, dbClient.Close())

	if closeErr != nil {
		logg.Error(ctx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}
