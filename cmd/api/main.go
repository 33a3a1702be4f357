package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	catalogUseCase "github.com/fbp-works/economy-service/internal/domain/usecase/catalog"
	purchaseUseCase "github.com/fbp-works/economy-service/internal/domain/usecase/purchase"
	redemptionUseCase "github.com/fbp-works/economy-service/internal/domain/usecase/redemption"
	registryUseCase "github.com/fbp-works/economy-service/internal/domain/usecase/registry"
	rewardUseCase "github.com/fbp-works/economy-service/internal/domain/usecase/reward"
	walletUseCase "github.com/fbp-works/economy-service/internal/domain/usecase/wallet"

	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/api/handler"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/api/routes"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/database"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/database/migration"
	gatewayAdapter "github.com/fbp-works/economy-service/internal/infrastructure/adapter/gateway"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/logger"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/repository"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/telemetry"
	timeProvider "github.com/fbp-works/economy-service/internal/infrastructure/adapter/time"
	"github.com/fbp-works/economy-service/internal/infrastructure/config"
	"github.com/fbp-works/economy-service/internal/infrastructure/scheduler"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Tracing is optional; the service runs fine without a collector
	if cfg.Telemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(context.Background(), cfg.Telemetry)
		if err != nil {
			appLogger.Error("Failed to initialize tracer", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				appLogger.Warn("Error shutting down tracer", map[string]any{
					"error": err.Error(),
				})
			}
		}()
	}

	dbManager := database.NewManager(cfg.Database, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	migrationMgr := migration.NewManager(dbManager.DB(), appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	walletRepo := repository.NewWalletRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	itemRepo := repository.NewItemRepository(dbManager.DB(), appLogger)
	inventoryRepo := repository.NewInventoryRepository(dbManager.DB(), appLogger)
	usageRepo := repository.NewItemUsageRepository(dbManager.DB(), appLogger)
	questRepo := repository.NewQuestRepository(dbManager.DB(), appLogger)

	// Chat gateway adapters
	gatewayClient := gatewayAdapter.NewClient(cfg.Gateway)
	notifier := gatewayAdapter.NewChannelNotifier(gatewayClient, cfg.Reward.NotificationGroupID)
	directory := gatewayAdapter.NewMemberDirectory(gatewayClient)

	// Use cases
	registry := registryUseCase.NewRegistry(userRepo, tp, appLogger)
	wallets := walletUseCase.NewService(walletRepo, transactionRepo, tp, appLogger)
	purchases := purchaseUseCase.NewOrchestrator(
		itemRepo,
		inventoryRepo,
		wallets,
		purchaseUseCase.NewKeyedLock(),
		tp,
		appLogger,
	)
	catalog := catalogUseCase.NewService(itemRepo, questRepo, inventoryRepo, walletRepo, tp, appLogger)
	redemptions := redemptionUseCase.NewService(itemRepo, inventoryRepo, usageRepo, tp, appLogger)
	resolver := rewardUseCase.NewResolver(questRepo, tp, appLogger, cfg.Reward.DefaultAmount)
	granter := rewardUseCase.NewGranter(
		resolver,
		rewardUseCase.NewDedupFilter(cfg.Reward.DedupWindow),
		registry,
		wallets,
		directory,
		notifier,
		appLogger,
		cfg.Reward.TriggerGroupID,
	)

	// Periodic ledger audit
	auditor := scheduler.NewLedgerAuditor(walletRepo, walletRepo, transactionRepo, appLogger, cfg.Audit.Schedule)
	if cfg.Audit.Enabled {
		if err := auditor.Start(); err != nil {
			appLogger.Error("Failed to start ledger audit", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer auditor.Stop()
	}

	// HTTP surface
	walletHandler := handler.NewWalletHandler(registry, wallets, appLogger)
	purchaseHandler := handler.NewPurchaseHandler(registry, purchases, appLogger)
	catalogHandler := handler.NewCatalogHandler(registry, catalog, appLogger)
	redemptionHandler := handler.NewRedemptionHandler(registry, redemptions, appLogger)
	eventHandler := handler.NewEventHandler(granter, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Telemetry.ServiceName, cfg.Telemetry.Enabled)
	routes.SetupRoutes(router, walletHandler, purchaseHandler, catalogHandler, redemptionHandler, eventHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or FBP_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or FBP_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missing = append(missing, "database.password (or FBP_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or FBP_DB_NAME environment variable)")
	}

	if cfg.Reward.TriggerGroupID == "" {
		missing = append(missing, "reward.triggerGroupId (or FBP_TRIGGER_GROUP_ID environment variable)")
	}
	if cfg.Gateway.BaseURL == "" {
		missing = append(missing, "gateway.baseUrl (or FBP_GATEWAY_BASE_URL environment variable)")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}
