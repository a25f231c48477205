package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"rental-backend/internal/auth"
	"rental-backend/internal/cache"
	"rental-backend/internal/config"
	"rental-backend/internal/database"
	"rental-backend/internal/db"
	"rental-backend/internal/handlers"
	"rental-backend/internal/health"
	h "rental-backend/internal/http"
	"rental-backend/internal/middleware"
	"rental-backend/internal/monitoring"
	"rental-backend/internal/repositories"
	"rental-backend/internal/services"
	"rental-backend/internal/timeutil"
	"rental-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if cfg.Server.Timezone != "" {
		timeutil.SetLocation(cfg.Server.Timezone)
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional; without it login falls back to bcrypt every time
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (login will use bcrypt only)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS, ".")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.Run(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)

	// Monitoring dashboard on the side port
	go monitoring.NewMonitoringServer(pool, cfg.Server.MonitoringPort).Start()

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	preferenceRepo := repositories.NewPreferenceRepository(pool)
	propertyRepo := repositories.NewPropertyRepository(pool)
	unitRepo := repositories.NewUnitRepository(pool)
	clientRepo := repositories.NewClientRepository(pool)
	contractRepo := repositories.NewContractRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	maintenanceRepo := repositories.NewMaintenanceRepository(pool)
	vaultRepo := repositories.NewVaultRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	exchangeRepo := repositories.NewExchangeRepository(pool)

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	preferenceService := services.NewPreferenceService(preferenceRepo)
	propertyService := services.NewPropertyService(propertyRepo, unitRepo, contractRepo)
	unitService := services.NewUnitService(unitRepo, propertyRepo, contractRepo)
	clientService := services.NewClientService(clientRepo)
	contractService := services.NewContractService(contractRepo, unitRepo, clientRepo, paymentRepo)
	paymentService := services.NewPaymentService(paymentRepo, contractRepo)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, propertyRepo)
	vaultService := services.NewVaultService(vaultRepo)
	customerService := services.NewCustomerService(customerRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	exchangeService := services.NewExchangeService(exchangeRepo, vaultRepo, customerRepo)
	importService := services.NewImportService(propertyRepo, clientRepo, customerRepo, contractRepo)
	exportService := services.NewExportService(propertyRepo, unitRepo, clientRepo, contractRepo,
		paymentRepo, maintenanceRepo, vaultRepo, customerRepo, supplierRepo, exchangeRepo)

	// Background payment status rollover
	refresher := services.NewStatusRefresher(paymentRepo)
	refresher.Start()
	defer refresher.Stop()

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	unitHandler := handlers.NewUnitHandler(unitService)
	clientHandler := handlers.NewClientHandler(clientService)
	contractHandler := handlers.NewContractHandler(contractService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	vaultHandler := handlers.NewVaultHandler(vaultService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	exchangeHandler := handlers.NewExchangeHandler(exchangeService)
	importHandler := handlers.NewImportHandler(importService)
	exportHandler := handlers.NewExportHandler(exportService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	router := h.NewRouter(
		authHandler,
		propertyHandler,
		unitHandler,
		clientHandler,
		contractHandler,
		paymentHandler,
		maintenanceHandler,
		vaultHandler,
		customerHandler,
		supplierHandler,
		exchangeHandler,
		importHandler,
		exportHandler,
		preferenceHandler,
		healthHandler,
		authMiddleware,
	)

	corsWrapper := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsWrapper(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
