// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/dairyking98/network-okidata/docs"
	"github.com/dairyking98/network-okidata/internal/config"
	"github.com/dairyking98/network-okidata/internal/database"
	"github.com/dairyking98/network-okidata/internal/discovery"
	"github.com/dairyking98/network-okidata/internal/handler"
	"github.com/dairyking98/network-okidata/internal/model"
	"github.com/dairyking98/network-okidata/internal/repository"
	"github.com/dairyking98/network-okidata/internal/routes"
	"github.com/dairyking98/network-okidata/internal/service"
	"github.com/dairyking98/network-okidata/internal/transport"
	"github.com/dairyking98/network-okidata/internal/utils"
)

// Application represents the main application
type Application struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	database *database.DB

	printerService *service.PrinterService
	scanners       *discovery.ScannerManager

	transmissionRepo repository.TransmissionRepository

	eventBus         *handler.EventBus
	websocketHandler *handler.WebSocketHandler
	eventHandler     *handler.TransmissionEventHandler

	stopCleanup chan struct{}
}

// @title Network Okidata API
// @version 1.0.0
// @description Command and session service for Okidata MICROLINE dot-matrix printers
// @termsOfService http://swagger.io/terms/

// @contact.name Network Okidata Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8090
// @BasePath /api/v1
func main() {
	// Initialize application
	app, err := NewApplication()
	if err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	// Start the application
	if err := app.Start(); err != nil {
		app.logger.Fatal("Failed to start application", zap.Error(err))
	}
}

// NewApplication creates a new application instance
func NewApplication() (*Application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger, err := utils.NewLogger(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Create service logger
	serviceLogger := utils.NewServiceLogger(logger, "network-okidata")
	serviceLogger.LogServiceStart(cfg.App.Version, cfg)

	app := &Application{
		config: cfg,
		logger: logger,
	}

	// Initialize components
	if err := app.initializeHistory(); err != nil {
		return nil, fmt.Errorf("failed to initialize history store: %w", err)
	}

	if err := app.initializePrinter(); err != nil {
		return nil, fmt.Errorf("failed to initialize printer service: %w", err)
	}

	app.initializeDiscovery()

	if err := app.initializeServer(); err != nil {
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	return app, nil
}

// initializeHistory sets up the optional transmission history store.
// When history is disabled the service runs without a database.
func (app *Application) initializeHistory() error {
	if !app.config.History.Enabled {
		app.logger.Info("Transmission history disabled, skipping database setup")
		return nil
	}

	db, err := database.NewConnection(app.config, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create database connection: %w", err)
	}
	app.database = db

	migrator := database.NewMigrator(db, app.logger, &app.config.Database)
	if err := migrator.Up(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	app.transmissionRepo = repository.NewTransmissionRepository(db, app.logger)

	app.logger.Info("Transmission history initialized")
	return nil
}

// initializePrinter wires the event bus, the debug stream and the
// printer service together. The transport observer is bound late
// because the websocket handler needs the printer service and the
// event handler needs the websocket handler.
func (app *Application) initializePrinter() error {
	app.eventBus = handler.NewEventBus()
	go app.eventBus.Start()

	observer := transport.Observer(func(tx *model.Transmission) {
		if app.eventHandler != nil {
			app.eventHandler.HandleTransmission(tx)
		}
	})

	svc, err := service.NewPrinterService(&app.config.Printer, observer, app.logger)
	if err != nil {
		return err
	}
	app.printerService = svc

	app.websocketHandler = handler.NewWebSocketHandler(svc, app.eventBus, app.logger)
	app.eventHandler = handler.NewTransmissionEventHandler(
		app.websocketHandler,
		app.eventBus,
		app.transmissionRepo,
		app.logger,
	)

	app.printerService.Start()

	if app.config.Printer.PushDefaultsOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.printerService.PushDefaults(ctx); err != nil {
			// The device may be offline at startup; the session state is
			// still initialized and later sends retry the wire.
			app.logger.Warn("Failed to push defaults to printer", zap.Error(err))
		}
	}

	app.logger.Info("Printer service initialized",
		zap.String("transport", app.config.Printer.Transport),
		zap.String("host", app.config.Printer.Host),
		zap.String("port", app.config.Printer.Port),
	)
	return nil
}

// initializeDiscovery registers the printer scanners
func (app *Application) initializeDiscovery() {
	app.scanners = discovery.NewScannerManager(app.logger)
	app.scanners.RegisterScanner(discovery.NewTCPScanner(app.logger, nil))
	app.scanners.RegisterScanner(discovery.NewSerialScanner(app.logger, nil))
}

// initializeServer sets up HTTP server and routes
func (app *Application) initializeServer() error {
	// Create router
	routerManager := routes.NewRouter(
		app.config,
		app.logger,
		app.database,
		app.printerService,
		app.scanners,
		app.transmissionRepo,
		app.websocketHandler,
	)

	// Setup router with all routes
	router := routerManager.SetupRouter()

	// Create HTTP server
	app.server = &http.Server{
		Addr:         app.config.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  app.config.Server.ReadTimeout,
		WriteTimeout: app.config.Server.WriteTimeout,
		IdleTimeout:  app.config.Server.IdleTimeout,
	}

	app.logger.Info("HTTP server initialized",
		zap.String("address", app.config.GetServerAddr()),
	)

	return nil
}

// startBackgroundServices starts background services
func (app *Application) startBackgroundServices() {
	if app.database != nil {
		app.stopCleanup = make(chan struct{})
		go app.startCleanupService()
	}
}

// startCleanupService periodically trims old transmission records
func (app *Application) startCleanupService() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	app.logger.Info("History cleanup service started")

	for {
		select {
		case <-app.stopCleanup:
			app.logger.Info("History cleanup service stopped")
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)

			oldDate := time.Now().AddDate(0, 0, -30)
			deleted, err := app.transmissionRepo.DeleteOldTransmissions(ctx, oldDate)
			if err != nil {
				app.logger.Error("Failed to cleanup old transmissions", zap.Error(err))
			} else if deleted > 0 {
				app.logger.Info("Cleaned up old transmissions", zap.Int64("deleted", deleted))
			}

			cancel()
		}
	}
}

// waitForShutdown waits for shutdown signal and performs graceful shutdown
func (app *Application) waitForShutdown() {
	// Create channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for signal
	sig := <-quit
	app.logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	// Perform graceful shutdown
	app.shutdown()
}

// shutdown performs graceful shutdown
func (app *Application) shutdown() {
	serviceLogger := utils.NewServiceLogger(app.logger, "network-okidata")
	serviceLogger.LogServiceStop("shutdown signal received")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		app.logger.Info("HTTP server stopped")
	}

	// Stop the sequencer; pending line steps are dropped
	app.printerService.Stop()

	if app.stopCleanup != nil {
		close(app.stopCleanup)
	}

	// Close database connection
	if app.database != nil {
		if err := app.database.Close(); err != nil {
			app.logger.Error("Database close error", zap.Error(err))
		} else {
			app.logger.Info("Database connection closed")
		}
	}

	// Flush logger
	if err := utils.CloseLogger(app.logger); err != nil {
		fmt.Printf("Logger close error: %v\n", err)
	}

	app.logger.Info("Application shutdown completed")
}

func (app *Application) Start() error {
	// Start server in goroutine
	go func() {
		app.logger.Info("Starting HTTP server",
			zap.String("address", app.server.Addr),
		)

		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Start background services
	app.startBackgroundServices()

	// Wait for interrupt signal
	app.waitForShutdown()

	return nil
}
