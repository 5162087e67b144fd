// internal/routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/config"
	"github.com/dairyking98/network-okidata/internal/database"
	"github.com/dairyking98/network-okidata/internal/discovery"
	"github.com/dairyking98/network-okidata/internal/handler"
	"github.com/dairyking98/network-okidata/internal/middleware"
	"github.com/dairyking98/network-okidata/internal/repository"
	"github.com/dairyking98/network-okidata/internal/service"
	"github.com/dairyking98/network-okidata/internal/utils"
)

// Router holds all dependencies for routing
type Router struct {
	config           *config.Config
	logger           *zap.Logger
	db               *database.DB
	printerService   *service.PrinterService
	scanners         *discovery.ScannerManager
	transmissionRepo repository.TransmissionRepository
	websocketHandler *handler.WebSocketHandler
}

// NewRouter creates a new router instance. The database and the
// transmission repository may be nil when history is disabled.
func NewRouter(
	config *config.Config,
	logger *zap.Logger,
	db *database.DB,
	printerService *service.PrinterService,
	scanners *discovery.ScannerManager,
	transmissionRepo repository.TransmissionRepository,
	websocketHandler *handler.WebSocketHandler,
) *Router {
	return &Router{
		config:           config,
		logger:           logger,
		db:               db,
		printerService:   printerService,
		scanners:         scanners,
		transmissionRepo: transmissionRepo,
		websocketHandler: websocketHandler,
	}
}

// SetupRouter creates and configures the Gin router
func (r *Router) SetupRouter() *gin.Engine {
	// Set Gin mode
	if r.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Create Gin engine
	router := gin.New()

	// Add middleware
	r.addMiddleware(router)

	// Add routes
	r.addRoutes(router)

	return router
}

// addMiddleware adds middleware to the router
func (r *Router) addMiddleware(router *gin.Engine) {
	// Recovery middleware
	router.Use(middleware.RecoveryMiddleware(r.logger))

	// Request ID middleware
	router.Use(middleware.RequestIDMiddleware())

	// Logging middleware
	serviceLogger := utils.NewServiceLogger(r.logger, "http-server")
	router.Use(middleware.LoggingMiddleware(serviceLogger))

	// CORS middleware
	router.Use(middleware.CORSMiddleware(&r.config.Server))

	r.logger.Info("Middleware configured")
}

// addRoutes sets up all application routes
func (r *Router) addRoutes(router *gin.Engine) {
	// Create handlers
	healthHandler := handler.NewHealthHandler(r.db, r.config, r.websocketHandler, r.logger)
	printerHandler := handler.NewPrinterHandler(r.printerService, r.websocketHandler, r.logger)
	discoveryHandler := handler.NewDiscoveryHandler(r.scanners, r.logger)

	// Health check routes
	healthHandler.RegisterRoutes(router.Group(""))

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	printerHandler.RegisterRoutes(apiV1)
	discoveryHandler.RegisterRoutes(apiV1)

	// History routes are only mounted when persistence is enabled
	if r.transmissionRepo != nil {
		transmissionHandler := handler.NewTransmissionHandler(r.transmissionRepo, r.logger)
		transmissionHandler.RegisterRoutes(apiV1)
	}

	// WebSocket routes
	ws := router.Group("/ws")
	r.websocketHandler.RegisterRoutes(ws)

	// Documentation routes
	r.addDocumentationRoutes(router)

	r.logger.Info("All routes configured successfully")
}

// addDocumentationRoutes sets up documentation routes
func (r *Router) addDocumentationRoutes(router *gin.Engine) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// Swagger redirect for convenience
	router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
}
