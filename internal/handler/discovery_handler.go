// internal/handler/discovery_handler.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/discovery"
	"github.com/dairyking98/network-okidata/internal/utils"
)

// DiscoveryHandler handles printer discovery requests
type DiscoveryHandler struct {
	scanners *discovery.ScannerManager
	logger   *utils.ServiceLogger
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(scanners *discovery.ScannerManager, logger *zap.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		scanners: scanners,
		logger:   utils.NewServiceLogger(logger, "discovery-handler"),
	}
}

// RegisterRoutes registers discovery routes
func (h *DiscoveryHandler) RegisterRoutes(router *gin.RouterGroup) {
	d := router.Group("/discovery")
	{
		d.GET("/scan", h.ScanPrinters)
		d.GET("/scanners", h.ListScanners)
	}
}

// ScanPrinters scans for reachable printers
// @Summary Scan for printers
// @Description Probe the network and serial ports for printer candidates
// @Tags Discovery
// @Produce json
// @Param type query string false "Scan type" Enums(all, tcp, serial) default(all)
// @Success 200 {object} utils.APIResponse{data=object{printers_found=int,printers=[]discovery.DiscoveredPrinter}} "Scan completed"
// @Failure 500 {object} utils.APIResponse "Scan failed"
// @Router /discovery/scan [get]
func (h *DiscoveryHandler) ScanPrinters(c *gin.Context) {
	scanType := c.DefaultQuery("type", "all")

	var (
		printers []*discovery.DiscoveredPrinter
		err      error
	)
	if scanType == "all" {
		printers, err = h.scanners.ScanAll(c.Request.Context())
	} else {
		printers, err = h.scanners.ScanByType(c.Request.Context(), scanType)
	}

	if err != nil {
		h.logger.Error("Failed to scan for printers", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to scan for printers", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Printer scan completed", gin.H{
		"printers_found": len(printers),
		"printers":       printers,
	})
}

// ListScanners lists available scanner types
// @Summary List scanners
// @Description Get the scanner types available on this host
// @Tags Discovery
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]string} "Scanner types"
// @Router /discovery/scanners [get]
func (h *DiscoveryHandler) ListScanners(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Scanners retrieved", h.scanners.GetAvailableScanners())
}
