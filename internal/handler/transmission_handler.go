// internal/handler/transmission_handler.go
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/model"
	"github.com/dairyking98/network-okidata/internal/repository"
	"github.com/dairyking98/network-okidata/internal/utils"
)

// TransmissionHandler serves persisted transmission history
type TransmissionHandler struct {
	repo   repository.TransmissionRepository
	logger *utils.ServiceLogger
}

// NewTransmissionHandler creates a new transmission handler
func NewTransmissionHandler(repo repository.TransmissionRepository, logger *zap.Logger) *TransmissionHandler {
	return &TransmissionHandler{
		repo:   repo,
		logger: utils.NewServiceLogger(logger, "transmission-handler"),
	}
}

// RegisterRoutes registers transmission history routes
func (h *TransmissionHandler) RegisterRoutes(router *gin.RouterGroup) {
	transmissions := router.Group("/transmissions")
	{
		transmissions.GET("", h.ListTransmissions)
		transmissions.GET("/stats", h.GetStats)
		transmissions.GET("/:id", h.GetTransmission)
	}
}

// ListTransmissions lists transmission history
// @Summary List transmissions
// @Description Get transmission history with filtering and pagination
// @Tags Transmissions
// @Produce json
// @Param tag query string false "Filter by tag"
// @Param status query string false "Filter by status" Enums(SUCCESS, FAILED)
// @Param since query string false "Only records after this RFC3339 time"
// @Param limit query int false "Items per page" default(100)
// @Param offset query int false "Pagination offset" default(0)
// @Success 200 {object} utils.APIResponse{data=object{transmissions=[]model.Transmission,total=int}} "Transmissions retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /transmissions [get]
func (h *TransmissionHandler) ListTransmissions(c *gin.Context) {
	filter := &repository.TransmissionFilter{
		Tag:    c.Query("tag"),
		Status: model.TransmissionStatus(c.Query("status")),
		Limit:  100,
	}

	if limit := c.Query("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 && l <= 1000 {
			filter.Limit = l
		}
	}
	if offset := c.Query("offset"); offset != "" {
		if o, err := strconv.Atoi(offset); err == nil && o >= 0 {
			filter.Offset = o
		}
	}
	if since := c.Query("since"); since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "since must be RFC3339", err)
			return
		}
		filter.Since = &t
	}

	transmissions, total, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list transmissions", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list transmissions", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Transmissions retrieved", gin.H{
		"transmissions": transmissions,
		"total":         total,
	})
}

// GetStats returns aggregate transmission metrics
// @Summary Transmission statistics
// @Description Get aggregate transmission counts and byte totals since the given time (default 24h ago)
// @Tags Transmissions
// @Produce json
// @Param since query string false "Window start, RFC3339"
// @Success 200 {object} utils.APIResponse{data=repository.TransmissionStats} "Statistics retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /transmissions/stats [get]
func (h *TransmissionHandler) GetStats(c *gin.Context) {
	since := time.Now().Add(-24 * time.Hour)
	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "since must be RFC3339", err)
			return
		}
		since = t
	}

	stats, err := h.repo.GetStats(c.Request.Context(), since)
	if err != nil {
		h.logger.Error("Failed to get transmission stats", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to get statistics", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Statistics retrieved", stats)
}

// GetTransmission returns one transmission record
// @Summary Get a transmission
// @Tags Transmissions
// @Produce json
// @Param id path string true "Transmission ID"
// @Success 200 {object} utils.APIResponse{data=model.Transmission} "Transmission retrieved"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /transmissions/{id} [get]
func (h *TransmissionHandler) GetTransmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid transmission ID", err)
		return
	}

	transmission, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Transmission not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Transmission retrieved", transmission)
}
