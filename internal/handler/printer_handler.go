// internal/handler/printer_handler.go
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/model"
	"github.com/dairyking98/network-okidata/internal/service"
	"github.com/dairyking98/network-okidata/internal/transport"
	"github.com/dairyking98/network-okidata/internal/utils"
)

// PrinterHandler handles printer-related HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
	websocket      *WebSocketHandler
	logger         *utils.ServiceLogger
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService, websocket *WebSocketHandler, logger *zap.Logger) *PrinterHandler {
	return &PrinterHandler{
		printerService: printerService,
		websocket:      websocket,
		logger:         utils.NewServiceLogger(logger, "printer-handler"),
	}
}

// RegisterRoutes registers printer-related routes
func (h *PrinterHandler) RegisterRoutes(router *gin.RouterGroup) {
	printer := router.Group("/printer")
	{
		printer.POST("/keystrokes", h.SendKeystroke)
		printer.POST("/lines", h.CommitLine)
		printer.PUT("/toggles/:feature", h.SetToggle)
		printer.PUT("/settings/:name", h.ApplySetting)
		printer.GET("/commands", h.ListCommands)
		printer.POST("/commands", h.SendCommand)
		printer.POST("/defaults", h.PushDefaults)
		printer.GET("/address", h.GetAddress)
		printer.PUT("/address", h.SetAddress)
		printer.GET("/line-length", h.GetLineLength)
		printer.GET("/session", h.GetSession)
	}
}

// KeystrokeRequest carries one typed character
type KeystrokeRequest struct {
	Char string `json:"char" binding:"required"`
}

// SendKeystroke transmits one live-mode keystroke
// @Summary Send a live keystroke
// @Description Transmit a single typed character immediately. Only valid while the session is in LIVE mode.
// @Tags Printer
// @Accept json
// @Produce json
// @Param request body KeystrokeRequest true "Keystroke"
// @Success 200 {object} utils.APIResponse "Keystroke transmitted"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Session not in live mode"
// @Failure 502 {object} utils.APIResponse "Transmission failed"
// @Router /printer/keystrokes [post]
func (h *PrinterHandler) SendKeystroke(c *gin.Context) {
	var req KeystrokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if utf8.RuneCountInString(req.Char) != 1 {
		utils.ErrorResponse(c, http.StatusBadRequest, "char must be a single character", nil)
		return
	}

	err := h.printerService.SendKeystroke(c.Request.Context(), req.Char)
	if err != nil {
		if errors.Is(err, service.ErrNotLiveMode) {
			utils.ErrorResponse(c, http.StatusConflict, "Session is not in live mode", err)
			return
		}
		h.respondTransportError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Keystroke transmitted", nil)
}

// CommitLineRequest carries a finalized line
type CommitLineRequest struct {
	Text string `json:"text"`
}

// CommitLineResponse reports the scheduled commit
type CommitLineResponse struct {
	CommitID   string           `json:"commit_id"`
	Phase      string           `json:"phase"`
	LineLength model.LineLength `json:"line_length"`
}

// CommitLine schedules the end-of-line commit sequence
// @Summary Commit a line
// @Description Schedule the time-spaced end-of-line sequence: carriage return, line feed, left margin tab burst and, in LINE_BY_LINE mode, the line text.
// @Tags Printer
// @Accept json
// @Produce json
// @Param request body CommitLineRequest true "Line to commit"
// @Success 202 {object} utils.APIResponse{data=CommitLineResponse} "Commit scheduled"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /printer/lines [post]
func (h *PrinterHandler) CommitLine(c *gin.Context) {
	var req CommitLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	commit := h.printerService.CommitLine(req.Text)
	h.websocket.BroadcastCommit(commit.ID, commit.Phase())

	utils.SuccessResponse(c, http.StatusAccepted, "Line commit scheduled", CommitLineResponse{
		CommitID:   commit.ID.String(),
		Phase:      string(commit.Phase()),
		LineLength: h.printerService.LineLength(len(req.Text)),
	})
}

// ToggleRequest carries the desired toggle value
type ToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetToggle updates a formatting toggle
// @Summary Set a formatting toggle
// @Description Store a persistent formatting toggle and transmit its command. Re-sending the current value re-transmits the command.
// @Tags Printer
// @Accept json
// @Produce json
// @Param feature path string true "Toggle feature" Enums(ITALIC, EMPHASIZED, UNDERLINE, UNIDIRECTIONAL, ENHANCED, DOUBLE_HEIGHT, PROPORTIONAL, DOUBLE_WIDE, SHIFT)
// @Param request body ToggleRequest true "Toggle value"
// @Success 200 {object} utils.APIResponse{data=model.SessionSnapshot} "Toggle applied"
// @Failure 400 {object} utils.APIResponse "Unknown feature"
// @Failure 502 {object} utils.APIResponse "Transmission failed"
// @Router /printer/toggles/{feature} [put]
func (h *PrinterHandler) SetToggle(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	feature := model.Feature(c.Param("feature"))
	err := h.printerService.SetToggle(c.Request.Context(), feature, *req.Enabled)
	if err != nil {
		if transport.IsInvalidPort(err) || isTransportError(err) {
			h.respondTransportError(c, err)
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to apply toggle", err)
		return
	}

	snapshot := h.printerService.Session()
	h.websocket.BroadcastSession(snapshot)
	utils.SuccessResponse(c, http.StatusOK, "Toggle applied", snapshot)
}

// SettingRequest carries a setting change
type SettingRequest struct {
	Value  string  `json:"value"`
	N      int     `json:"n"`
	Inches float64 `json:"inches"`
}

// ApplySetting updates a named session setting
// @Summary Apply a session setting
// @Description Store a session setting and transmit its command where one exists. Margin and mode changes are local until the next commit.
// @Tags Printer
// @Accept json
// @Produce json
// @Param name path string true "Setting name" Enums(cpi, font, spacing, quality, speed, zero, skip_perforation, left_margin, right_margin, mode)
// @Param request body SettingRequest true "Setting value"
// @Success 200 {object} utils.APIResponse{data=model.SessionSnapshot} "Setting applied"
// @Failure 400 {object} utils.APIResponse "Invalid setting"
// @Failure 502 {object} utils.APIResponse "Transmission failed"
// @Router /printer/settings/{name} [put]
func (h *PrinterHandler) ApplySetting(c *gin.Context) {
	var req SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	name := c.Param("name")
	err := h.printerService.ApplySetting(c.Request.Context(), name, req.Value, req.N, req.Inches)
	if err != nil {
		if transport.IsInvalidPort(err) || isTransportError(err) {
			h.respondTransportError(c, err)
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to apply setting", err)
		return
	}

	snapshot := h.printerService.Session()
	h.websocket.BroadcastSession(snapshot)
	utils.SuccessResponse(c, http.StatusOK, "Setting applied", snapshot)
}

// ListCommands lists the static command table
// @Summary List command names
// @Description Get every command name in the static table, alphabetically sorted.
// @Tags Printer
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]string} "Command names"
// @Router /printer/commands [get]
func (h *PrinterHandler) ListCommands(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Command names retrieved", h.printerService.Commands())
}

// CommandRequest carries a manual command send
type CommandRequest struct {
	Name  string `json:"name" binding:"required"`
	Param *int   `json:"param,omitempty"`
}

// SendCommand transmits a named command directly
// @Summary Send a command by name
// @Description Transmit one command from the static table. Parametric commands require param in 0-9.
// @Tags Printer
// @Accept json
// @Produce json
// @Param request body CommandRequest true "Command"
// @Success 200 {object} utils.APIResponse "Command transmitted"
// @Failure 400 {object} utils.APIResponse "Unknown command or bad parameter"
// @Failure 502 {object} utils.APIResponse "Transmission failed"
// @Router /printer/commands [post]
func (h *PrinterHandler) SendCommand(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err := h.printerService.SendCommand(c.Request.Context(), req.Name, req.Param)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCommand) {
			utils.ErrorResponse(c, http.StatusBadRequest, "Unknown command", err)
			return
		}
		if transport.IsInvalidPort(err) || isTransportError(err) {
			h.respondTransportError(c, err)
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to send command", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Command transmitted", nil)
}

// PushDefaults re-sends the stored defaults
// @Summary Push defaults to the device
// @Description Transmit the stored default settings: a combined reset buffer followed by the individual setting commands. Toggles are not modified.
// @Tags Printer
// @Produce json
// @Success 200 {object} utils.APIResponse "Defaults transmitted"
// @Failure 502 {object} utils.APIResponse "One or more transmissions failed"
// @Router /printer/defaults [post]
func (h *PrinterHandler) PushDefaults(c *gin.Context) {
	if err := h.printerService.PushDefaults(c.Request.Context()); err != nil {
		h.respondTransportError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Defaults transmitted", nil)
}

// AddressResponse reports the device address
type AddressResponse struct {
	Host string `json:"host"`
	Port string `json:"port"`
}

// GetAddress returns the device address
// @Summary Get the device address
// @Tags Printer
// @Produce json
// @Success 200 {object} utils.APIResponse{data=AddressResponse} "Device address"
// @Router /printer/address [get]
func (h *PrinterHandler) GetAddress(c *gin.Context) {
	host, port := h.printerService.Address()
	utils.SuccessResponse(c, http.StatusOK, "Device address retrieved", AddressResponse{Host: host, Port: port})
}

// AddressRequest carries a device address change
type AddressRequest struct {
	Host string `json:"host" binding:"required"`
	Port string `json:"port" binding:"required"`
}

// SetAddress repoints the device
// @Summary Set the device address
// @Description Update the device host and port. The port is stored as given; a non-numeric value fails on the next transmission, not here.
// @Tags Printer
// @Accept json
// @Produce json
// @Param request body AddressRequest true "Device address"
// @Success 200 {object} utils.APIResponse{data=AddressResponse} "Address updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /printer/address [put]
func (h *PrinterHandler) SetAddress(c *gin.Context) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.printerService.SetAddress(req.Host, req.Port)
	utils.SuccessResponse(c, http.StatusOK, "Address updated", AddressResponse{Host: req.Host, Port: req.Port})
}

// GetLineLength projects the printed length of a composed line
// @Summary Project line length
// @Description Compute the printed length in inches for a line of the given character count under the current pitch, double-wide state and margins.
// @Tags Printer
// @Produce json
// @Param chars query int true "Character count"
// @Success 200 {object} utils.APIResponse{data=model.LineLength} "Projected line length"
// @Failure 400 {object} utils.APIResponse "Invalid character count"
// @Router /printer/line-length [get]
func (h *PrinterHandler) GetLineLength(c *gin.Context) {
	chars, err := strconv.Atoi(c.Query("chars"))
	if err != nil || chars < 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "chars must be a non-negative integer", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Line length projected", h.printerService.LineLength(chars))
}

// GetSession returns the full session snapshot
// @Summary Get the session state
// @Tags Printer
// @Produce json
// @Success 200 {object} utils.APIResponse{data=model.SessionSnapshot} "Session state"
// @Router /printer/session [get]
func (h *PrinterHandler) GetSession(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Session retrieved", h.printerService.Session())
}

// respondTransportError maps a failed transmission to an HTTP response
func (h *PrinterHandler) respondTransportError(c *gin.Context, err error) {
	if transport.IsInvalidPort(err) {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid printer port", err)
		return
	}
	h.logger.Error("Transmission failed", zap.Error(err))
	utils.ErrorResponse(c, http.StatusBadGateway, "Transmission failed", err)
}

// isTransportError reports whether the error came from the wire rather
// than request validation. State methods validate before any send, so
// anything wrapped as a transmission error passed validation.
func isTransportError(err error) bool {
	return service.IsTransmissionError(err)
}
