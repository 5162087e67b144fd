// internal/handler/websocket_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/model"
	"github.com/dairyking98/network-okidata/internal/service"
	"github.com/dairyking98/network-okidata/internal/utils"
)

// WebSocketHandler streams transmissions and session changes to
// connected debug panels.
type WebSocketHandler struct {
	upgrader       websocket.Upgrader
	connections    *ConnectionManager
	printerService *service.PrinterService
	logger         *utils.ServiceLogger
	eventBus       *EventBus
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(printerService *service.PrinterService, eventBus *EventBus, logger *zap.Logger) *WebSocketHandler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			// In production, implement proper origin checking
			return true
		},
	}

	h := &WebSocketHandler{
		upgrader:       upgrader,
		connections:    NewConnectionManager(),
		printerService: printerService,
		logger:         utils.NewServiceLogger(logger, "websocket-handler"),
		eventBus:       eventBus,
	}

	go h.forwardEvents()
	return h
}

// forwardEvents relays bus events to clients that subscribed to the
// matching topic. The typed streams get their payloads pushed directly;
// this path exists for clients following the bus alone.
func (h *WebSocketHandler) forwardEvents() {
	events := h.eventBus.Subscribe("transmission")
	for event := range events {
		message := &WebSocketMessage{
			Type:      "event",
			Data:      event,
			Timestamp: event.Timestamp,
		}

		h.broadcastToClients(h.connections.GetSubscribed(event.Type), message)
	}
}

// RegisterRoutes registers WebSocket routes
func (h *WebSocketHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Raw transmission feed for the debug panel
	router.GET("/debug", h.HandleDebugConnection)

	// Session state change feed
	router.GET("/session", h.HandleSessionConnection)
}

// HandleDebugConnection handles debug stream WebSocket connections
func (h *WebSocketHandler) HandleDebugConnection(c *gin.Context) {
	h.handleConnection(c, "debug")
}

// HandleSessionConnection handles session stream WebSocket connections.
// A snapshot of the current session is pushed immediately on connect.
func (h *WebSocketHandler) HandleSessionConnection(c *gin.Context) {
	client := h.handleConnection(c, "session")
	if client == nil {
		return
	}

	h.sendMessage(client, &WebSocketMessage{
		Type:      "session_snapshot",
		Data:      h.printerService.Session(),
		Timestamp: time.Now(),
	})
}

// handleConnection upgrades and registers one client.
func (h *WebSocketHandler) handleConnection(c *gin.Context, clientType string) *Client {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade WebSocket connection", zap.Error(err))
		return nil
	}

	client := &Client{
		ID:          uuid.New().String(),
		Connection:  conn,
		Send:        make(chan []byte, 256),
		Type:        clientType,
		UserAgent:   c.Request.UserAgent(),
		RemoteAddr:  c.Request.RemoteAddr,
		ConnectedAt: time.Now(),
	}

	h.connections.Register(client)
	h.logger.Info("WebSocket client connected",
		zap.String("client_id", client.ID),
		zap.String("client_type", clientType),
		zap.String("remote_addr", client.RemoteAddr),
	)

	go h.handleClientRead(client)
	go h.handleClientWrite(client)

	return client
}

// handleClientRead handles reading messages from WebSocket client
func (h *WebSocketHandler) handleClientRead(client *Client) {
	defer func() {
		h.connections.Unregister(client)
		client.Connection.Close()
	}()

	// Set read deadline and pong handler
	client.Connection.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Connection.SetPongHandler(func(string) error {
		client.Connection.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, messageBytes, err := client.Connection.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket read error",
					zap.Error(err),
					zap.String("client_id", client.ID),
				)
			}
			break
		}

		// Parse message
		var message WebSocketMessage
		if err := json.Unmarshal(messageBytes, &message); err != nil {
			h.logger.Error("Failed to parse WebSocket message",
				zap.Error(err),
				zap.String("client_id", client.ID),
			)
			continue
		}

		// Handle message
		h.handleClientMessage(client, &message)
	}
}

// handleClientWrite handles writing messages to WebSocket client
func (h *WebSocketHandler) handleClientWrite(client *Client) {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		client.Connection.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			client.Connection.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.Connection.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Connection.WriteMessage(websocket.TextMessage, message); err != nil {
				h.logger.Error("WebSocket write error",
					zap.Error(err),
					zap.String("client_id", client.ID),
				)
				return
			}

		case <-ticker.C:
			client.Connection.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Connection.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleClientMessage handles incoming client messages
func (h *WebSocketHandler) handleClientMessage(client *Client, message *WebSocketMessage) {
	switch message.Type {
	case "subscribe":
		h.handleSubscription(client, message)
	case "unsubscribe":
		h.handleUnsubscription(client, message)
	case "ping":
		h.sendMessage(client, &WebSocketMessage{
			Type:      "pong",
			Timestamp: time.Now(),
		})
	default:
		h.logger.Warn("Unknown message type",
			zap.String("type", message.Type),
			zap.String("client_id", client.ID),
		)
	}
}

// handleSubscription handles client subscription requests
func (h *WebSocketHandler) handleSubscription(client *Client, message *WebSocketMessage) {
	if client.Subscriptions == nil {
		client.Subscriptions = make(map[string]bool)
	}

	if data, ok := message.Data.(map[string]interface{}); ok {
		if topic, ok := data["topic"].(string); ok {
			client.Subscriptions[topic] = true
			h.logger.Info("Client subscribed to topic",
				zap.String("client_id", client.ID),
				zap.String("topic", topic),
			)

			// Send subscription confirmation
			h.sendMessage(client, &WebSocketMessage{
				Type: "subscription_confirmed",
				Data: map[string]interface{}{
					"topic": topic,
				},
				Timestamp: time.Now(),
			})
		}
	}
}

// handleUnsubscription handles client unsubscription requests
func (h *WebSocketHandler) handleUnsubscription(client *Client, message *WebSocketMessage) {
	if client.Subscriptions == nil {
		return
	}

	if data, ok := message.Data.(map[string]interface{}); ok {
		if topic, ok := data["topic"].(string); ok {
			delete(client.Subscriptions, topic)
			h.logger.Info("Client unsubscribed from topic",
				zap.String("client_id", client.ID),
				zap.String("topic", topic),
			)
		}
	}
}

// sendMessage sends a message to a client
func (h *WebSocketHandler) sendMessage(client *Client, message *WebSocketMessage) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("Failed to marshal WebSocket message", zap.Error(err))
		return
	}

	select {
	case client.Send <- messageBytes:
	default:
		h.logger.Warn("Client send channel full, dropping message",
			zap.String("client_id", client.ID),
		)
	}
}

// BroadcastTransmission pushes a transmission record to debug clients
func (h *WebSocketHandler) BroadcastTransmission(tx *model.Transmission) {
	message := &WebSocketMessage{
		Type:      "transmission",
		Data:      tx,
		Timestamp: tx.SentAt,
	}

	h.broadcastToClients(h.connections.GetClientsByType("debug"), message)
}

// BroadcastSession pushes a session snapshot to session clients
func (h *WebSocketHandler) BroadcastSession(snapshot model.SessionSnapshot) {
	message := &WebSocketMessage{
		Type:      "session_snapshot",
		Data:      snapshot,
		Timestamp: time.Now(),
	}

	h.broadcastToClients(h.connections.GetClientsByType("session"), message)
}

// BroadcastCommit pushes a commit lifecycle event to both client types
func (h *WebSocketHandler) BroadcastCommit(commitID uuid.UUID, phase model.SequencePhase) {
	message := &WebSocketMessage{
		Type: "commit_event",
		Data: map[string]interface{}{
			"commit_id": commitID.String(),
			"phase":     string(phase),
		},
		Timestamp: time.Now(),
	}

	h.broadcastToClients(h.connections.GetClientsByType("debug"), message)
	h.broadcastToClients(h.connections.GetClientsByType("session"), message)
}

// broadcastToClients broadcasts message to specified clients
func (h *WebSocketHandler) broadcastToClients(clients []*Client, message *WebSocketMessage) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("Failed to marshal broadcast message", zap.Error(err))
		return
	}

	for _, client := range clients {
		select {
		case client.Send <- messageBytes:
		default:
			h.logger.Warn("Client send channel full during broadcast",
				zap.String("client_id", client.ID),
			)
		}
	}
}

// GetConnectionStats returns connection statistics
func (h *WebSocketHandler) GetConnectionStats() *ConnectionStats {
	return h.connections.GetStats()
}
