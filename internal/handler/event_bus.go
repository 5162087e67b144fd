// internal/handler/event_bus.go
package handler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/model"
	"github.com/dairyking98/network-okidata/internal/repository"
)

// EventBus manages event distribution
type EventBus struct {
	subscribers map[string][]chan Event
	events      chan Event
	mutex       sync.RWMutex
	logger      *zap.Logger
}

// Event represents a system event
type Event struct {
	Type      string                 `json:"type"`
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]chan Event),
		events:      make(chan Event, 1000),
	}
}

// Start starts the event bus
func (eb *EventBus) Start() {
	for event := range eb.events {
		eb.distributeEvent(event)
	}
}

// Publish publishes an event
func (eb *EventBus) Publish(event Event) {
	select {
	case eb.events <- event:
	default:
		// Event bus is full, log warning
		if eb.logger != nil {
			eb.logger.Warn("Event bus full, dropping event",
				zap.String("event_type", event.Type),
			)
		}
	}
}

// Subscribe subscribes to events of a specific type
func (eb *EventBus) Subscribe(eventType string) <-chan Event {
	eb.mutex.Lock()
	defer eb.mutex.Unlock()

	subscriber := make(chan Event, 100)
	eb.subscribers[eventType] = append(eb.subscribers[eventType], subscriber)
	return subscriber
}

// distributeEvent distributes an event to subscribers
func (eb *EventBus) distributeEvent(event Event) {
	eb.mutex.RLock()
	subscribers := eb.subscribers[event.Type]
	eb.mutex.RUnlock()

	for _, subscriber := range subscribers {
		select {
		case subscriber <- event:
		default:
			// Subscriber is slow, skip
		}
	}
}

// TransmissionEventHandler fans a transmission record out to the debug
// stream, the event bus and, when history is enabled, the database. It
// is installed as the transport observer so every send attempt passes
// through here exactly once.
type TransmissionEventHandler struct {
	websocketHandler *WebSocketHandler
	eventBus         *EventBus
	repo             repository.TransmissionRepository
	logger           *zap.Logger
}

// NewTransmissionEventHandler creates a new transmission event handler.
// The repository may be nil when history persistence is disabled.
func NewTransmissionEventHandler(
	websocketHandler *WebSocketHandler,
	eventBus *EventBus,
	repo repository.TransmissionRepository,
	logger *zap.Logger,
) *TransmissionEventHandler {
	return &TransmissionEventHandler{
		websocketHandler: websocketHandler,
		eventBus:         eventBus,
		repo:             repo,
		logger:           logger,
	}
}

// HandleTransmission records one transmission attempt. Persistence
// failures are logged and swallowed; the wire path must never stall on
// the history store.
func (teh *TransmissionEventHandler) HandleTransmission(tx *model.Transmission) {
	teh.websocketHandler.BroadcastTransmission(tx)

	teh.eventBus.Publish(Event{
		Type:   "transmission",
		Source: "transport",
		Data: map[string]interface{}{
			"id":         tx.ID.String(),
			"tag":        tx.Tag,
			"bytes":      tx.Bytes,
			"byte_count": tx.ByteCount,
			"status":     string(tx.Status),
		},
		Timestamp: tx.SentAt,
	})

	if teh.repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := teh.repo.Create(ctx, tx); err != nil {
			teh.logger.Warn("Failed to persist transmission",
				zap.String("transmission_id", tx.ID.String()),
				zap.Error(err),
			)
		}
	}
}
