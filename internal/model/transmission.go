// internal/model/transmission.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TransmissionStatus represents the outcome of a transmission attempt
type TransmissionStatus string

const (
	TransmissionStatusSuccess TransmissionStatus = "SUCCESS"
	TransmissionStatusFailed  TransmissionStatus = "FAILED"
)

// Transmission represents one byte buffer delivered to the printer
type Transmission struct {
	ID           uuid.UUID          `json:"id" db:"id"`
	Tag          string             `json:"tag" db:"tag"`
	Bytes        string             `json:"bytes" db:"bytes"` // space-separated decimal values
	ByteCount    int                `json:"byte_count" db:"byte_count"`
	Status       TransmissionStatus `json:"status" db:"status"`
	ErrorMessage *string            `json:"error_message,omitempty" db:"error_message"`
	DurationMs   int                `json:"duration_ms" db:"duration_ms"`
	SentAt       time.Time          `json:"sent_at" db:"sent_at"`
}

// Succeeded reports whether the transmission reached the device
func (t *Transmission) Succeeded() bool {
	return t.Status == TransmissionStatusSuccess
}
