// internal/repository/interfaces.go
package repository

import (
	"context"
	"time"

	"github.com/dairyking98/network-okidata/internal/model"

	"github.com/google/uuid"
)

// TransmissionRepository defines transmission history data access
type TransmissionRepository interface {
	// CRUD operations
	Create(ctx context.Context, transmission *model.Transmission) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transmission, error)

	// Listing and filtering
	List(ctx context.Context, filter *TransmissionFilter) ([]*model.Transmission, int, error)

	// Analytics and reporting
	GetStats(ctx context.Context, since time.Time) (*TransmissionStats, error)

	// Cleanup
	DeleteOldTransmissions(ctx context.Context, olderThan time.Time) (int64, error)
}

// TransmissionFilter represents filtering options for transmission listing
type TransmissionFilter struct {
	Tag    string
	Status model.TransmissionStatus
	Since  *time.Time
	Limit  int
	Offset int
}

// TransmissionStats represents aggregate transmission metrics
type TransmissionStats struct {
	Total         int     `json:"total"`
	Succeeded     int     `json:"succeeded"`
	Failed        int     `json:"failed"`
	TotalBytes    int64   `json:"total_bytes"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
}
