// internal/repository/transmission_repository.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/database"
	"github.com/dairyking98/network-okidata/internal/model"
)

// transmissionRepository implements TransmissionRepository interface
type transmissionRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewTransmissionRepository creates a new transmission repository
func NewTransmissionRepository(db *database.DB, logger *zap.Logger) TransmissionRepository {
	return &transmissionRepository{
		db:     db,
		logger: logger,
	}
}

// Create records a transmission
func (r *transmissionRepository) Create(ctx context.Context, transmission *model.Transmission) error {
	query := `
		INSERT INTO transmissions (
			id, tag, bytes, byte_count, status, error_message, duration_ms, sent_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		transmission.ID, transmission.Tag, transmission.Bytes,
		transmission.ByteCount, transmission.Status, transmission.ErrorMessage,
		transmission.DurationMs, transmission.SentAt,
	)

	if err != nil {
		r.logger.Error("Failed to create transmission record", zap.Error(err))
		return fmt.Errorf("failed to create transmission record: %w", err)
	}

	return nil
}

// GetByID retrieves a transmission by ID
func (r *transmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Transmission, error) {
	query := `
		SELECT id, tag, bytes, byte_count, status, error_message, duration_ms, sent_at
		FROM transmissions WHERE id = $1
	`

	transmission := &model.Transmission{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&transmission.ID, &transmission.Tag, &transmission.Bytes,
		&transmission.ByteCount, &transmission.Status, &transmission.ErrorMessage,
		&transmission.DurationMs, &transmission.SentAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("transmission not found with id: %s", id)
		}
		return nil, fmt.Errorf("failed to get transmission: %w", err)
	}

	return transmission, nil
}

// List retrieves transmissions with filtering and pagination
func (r *transmissionRepository) List(ctx context.Context, filter *TransmissionFilter) ([]*model.Transmission, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Tag != "" {
		where += fmt.Sprintf(" AND tag = $%d", argIndex)
		args = append(args, filter.Tag)
		argIndex++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}
	if filter.Since != nil {
		where += fmt.Sprintf(" AND sent_at >= $%d", argIndex)
		args = append(args, *filter.Since)
		argIndex++
	}

	countQuery := "SELECT COUNT(*) FROM transmissions " + where
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transmissions: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := fmt.Sprintf(`
		SELECT id, tag, bytes, byte_count, status, error_message, duration_ms, sent_at
		FROM transmissions %s
		ORDER BY sent_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIndex, argIndex+1)
	args = append(args, limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transmissions: %w", err)
	}
	defer rows.Close()

	transmissions := []*model.Transmission{}
	for rows.Next() {
		transmission := &model.Transmission{}
		err := rows.Scan(
			&transmission.ID, &transmission.Tag, &transmission.Bytes,
			&transmission.ByteCount, &transmission.Status, &transmission.ErrorMessage,
			&transmission.DurationMs, &transmission.SentAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transmission: %w", err)
		}
		transmissions = append(transmissions, transmission)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate transmissions: %w", err)
	}

	return transmissions, total, nil
}

// GetStats returns aggregate metrics since the given time
func (r *transmissionRepository) GetStats(ctx context.Context, since time.Time) (*TransmissionStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COALESCE(SUM(byte_count), 0),
			COALESCE(AVG(duration_ms), 0)
		FROM transmissions
		WHERE sent_at >= $3
	`

	stats := &TransmissionStats{}
	err := r.db.QueryRowContext(ctx, query,
		model.TransmissionStatusSuccess, model.TransmissionStatusFailed, since,
	).Scan(
		&stats.Total, &stats.Succeeded, &stats.Failed,
		&stats.TotalBytes, &stats.AvgDurationMs,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get transmission stats: %w", err)
	}

	return stats, nil
}

// DeleteOldTransmissions removes records older than the given time
func (r *transmissionRepository) DeleteOldTransmissions(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `DELETE FROM transmissions WHERE sent_at < $1`

	result, err := r.db.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old transmissions: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	r.logger.Info("Deleted old transmissions", zap.Int64("count", rowsAffected))
	return rowsAffected, nil
}
