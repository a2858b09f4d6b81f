package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/yusufakin/eticaret/storage/db"
)

// Service appends events to and queries the audit log.
type Service struct {
	queries *db.Queries
	now     func() time.Time
}

func NewService(queries *db.Queries) *Service {
	return &Service{queries: queries, now: time.Now}
}

// NewServiceAt returns a Service with a fixed clock, for tests.
func NewServiceAt(queries *db.Queries, now func() time.Time) *Service {
	return &Service{queries: queries, now: now}
}

// LogSuccess records a successful event for an entity. The extra map is
// stored as JSON metadata when present.
func (s *Service) LogSuccess(ctx context.Context, eventType, entityType, entityID, message string, extra map[string]interface{}) error {
	return s.log(ctx, eventType, entityType, entityID, message, "", extra, true)
}

// LogError records a failed event for an entity together with the error detail.
func (s *Service) LogError(ctx context.Context, eventType, entityType, entityID, message, errorDetail string, extra map[string]interface{}) error {
	return s.log(ctx, eventType, entityType, entityID, message, errorDetail, extra, false)
}

func (s *Service) log(ctx context.Context, eventType, entityType, entityID, message, errorDetail string, extra map[string]interface{}, success bool) error {
	var metadata sql.NullString
	if extra != nil {
		jsonBytes, err := json.Marshal(extra)
		if err != nil {
			slog.Warn("failed to marshal audit metadata", "error", err, "event_type", eventType)
		} else {
			metadata = sql.NullString{String: string(jsonBytes), Valid: true}
		}
	}

	var detail sql.NullString
	if errorDetail != "" {
		detail = sql.NullString{String: errorDetail, Valid: true}
	}

	successFlag := int64(0)
	if success {
		successFlag = 1
	}

	err := s.queries.CreateAuditLog(ctx, db.CreateAuditLogParams{
		ID:          ulid.Make().String(),
		EventType:   eventType,
		EntityType:  entityType,
		EntityID:    entityID,
		Message:     message,
		ErrorDetail: detail,
		Metadata:    metadata,
		Success:     successFlag,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		slog.Error("failed to write audit log", "error", err, "event_type", eventType, "entity_id", entityID)
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// HasEventSince reports whether a successful event of the given kind was
// recorded for the entity within the window ending now. A missing event is
// not an error.
func (s *Service) HasEventSince(ctx context.Context, eventType, entityType, entityID string, window time.Duration) (bool, error) {
	count, err := s.queries.CountAuditEventsSince(ctx, db.CountAuditEventsSinceParams{
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID,
		Since:      s.now().UTC().Add(-window),
	})
	if err != nil {
		return false, fmt.Errorf("failed to query audit events: %w", err)
	}
	return count > 0, nil
}

// Recent returns the newest audit entries, most recent first.
func (s *Service) Recent(ctx context.Context, limit int64) ([]db.AuditLog, error) {
	return s.queries.ListRecentAuditLogs(ctx, limit)
}
