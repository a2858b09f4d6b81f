package db

import (
	"context"
	"database/sql"
	"time"
)

const createAuditLog = `
INSERT INTO audit_logs (id, event_type, entity_type, entity_id, message, error_detail, metadata, success, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateAuditLogParams struct {
	ID          string
	EventType   string
	EntityType  string
	EntityID    string
	Message     string
	ErrorDetail sql.NullString
	Metadata    sql.NullString
	Success     int64
	CreatedAt   time.Time
}

func (q *Queries) CreateAuditLog(ctx context.Context, arg CreateAuditLogParams) error {
	_, err := q.db.ExecContext(ctx, createAuditLog,
		arg.ID, arg.EventType, arg.EntityType, arg.EntityID,
		arg.Message, arg.ErrorDetail, arg.Metadata, arg.Success, arg.CreatedAt)
	return err
}

const countAuditEventsSince = `
SELECT COUNT(*)
FROM audit_logs
WHERE event_type = ? AND entity_type = ? AND entity_id = ? AND success = 1 AND created_at >= ?
`

type CountAuditEventsSinceParams struct {
	EventType  string
	EntityType string
	EntityID   string
	Since      time.Time
}

// CountAuditEventsSince counts successful events of the given kind for an
// entity at or after the cutoff.
func (q *Queries) CountAuditEventsSince(ctx context.Context, arg CountAuditEventsSinceParams) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countAuditEventsSince,
		arg.EventType, arg.EntityType, arg.EntityID, arg.Since).Scan(&count)
	return count, err
}

const listRecentAuditLogs = `
SELECT id, event_type, entity_type, entity_id, message, error_detail, metadata, success, created_at
FROM audit_logs
ORDER BY created_at DESC, id DESC
LIMIT ?
`

func (q *Queries) ListRecentAuditLogs(ctx context.Context, limit int64) ([]AuditLog, error) {
	rows, err := q.db.QueryContext(ctx, listRecentAuditLogs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []AuditLog
	for rows.Next() {
		var a AuditLog
		if err := rows.Scan(&a.ID, &a.EventType, &a.EntityType, &a.EntityID,
			&a.Message, &a.ErrorDetail, &a.Metadata, &a.Success, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
