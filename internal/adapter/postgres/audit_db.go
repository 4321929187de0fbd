package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
)

var _ ports.AuditRepository = (*AuditRepository)(nil)

// AuditRepository stores the trail of inventory writes.
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{
		db,
	}
}

func (r *AuditRepository) Record(ctx context.Context, event *domain.AuditEvent) error {
	query := `INSERT INTO audit_events (id, user_id, action, bike_id, bike_model, occurred_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.UserID,
		event.Action,
		event.BikeID,
		event.BikeModel,
		event.OccurredAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return fmt.Errorf("audit event already recorded")
			case "23514":
				return fmt.Errorf("unknown audit action %q", event.Action)
			default:
				return err
			}
		}
		return err
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context, limit int) ([]*domain.AuditEvent, error) {
	query := `SELECT id, user_id, action, bike_id, bike_model, occurred_at
              FROM audit_events ORDER BY occurred_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*domain.AuditEvent{}

	for rows.Next() {
		event := &domain.AuditEvent{}
		err := rows.Scan(
			&event.ID,
			&event.UserID,
			&event.Action,
			&event.BikeID,
			&event.BikeModel,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
