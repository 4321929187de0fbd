package domain

import (
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

type AuditEvent struct {
	ID         uuid.UUID   `json:"id"`
	UserID     string      `json:"user_id"`
	Action     AuditAction `json:"action"`
	BikeID     string      `json:"bike_id"`
	BikeModel  string      `json:"bike_model"`
	OccurredAt time.Time   `json:"occurred_at"`
}
