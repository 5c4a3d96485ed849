package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ovees/eleganza-backend/pkg/types"
)

// OrderRecord freezes the cart at the moment it was handed off for checkout.
// Records are append-only; nothing updates or deletes them.
type OrderRecord struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionID string          `gorm:"column:session_id;not null;index"`
	Items     types.LineItems `gorm:"column:items;type:jsonb;serializer:json;not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}
