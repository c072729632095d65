package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/stockroom-backend/pkg/enums"
)

// Reservation is one short-lived hold against the stock ledger, one row per
// reserved line item. A reservation moves from active to exactly one of
// confirmed, released or expired and never moves again. Rows are kept for
// audit, never deleted.
type Reservation struct {
	ID          uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID   uuid.UUID               `gorm:"column:product_id;type:uuid;not null"`
	VariantID   uuid.UUID               `gorm:"column:variant_id;type:uuid;not null"`
	WarehouseID string                  `gorm:"column:warehouse_id;not null;default:'default'"`
	Quantity    int                     `gorm:"column:quantity;not null"`
	CheckoutID  uuid.UUID               `gorm:"column:checkout_id;type:uuid;not null;index"`
	Status      enums.ReservationStatus `gorm:"column:status;type:reservation_status;not null;default:'active'"`
	ExpiresAt   time.Time               `gorm:"column:expires_at;not null"`
	CreatedAt   time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
