package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/stockroom-backend/pkg/enums"
)

// StockMovement is one append-only audit record of a ledger change. Rows are
// write-once, never updated or deleted.
type StockMovement struct {
	ID             uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID      uuid.UUID            `gorm:"column:product_id;type:uuid;not null;index"`
	VariantID      uuid.UUID            `gorm:"column:variant_id;type:uuid;not null"`
	WarehouseID    string               `gorm:"column:warehouse_id;not null;default:'default'"`
	QuantityChange int                  `gorm:"column:quantity_change;not null"`
	Reason         enums.MovementReason `gorm:"column:reason;type:movement_reason;not null"`
	ReferenceID    *uuid.UUID           `gorm:"column:reference_id;type:uuid"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime"`
}
