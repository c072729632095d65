package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultWarehouse is the identifier used when callers do not route stock to a
// specific warehouse.
const DefaultWarehouse = "default"

// StockEntry is the authoritative ledger row for one product variant in one
// warehouse. Quantity counts units physically present; Reserved counts units
// held by active reservations. Rows are never deleted, zero stock is a valid
// steady state.
type StockEntry struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID         uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:ux_stock_entries_product_variant_warehouse,priority:1"`
	VariantID         uuid.UUID `gorm:"column:variant_id;type:uuid;not null;uniqueIndex:ux_stock_entries_product_variant_warehouse,priority:2"`
	WarehouseID       string    `gorm:"column:warehouse_id;not null;default:'default';uniqueIndex:ux_stock_entries_product_variant_warehouse,priority:3"`
	Quantity          int       `gorm:"column:quantity;not null;default:0"`
	Reserved          int       `gorm:"column:reserved;not null;default:0"`
	LowStockThreshold int       `gorm:"column:low_stock_threshold;not null;default:0"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Available returns the units a new reservation could still claim. Derived,
// never stored.
func (s StockEntry) Available() int {
	return s.Quantity - s.Reserved
}

// IsLowStock reports whether the entry sits at or below its threshold.
func (s StockEntry) IsLowStock() bool {
	return s.Available() <= s.LowStockThreshold
}
