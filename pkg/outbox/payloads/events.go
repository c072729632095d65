package payloads

import (
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/stockroom-backend/pkg/enums"
)

// LedgerUpdatedEvent carries the post-change snapshot of a stock entry.
type LedgerUpdatedEvent struct {
	StockEntryID   uuid.UUID            `json:"stock_entry_id"`
	ProductID      uuid.UUID            `json:"product_id"`
	VariantID      uuid.UUID            `json:"variant_id"`
	WarehouseID    string               `json:"warehouse_id"`
	Quantity       int                  `json:"quantity"`
	Reserved       int                  `json:"reserved"`
	Available      int                  `json:"available"`
	QuantityChange int                  `json:"quantity_change"`
	Reason         enums.MovementReason `json:"reason"`
}

// LedgerLowStockEvent is emitted when available stock crosses the threshold.
type LedgerLowStockEvent struct {
	StockEntryID uuid.UUID `json:"stock_entry_id"`
	ProductID    uuid.UUID `json:"product_id"`
	VariantID    uuid.UUID `json:"variant_id"`
	WarehouseID  string    `json:"warehouse_id"`
	Available    int       `json:"available"`
	Threshold    int       `json:"threshold"`
}

// LedgerSnapshot is the post-mutation state of the stock entry backing a
// reservation event.
type LedgerSnapshot struct {
	Quantity  int `json:"quantity"`
	Reserved  int `json:"reserved"`
	Available int `json:"available"`
}

// ReservationItem describes one held line inside a reservation event.
type ReservationItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	VariantID   uuid.UUID `json:"variant_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int       `json:"quantity"`
}

// ReservationCreatedEvent signals a new active hold against the ledger.
type ReservationCreatedEvent struct {
	ReservationID uuid.UUID       `json:"reservation_id"`
	CheckoutID    uuid.UUID       `json:"checkout_id"`
	Item          ReservationItem `json:"item"`
	Ledger        LedgerSnapshot  `json:"ledger"`
	ExpiresAt     time.Time       `json:"expires_at"`
}

// ReservationReleasedEvent signals a hold returning to the available pool.
// The final status distinguishes a manual release from an expiry; confirmed
// reservations consume the hold and announce a ledger update instead.
type ReservationReleasedEvent struct {
	ReservationID uuid.UUID               `json:"reservation_id"`
	CheckoutID    uuid.UUID               `json:"checkout_id"`
	Item          ReservationItem         `json:"item"`
	Ledger        LedgerSnapshot          `json:"ledger"`
	FinalStatus   enums.ReservationStatus `json:"final_status"`
	ReleasedAt    time.Time               `json:"released_at"`
}
