package inventory

import (
	"context"

	"gorm.io/gorm"

	"github.com/harborpoint/stockroom-backend/pkg/db/models"
	"github.com/harborpoint/stockroom-backend/pkg/enums"
	"github.com/harborpoint/stockroom-backend/pkg/logger"
	"github.com/harborpoint/stockroom-backend/pkg/outbox"
	"github.com/harborpoint/stockroom-backend/pkg/outbox/payloads"
)

// Notifier publishes ledger and reservation change events. Every method is
// best-effort: failures are logged and dropped, they never propagate to the
// mutation that triggered them.
type Notifier interface {
	LedgerUpdated(ctx context.Context, entry models.StockEntry, change int, reason enums.MovementReason)
	LowStock(ctx context.Context, entry models.StockEntry)
	ReservationCreated(ctx context.Context, reservation models.Reservation, entry models.StockEntry)
	ReservationReleased(ctx context.Context, reservation models.Reservation, entry models.StockEntry)
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type outboxNotifier struct {
	tx     txRunner
	outbox outboxPublisher
	logg   *logger.Logger
}

// NewOutboxNotifier builds a notifier that queues events through the
// transactional outbox. Each event gets its own short transaction so a failed
// insert cannot roll back the ledger mutation that already committed.
func NewOutboxNotifier(tx txRunner, publisher outboxPublisher, logg *logger.Logger) Notifier {
	return &outboxNotifier{tx: tx, outbox: publisher, logg: logg}
}

func (n *outboxNotifier) LedgerUpdated(ctx context.Context, entry models.StockEntry, change int, reason enums.MovementReason) {
	n.emit(ctx, outbox.DomainEvent{
		EventType:     enums.EventLedgerUpdated,
		AggregateType: enums.AggregateStockEntry,
		AggregateID:   entry.ID,
		Version:       1,
		Data: payloads.LedgerUpdatedEvent{
			StockEntryID:   entry.ID,
			ProductID:      entry.ProductID,
			VariantID:      entry.VariantID,
			WarehouseID:    entry.WarehouseID,
			Quantity:       entry.Quantity,
			Reserved:       entry.Reserved,
			Available:      entry.Available(),
			QuantityChange: change,
			Reason:         reason,
		},
	})
}

func (n *outboxNotifier) LowStock(ctx context.Context, entry models.StockEntry) {
	n.emit(ctx, outbox.DomainEvent{
		EventType:     enums.EventLedgerLowStock,
		AggregateType: enums.AggregateStockEntry,
		AggregateID:   entry.ID,
		Version:       1,
		Data: payloads.LedgerLowStockEvent{
			StockEntryID: entry.ID,
			ProductID:    entry.ProductID,
			VariantID:    entry.VariantID,
			WarehouseID:  entry.WarehouseID,
			Available:    entry.Available(),
			Threshold:    entry.LowStockThreshold,
		},
	})
}

func (n *outboxNotifier) ReservationCreated(ctx context.Context, reservation models.Reservation, entry models.StockEntry) {
	n.emit(ctx, outbox.DomainEvent{
		EventType:     enums.EventReservationCreated,
		AggregateType: enums.AggregateReservation,
		AggregateID:   reservation.ID,
		Version:       1,
		Data: payloads.ReservationCreatedEvent{
			ReservationID: reservation.ID,
			CheckoutID:    reservation.CheckoutID,
			Item:          reservationItem(reservation),
			Ledger:        ledgerSnapshot(entry),
			ExpiresAt:     reservation.ExpiresAt,
		},
	})
}

func (n *outboxNotifier) ReservationReleased(ctx context.Context, reservation models.Reservation, entry models.StockEntry) {
	n.emit(ctx, outbox.DomainEvent{
		EventType:     enums.EventReservationReleased,
		AggregateType: enums.AggregateReservation,
		AggregateID:   reservation.ID,
		Version:       1,
		Data: payloads.ReservationReleasedEvent{
			ReservationID: reservation.ID,
			CheckoutID:    reservation.CheckoutID,
			Item:          reservationItem(reservation),
			Ledger:        ledgerSnapshot(entry),
			FinalStatus:   reservation.Status,
			ReleasedAt:    reservation.UpdatedAt,
		},
	})
}

func (n *outboxNotifier) emit(ctx context.Context, event outbox.DomainEvent) {
	err := n.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return n.outbox.Emit(ctx, tx, event)
	})
	if err != nil && n.logg != nil {
		logCtx := n.logg.WithFields(ctx, map[string]any{
			"event_type":   event.EventType,
			"aggregate_id": event.AggregateID.String(),
		})
		n.logg.Warn(logCtx, "dropping inventory notification: "+err.Error())
	}
}

func reservationItem(reservation models.Reservation) payloads.ReservationItem {
	return payloads.ReservationItem{
		ProductID:   reservation.ProductID,
		VariantID:   reservation.VariantID,
		WarehouseID: reservation.WarehouseID,
		Quantity:    reservation.Quantity,
	}
}

func ledgerSnapshot(entry models.StockEntry) payloads.LedgerSnapshot {
	return payloads.LedgerSnapshot{
		Quantity:  entry.Quantity,
		Reserved:  entry.Reserved,
		Available: entry.Available(),
	}
}
