package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborpoint/stockroom-backend/pkg/config"
	"github.com/harborpoint/stockroom-backend/pkg/db"
	"github.com/harborpoint/stockroom-backend/pkg/db/models"
	"github.com/harborpoint/stockroom-backend/pkg/enums"
	pkgerrors "github.com/harborpoint/stockroom-backend/pkg/errors"
	"github.com/harborpoint/stockroom-backend/pkg/logger"
	"github.com/harborpoint/stockroom-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// InitializeStockInput seeds or resets one ledger row.
type InitializeStockInput struct {
	ProductID         uuid.UUID
	VariantID         uuid.UUID
	WarehouseID       string
	Quantity          int
	LowStockThreshold *int
	// Reset allows overwriting an existing row. Re-initialization zeroes
	// reserved, so it is rejected unless the caller opts in explicitly.
	Reset bool
}

// AdjustQuantityInput applies a signed delta to one ledger row.
type AdjustQuantityInput struct {
	ProductID   uuid.UUID
	VariantID   uuid.UUID
	WarehouseID string
	Delta       int
	Reason      enums.MovementReason
	ReferenceID *uuid.UUID
}

// AvailabilityQuery asks whether one line could currently be reserved.
type AvailabilityQuery struct {
	ProductID   uuid.UUID
	VariantID   uuid.UUID
	WarehouseID string
	Quantity    int
}

// AvailabilityResult reports the point-in-time answer for one line. It is a
// snapshot, not a guarantee; only ReserveStock is authoritative.
type AvailabilityResult struct {
	ProductID   uuid.UUID `json:"product_id"`
	VariantID   uuid.UUID `json:"variant_id"`
	WarehouseID string    `json:"warehouse_id"`
	Requested   int       `json:"requested"`
	Available   int       `json:"available"`
	InStock     bool      `json:"in_stock"`
}

// ReserveItem is one line of a reservation request.
type ReserveItem struct {
	ProductID   uuid.UUID
	VariantID   uuid.UUID
	WarehouseID string
	Quantity    int
}

// ReserveStockInput holds a multi-line reservation request. A zero TTL falls
// back to the configured default.
type ReserveStockInput struct {
	CheckoutID uuid.UUID
	Items      []ReserveItem
	TTL        time.Duration
}

// CheckoutItemOutcome reports what happened to one reservation during a
// checkout-level confirm or release fan-out.
type CheckoutItemOutcome struct {
	ReservationID uuid.UUID               `json:"reservation_id"`
	Status        enums.ReservationStatus `json:"status"`
	Skipped       bool                    `json:"skipped"`
	Error         string                  `json:"error,omitempty"`
}

// Service is the reservation coordinator. All writes to stock quantities,
// reserved counts, and reservation statuses go through it.
type Service interface {
	InitializeStock(ctx context.Context, input InitializeStockInput) (*models.StockEntry, error)
	AdjustQuantity(ctx context.Context, input AdjustQuantityInput) (*models.StockEntry, error)
	CheckAvailability(ctx context.Context, items []AvailabilityQuery) ([]AvailabilityResult, bool, error)
	ReserveStock(ctx context.Context, input ReserveStockInput) ([]models.Reservation, error)
	ReleaseReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error)
	ConfirmReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error)
	ExpireReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error)
	ReleaseReservationByCheckout(ctx context.Context, checkoutID uuid.UUID) ([]CheckoutItemOutcome, error)
	ConfirmReservationByCheckout(ctx context.Context, checkoutID uuid.UUID) ([]CheckoutItemOutcome, error)
	ListLowStock(ctx context.Context, params pagination.Params) (pagination.Result[models.StockEntry], error)
}

type service struct {
	repo     Repository
	tx       txRunner
	notifier Notifier
	cfg      config.InventoryConfig
	logg     *logger.Logger
}

// NewService builds the reservation coordinator with its dependencies.
func NewService(repo Repository, tx txRunner, notifier Notifier, cfg config.InventoryConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	if cfg.ReservationTTL <= 0 {
		return nil, fmt.Errorf("reservation ttl must be positive")
	}
	return &service{
		repo:     repo,
		tx:       tx,
		notifier: notifier,
		cfg:      cfg,
		logg:     logg,
	}, nil
}

func (s *service) InitializeStock(ctx context.Context, input InitializeStockInput) (*models.StockEntry, error) {
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	if input.VariantID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant id required")
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be non-negative")
	}
	warehouseID := normalizeWarehouse(input.WarehouseID)

	threshold := s.cfg.LowStockThreshold
	if input.LowStockThreshold != nil {
		if *input.LowStockThreshold < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "low stock threshold must be non-negative")
		}
		threshold = *input.LowStockThreshold
	}

	var entry models.StockEntry
	var change int
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindEntryForUpdate(ctx, input.ProductID, input.VariantID, warehouseID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load stock entry")
		}

		if existing == nil {
			entry = models.StockEntry{
				ID:                uuid.New(),
				ProductID:         input.ProductID,
				VariantID:         input.VariantID,
				WarehouseID:       warehouseID,
				Quantity:          input.Quantity,
				Reserved:          0,
				LowStockThreshold: threshold,
			}
			if err := repo.CreateEntry(ctx, &entry); err != nil {
				// A concurrent initializer can insert between the lookup and
				// this create. The loser's unique violation is the same
				// condition as finding the row up front, so it gets the same
				// answer.
				if db.IsUniqueViolation(err, "") {
					return pkgerrors.New(pkgerrors.CodeStateConflict,
						"stock entry already initialized; pass reset to overwrite").
						WithDetails(map[string]any{
							"product_id":   input.ProductID,
							"variant_id":   input.VariantID,
							"warehouse_id": warehouseID,
						})
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create stock entry")
			}
			change = input.Quantity
		} else {
			if !input.Reset {
				return pkgerrors.New(pkgerrors.CodeStateConflict,
					"stock entry already initialized; pass reset to overwrite").
					WithDetails(map[string]any{
						"product_id":   input.ProductID,
						"variant_id":   input.VariantID,
						"warehouse_id": warehouseID,
					})
			}
			change = input.Quantity - existing.Quantity
			existing.Quantity = input.Quantity
			existing.Reserved = 0
			existing.LowStockThreshold = threshold
			if err := repo.SaveEntry(ctx, existing); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reset stock entry")
			}
			entry = *existing
		}

		if change != 0 {
			movement := models.StockMovement{
				ID:             uuid.New(),
				ProductID:      entry.ProductID,
				VariantID:      entry.VariantID,
				WarehouseID:    entry.WarehouseID,
				QuantityChange: change,
				Reason:         enums.MovementReasonAdjustment,
			}
			if err := repo.RecordMovement(ctx, &movement); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record stock movement")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.LedgerUpdated(ctx, entry, change, enums.MovementReasonAdjustment)
	return &entry, nil
}

func (s *service) AdjustQuantity(ctx context.Context, input AdjustQuantityInput) (*models.StockEntry, error) {
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	if input.VariantID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant id required")
	}
	if input.Delta == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delta must be non-zero")
	}
	if !input.Reason.IsValid() || input.Reason == enums.MovementReasonReservation {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("invalid movement reason %q", input.Reason))
	}
	warehouseID := normalizeWarehouse(input.WarehouseID)

	var entry models.StockEntry
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		affected, err := repo.ApplyQuantityDelta(ctx, input.ProductID, input.VariantID, warehouseID, input.Delta)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "apply quantity delta")
		}
		if affected == 0 {
			current, err := repo.FindEntry(ctx, input.ProductID, input.VariantID, warehouseID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return stockEntryNotFound(input.ProductID, input.VariantID, warehouseID)
			}
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load stock entry")
			}
			return pkgerrors.New(pkgerrors.CodeStateConflict, "adjustment would drive quantity below reserved").
				WithDetails(map[string]any{
					"quantity": current.Quantity,
					"reserved": current.Reserved,
					"delta":    input.Delta,
				})
		}

		movement := models.StockMovement{
			ID:             uuid.New(),
			ProductID:      input.ProductID,
			VariantID:      input.VariantID,
			WarehouseID:    warehouseID,
			QuantityChange: input.Delta,
			Reason:         input.Reason,
			ReferenceID:    input.ReferenceID,
		}
		if err := repo.RecordMovement(ctx, &movement); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record stock movement")
		}

		current, err := repo.FindEntry(ctx, input.ProductID, input.VariantID, warehouseID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload stock entry")
		}
		entry = *current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.LedgerUpdated(ctx, entry, input.Delta, input.Reason)
	if entry.IsLowStock() {
		s.notifier.LowStock(ctx, entry)
	}
	return &entry, nil
}

func (s *service) CheckAvailability(ctx context.Context, items []AvailabilityQuery) ([]AvailabilityResult, bool, error) {
	if len(items) == 0 {
		return nil, false, pkgerrors.New(pkgerrors.CodeValidation, "at least one item required")
	}

	results := make([]AvailabilityResult, 0, len(items))
	all := true
	for _, item := range items {
		if item.ProductID == uuid.Nil || item.VariantID == uuid.Nil {
			return nil, false, pkgerrors.New(pkgerrors.CodeValidation, "product id and variant id required for every item")
		}
		if item.Quantity <= 0 {
			return nil, false, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive")
		}
		warehouseID := normalizeWarehouse(item.WarehouseID)

		result := AvailabilityResult{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			WarehouseID: warehouseID,
			Requested:   item.Quantity,
		}
		entry, err := s.repo.FindEntry(ctx, item.ProductID, item.VariantID, warehouseID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load stock entry")
		}
		if entry != nil {
			result.Available = entry.Available()
			result.InStock = result.Available >= item.Quantity
		}
		if !result.InStock {
			all = false
		}
		results = append(results, result)
	}
	return results, all, nil
}

func (s *service) ReserveStock(ctx context.Context, input ReserveStockInput) ([]models.Reservation, error) {
	if input.CheckoutID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "checkout id required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one item required")
	}
	for _, item := range input.Items {
		if item.ProductID == uuid.Nil || item.VariantID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id and variant id required for every item")
		}
		if item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive")
		}
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = s.cfg.ReservationTTL
	}
	expiresAt := time.Now().Add(ttl).UTC()

	// Locks are acquired in a global (product, variant, warehouse) order so
	// two multi-item reservations naming the same rows cannot deadlock.
	ordered := make([]int, len(input.Items))
	for i := range ordered {
		ordered[i] = i
	}
	sort.SliceStable(ordered, func(a, b int) bool {
		return lockKey(input.Items[ordered[a]]) < lockKey(input.Items[ordered[b]])
	})

	reservations := make([]models.Reservation, len(input.Items))
	entries := make([]models.StockEntry, len(input.Items))
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		for _, idx := range ordered {
			item := input.Items[idx]
			warehouseID := normalizeWarehouse(item.WarehouseID)

			entry, err := repo.FindEntryForUpdate(ctx, item.ProductID, item.VariantID, warehouseID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return stockEntryNotFound(item.ProductID, item.VariantID, warehouseID)
			}
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lock stock entry")
			}
			if entry.Available() < item.Quantity {
				return pkgerrors.New(pkgerrors.CodeStateConflict, "insufficient stock").
					WithDetails(map[string]any{
						"product_id":   item.ProductID,
						"variant_id":   item.VariantID,
						"warehouse_id": warehouseID,
						"requested":    item.Quantity,
						"available":    entry.Available(),
					})
			}

			entry.Reserved += item.Quantity
			if err := repo.SaveEntry(ctx, entry); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update reserved count")
			}

			reservation := models.Reservation{
				ID:          uuid.New(),
				ProductID:   item.ProductID,
				VariantID:   item.VariantID,
				WarehouseID: warehouseID,
				Quantity:    item.Quantity,
				CheckoutID:  input.CheckoutID,
				Status:      enums.ReservationStatusActive,
				ExpiresAt:   expiresAt,
			}
			if err := repo.CreateReservation(ctx, &reservation); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create reservation")
			}

			movement := models.StockMovement{
				ID:             uuid.New(),
				ProductID:      item.ProductID,
				VariantID:      item.VariantID,
				WarehouseID:    warehouseID,
				QuantityChange: -item.Quantity,
				Reason:         enums.MovementReasonReservation,
				ReferenceID:    &reservation.ID,
			}
			if err := repo.RecordMovement(ctx, &movement); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record stock movement")
			}

			reservations[idx] = reservation
			entries[idx] = *entry
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range reservations {
		s.notifier.ReservationCreated(ctx, reservations[i], entries[i])
	}

	// One low-stock notification per ledger row, even when several items in
	// the request landed on the same row. The snapshot with the highest
	// reserved count is the row's state after the last write.
	latest := make(map[string]models.StockEntry, len(entries))
	for i := range entries {
		key := lockKey(input.Items[i])
		if seen, ok := latest[key]; !ok || entries[i].Reserved > seen.Reserved {
			latest[key] = entries[i]
		}
	}
	for _, entry := range latest {
		if entry.IsLowStock() {
			s.notifier.LowStock(ctx, entry)
		}
	}
	return reservations, nil
}

func (s *service) ReleaseReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error) {
	return s.finalizeReservation(ctx, reservationID, enums.ReservationStatusReleased)
}

func (s *service) ConfirmReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error) {
	return s.finalizeReservation(ctx, reservationID, enums.ReservationStatusConfirmed)
}

// ExpireReservation is the sweeper's release path. It behaves exactly like
// ReleaseReservation but records the terminal status as expired so audit
// queries can tell a timeout apart from a caller-initiated release.
func (s *service) ExpireReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error) {
	return s.finalizeReservation(ctx, reservationID, enums.ReservationStatusExpired)
}

// finalizeReservation moves an active reservation to one terminal status. The
// reservation row itself is locked and its status re-checked under the lock,
// which serializes an explicit release racing the expiry sweeper: whichever
// acquires the lock first wins, the other observes a terminal status and
// fails cleanly.
func (s *service) finalizeReservation(ctx context.Context, reservationID uuid.UUID, target enums.ReservationStatus) (*models.Reservation, error) {
	if reservationID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reservation id required")
	}

	var reservation models.Reservation
	var entry models.StockEntry
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		locked, err := repo.FindReservationForUpdate(ctx, reservationID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
		}
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lock reservation")
		}
		if locked.Status != enums.ReservationStatusActive {
			if target == enums.ReservationStatusConfirmed && locked.Status == enums.ReservationStatusConfirmed {
				return pkgerrors.New(pkgerrors.CodeStateConflict, "reservation already confirmed")
			}
			return pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("reservation is %s, not active", locked.Status))
		}

		stock, err := repo.FindEntryForUpdate(ctx, locked.ProductID, locked.VariantID, locked.WarehouseID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return stockEntryNotFound(locked.ProductID, locked.VariantID, locked.WarehouseID)
		}
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lock stock entry")
		}

		// Floor at zero so a previously inconsistent row cannot push the
		// reserved count negative.
		stock.Reserved -= locked.Quantity
		if stock.Reserved < 0 {
			stock.Reserved = 0
		}

		movement := models.StockMovement{
			ID:          uuid.New(),
			ProductID:   locked.ProductID,
			VariantID:   locked.VariantID,
			WarehouseID: locked.WarehouseID,
			ReferenceID: &locked.ID,
		}
		if target == enums.ReservationStatusConfirmed {
			stock.Quantity -= locked.Quantity
			movement.QuantityChange = -locked.Quantity
			movement.Reason = enums.MovementReasonOrder
		} else {
			movement.QuantityChange = locked.Quantity
			movement.Reason = enums.MovementReasonReservation
		}

		if err := repo.SaveEntry(ctx, stock); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update stock entry")
		}
		if err := repo.RecordMovement(ctx, &movement); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record stock movement")
		}

		locked.Status = target
		if err := repo.SaveReservation(ctx, locked); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update reservation status")
		}

		reservation = *locked
		entry = *stock
		return nil
	})
	if err != nil {
		return nil, err
	}

	// A confirm consumes the hold rather than returning it to the pool, so
	// it announces the ledger change only. reservation.released stays
	// reserved for explicit releases and expiries.
	if target == enums.ReservationStatusConfirmed {
		s.notifier.LedgerUpdated(ctx, entry, -reservation.Quantity, enums.MovementReasonOrder)
		if entry.IsLowStock() {
			s.notifier.LowStock(ctx, entry)
		}
	} else {
		s.notifier.ReservationReleased(ctx, reservation, entry)
	}
	return &reservation, nil
}

func (s *service) ReleaseReservationByCheckout(ctx context.Context, checkoutID uuid.UUID) ([]CheckoutItemOutcome, error) {
	return s.finalizeByCheckout(ctx, checkoutID, s.ReleaseReservation)
}

func (s *service) ConfirmReservationByCheckout(ctx context.Context, checkoutID uuid.UUID) ([]CheckoutItemOutcome, error) {
	return s.finalizeByCheckout(ctx, checkoutID, s.ConfirmReservation)
}

// finalizeByCheckout fans one checkout-level call out to the per-reservation
// operation. Each reservation runs in its own transaction, so one failure
// never rolls back a sibling that already finished; callers reconcile partial
// completion from the per-item outcomes.
func (s *service) finalizeByCheckout(
	ctx context.Context,
	checkoutID uuid.UUID,
	apply func(context.Context, uuid.UUID) (*models.Reservation, error),
) ([]CheckoutItemOutcome, error) {
	if checkoutID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "checkout id required")
	}

	reservations, err := s.repo.ListByCheckout(ctx, checkoutID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load checkout reservations")
	}
	if len(reservations) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no reservations for checkout")
	}

	outcomes := make([]CheckoutItemOutcome, 0, len(reservations))
	for _, reservation := range reservations {
		outcome := CheckoutItemOutcome{
			ReservationID: reservation.ID,
			Status:        reservation.Status,
		}
		if reservation.Status != enums.ReservationStatusActive {
			outcome.Skipped = true
			outcomes = append(outcomes, outcome)
			continue
		}
		updated, err := apply(ctx, reservation.ID)
		if err != nil {
			outcome.Error = err.Error()
			if s.logg != nil {
				logCtx := s.logg.WithReservationID(ctx, reservation.ID.String())
				s.logg.Error(logCtx, "checkout fan-out failed for reservation", err)
			}
		} else {
			outcome.Status = updated.Status
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func (s *service) ListLowStock(ctx context.Context, params pagination.Params) (pagination.Result[models.StockEntry], error) {
	params = params.Normalize()
	entries, total, err := s.repo.ListLowStock(ctx, params)
	if err != nil {
		return pagination.Result[models.StockEntry]{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list low stock entries")
	}
	return pagination.NewResult(params, entries, total), nil
}

func normalizeWarehouse(warehouseID string) string {
	trimmed := strings.TrimSpace(warehouseID)
	if trimmed == "" {
		return models.DefaultWarehouse
	}
	return trimmed
}

func lockKey(item ReserveItem) string {
	return item.ProductID.String() + "/" + item.VariantID.String() + "/" + normalizeWarehouse(item.WarehouseID)
}

func stockEntryNotFound(productID, variantID uuid.UUID, warehouseID string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "stock entry not found").
		WithDetails(map[string]any{
			"product_id":   productID,
			"variant_id":   variantID,
			"warehouse_id": warehouseID,
		})
}
