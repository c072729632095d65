package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harborpoint/stockroom-backend/pkg/db/models"
	"github.com/harborpoint/stockroom-backend/pkg/enums"
	"github.com/harborpoint/stockroom-backend/pkg/pagination"
)

// Repository manages persistence for stock entries, reservations, and the
// movement log.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	FindEntry(ctx context.Context, productID, variantID uuid.UUID, warehouseID string) (*models.StockEntry, error)
	FindEntryForUpdate(ctx context.Context, productID, variantID uuid.UUID, warehouseID string) (*models.StockEntry, error)
	CreateEntry(ctx context.Context, entry *models.StockEntry) error
	SaveEntry(ctx context.Context, entry *models.StockEntry) error
	ApplyQuantityDelta(ctx context.Context, productID, variantID uuid.UUID, warehouseID string, delta int) (int64, error)
	ListLowStock(ctx context.Context, params pagination.Params) ([]models.StockEntry, int64, error)

	CreateReservation(ctx context.Context, reservation *models.Reservation) error
	FindReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	FindReservationForUpdate(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	ListByCheckout(ctx context.Context, checkoutID uuid.UUID) ([]models.Reservation, error)
	ListExpiredActive(ctx context.Context, cutoff time.Time, limit int) ([]models.Reservation, error)
	SaveReservation(ctx context.Context, reservation *models.Reservation) error

	RecordMovement(ctx context.Context, movement *models.StockMovement) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an inventory repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindEntry(ctx context.Context, productID, variantID uuid.UUID, warehouseID string) (*models.StockEntry, error) {
	var entry models.StockEntry
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND variant_id = ? AND warehouse_id = ?", productID, variantID, warehouseID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) FindEntryForUpdate(ctx context.Context, productID, variantID uuid.UUID, warehouseID string) (*models.StockEntry, error) {
	var entry models.StockEntry
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ? AND variant_id = ? AND warehouse_id = ?", productID, variantID, warehouseID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) CreateEntry(ctx context.Context, entry *models.StockEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) SaveEntry(ctx context.Context, entry *models.StockEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// ApplyQuantityDelta adds delta to quantity in one atomic statement. The guard
// keeps quantity from dropping below the reserved count without taking a row
// lock; zero rows affected means the row is missing or the delta would
// underflow.
func (r *repository) ApplyQuantityDelta(ctx context.Context, productID, variantID uuid.UUID, warehouseID string, delta int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.StockEntry{}).
		Where("product_id = ? AND variant_id = ? AND warehouse_id = ? AND quantity + ? >= reserved",
			productID, variantID, warehouseID, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	return res.RowsAffected, res.Error
}

func (r *repository) ListLowStock(ctx context.Context, params pagination.Params) ([]models.StockEntry, int64, error) {
	const lowStockCond = "quantity - reserved <= low_stock_threshold"

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.StockEntry{}).
		Where(lowStockCond).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.StockEntry
	err := r.db.WithContext(ctx).
		Where(lowStockCond).
		Order("product_id ASC").
		Order("variant_id ASC").
		Order("warehouse_id ASC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *repository) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *repository) FindReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) FindReservationForUpdate(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) ListByCheckout(ctx context.Context, checkoutID uuid.UUID) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Where("checkout_id = ?", checkoutID).
		Order("created_at ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *repository) ListExpiredActive(ctx context.Context, cutoff time.Time, limit int) ([]models.Reservation, error) {
	var reservations []models.Reservation
	q := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", enums.ReservationStatusActive, cutoff).
		Order("expires_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *repository) SaveReservation(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

func (r *repository) RecordMovement(ctx context.Context, movement *models.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}
