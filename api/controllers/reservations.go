package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/harborpoint/stockroom-backend/api/responses"
	"github.com/harborpoint/stockroom-backend/api/validators"
	"github.com/harborpoint/stockroom-backend/internal/inventory"
	"github.com/harborpoint/stockroom-backend/pkg/db/models"
	"github.com/harborpoint/stockroom-backend/pkg/enums"
	pkgerrors "github.com/harborpoint/stockroom-backend/pkg/errors"
	"github.com/harborpoint/stockroom-backend/pkg/logger"
)

// ReserveStock places holds for every line of a checkout in one transaction.
// Either all lines are held or none are.
func ReserveStock(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload reserveStockRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reservations, err := svc.ReserveStock(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]reservationResponse, 0, len(reservations))
		for i := range reservations {
			items = append(items, reservationResponseFromModel(&reservations[i]))
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, reserveStockResponse{Reservations: items})
	}
}

// ReleaseReservation returns one hold's units to the available pool.
func ReleaseReservation(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return reservationTransition(logg, func(r *http.Request, id uuid.UUID) (*models.Reservation, error) {
		if svc == nil {
			return nil, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable")
		}
		return svc.ReleaseReservation(r.Context(), id)
	})
}

// ConfirmReservation converts one hold into a committed stock decrement.
func ConfirmReservation(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return reservationTransition(logg, func(r *http.Request, id uuid.UUID) (*models.Reservation, error) {
		if svc == nil {
			return nil, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable")
		}
		return svc.ConfirmReservation(r.Context(), id)
	})
}

// ReleaseCheckoutReservations releases every non-terminal hold tied to a
// checkout. Already-settled holds are reported as skipped.
func ReleaseCheckoutReservations(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return checkoutFanOut(logg, func(r *http.Request, id uuid.UUID) ([]inventory.CheckoutItemOutcome, error) {
		if svc == nil {
			return nil, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable")
		}
		return svc.ReleaseReservationByCheckout(r.Context(), id)
	})
}

// ConfirmCheckoutReservations confirms every non-terminal hold tied to a
// checkout.
func ConfirmCheckoutReservations(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return checkoutFanOut(logg, func(r *http.Request, id uuid.UUID) ([]inventory.CheckoutItemOutcome, error) {
		if svc == nil {
			return nil, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable")
		}
		return svc.ConfirmReservationByCheckout(r.Context(), id)
	})
}

func reservationTransition(logg *logger.Logger, apply func(*http.Request, uuid.UUID) (*models.Reservation, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservationID, err := uuid.Parse(chi.URLParam(r, "reservationId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid reservation id"))
			return
		}

		reservation, err := apply(r, reservationID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, reservationResponseFromModel(reservation))
	}
}

func checkoutFanOut(logg *logger.Logger, apply func(*http.Request, uuid.UUID) ([]inventory.CheckoutItemOutcome, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checkoutID, err := uuid.Parse(chi.URLParam(r, "checkoutId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid checkout id"))
			return
		}

		outcomes, err := apply(r, checkoutID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, checkoutOutcomesResponse{CheckoutID: checkoutID, Items: outcomes})
	}
}

type reserveStockRequest struct {
	CheckoutID string               `json:"checkout_id" validate:"required,uuid4"`
	Items      []reserveItemRequest `json:"items" validate:"required,min=1,dive"`
	TTLSeconds int                  `json:"ttl_seconds,omitempty" validate:"omitempty,min=1"`
}

type reserveItemRequest struct {
	ProductID   string `json:"product_id" validate:"required,uuid4"`
	VariantID   string `json:"variant_id" validate:"required,uuid4"`
	WarehouseID string `json:"warehouse_id,omitempty"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
}

func (r reserveStockRequest) toInput() (inventory.ReserveStockInput, error) {
	checkoutID, err := uuid.Parse(r.CheckoutID)
	if err != nil {
		return inventory.ReserveStockInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid checkout id")
	}

	items := make([]inventory.ReserveItem, 0, len(r.Items))
	for _, item := range r.Items {
		productID, variantID, err := parseVariantRef(item.ProductID, item.VariantID)
		if err != nil {
			return inventory.ReserveStockInput{}, err
		}
		items = append(items, inventory.ReserveItem{
			ProductID:   productID,
			VariantID:   variantID,
			WarehouseID: validators.SanitizeString(item.WarehouseID, maxWarehouseIDLen),
			Quantity:    item.Quantity,
		})
	}

	return inventory.ReserveStockInput{
		CheckoutID: checkoutID,
		Items:      items,
		TTL:        time.Duration(r.TTLSeconds) * time.Second,
	}, nil
}

type reserveStockResponse struct {
	Reservations []reservationResponse `json:"reservations"`
}

type checkoutOutcomesResponse struct {
	CheckoutID uuid.UUID                       `json:"checkout_id"`
	Items      []inventory.CheckoutItemOutcome `json:"items"`
}

type reservationResponse struct {
	ID          uuid.UUID               `json:"id"`
	CheckoutID  uuid.UUID               `json:"checkout_id"`
	ProductID   uuid.UUID               `json:"product_id"`
	VariantID   uuid.UUID               `json:"variant_id"`
	WarehouseID string                  `json:"warehouse_id"`
	Quantity    int                     `json:"quantity"`
	Status      enums.ReservationStatus `json:"status"`
	ExpiresAt   time.Time               `json:"expires_at"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

func reservationResponseFromModel(m *models.Reservation) reservationResponse {
	return reservationResponse{
		ID:          m.ID,
		CheckoutID:  m.CheckoutID,
		ProductID:   m.ProductID,
		VariantID:   m.VariantID,
		WarehouseID: m.WarehouseID,
		Quantity:    m.Quantity,
		Status:      m.Status,
		ExpiresAt:   m.ExpiresAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
