package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/stockroom-backend/api/responses"
	"github.com/harborpoint/stockroom-backend/api/validators"
	"github.com/harborpoint/stockroom-backend/internal/inventory"
	"github.com/harborpoint/stockroom-backend/pkg/db/models"
	"github.com/harborpoint/stockroom-backend/pkg/enums"
	pkgerrors "github.com/harborpoint/stockroom-backend/pkg/errors"
	"github.com/harborpoint/stockroom-backend/pkg/logger"
	"github.com/harborpoint/stockroom-backend/pkg/pagination"
)

const maxWarehouseIDLen = 64

// InitializeStock seeds or resets the ledger row for one product variant.
func InitializeStock(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload initializeStockRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.InitializeStock(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, stockEntryResponseFromModel(entry))
	}
}

// AdjustQuantity applies a signed delta to one ledger row.
func AdjustQuantity(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload adjustQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.AdjustQuantity(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stockEntryResponseFromModel(entry))
	}
}

// CheckAvailability answers whether each requested line could be reserved
// right now. Advisory only; ReserveStock re-checks under row locks.
func CheckAvailability(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload availabilityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		queries, err := payload.toQueries()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		results, allAvailable, err := svc.CheckAvailability(r.Context(), queries)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, availabilityResponse{
			Items:        results,
			AllAvailable: allAvailable,
		})
	}
}

// ListLowStock pages through ledger rows at or below their low-stock
// threshold.
func ListLowStock(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", pagination.DefaultPage, 1, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		perPage, err := validators.ParseQueryInt(r, "per_page", pagination.DefaultPerPage, 1, pagination.MaxPerPage)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListLowStock(r.Context(), pagination.Params{Page: page, PerPage: perPage})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]stockEntryResponse, 0, len(result.Items))
		for i := range result.Items {
			items = append(items, stockEntryResponseFromModel(&result.Items[i]))
		}
		responses.WriteSuccess(w, pagination.Result[stockEntryResponse]{
			Items:      items,
			Page:       result.Page,
			PerPage:    result.PerPage,
			TotalCount: result.TotalCount,
		})
	}
}

type initializeStockRequest struct {
	ProductID         string `json:"product_id" validate:"required,uuid4"`
	VariantID         string `json:"variant_id" validate:"required,uuid4"`
	WarehouseID       string `json:"warehouse_id,omitempty"`
	Quantity          int    `json:"quantity" validate:"min=0"`
	LowStockThreshold *int   `json:"low_stock_threshold,omitempty" validate:"omitempty,min=0"`
	Reset             bool   `json:"reset,omitempty"`
}

func (r initializeStockRequest) toInput() (inventory.InitializeStockInput, error) {
	productID, variantID, err := parseVariantRef(r.ProductID, r.VariantID)
	if err != nil {
		return inventory.InitializeStockInput{}, err
	}
	return inventory.InitializeStockInput{
		ProductID:         productID,
		VariantID:         variantID,
		WarehouseID:       validators.SanitizeString(r.WarehouseID, maxWarehouseIDLen),
		Quantity:          r.Quantity,
		LowStockThreshold: r.LowStockThreshold,
		Reset:             r.Reset,
	}, nil
}

type adjustQuantityRequest struct {
	ProductID   string  `json:"product_id" validate:"required,uuid4"`
	VariantID   string  `json:"variant_id" validate:"required,uuid4"`
	WarehouseID string  `json:"warehouse_id,omitempty"`
	Delta       int     `json:"delta" validate:"required"`
	Reason      string  `json:"reason" validate:"required"`
	ReferenceID *string `json:"reference_id,omitempty" validate:"omitempty,uuid4"`
}

func (r adjustQuantityRequest) toInput() (inventory.AdjustQuantityInput, error) {
	productID, variantID, err := parseVariantRef(r.ProductID, r.VariantID)
	if err != nil {
		return inventory.AdjustQuantityInput{}, err
	}

	reason, err := enums.ParseMovementReason(strings.TrimSpace(r.Reason))
	if err != nil {
		return inventory.AdjustQuantityInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid reason")
	}

	var referenceID *uuid.UUID
	if r.ReferenceID != nil {
		parsed, err := uuid.Parse(*r.ReferenceID)
		if err != nil {
			return inventory.AdjustQuantityInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid reference id")
		}
		referenceID = &parsed
	}

	return inventory.AdjustQuantityInput{
		ProductID:   productID,
		VariantID:   variantID,
		WarehouseID: validators.SanitizeString(r.WarehouseID, maxWarehouseIDLen),
		Delta:       r.Delta,
		Reason:      reason,
		ReferenceID: referenceID,
	}, nil
}

type availabilityRequest struct {
	Items []availabilityItemRequest `json:"items" validate:"required,min=1,dive"`
}

type availabilityItemRequest struct {
	ProductID   string `json:"product_id" validate:"required,uuid4"`
	VariantID   string `json:"variant_id" validate:"required,uuid4"`
	WarehouseID string `json:"warehouse_id,omitempty"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
}

func (r availabilityRequest) toQueries() ([]inventory.AvailabilityQuery, error) {
	queries := make([]inventory.AvailabilityQuery, 0, len(r.Items))
	for _, item := range r.Items {
		productID, variantID, err := parseVariantRef(item.ProductID, item.VariantID)
		if err != nil {
			return nil, err
		}
		queries = append(queries, inventory.AvailabilityQuery{
			ProductID:   productID,
			VariantID:   variantID,
			WarehouseID: validators.SanitizeString(item.WarehouseID, maxWarehouseIDLen),
			Quantity:    item.Quantity,
		})
	}
	return queries, nil
}

type availabilityResponse struct {
	Items        []inventory.AvailabilityResult `json:"items"`
	AllAvailable bool                           `json:"all_available"`
}

type stockEntryResponse struct {
	ID                uuid.UUID `json:"id"`
	ProductID         uuid.UUID `json:"product_id"`
	VariantID         uuid.UUID `json:"variant_id"`
	WarehouseID       string    `json:"warehouse_id"`
	Quantity          int       `json:"quantity"`
	Reserved          int       `json:"reserved"`
	Available         int       `json:"available"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func stockEntryResponseFromModel(m *models.StockEntry) stockEntryResponse {
	return stockEntryResponse{
		ID:                m.ID,
		ProductID:         m.ProductID,
		VariantID:         m.VariantID,
		WarehouseID:       m.WarehouseID,
		Quantity:          m.Quantity,
		Reserved:          m.Reserved,
		Available:         m.Available(),
		LowStockThreshold: m.LowStockThreshold,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func parseVariantRef(rawProduct, rawVariant string) (uuid.UUID, uuid.UUID, error) {
	productID, err := uuid.Parse(rawProduct)
	if err != nil {
		return uuid.Nil, uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}
	variantID, err := uuid.Parse(rawVariant)
	if err != nil {
		return uuid.Nil, uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid variant id")
	}
	return productID, variantID, nil
}
