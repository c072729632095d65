package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/harborpoint/stockroom-backend/internal/inventory"
	"github.com/harborpoint/stockroom-backend/pkg/config"
	"github.com/harborpoint/stockroom-backend/pkg/db/models"
	"github.com/harborpoint/stockroom-backend/pkg/logger"
	"github.com/harborpoint/stockroom-backend/pkg/pagination"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubInventoryService struct {
	reserveCalls       int
	releaseReservation uuid.UUID
	confirmCheckout    uuid.UUID
}

func (s *stubInventoryService) InitializeStock(ctx context.Context, input inventory.InitializeStockInput) (*models.StockEntry, error) {
	return &models.StockEntry{ID: uuid.New(), ProductID: input.ProductID, VariantID: input.VariantID, WarehouseID: models.DefaultWarehouse, Quantity: input.Quantity}, nil
}

func (s *stubInventoryService) AdjustQuantity(ctx context.Context, input inventory.AdjustQuantityInput) (*models.StockEntry, error) {
	return &models.StockEntry{ID: uuid.New(), ProductID: input.ProductID, VariantID: input.VariantID}, nil
}

func (s *stubInventoryService) CheckAvailability(ctx context.Context, items []inventory.AvailabilityQuery) ([]inventory.AvailabilityResult, bool, error) {
	return []inventory.AvailabilityResult{}, true, nil
}

func (s *stubInventoryService) ReserveStock(ctx context.Context, input inventory.ReserveStockInput) ([]models.Reservation, error) {
	s.reserveCalls++
	reservations := make([]models.Reservation, 0, len(input.Items))
	for _, item := range input.Items {
		reservations = append(reservations, models.Reservation{
			ID:         uuid.New(),
			ProductID:  item.ProductID,
			VariantID:  item.VariantID,
			Quantity:   item.Quantity,
			CheckoutID: input.CheckoutID,
		})
	}
	return reservations, nil
}

func (s *stubInventoryService) ReleaseReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error) {
	s.releaseReservation = reservationID
	return &models.Reservation{ID: reservationID}, nil
}

func (s *stubInventoryService) ConfirmReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error) {
	return &models.Reservation{ID: reservationID}, nil
}

func (s *stubInventoryService) ExpireReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error) {
	return &models.Reservation{ID: reservationID}, nil
}

func (s *stubInventoryService) ReleaseReservationByCheckout(ctx context.Context, checkoutID uuid.UUID) ([]inventory.CheckoutItemOutcome, error) {
	return []inventory.CheckoutItemOutcome{}, nil
}

func (s *stubInventoryService) ConfirmReservationByCheckout(ctx context.Context, checkoutID uuid.UUID) ([]inventory.CheckoutItemOutcome, error) {
	s.confirmCheckout = checkoutID
	return []inventory.CheckoutItemOutcome{}, nil
}

func (s *stubInventoryService) ListLowStock(ctx context.Context, params pagination.Params) (pagination.Result[models.StockEntry], error) {
	return pagination.NewResult[models.StockEntry](params, nil, 0), nil
}

func newTestRouter(t *testing.T, svc inventory.Service) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	logg := logger.New(logger.Options{ServiceName: "router-test", Output: io.Discard})
	return NewRouter(cfg, logg, stubPinger{}, stubPinger{}, svc)
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubInventoryService{})

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s returned %d", path, resp.Code)
		}
		if got := resp.Header().Get("X-Stockroom-Env"); got != "test" {
			t.Fatalf("%s env header = %q", path, got)
		}
	}
}

func TestRouterDispatchesReservationRoutes(t *testing.T) {
	svc := &stubInventoryService{}
	router := newTestRouter(t, svc)

	body := `{"checkout_id":"` + uuid.NewString() + `","items":[{"product_id":"` + uuid.NewString() + `","variant_id":"` + uuid.NewString() + `","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("reserve returned %d: %s", resp.Code, resp.Body.String())
	}
	if svc.reserveCalls != 1 {
		t.Fatalf("expected one reserve call, got %d", svc.reserveCalls)
	}

	reservationID := uuid.New()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/reservations/"+reservationID.String()+"/release", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("release returned %d: %s", resp.Code, resp.Body.String())
	}
	if svc.releaseReservation != reservationID {
		t.Fatalf("release routed to %s", svc.releaseReservation)
	}

	checkoutID := uuid.New()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/checkouts/"+checkoutID.String()+"/confirm", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("checkout confirm returned %d: %s", resp.Code, resp.Body.String())
	}
	if svc.confirmCheckout != checkoutID {
		t.Fatalf("checkout confirm routed to %s", svc.confirmCheckout)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t, &stubInventoryService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown route returned %d", resp.Code)
	}
}
