package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harborpoint/stockroom-backend/api/controllers"
	"github.com/harborpoint/stockroom-backend/api/middleware"
	"github.com/harborpoint/stockroom-backend/internal/inventory"
	"github.com/harborpoint/stockroom-backend/pkg/config"
	"github.com/harborpoint/stockroom-backend/pkg/db"
	"github.com/harborpoint/stockroom-backend/pkg/logger"
	"github.com/harborpoint/stockroom-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	inventoryService inventory.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/inventory", func(r chi.Router) {
			r.Post("/", controllers.InitializeStock(inventoryService, logg))
			r.Post("/adjust", controllers.AdjustQuantity(inventoryService, logg))
			r.Post("/availability", controllers.CheckAvailability(inventoryService, logg))
			r.Get("/low-stock", controllers.ListLowStock(inventoryService, logg))
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Post("/", controllers.ReserveStock(inventoryService, logg))
			r.Post("/{reservationId}/release", controllers.ReleaseReservation(inventoryService, logg))
			r.Post("/{reservationId}/confirm", controllers.ConfirmReservation(inventoryService, logg))
		})

		r.Route("/checkouts", func(r chi.Router) {
			r.Post("/{checkoutId}/release", controllers.ReleaseCheckoutReservations(inventoryService, logg))
			r.Post("/{checkoutId}/confirm", controllers.ConfirmCheckoutReservations(inventoryService, logg))
		})
	})

	return r
}
