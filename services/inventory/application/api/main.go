package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/dealerstock/pkg/app"
	"github.com/ghuser/dealerstock/pkg/auth"
	"github.com/ghuser/dealerstock/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/dealerstock/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
// Reads are open to every authenticated role; mutations require a role that
// passes auth.RequireMutator.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handlers.NewListVehiclesHandler(svcs).Execute)
			r.Get("/search", handlers.NewSearchVehiclesHandler(svcs).Execute)
			r.Get("/filter", handlers.NewFilterVehiclesHandler(svcs).Execute)
			r.Get("/stats", handlers.NewStatsHandler(svcs).Execute)
			r.Get("/stats/manufacturers", handlers.NewManufacturerStatsHandler(svcs).Execute)
			r.Get("/stats/locations", handlers.NewLocationStatsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetVehicleHandler(svcs).Execute)
			r.Get("/{id}/transfers", handlers.NewListTransfersHandler(svcs).Execute)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireMutator)
				r.Post("/", handlers.NewPostVehicleHandler(svcs).Execute)
				r.Put("/{id}", handlers.NewPutVehicleHandler(svcs).Execute)
				r.Delete("/{id}", handlers.NewDeleteVehicleHandler(svcs).Execute)
				r.Post("/{id}/reserve", handlers.NewReserveVehicleHandler(svcs).Execute)
				r.Post("/{id}/reserve/cancel", handlers.NewCancelReservationHandler(svcs).Execute)
				r.Post("/{id}/sell", handlers.NewSellVehicleHandler(svcs).Execute)
				r.Post("/{id}/transfer", handlers.NewTransferVehicleHandler(svcs).Execute)
			})
		})
	})
}
