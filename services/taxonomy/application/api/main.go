package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/dealerstock/pkg/app"
	"github.com/ghuser/dealerstock/pkg/auth"
	"github.com/ghuser/dealerstock/services/taxonomy/application/handlers"
	appsvcs "github.com/ghuser/dealerstock/services/taxonomy/application/services"
)

// TaxonomyRoutes registers taxonomy endpoints on the provided chi router.
// Reads are open to every authenticated role; edits require a mutator role.
func TaxonomyRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		r.Route("/taxonomy", func(r chi.Router) {
			r.Get("/tree", handlers.NewTreeHandler(svcs).Execute)
			r.Get("/manufacturers", handlers.NewListManufacturersHandler(svcs).Execute)
			r.Get("/manufacturers/{id}/categories", handlers.NewListCategoriesHandler(svcs).Execute)
			r.Get("/categories/{id}/trims", handlers.NewListTrimLevelsHandler(svcs).Execute)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireMutator)
				r.Post("/manufacturers", handlers.NewPostManufacturerHandler(svcs).Execute)
				r.Delete("/manufacturers/{id}", handlers.NewDeleteManufacturerHandler(svcs).Execute)
				r.Post("/manufacturers/{id}/categories", handlers.NewPostCategoryHandler(svcs).Execute)
				r.Delete("/categories/{id}", handlers.NewDeleteCategoryHandler(svcs).Execute)
				r.Post("/categories/{id}/trims", handlers.NewPostTrimLevelHandler(svcs).Execute)
				r.Delete("/trims/{id}", handlers.NewDeleteTrimLevelHandler(svcs).Execute)
			})
		})
	})
}
