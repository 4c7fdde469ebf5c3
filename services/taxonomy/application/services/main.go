package services

import (
	"github.com/ghuser/dealerstock/pkg/app"
	"github.com/ghuser/dealerstock/pkg/config"
	"github.com/ghuser/dealerstock/services/taxonomy/domain/repositories"
	"github.com/ghuser/dealerstock/services/taxonomy/infrastructure/persistence/memory"
	"github.com/ghuser/dealerstock/services/taxonomy/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Taxonomy *TaxonomyService
}

// New wires the taxonomy service with the storage adapter selected at startup.
func New(a *app.Application) *Services {
	var repo repositories.TaxonomyRepository
	if a.StorageBackend == config.StorageMemory {
		repo = memory.NewTaxonomyRepository()
	} else {
		repo = postgres.NewTaxonomyRepository(a.Db)
	}
	return &Services{Taxonomy: NewTaxonomyService(repo)}
}
