package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/dealerstock/services/taxonomy/domain/models"
)

// TaxonomyRepository is the persistence port for the three-level reference
// tree. Parent existence and child-blocking deletes are enforced here: the
// postgres adapter leans on foreign keys with ON DELETE RESTRICT, the memory
// adapter checks its maps under the lock.
type TaxonomyRepository interface {
	SaveManufacturer(ctx context.Context, m *models.Manufacturer) error
	ListManufacturers(ctx context.Context) ([]*models.Manufacturer, error)
	// DeleteManufacturer returns ErrNodeInUse while categories remain.
	DeleteManufacturer(ctx context.Context, id uuid.UUID) error

	// SaveCategory returns ErrNodeNotFound when the parent manufacturer is gone.
	SaveCategory(ctx context.Context, c *models.Category) error
	ListCategories(ctx context.Context, manufacturerID uuid.UUID) ([]*models.Category, error)
	// DeleteCategory returns ErrNodeInUse while trim levels remain.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// SaveTrimLevel returns ErrNodeNotFound when the parent category is gone.
	SaveTrimLevel(ctx context.Context, t *models.TrimLevel) error
	ListTrimLevels(ctx context.Context, categoryID uuid.UUID) ([]*models.TrimLevel, error)
	DeleteTrimLevel(ctx context.Context, id uuid.UUID) error

	// Tree returns the whole joined taxonomy for dropdown population.
	Tree(ctx context.Context) (*models.Tree, error)
}
