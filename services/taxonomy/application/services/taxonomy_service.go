package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	taxdomain "github.com/ghuser/dealerstock/services/taxonomy/domain"
	"github.com/ghuser/dealerstock/services/taxonomy/domain/models"
	"github.com/ghuser/dealerstock/services/taxonomy/domain/repositories"
)

// TaxonomyService manages the reference tree behind the vehicle-entry
// dropdowns. The tree is advisory: editing it never rewrites vehicle rows,
// which keep their facet values as entered.
type TaxonomyService struct {
	repo repositories.TaxonomyRepository
	now  func() time.Time
}

// NewTaxonomyService wires the service.
func NewTaxonomyService(repo repositories.TaxonomyRepository) *TaxonomyService {
	return &TaxonomyService{repo: repo, now: time.Now}
}

// AddManufacturer creates a root-level node.
func (s *TaxonomyService) AddManufacturer(ctx context.Context, name string) (*models.Manufacturer, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	m := &models.Manufacturer{ID: uuid.New(), Name: name, CreatedAt: s.now().UTC()}
	if err := s.repo.SaveManufacturer(ctx, m); err != nil {
		return nil, fmt.Errorf("save manufacturer: %w", err)
	}
	return m, nil
}

// ListManufacturers returns all root-level nodes sorted by name.
func (s *TaxonomyService) ListManufacturers(ctx context.Context) ([]*models.Manufacturer, error) {
	out, err := s.repo.ListManufacturers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list manufacturers: %w", err)
	}
	return out, nil
}

// DeleteManufacturer removes a root node; rejected while categories remain.
func (s *TaxonomyService) DeleteManufacturer(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteManufacturer(ctx, id); err != nil {
		return fmt.Errorf("delete manufacturer: %w", err)
	}
	return nil
}

// AddCategory creates a model line under a manufacturer.
func (s *TaxonomyService) AddCategory(ctx context.Context, manufacturerID uuid.UUID, name string) (*models.Category, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	c := &models.Category{ID: uuid.New(), ManufacturerID: manufacturerID, Name: name, CreatedAt: s.now().UTC()}
	if err := s.repo.SaveCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return c, nil
}

// ListCategories returns a manufacturer's model lines sorted by name.
func (s *TaxonomyService) ListCategories(ctx context.Context, manufacturerID uuid.UUID) ([]*models.Category, error) {
	out, err := s.repo.ListCategories(ctx, manufacturerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// DeleteCategory removes a model line; rejected while trim levels remain.
func (s *TaxonomyService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// AddTrimLevel creates a trim under a category.
func (s *TaxonomyService) AddTrimLevel(ctx context.Context, categoryID uuid.UUID, name string) (*models.TrimLevel, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	t := &models.TrimLevel{ID: uuid.New(), CategoryID: categoryID, Name: name, CreatedAt: s.now().UTC()}
	if err := s.repo.SaveTrimLevel(ctx, t); err != nil {
		return nil, fmt.Errorf("save trim level: %w", err)
	}
	return t, nil
}

// ListTrimLevels returns a category's trims sorted by name.
func (s *TaxonomyService) ListTrimLevels(ctx context.Context, categoryID uuid.UUID) ([]*models.TrimLevel, error) {
	out, err := s.repo.ListTrimLevels(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list trim levels: %w", err)
	}
	return out, nil
}

// DeleteTrimLevel removes a trim leaf.
func (s *TaxonomyService) DeleteTrimLevel(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteTrimLevel(ctx, id); err != nil {
		return fmt.Errorf("delete trim level: %w", err)
	}
	return nil
}

// Tree returns the full joined taxonomy for one dropdown-population round trip.
func (s *TaxonomyService) Tree(ctx context.Context) (*models.Tree, error) {
	tree, err := s.repo.Tree(ctx)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy tree: %w", err)
	}
	return tree, nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", taxdomain.ErrInvalidNode)
	}
	if len(name) > 128 {
		return "", fmt.Errorf("%w: name exceeds 128 characters", taxdomain.ErrInvalidNode)
	}
	return name, nil
}
