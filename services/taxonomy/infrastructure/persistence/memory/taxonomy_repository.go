package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	taxdomain "github.com/ghuser/dealerstock/services/taxonomy/domain"
	"github.com/ghuser/dealerstock/services/taxonomy/domain/models"
)

// TaxonomyRepository is an in-memory TaxonomyRepository for development and
// tests. Parent checks and sibling-name uniqueness happen under one lock, so
// the same invariants hold as with the postgres constraints.
type TaxonomyRepository struct {
	mu            sync.RWMutex
	manufacturers map[uuid.UUID]*models.Manufacturer
	categories    map[uuid.UUID]*models.Category
	trims         map[uuid.UUID]*models.TrimLevel
}

// NewTaxonomyRepository returns an empty in-memory taxonomy store.
func NewTaxonomyRepository() *TaxonomyRepository {
	return &TaxonomyRepository{
		manufacturers: make(map[uuid.UUID]*models.Manufacturer),
		categories:    make(map[uuid.UUID]*models.Category),
		trims:         make(map[uuid.UUID]*models.TrimLevel),
	}
}

// SaveManufacturer stores a manufacturer. Names are unique case-insensitively
// at the root level.
func (r *TaxonomyRepository) SaveManufacturer(_ context.Context, m *models.Manufacturer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.manufacturers {
		if existing.ID != m.ID && strings.EqualFold(existing.Name, m.Name) {
			return taxdomain.ErrDuplicateName
		}
	}
	cp := *m
	r.manufacturers[m.ID] = &cp
	return nil
}

// ListManufacturers returns all manufacturers sorted by name.
func (r *TaxonomyRepository) ListManufacturers(_ context.Context) ([]*models.Manufacturer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Manufacturer, 0, len(r.manufacturers))
	for _, m := range r.manufacturers {
		cp := *m
		out = append(out, &cp)
	}
	sortByName(out, func(m *models.Manufacturer) string { return m.Name })
	return out, nil
}

// DeleteManufacturer removes a manufacturer unless categories still reference it.
func (r *TaxonomyRepository) DeleteManufacturer(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.manufacturers[id]; !ok {
		return taxdomain.ErrNodeNotFound
	}
	for _, c := range r.categories {
		if c.ManufacturerID == id {
			return taxdomain.ErrNodeInUse
		}
	}
	delete(r.manufacturers, id)
	return nil
}

// SaveCategory stores a category under an existing manufacturer.
func (r *TaxonomyRepository) SaveCategory(_ context.Context, c *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.manufacturers[c.ManufacturerID]; !ok {
		return taxdomain.ErrNodeNotFound
	}
	for _, existing := range r.categories {
		if existing.ID != c.ID && existing.ManufacturerID == c.ManufacturerID &&
			strings.EqualFold(existing.Name, c.Name) {
			return taxdomain.ErrDuplicateName
		}
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

// ListCategories returns a manufacturer's categories sorted by name.
func (r *TaxonomyRepository) ListCategories(_ context.Context, manufacturerID uuid.UUID) ([]*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.manufacturers[manufacturerID]; !ok {
		return nil, taxdomain.ErrNodeNotFound
	}
	out := make([]*models.Category, 0, 8)
	for _, c := range r.categories {
		if c.ManufacturerID == manufacturerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortByName(out, func(c *models.Category) string { return c.Name })
	return out, nil
}

// DeleteCategory removes a category unless trim levels still reference it.
func (r *TaxonomyRepository) DeleteCategory(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return taxdomain.ErrNodeNotFound
	}
	for _, t := range r.trims {
		if t.CategoryID == id {
			return taxdomain.ErrNodeInUse
		}
	}
	delete(r.categories, id)
	return nil
}

// SaveTrimLevel stores a trim level under an existing category.
func (r *TaxonomyRepository) SaveTrimLevel(_ context.Context, t *models.TrimLevel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[t.CategoryID]; !ok {
		return taxdomain.ErrNodeNotFound
	}
	for _, existing := range r.trims {
		if existing.ID != t.ID && existing.CategoryID == t.CategoryID &&
			strings.EqualFold(existing.Name, t.Name) {
			return taxdomain.ErrDuplicateName
		}
	}
	cp := *t
	r.trims[t.ID] = &cp
	return nil
}

// ListTrimLevels returns a category's trim levels sorted by name.
func (r *TaxonomyRepository) ListTrimLevels(_ context.Context, categoryID uuid.UUID) ([]*models.TrimLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.categories[categoryID]; !ok {
		return nil, taxdomain.ErrNodeNotFound
	}
	out := make([]*models.TrimLevel, 0, 8)
	for _, t := range r.trims {
		if t.CategoryID == categoryID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sortByName(out, func(t *models.TrimLevel) string { return t.Name })
	return out, nil
}

// DeleteTrimLevel removes a trim level.
func (r *TaxonomyRepository) DeleteTrimLevel(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trims[id]; !ok {
		return taxdomain.ErrNodeNotFound
	}
	delete(r.trims, id)
	return nil
}

// Tree assembles the full joined taxonomy, every level sorted by name.
func (r *TaxonomyRepository) Tree(_ context.Context) (*models.Tree, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tree := &models.Tree{Manufacturers: make([]models.TreeManufacturer, 0, len(r.manufacturers))}
	for _, m := range r.manufacturers {
		tm := models.TreeManufacturer{ID: m.ID, Name: m.Name, Categories: []models.TreeCategory{}}
		for _, c := range r.categories {
			if c.ManufacturerID != m.ID {
				continue
			}
			tc := models.TreeCategory{ID: c.ID, Name: c.Name, Trims: []models.TreeTrim{}}
			for _, t := range r.trims {
				if t.CategoryID == c.ID {
					tc.Trims = append(tc.Trims, models.TreeTrim{ID: t.ID, Name: t.Name})
				}
			}
			sort.Slice(tc.Trims, func(i, j int) bool { return tc.Trims[i].Name < tc.Trims[j].Name })
			tm.Categories = append(tm.Categories, tc)
		}
		sort.Slice(tm.Categories, func(i, j int) bool { return tm.Categories[i].Name < tm.Categories[j].Name })
		tree.Manufacturers = append(tree.Manufacturers, tm)
	}
	sort.Slice(tree.Manufacturers, func(i, j int) bool {
		return tree.Manufacturers[i].Name < tree.Manufacturers[j].Name
	})
	return tree, nil
}

func sortByName[T any](items []*T, name func(*T) string) {
	sort.Slice(items, func(i, j int) bool { return name(items[i]) < name(items[j]) })
}
