package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	taxdomain "github.com/ghuser/dealerstock/services/taxonomy/domain"
	"github.com/ghuser/dealerstock/services/taxonomy/infrastructure/persistence/memory"
)

func newTestTaxonomy() *TaxonomyService {
	svc := NewTaxonomyService(memory.NewTaxonomyRepository())
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestTaxonomyService_AddManufacturer(t *testing.T) {
	svc := newTestTaxonomy()
	ctx := context.Background()

	m, err := svc.AddManufacturer(ctx, "  Toyota  ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if m.Name != "Toyota" {
		t.Errorf("name not trimmed: %q", m.Name)
	}
	if m.ID == uuid.Nil || m.CreatedAt.IsZero() {
		t.Error("id and created_at must be stamped")
	}

	got, err := svc.ListManufacturers(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Toyota" {
		t.Fatalf("unexpected list: %d items", len(got))
	}
}

func TestTaxonomyService_NameValidation(t *testing.T) {
	svc := newTestTaxonomy()
	ctx := context.Background()

	if _, err := svc.AddManufacturer(ctx, "   "); !errors.Is(err, taxdomain.ErrInvalidNode) {
		t.Fatalf("expected ErrInvalidNode for blank name, got %v", err)
	}
	if _, err := svc.AddManufacturer(ctx, strings.Repeat("x", 129)); !errors.Is(err, taxdomain.ErrInvalidNode) {
		t.Fatalf("expected ErrInvalidNode for oversized name, got %v", err)
	}
	if _, err := svc.AddManufacturer(ctx, strings.Repeat("x", 128)); err != nil {
		t.Fatalf("128-char name must be accepted, got %v", err)
	}
}

func TestTaxonomyService_DuplicateName(t *testing.T) {
	svc := newTestTaxonomy()
	ctx := context.Background()

	if _, err := svc.AddManufacturer(ctx, "Toyota"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddManufacturer(ctx, "toyota"); !errors.Is(err, taxdomain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestTaxonomyService_CategoryAndTrimFlow(t *testing.T) {
	svc := newTestTaxonomy()
	ctx := context.Background()

	m, err := svc.AddManufacturer(ctx, "Toyota")
	if err != nil {
		t.Fatalf("add manufacturer: %v", err)
	}

	c, err := svc.AddCategory(ctx, m.ID, "Camry")
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	if _, err := svc.AddCategory(ctx, uuid.New(), "Ghost"); !errors.Is(err, taxdomain.ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound for unknown manufacturer, got %v", err)
	}

	tr, err := svc.AddTrimLevel(ctx, c.ID, "LE")
	if err != nil {
		t.Fatalf("add trim: %v", err)
	}

	// Deletes walk leaf to root.
	if err := svc.DeleteManufacturer(ctx, m.ID); !errors.Is(err, taxdomain.ErrNodeInUse) {
		t.Fatalf("expected ErrNodeInUse, got %v", err)
	}
	if err := svc.DeleteCategory(ctx, c.ID); !errors.Is(err, taxdomain.ErrNodeInUse) {
		t.Fatalf("expected ErrNodeInUse, got %v", err)
	}
	if err := svc.DeleteTrimLevel(ctx, tr.ID); err != nil {
		t.Fatalf("delete trim: %v", err)
	}
	if err := svc.DeleteCategory(ctx, c.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	if err := svc.DeleteManufacturer(ctx, m.ID); err != nil {
		t.Fatalf("delete manufacturer: %v", err)
	}
}

func TestTaxonomyService_Tree(t *testing.T) {
	svc := newTestTaxonomy()
	ctx := context.Background()

	m, err := svc.AddManufacturer(ctx, "Toyota")
	if err != nil {
		t.Fatalf("add manufacturer: %v", err)
	}
	c, err := svc.AddCategory(ctx, m.ID, "Camry")
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	if _, err := svc.AddTrimLevel(ctx, c.ID, "LE"); err != nil {
		t.Fatalf("add trim: %v", err)
	}

	tree, err := svc.Tree(ctx)
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if len(tree.Manufacturers) != 1 {
		t.Fatalf("expected 1 manufacturer, got %d", len(tree.Manufacturers))
	}
	tm := tree.Manufacturers[0]
	if tm.Name != "Toyota" || len(tm.Categories) != 1 || tm.Categories[0].Name != "Camry" {
		t.Fatalf("unexpected tree shape: %+v", tm)
	}
	if len(tm.Categories[0].Trims) != 1 || tm.Categories[0].Trims[0].Name != "LE" {
		t.Fatalf("unexpected trims: %+v", tm.Categories[0].Trims)
	}
}
