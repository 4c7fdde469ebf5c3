package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/dealerstock/pkg/database"
	taxdomain "github.com/ghuser/dealerstock/services/taxonomy/domain"
	"github.com/ghuser/dealerstock/services/taxonomy/domain/models"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// TaxonomyRepository implements repositories.TaxonomyRepository against
// PostgreSQL. The schema carries the invariants: sibling names are unique per
// parent, parent references are foreign keys, and ON DELETE RESTRICT turns a
// delete of a populated parent into ErrNodeInUse.
type TaxonomyRepository struct {
	db *database.Database
}

// NewTaxonomyRepository returns a repository backed by the given pool.
func NewTaxonomyRepository(db *database.Database) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// SaveManufacturer inserts or renames a manufacturer.
func (r *TaxonomyRepository) SaveManufacturer(ctx context.Context, m *models.Manufacturer) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO taxonomy_manufacturers (id, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		m.ID, m.Name, m.CreatedAt,
	)
	return mapConstraintErr(err, "insert manufacturer")
}

// ListManufacturers returns all manufacturers sorted by name.
func (r *TaxonomyRepository) ListManufacturers(ctx context.Context) ([]*models.Manufacturer, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, created_at FROM taxonomy_manufacturers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query manufacturers: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Manufacturer
	for rows.Next() {
		m := &models.Manufacturer{}
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan manufacturer: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate manufacturers: %w", err)
	}
	return out, nil
}

// DeleteManufacturer removes a manufacturer. The RESTRICT constraint rejects
// the delete while categories remain.
func (r *TaxonomyRepository) DeleteManufacturer(ctx context.Context, id uuid.UUID) error {
	return r.deleteNode(ctx, `DELETE FROM taxonomy_manufacturers WHERE id = $1`, id)
}

// SaveCategory inserts or renames a category under its manufacturer.
func (r *TaxonomyRepository) SaveCategory(ctx context.Context, c *models.Category) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO taxonomy_categories (id, manufacturer_id, name, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		c.ID, c.ManufacturerID, c.Name, c.CreatedAt,
	)
	return mapConstraintErr(err, "insert category")
}

// ListCategories returns a manufacturer's categories sorted by name.
func (r *TaxonomyRepository) ListCategories(ctx context.Context, manufacturerID uuid.UUID) ([]*models.Category, error) {
	if err := r.exists(ctx, `SELECT 1 FROM taxonomy_manufacturers WHERE id = $1`, manufacturerID); err != nil {
		return nil, err
	}
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, manufacturer_id, name, created_at
		FROM taxonomy_categories WHERE manufacturer_id = $1 ORDER BY name`,
		manufacturerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Category
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.ManufacturerID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}

// DeleteCategory removes a category. The RESTRICT constraint rejects the
// delete while trim levels remain.
func (r *TaxonomyRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.deleteNode(ctx, `DELETE FROM taxonomy_categories WHERE id = $1`, id)
}

// SaveTrimLevel inserts or renames a trim level under its category.
func (r *TaxonomyRepository) SaveTrimLevel(ctx context.Context, t *models.TrimLevel) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO taxonomy_trim_levels (id, category_id, name, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		t.ID, t.CategoryID, t.Name, t.CreatedAt,
	)
	return mapConstraintErr(err, "insert trim level")
}

// ListTrimLevels returns a category's trim levels sorted by name.
func (r *TaxonomyRepository) ListTrimLevels(ctx context.Context, categoryID uuid.UUID) ([]*models.TrimLevel, error) {
	if err := r.exists(ctx, `SELECT 1 FROM taxonomy_categories WHERE id = $1`, categoryID); err != nil {
		return nil, err
	}
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, category_id, name, created_at
		FROM taxonomy_trim_levels WHERE category_id = $1 ORDER BY name`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("query trim levels: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.TrimLevel
	for rows.Next() {
		t := &models.TrimLevel{}
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan trim level: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trim levels: %w", err)
	}
	return out, nil
}

// DeleteTrimLevel removes a trim level.
func (r *TaxonomyRepository) DeleteTrimLevel(ctx context.Context, id uuid.UUID) error {
	return r.deleteNode(ctx, `DELETE FROM taxonomy_trim_levels WHERE id = $1`, id)
}

// Tree returns the whole joined taxonomy in one round trip.
func (r *TaxonomyRepository) Tree(ctx context.Context) (*models.Tree, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT m.id, m.name, c.id, c.name, t.id, t.name
		FROM taxonomy_manufacturers m
		LEFT JOIN taxonomy_categories c ON c.manufacturer_id = m.id
		LEFT JOIN taxonomy_trim_levels t ON t.category_id = c.id
		ORDER BY m.name, c.name, t.name`)
	if err != nil {
		return nil, fmt.Errorf("query taxonomy tree: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	tree := &models.Tree{Manufacturers: []models.TreeManufacturer{}}
	for rows.Next() {
		var (
			mID          uuid.UUID
			mName        string
			cID, tID     uuid.NullUUID
			cName, tName sql.NullString
		)
		if err := rows.Scan(&mID, &mName, &cID, &cName, &tID, &tName); err != nil {
			return nil, fmt.Errorf("scan taxonomy row: %w", err)
		}

		if n := len(tree.Manufacturers); n == 0 || tree.Manufacturers[n-1].ID != mID {
			tree.Manufacturers = append(tree.Manufacturers, models.TreeManufacturer{
				ID: mID, Name: mName, Categories: []models.TreeCategory{},
			})
		}
		if !cID.Valid {
			continue
		}
		m := &tree.Manufacturers[len(tree.Manufacturers)-1]
		if n := len(m.Categories); n == 0 || m.Categories[n-1].ID != cID.UUID {
			m.Categories = append(m.Categories, models.TreeCategory{
				ID: cID.UUID, Name: cName.String, Trims: []models.TreeTrim{},
			})
		}
		if !tID.Valid {
			continue
		}
		c := &m.Categories[len(m.Categories)-1]
		c.Trims = append(c.Trims, models.TreeTrim{ID: tID.UUID, Name: tName.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate taxonomy tree: %w", err)
	}
	return tree, nil
}

func (r *TaxonomyRepository) deleteNode(ctx context.Context, query string, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return taxdomain.ErrNodeInUse
		}
		return fmt.Errorf("delete taxonomy node: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete taxonomy node rows affected: %w", err)
	}
	if n == 0 {
		return taxdomain.ErrNodeNotFound
	}
	return nil
}

func (r *TaxonomyRepository) exists(ctx context.Context, query string, id uuid.UUID) error {
	var one int
	if err := r.db.DB().QueryRowContext(ctx, query, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return taxdomain.ErrNodeNotFound
		}
		return fmt.Errorf("check taxonomy node: %w", err)
	}
	return nil
}

func mapConstraintErr(err error, op string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return taxdomain.ErrDuplicateName
		case pgForeignKeyViolation:
			return taxdomain.ErrNodeNotFound
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
