package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/dealerstock/pkg/database"
	"github.com/ghuser/dealerstock/pkg/events"
	invdomain "github.com/ghuser/dealerstock/services/inventory/domain"
	domainevents "github.com/ghuser/dealerstock/services/inventory/domain/events"
	"github.com/ghuser/dealerstock/services/inventory/domain/models"
)

const pgUniqueViolation = "23505"

const vehicleColumns = `id, chassis_number, manufacturer, category, trim_level,
	engine_capacity, year, exterior_color, interior_color, import_type,
	ownership_type, location, status, sold, price, notes, entry_date,
	sold_date, buyer_name, sale_price, payment_method,
	reserved_by, reservation_note, reservation_date`

// VehicleRepository implements repositories.VehicleRepository against
// PostgreSQL. Chassis uniqueness is enforced by a unique index so the
// check-then-insert is atomic at the database, not in application code.
type VehicleRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewVehicleRepository returns a repository backed by the given pool and
// event bus. The bus is used to publish VehicleCreatedEvents in the same
// transaction as the insert; pass nil to disable publishing.
func NewVehicleRepository(db *database.Database, bus *events.EventBus) *VehicleRepository {
	return &VehicleRepository{db: db, bus: bus}
}

// Save persists a new vehicle and publishes a VehicleCreatedEvent within the
// same transaction. Returns ErrChassisExists on unique constraint violations.
func (r *VehicleRepository) Save(ctx context.Context, v *models.Vehicle) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO vehicles (`+vehicleColumns+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)`,
			insertArgs(v)...,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return invdomain.ErrChassisExists
			}
			return fmt.Errorf("insert vehicle: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, v); err != nil {
				return fmt.Errorf("publish vehicle created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves one vehicle. Returns ErrVehicleNotFound if absent.
func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
	v, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("query vehicle: %w", err)
	}
	return v, nil
}

// List returns a snapshot of the whole stock, newest entry first. The filter
// and stats engines consume this snapshot in memory.
func (r *VehicleRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles ORDER BY entry_date DESC, chassis_number`)
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vehicles: %w", err)
	}
	return out, nil
}

// Update overwrites the stored row. Returns ErrVehicleNotFound when the id is
// unknown and ErrChassisExists when a chassis change collides with another row.
func (r *VehicleRepository) Update(ctx context.Context, v *models.Vehicle) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE vehicles SET
			chassis_number = $2, manufacturer = $3, category = $4, trim_level = $5,
			engine_capacity = $6, year = $7, exterior_color = $8, interior_color = $9,
			import_type = $10, ownership_type = $11, location = $12, status = $13,
			sold = $14, price = $15, notes = $16,
			sold_date = $17, buyer_name = $18, sale_price = $19, payment_method = $20,
			reserved_by = $21, reservation_note = $22, reservation_date = $23
		WHERE id = $1`,
		updateArgs(v)...,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return invdomain.ErrChassisExists
		}
		return fmt.Errorf("update vehicle: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update vehicle rows affected: %w", err)
	}
	if n == 0 {
		return invdomain.ErrVehicleNotFound
	}
	return nil
}

// Delete removes the vehicle and its transfer history. Quotations keeping the
// id become dangling references; their readers tolerate that.
func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete vehicle rows affected: %w", err)
	}
	if n == 0 {
		return invdomain.ErrVehicleNotFound
	}
	return nil
}

// AddTransfer appends one record to the movement audit trail.
func (r *VehicleRepository) AddTransfer(ctx context.Context, rec *models.TransferRecord) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO vehicle_transfers
			(id, vehicle_id, from_location, to_location, reason, transferred_by, transferred_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rec.ID, rec.VehicleID, rec.FromLocation, rec.ToLocation,
		rec.Reason, rec.TransferredBy, rec.TransferredAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23503: the vehicle row is gone.
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return invdomain.ErrVehicleNotFound
		}
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// ListTransfers returns the movement history, oldest first.
func (r *VehicleRepository) ListTransfers(ctx context.Context, vehicleID uuid.UUID) ([]*models.TransferRecord, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, vehicle_id, from_location, to_location, reason, transferred_by, transferred_at
		FROM vehicle_transfers WHERE vehicle_id = $1 ORDER BY transferred_at, id`,
		vehicleID,
	)
	if err != nil {
		return nil, fmt.Errorf("query transfers: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]*models.TransferRecord, 0, 8)
	for rows.Next() {
		rec := &models.TransferRecord{}
		if err := rows.Scan(&rec.ID, &rec.VehicleID, &rec.FromLocation, &rec.ToLocation,
			&rec.Reason, &rec.TransferredBy, &rec.TransferredAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfers: %w", err)
	}
	return out, nil
}

func (r *VehicleRepository) publishCreated(tx *sql.Tx, v *models.Vehicle) error {
	event := domainevents.VehicleCreatedEvent{
		EventID:       uuid.New(),
		Version:       1,
		VehicleID:     v.ID,
		ChassisNumber: v.ChassisNumber,
		Manufacturer:  v.Manufacturer,
		Category:      v.Category,
		Status:        v.Status.String(),
		OccurredAt:    v.EntryDate,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicVehicleCreated, msg)
}

func insertArgs(v *models.Vehicle) []any {
	return []any{
		v.ID, v.ChassisNumber, v.Manufacturer, v.Category, v.TrimLevel,
		v.EngineCapacity, v.Year, v.ExteriorColor, v.InteriorColor, v.ImportType,
		v.OwnershipType, v.Location, v.Status.String(), v.Sold,
		nullFloat(v.Price), v.Notes, v.EntryDate,
		nullTime(v.SoldDate), v.BuyerName, nullFloat(v.SalePrice), v.PaymentMethod,
		v.ReservedBy, v.ReservationNote, nullTime(v.ReservationDate),
	}
}

func updateArgs(v *models.Vehicle) []any {
	return []any{
		v.ID, v.ChassisNumber, v.Manufacturer, v.Category, v.TrimLevel,
		v.EngineCapacity, v.Year, v.ExteriorColor, v.InteriorColor, v.ImportType,
		v.OwnershipType, v.Location, v.Status.String(), v.Sold,
		nullFloat(v.Price), v.Notes,
		nullTime(v.SoldDate), v.BuyerName, nullFloat(v.SalePrice), v.PaymentMethod,
		v.ReservedBy, v.ReservationNote, nullTime(v.ReservationDate),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*models.Vehicle, error) {
	var (
		v         models.Vehicle
		status    string
		price     sql.NullFloat64
		salePrice sql.NullFloat64
		soldDate  sql.NullTime
		resDate   sql.NullTime
	)
	if err := row.Scan(
		&v.ID, &v.ChassisNumber, &v.Manufacturer, &v.Category, &v.TrimLevel,
		&v.EngineCapacity, &v.Year, &v.ExteriorColor, &v.InteriorColor, &v.ImportType,
		&v.OwnershipType, &v.Location, &status, &v.Sold,
		&price, &v.Notes, &v.EntryDate,
		&soldDate, &v.BuyerName, &salePrice, &v.PaymentMethod,
		&v.ReservedBy, &v.ReservationNote, &resDate,
	); err != nil {
		return nil, err
	}
	v.Status = models.Status(status)
	if price.Valid {
		v.Price = &price.Float64
	}
	if salePrice.Valid {
		v.SalePrice = &salePrice.Float64
	}
	if soldDate.Valid {
		t := soldDate.Time
		v.SoldDate = &t
	}
	if resDate.Valid {
		t := resDate.Time
		v.ReservationDate = &t
	}
	return &v, nil
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func nullTime(p *time.Time) sql.NullTime {
	if p == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *p, Valid: true}
}
