package postgres

import (
	"context"
	"errors"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/jackc/pgx/v5"
)

const propertyColumns = `id, title, property_type, transaction_type, price, deposit, monthly_rent,
	exclusive_area, supply_area, floor, direction, year_built, has_elevator, parking_ratio,
	images, address, description, rooms, bathrooms, maintenance_fee, household_count,
	latitude, longitude`

// ListingSource читает объявления из таблицы properties.
// Порядок добавления определяется id.
type ListingSource struct {
	db DB
}

func NewListingSource(db DB) (*ListingSource, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &ListingSource{db: db}, nil
}

func scanProperty(row pgx.Row) (domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID, &p.Title, &p.Type, &p.TransactionType, &p.Price, &p.Deposit, &p.MonthlyRent,
		&p.Area.Exclusive, &p.Area.Supply, &p.Floor, &p.Direction, &p.YearBuilt, &p.HasElevator, &p.ParkingRatio,
		&p.Images, &p.Address, &p.Description, &p.Rooms, &p.Bathrooms, &p.MaintenanceFee, &p.HouseholdCount,
		&p.Latitude, &p.Longitude,
	)
	return p, err
}

func (s *ListingSource) queryProperties(ctx context.Context, query string, args ...any) ([]domain.Property, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListingSource: failed to query properties: %w", err)
	}
	defer rows.Close()

	props := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("ListingSource: failed to scan property: %w", err)
		}
		props = append(props, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListingSource: error during properties iteration: %w", err)
	}
	return props, nil
}

func (s *ListingSource) List(ctx context.Context) ([]domain.Property, error) {
	return s.queryProperties(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY id`)
}

func (s *ListingSource) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	row := s.db.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)
	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("listing %d: %w", id, domain.ErrPropertyNotFound)
		}
		return nil, fmt.Errorf("ListingSource: failed to get property %d: %w", id, err)
	}
	return &p, nil
}

// GetByIDs сохраняет порядок ids, неизвестные id пропускаются
func (s *ListingSource) GetByIDs(ctx context.Context, ids []int64) ([]domain.Property, error) {
	if len(ids) == 0 {
		return []domain.Property{}, nil
	}
	found, err := s.queryProperties(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Property, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	result := make([]domain.Property, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

// UpsertListings загружает объявления через COPY во временную таблицу
// и переносит их в properties одним INSERT ... ON CONFLICT.
func (s *ListingSource) UpsertListings(ctx context.Context, props []domain.Property) (int64, error) {
	if len(props) == 0 {
		return 0, nil
	}
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresListingSource",
		"method":    "UpsertListings",
		"count":     len(props),
	})

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `CREATE TEMP TABLE temp_properties (LIKE properties INCLUDING DEFAULTS) ON COMMIT DROP`)
	if err != nil {
		return 0, fmt.Errorf("failed to create temp table: %w", err)
	}

	columns := []string{
		"id", "title", "property_type", "transaction_type", "price", "deposit", "monthly_rent",
		"exclusive_area", "supply_area", "floor", "direction", "year_built", "has_elevator", "parking_ratio",
		"images", "address", "description", "rooms", "bathrooms", "maintenance_fee", "household_count",
		"latitude", "longitude",
	}
	_, err = tx.CopyFrom(ctx, pgx.Identifier{"temp_properties"}, columns, pgx.CopyFromRows(propertyRows(props)))
	if err != nil {
		return 0, fmt.Errorf("failed to copy to temp_properties: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO properties (`+propertyColumns+`)
		SELECT `+propertyColumns+` FROM temp_properties
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			property_type = EXCLUDED.property_type,
			transaction_type = EXCLUDED.transaction_type,
			price = EXCLUDED.price,
			deposit = EXCLUDED.deposit,
			monthly_rent = EXCLUDED.monthly_rent,
			exclusive_area = EXCLUDED.exclusive_area,
			supply_area = EXCLUDED.supply_area,
			floor = EXCLUDED.floor,
			direction = EXCLUDED.direction,
			year_built = EXCLUDED.year_built,
			has_elevator = EXCLUDED.has_elevator,
			parking_ratio = EXCLUDED.parking_ratio,
			images = EXCLUDED.images,
			address = EXCLUDED.address,
			description = EXCLUDED.description,
			rooms = EXCLUDED.rooms,
			bathrooms = EXCLUDED.bathrooms,
			maintenance_fee = EXCLUDED.maintenance_fee,
			household_count = EXCLUDED.household_count,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			updated_at = now()`)
	if err != nil {
		return 0, fmt.Errorf("failed to merge from temp_properties: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info("Listings upserted", port.Fields{"rows_affected": tag.RowsAffected()})
	return tag.RowsAffected(), nil
}

func propertyRows(props []domain.Property) [][]any {
	rows := make([][]any, 0, len(props))
	for _, p := range props {
		images := p.Images
		if images == nil {
			images = []string{}
		}
		rows = append(rows, []any{
			p.ID, p.Title, p.Type, p.TransactionType, p.Price, p.Deposit, p.MonthlyRent,
			p.Area.Exclusive, p.Area.Supply, p.Floor, p.Direction, p.YearBuilt, p.HasElevator, p.ParkingRatio,
			images, p.Address, p.Description, p.Rooms, p.Bathrooms, p.MaintenanceFee, p.HouseholdCount,
			p.Latitude, p.Longitude,
		})
	}
	return rows
}
