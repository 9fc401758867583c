package postgres

import (
	"context"
	"errors"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation
const uniqueViolationCode = "23505"

// FavoritesRepository хранит избранное в таблице visitor_favorites
type FavoritesRepository struct {
	db DB
}

func NewFavoritesRepository(db DB) (*FavoritesRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &FavoritesRepository{db: db}, nil
}

// Add возвращает false, если запись уже была
func (r *FavoritesRepository) Add(ctx context.Context, visitorID uuid.UUID, propertyID int64) (bool, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PostgresFavoritesRepository",
		"method":      "Add",
		"visitor_id":  visitorID,
		"property_id": propertyID,
	})

	query := `INSERT INTO visitor_favorites (visitor_id, property_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	tag, err := r.db.Exec(ctx, query, visitorID, propertyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			repoLogger.Debug("Favorite already exists", nil)
			return false, nil
		}
		repoLogger.Error("Failed to add favorite", err, port.Fields{"query": query})
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}

	added := tag.RowsAffected() > 0
	if !added {
		repoLogger.Debug("Favorite already exists", nil)
	}
	return added, nil
}

func (r *FavoritesRepository) Remove(ctx context.Context, visitorID uuid.UUID, propertyID int64) (bool, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PostgresFavoritesRepository",
		"method":      "Remove",
		"visitor_id":  visitorID,
		"property_id": propertyID,
	})

	query := `DELETE FROM visitor_favorites WHERE visitor_id = $1 AND property_id = $2`
	tag, err := r.db.Exec(ctx, query, visitorID, propertyID)
	if err != nil {
		repoLogger.Error("Failed to remove favorite", err, port.Fields{"query": query})
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}

	if tag.RowsAffected() == 0 {
		repoLogger.Debug("Attempted to remove a favorite that did not exist", nil)
		return false, nil
	}
	return true, nil
}

// FindByVisitor - новые записи первыми
func (r *FavoritesRepository) FindByVisitor(ctx context.Context, visitorID uuid.UUID) ([]domain.FavoriteItem, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "PostgresFavoritesRepository",
		"method":     "FindByVisitor",
		"visitor_id": visitorID,
	})

	query := `SELECT property_id, created_at FROM visitor_favorites WHERE visitor_id = $1 ORDER BY created_at DESC, property_id DESC`
	rows, err := r.db.Query(ctx, query, visitorID)
	if err != nil {
		repoLogger.Error("Failed to query favorites", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	items := make([]domain.FavoriteItem, 0)
	for rows.Next() {
		item := domain.FavoriteItem{VisitorID: visitorID}
		if err := rows.Scan(&item.PropertyID, &item.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan favorite row", err, nil)
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during favorites iteration", err, nil)
		return nil, fmt.Errorf("error during favorites iteration: %w", err)
	}
	return items, nil
}
