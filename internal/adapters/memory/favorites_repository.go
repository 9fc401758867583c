package memory

import (
	"context"
	"listing-service/internal/core/domain"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FavoritesRepository хранит избранное в памяти процесса
type FavoritesRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]map[int64]time.Time
	now   func() time.Time
}

func NewFavoritesRepository() *FavoritesRepository {
	return &FavoritesRepository{
		items: make(map[uuid.UUID]map[int64]time.Time),
		now:   time.Now,
	}
}

func (r *FavoritesRepository) Add(ctx context.Context, visitorID uuid.UUID, propertyID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	favorites, ok := r.items[visitorID]
	if !ok {
		favorites = make(map[int64]time.Time)
		r.items[visitorID] = favorites
	}
	if _, exists := favorites[propertyID]; exists {
		return false, nil
	}
	favorites[propertyID] = r.now().UTC()
	return true, nil
}

func (r *FavoritesRepository) Remove(ctx context.Context, visitorID uuid.UUID, propertyID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	favorites, ok := r.items[visitorID]
	if !ok {
		return false, nil
	}
	if _, exists := favorites[propertyID]; !exists {
		return false, nil
	}
	delete(favorites, propertyID)
	if len(favorites) == 0 {
		delete(r.items, visitorID)
	}
	return true, nil
}

// FindByVisitor возвращает записи, новые первыми (при равном времени - по убыванию id)
func (r *FavoritesRepository) FindByVisitor(ctx context.Context, visitorID uuid.UUID) ([]domain.FavoriteItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	favorites := r.items[visitorID]
	result := make([]domain.FavoriteItem, 0, len(favorites))
	for id, createdAt := range favorites {
		result = append(result, domain.FavoriteItem{VisitorID: visitorID, PropertyID: id, CreatedAt: createdAt})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].PropertyID > result[j].PropertyID
	})
	return result, nil
}
