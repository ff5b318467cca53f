package impl

import (
	"context"
	"sync"

	apperrors "github.com/mcmikius/TILApp/pkg/common/errors"
	"github.com/mcmikius/TILApp/pkg/core/category/model"
	"github.com/mcmikius/TILApp/pkg/core/category/repository/dao"
)

// MemoryCategoryRepository is a map-backed CategoryRepository for tests and
// local runs without a database.
type MemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[int64]model.Category
	nextID     int64
}

func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{categories: make(map[int64]model.Category)}
}

var _ dao.CategoryRepository = (*MemoryCategoryRepository)(nil)

func (r *MemoryCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	category.ID = r.nextID
	r.categories[category.ID] = *category
	return nil
}

func (r *MemoryCategoryRepository) GetByID(ctx context.Context, id int64) (model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return model.Category{}, apperrors.ErrNotFound
	}
	return category, nil
}

func (r *MemoryCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *MemoryCategoryRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]bool, len(ids))
	categories := make([]model.Category, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if c, ok := r.categories[id]; ok {
			categories = append(categories, c)
		}
	}
	return categories, nil
}
