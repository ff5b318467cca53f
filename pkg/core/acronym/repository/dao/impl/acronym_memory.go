package impl

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/mcmikius/TILApp/pkg/common/errors"
	"github.com/mcmikius/TILApp/pkg/core/acronym/model"
	"github.com/mcmikius/TILApp/pkg/core/acronym/repository/dao"
)

// MemoryAcronymRepository is a map-backed AcronymRepository for tests and
// local runs without a database.
type MemoryAcronymRepository struct {
	mu       sync.RWMutex
	acronyms map[int64]model.Acronym
	pivots   map[string]model.AcronymCategoryPivot
	nextID   int64
}

func NewMemoryAcronymRepository() *MemoryAcronymRepository {
	return &MemoryAcronymRepository{
		acronyms: make(map[int64]model.Acronym),
		pivots:   make(map[string]model.AcronymCategoryPivot),
	}
}

var _ dao.AcronymRepository = (*MemoryAcronymRepository)(nil)

func (r *MemoryAcronymRepository) Create(ctx context.Context, acronym *model.Acronym) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	acronym.ID = r.nextID
	r.acronyms[acronym.ID] = *acronym
	return nil
}

func (r *MemoryAcronymRepository) GetByID(ctx context.Context, id int64) (model.Acronym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acronym, ok := r.acronyms[id]
	if !ok {
		return model.Acronym{}, apperrors.ErrNotFound
	}
	return acronym, nil
}

func (r *MemoryAcronymRepository) List(ctx context.Context) ([]model.Acronym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acronyms := make([]model.Acronym, 0, len(r.acronyms))
	for _, a := range r.acronyms {
		acronyms = append(acronyms, a)
	}
	return acronyms, nil
}

func (r *MemoryAcronymRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Acronym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]bool, len(ids))
	acronyms := make([]model.Acronym, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if a, ok := r.acronyms[id]; ok {
			acronyms = append(acronyms, a)
		}
	}
	return acronyms, nil
}

func (r *MemoryAcronymRepository) ListByUser(ctx context.Context, userID string) ([]model.Acronym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var acronyms []model.Acronym
	for _, a := range r.acronyms {
		if a.UserID == userID {
			acronyms = append(acronyms, a)
		}
	}
	return acronyms, nil
}

func (r *MemoryAcronymRepository) Update(ctx context.Context, acronym *model.Acronym) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.acronyms[acronym.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.acronyms[acronym.ID] = *acronym
	return nil
}

func (r *MemoryAcronymRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.acronyms[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.acronyms, id)
	return nil
}

func (r *MemoryAcronymRepository) AttachCategory(ctx context.Context, pivot *model.AcronymCategoryPivot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pivot.ID == "" {
		pivot.ID = uuid.NewString()
	}
	r.pivots[pivot.ID] = *pivot
	return nil
}

func (r *MemoryAcronymRepository) CategoryIDsOf(ctx context.Context, acronymID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []int64
	for _, p := range r.pivots {
		if p.AcronymID == acronymID {
			ids = append(ids, p.CategoryID)
		}
	}
	return ids, nil
}

func (r *MemoryAcronymRepository) AcronymIDsOf(ctx context.Context, categoryID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []int64
	for _, p := range r.pivots {
		if p.CategoryID == categoryID {
			ids = append(ids, p.AcronymID)
		}
	}
	return ids, nil
}

func (r *MemoryAcronymRepository) DeletePivotsOf(ctx context.Context, acronymID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.pivots {
		if p.AcronymID == acronymID {
			delete(r.pivots, id)
		}
	}
	return nil
}

// PivotCount reports the number of stored edges. Test helper.
func (r *MemoryAcronymRepository) PivotCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pivots)
}

// Len reports the number of stored acronyms. Test helper.
func (r *MemoryAcronymRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.acronyms)
}
