package impl

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/mcmikius/TILApp/pkg/common/errors"
	"github.com/mcmikius/TILApp/pkg/core/user/model"
	"github.com/mcmikius/TILApp/pkg/core/user/repository/dao"
)

// MemoryUserRepository is a map-backed UserRepository. It enforces the same
// username uniqueness the MySQL index does and exists for tests and local
// runs without a database.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]model.User)}
}

var _ dao.UserRepository = (*MemoryUserRepository)(nil)

func (r *MemoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return apperrors.ErrDuplicateEntry
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, apperrors.ErrNotFound
	}
	return user, nil
}

func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, apperrors.ErrNotFound
}

func (r *MemoryUserRepository) List(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}
