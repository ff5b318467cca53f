package impl

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/mcmikius/TILApp/pkg/common/errors"
	"github.com/mcmikius/TILApp/pkg/core/user/model"
	"github.com/mcmikius/TILApp/pkg/core/user/repository/dao"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) dao.UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("%w: user creation failed", apperrors.WrapGormError(err))
	}
	return nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.User{}, apperrors.ErrNotFound
	case err != nil:
		return model.User{}, fmt.Errorf("%w: user query failed", apperrors.WrapGormError(err))
	default:
		return user, nil
	}
}

func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.User{}, apperrors.ErrNotFound
	case err != nil:
		return model.User{}, fmt.Errorf("%w: user lookup failed", apperrors.WrapGormError(err))
	default:
		return user, nil
	}
}

func (r *GormUserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("%w: user listing failed", apperrors.WrapGormError(err))
	}
	return users, nil
}
