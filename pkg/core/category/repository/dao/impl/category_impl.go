package impl

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/mcmikius/TILApp/pkg/common/errors"
	"github.com/mcmikius/TILApp/pkg/core/category/model"
	"github.com/mcmikius/TILApp/pkg/core/category/repository/dao"
)

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) dao.CategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("%w: category creation failed", apperrors.WrapGormError(err))
	}
	return nil
}

func (r *GormCategoryRepository) GetByID(ctx context.Context, id int64) (model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.Category{}, apperrors.ErrNotFound
	case err != nil:
		return model.Category{}, fmt.Errorf("%w: category query failed", apperrors.WrapGormError(err))
	default:
		return category, nil
	}
}

func (r *GormCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("%w: category listing failed", apperrors.WrapGormError(err))
	}
	return categories, nil
}

func (r *GormCategoryRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var categories []model.Category
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("%w: category listing failed", apperrors.WrapGormError(err))
	}
	return categories, nil
}
