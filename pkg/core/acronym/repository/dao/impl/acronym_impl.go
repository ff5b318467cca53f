package impl

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/mcmikius/TILApp/pkg/common/errors"
	"github.com/mcmikius/TILApp/pkg/core/acronym/model"
	"github.com/mcmikius/TILApp/pkg/core/acronym/repository/dao"
)

type GormAcronymRepository struct {
	db *gorm.DB
}

func NewGormAcronymRepository(db *gorm.DB) dao.AcronymRepository {
	return &GormAcronymRepository{db: db}
}

func (r *GormAcronymRepository) Create(ctx context.Context, acronym *model.Acronym) error {
	if err := r.db.WithContext(ctx).Create(acronym).Error; err != nil {
		return fmt.Errorf("%w: acronym creation failed", apperrors.WrapGormError(err))
	}
	return nil
}

func (r *GormAcronymRepository) GetByID(ctx context.Context, id int64) (model.Acronym, error) {
	var acronym model.Acronym
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&acronym).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.Acronym{}, apperrors.ErrNotFound
	case err != nil:
		return model.Acronym{}, fmt.Errorf("%w: acronym query failed", apperrors.WrapGormError(err))
	default:
		return acronym, nil
	}
}

func (r *GormAcronymRepository) List(ctx context.Context) ([]model.Acronym, error) {
	var acronyms []model.Acronym
	if err := r.db.WithContext(ctx).Find(&acronyms).Error; err != nil {
		return nil, fmt.Errorf("%w: acronym listing failed", apperrors.WrapGormError(err))
	}
	return acronyms, nil
}

func (r *GormAcronymRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Acronym, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var acronyms []model.Acronym
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&acronyms).Error; err != nil {
		return nil, fmt.Errorf("%w: acronym listing failed", apperrors.WrapGormError(err))
	}
	return acronyms, nil
}

func (r *GormAcronymRepository) ListByUser(ctx context.Context, userID string) ([]model.Acronym, error) {
	var acronyms []model.Acronym
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&acronyms).Error; err != nil {
		return nil, fmt.Errorf("%w: acronym listing failed", apperrors.WrapGormError(err))
	}
	return acronyms, nil
}

func (r *GormAcronymRepository) Update(ctx context.Context, acronym *model.Acronym) error {
	result := r.db.WithContext(ctx).Model(&model.Acronym{}).
		Where("id = ?", acronym.ID).
		Updates(map[string]interface{}{
			"short":   acronym.Short,
			"long":    acronym.Long,
			"user_id": acronym.UserID,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: acronym update failed", apperrors.WrapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GormAcronymRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Acronym{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: acronym delete failed", apperrors.WrapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GormAcronymRepository) AttachCategory(ctx context.Context, pivot *model.AcronymCategoryPivot) error {
	if err := r.db.WithContext(ctx).Create(pivot).Error; err != nil {
		return fmt.Errorf("%w: pivot creation failed", apperrors.WrapGormError(err))
	}
	return nil
}

func (r *GormAcronymRepository) CategoryIDsOf(ctx context.Context, acronymID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.AcronymCategoryPivot{}).
		Where("acronym_id = ?", acronymID).
		Pluck("category_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("%w: pivot query failed", apperrors.WrapGormError(err))
	}
	return ids, nil
}

func (r *GormAcronymRepository) AcronymIDsOf(ctx context.Context, categoryID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.AcronymCategoryPivot{}).
		Where("category_id = ?", categoryID).
		Pluck("acronym_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("%w: pivot query failed", apperrors.WrapGormError(err))
	}
	return ids, nil
}

func (r *GormAcronymRepository) DeletePivotsOf(ctx context.Context, acronymID int64) error {
	err := r.db.WithContext(ctx).
		Where("acronym_id = ?", acronymID).
		Delete(&model.AcronymCategoryPivot{}).Error
	if err != nil {
		return fmt.Errorf("%w: pivot cleanup failed", apperrors.WrapGormError(err))
	}
	return nil
}
