package dao

import (
	"context"

	"github.com/mcmikius/TILApp/pkg/core/acronym/model"
)

// AcronymRepository owns the acronym rows and the acronym/category pivot
// rows. The pivot queries return bare ids; resolving them into full rows is
// the service layer's job, so each relation read stays a composition of two
// store queries.
type AcronymRepository interface {
	Create(ctx context.Context, acronym *model.Acronym) error
	GetByID(ctx context.Context, id int64) (model.Acronym, error)
	List(ctx context.Context) ([]model.Acronym, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Acronym, error)
	ListByUser(ctx context.Context, userID string) ([]model.Acronym, error)
	Update(ctx context.Context, acronym *model.Acronym) error
	Delete(ctx context.Context, id int64) error

	AttachCategory(ctx context.Context, pivot *model.AcronymCategoryPivot) error
	CategoryIDsOf(ctx context.Context, acronymID int64) ([]int64, error)
	AcronymIDsOf(ctx context.Context, categoryID int64) ([]int64, error)
	DeletePivotsOf(ctx context.Context, acronymID int64) error
}
