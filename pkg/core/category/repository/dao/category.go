package dao

import (
	"context"

	"github.com/mcmikius/TILApp/pkg/core/category/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id int64) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Category, error)
}
