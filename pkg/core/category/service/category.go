package service

import (
	"context"

	"github.com/mcmikius/TILApp/pkg/core/category/model"
	"github.com/mcmikius/TILApp/pkg/core/category/repository/dao"
)

type CategoryService struct {
	repo dao.CategoryRepository
}

func NewCategoryService(repo dao.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, name string) (model.Category, error) {
	category := model.Category{Name: name}
	if err := s.repo.Create(ctx, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (model.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}
