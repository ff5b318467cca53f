package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	acronymservice "github.com/mcmikius/TILApp/pkg/core/acronym/service"
	categoryservice "github.com/mcmikius/TILApp/pkg/core/category/service"
	webmodel "github.com/mcmikius/TILApp/pkg/web/model"
)

type CategoryHandler struct {
	categories *categoryservice.CategoryService
	acronyms   *acronymservice.AcronymService
}

func NewCategoryHandler(categories *categoryservice.CategoryService, acronyms *acronymservice.AcronymService) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		acronyms:   acronyms,
	}
}

func (h *CategoryHandler) List(ctx context.Context, c *app.RequestContext) {
	categories, err := h.categories.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, categories)
}

func (h *CategoryHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	category, err := h.categories.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, category)
}

func (h *CategoryHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req webmodel.CreateCategoryReq
	if err := c.BindAndValidate(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondBadRequest(c, err)
		return
	}

	category, err := h.categories.Create(ctx, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, category)
}

func (h *CategoryHandler) Acronyms(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	acronyms, err := h.acronyms.ByCategory(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, acronyms)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
