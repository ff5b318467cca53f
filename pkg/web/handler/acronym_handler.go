package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	acronymmodel "github.com/mcmikius/TILApp/pkg/core/acronym/model"
	acronymservice "github.com/mcmikius/TILApp/pkg/core/acronym/service"
	categorymodel "github.com/mcmikius/TILApp/pkg/core/category/model"
	usermodel "github.com/mcmikius/TILApp/pkg/core/user/model"
	"github.com/mcmikius/TILApp/pkg/web/middleware"
	webmodel "github.com/mcmikius/TILApp/pkg/web/model"
)

type AcronymHandler struct {
	acronyms *acronymservice.AcronymService
}

func NewAcronymHandler(acronyms *acronymservice.AcronymService) *AcronymHandler {
	return &AcronymHandler{acronyms: acronyms}
}

// AcronymDetail is the API detail payload: the row plus the owner's public
// projection and the attached categories.
type AcronymDetail struct {
	acronymmodel.Acronym
	Owner      usermodel.Public         `json:"owner"`
	Categories []categorymodel.Category `json:"categories"`
}

func (h *AcronymHandler) List(ctx context.Context, c *app.RequestContext) {
	acronyms, err := h.acronyms.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, acronyms)
}

func (h *AcronymHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	acronym, err := h.acronyms.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	owner, err := h.acronyms.OwnerOf(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	categories, err := h.acronyms.CategoriesOf(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, AcronymDetail{
		Acronym:    acronym,
		Owner:      owner,
		Categories: categories,
	})
}

// Create persists an acronym owned by the session user. The route sits
// behind the session gate.
func (h *AcronymHandler) Create(ctx context.Context, c *app.RequestContext) {
	ownerID, ok := middleware.SessionUserID(c)
	if !ok {
		c.JSON(401, utils.H{"code": 401, "error": "authentication required"})
		return
	}

	var req webmodel.CreateAcronymReq
	if err := c.BindAndValidate(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondBadRequest(c, err)
		return
	}

	acronym, err := h.acronyms.Create(ctx, req.Short, req.Long, ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, acronym)
}

// AttachCategory tags an acronym with a category.
func (h *AcronymHandler) AttachCategory(ctx context.Context, c *app.RequestContext) {
	acronymID, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	categoryID, err := parseID(c.Param("categoryID"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.acronyms.AttachCategory(ctx, acronymID, categoryID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, utils.H{"message": "category attached"})
}
