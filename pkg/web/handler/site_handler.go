package handler

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	acronymservice "github.com/mcmikius/TILApp/pkg/core/acronym/service"
	categoryservice "github.com/mcmikius/TILApp/pkg/core/category/service"
	userservice "github.com/mcmikius/TILApp/pkg/core/user/service"
	"github.com/mcmikius/TILApp/pkg/web/middleware"
	webmodel "github.com/mcmikius/TILApp/pkg/web/model"
)

// SiteHandler renders the HTML pages. Failures redirect to a safe page
// instead of rendering a partial one.
type SiteHandler struct {
	acronyms   *acronymservice.AcronymService
	users      *userservice.UserService
	categories *categoryservice.CategoryService
}

func NewSiteHandler(acronyms *acronymservice.AcronymService, users *userservice.UserService, categories *categoryservice.CategoryService) *SiteHandler {
	return &SiteHandler{
		acronyms:   acronyms,
		users:      users,
		categories: categories,
	}
}

func (h *SiteHandler) Index(ctx context.Context, c *app.RequestContext) {
	acronyms, err := h.acronyms.List(ctx)
	if err != nil {
		redirectLogin(c)
		return
	}

	c.HTML(consts.StatusOK, "index.html", utils.H{
		"Title":    "Homepage",
		"Acronyms": acronyms,
	})
}

func (h *SiteHandler) Acronym(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		redirectHome(c)
		return
	}

	acronym, err := h.acronyms.GetByID(ctx, id)
	if err != nil {
		redirectHome(c)
		return
	}

	owner, err := h.acronyms.OwnerOf(ctx, id)
	if err != nil {
		redirectHome(c)
		return
	}

	categories, err := h.acronyms.CategoriesOf(ctx, id)
	if err != nil {
		redirectHome(c)
		return
	}

	c.HTML(consts.StatusOK, "acronym.html", utils.H{
		"Title":      acronym.Long,
		"Acronym":    acronym,
		"User":       owner,
		"Categories": categories,
	})
}

func (h *SiteHandler) User(ctx context.Context, c *app.RequestContext) {
	public, err := h.users.GetByID(ctx, c.Param("id"))
	if err != nil {
		redirectHome(c)
		return
	}

	acronyms, err := h.acronyms.ByUser(ctx, public.ID)
	if err != nil {
		redirectHome(c)
		return
	}

	c.HTML(consts.StatusOK, "user.html", utils.H{
		"Title":    public.Name,
		"User":     public,
		"Acronyms": acronyms,
	})
}

func (h *SiteHandler) AllUsers(ctx context.Context, c *app.RequestContext) {
	publics, err := h.users.List(ctx)
	if err != nil {
		redirectHome(c)
		return
	}

	c.HTML(consts.StatusOK, "allUsers.html", utils.H{
		"Title": "All Users",
		"Users": publics,
	})
}

func (h *SiteHandler) Category(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		redirectHome(c)
		return
	}

	category, err := h.categories.GetByID(ctx, id)
	if err != nil {
		redirectHome(c)
		return
	}

	acronyms, err := h.acronyms.ByCategory(ctx, id)
	if err != nil {
		redirectHome(c)
		return
	}

	c.HTML(consts.StatusOK, "category.html", utils.H{
		"Title":    category.Name,
		"Category": category,
		"Acronyms": acronyms,
	})
}

func (h *SiteHandler) AllCategories(ctx context.Context, c *app.RequestContext) {
	categories, err := h.categories.List(ctx)
	if err != nil {
		redirectHome(c)
		return
	}

	c.HTML(consts.StatusOK, "allCategories.html", utils.H{
		"Title":      "All Categories",
		"Categories": categories,
	})
}

func (h *SiteHandler) LoginForm(ctx context.Context, c *app.RequestContext) {
	c.HTML(consts.StatusOK, "login.html", utils.H{
		"Title": "Log In",
	})
}

func (h *SiteHandler) CreateAcronymForm(ctx context.Context, c *app.RequestContext) {
	c.HTML(consts.StatusOK, "createAcronym.html", utils.H{
		"Title":   "Create An Acronym",
		"Editing": false,
	})
}

func (h *SiteHandler) CreateAcronym(ctx context.Context, c *app.RequestContext) {
	ownerID, ok := middleware.SessionUserID(c)
	if !ok {
		redirectLogin(c)
		return
	}

	var req webmodel.CreateAcronymReq
	if err := c.BindAndValidate(&req); err != nil {
		redirectHome(c)
		return
	}
	if err := req.Validate(); err != nil {
		redirectHome(c)
		return
	}

	acronym, err := h.acronyms.Create(ctx, req.Short, req.Long, ownerID)
	if err != nil {
		redirectHome(c)
		return
	}

	c.Redirect(consts.StatusFound, []byte(fmt.Sprintf("/acronyms/%d", acronym.ID)))
}

func (h *SiteHandler) EditAcronymForm(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		redirectHome(c)
		return
	}

	acronym, err := h.acronyms.GetByID(ctx, id)
	if err != nil {
		redirectHome(c)
		return
	}

	c.HTML(consts.StatusOK, "createAcronym.html", utils.H{
		"Title":   "Edit Acronym",
		"Editing": true,
		"Acronym": acronym,
	})
}

func (h *SiteHandler) EditAcronym(ctx context.Context, c *app.RequestContext) {
	editorID, ok := middleware.SessionUserID(c)
	if !ok {
		redirectLogin(c)
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		redirectHome(c)
		return
	}

	var req webmodel.EditAcronymReq
	if err := c.BindAndValidate(&req); err != nil {
		redirectHome(c)
		return
	}
	if err := req.Validate(); err != nil {
		redirectHome(c)
		return
	}

	acronym, err := h.acronyms.Update(ctx, id, req.Short, req.Long, editorID)
	if err != nil {
		redirectHome(c)
		return
	}

	c.Redirect(consts.StatusFound, []byte(fmt.Sprintf("/acronyms/%d", acronym.ID)))
}

func (h *SiteHandler) DeleteAcronym(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		redirectHome(c)
		return
	}

	if err := h.acronyms.Delete(ctx, id); err != nil {
		redirectHome(c)
		return
	}

	redirectHome(c)
}

func redirectHome(c *app.RequestContext) {
	c.Redirect(consts.StatusFound, []byte("/"))
}

func redirectLogin(c *app.RequestContext) {
	c.Redirect(consts.StatusFound, []byte("/login"))
}
