package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mcmikius/TILApp/pkg/common/config"
	acronymservice "github.com/mcmikius/TILApp/pkg/core/acronym/service"
	userservice "github.com/mcmikius/TILApp/pkg/core/user/service"
	webmodel "github.com/mcmikius/TILApp/pkg/web/model"
)

type UserHandler struct {
	users    *userservice.UserService
	acronyms *acronymservice.AcronymService
	session  config.SessionConfig
}

func NewUserHandler(users *userservice.UserService, acronyms *acronymservice.AcronymService, session config.SessionConfig) *UserHandler {
	return &UserHandler{
		users:    users,
		acronyms: acronyms,
		session:  session,
	}
}

// List responds with public projections only.
func (h *UserHandler) List(ctx context.Context, c *app.RequestContext) {
	publics, err := h.users.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, publics)
}

func (h *UserHandler) Get(ctx context.Context, c *app.RequestContext) {
	public, err := h.users.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, public)
}

// Create registers a new account. The body carries the plaintext password;
// the response is the public projection.
func (h *UserHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req webmodel.RegisterUserReq
	if err := c.BindAndValidate(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondBadRequest(c, err)
		return
	}

	public, err := h.users.Register(ctx, req.Name, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, public)
}

func (h *UserHandler) Acronyms(ctx context.Context, c *app.RequestContext) {
	acronyms, err := h.acronyms.ByUser(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, acronyms)
}

// Login issues a bearer token for API clients. The token is signed with the
// session secret and the same claims the session gate expects, so it is
// accepted on protected API routes.
func (h *UserHandler) Login(ctx context.Context, c *app.RequestContext) {
	var req webmodel.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondBadRequest(c, err)
		return
	}

	public, err := h.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  public.ID,
		"username": public.Username,
		"exp":      time.Now().Add(h.session.TTL).Unix(),
		"iss":      h.session.Issuer,
	})

	signed, err := token.SignedString([]byte(h.session.Secret))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, utils.H{
		"token":    signed,
		"user_id":  public.ID,
		"username": public.Username,
	})
}
