package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcmikius/TILApp/pkg/common/config"
	acronymimpl "github.com/mcmikius/TILApp/pkg/core/acronym/repository/dao/impl"
	acronymservice "github.com/mcmikius/TILApp/pkg/core/acronym/service"
	categoryimpl "github.com/mcmikius/TILApp/pkg/core/category/repository/dao/impl"
	categoryservice "github.com/mcmikius/TILApp/pkg/core/category/service"
	userimpl "github.com/mcmikius/TILApp/pkg/core/user/repository/dao/impl"
	userservice "github.com/mcmikius/TILApp/pkg/core/user/service"
	"github.com/mcmikius/TILApp/pkg/web/handler"
	"github.com/mcmikius/TILApp/pkg/web/middleware"
	"github.com/mcmikius/TILApp/pkg/web/router"
)

type testApp struct {
	engine   *server.Hertz
	users    *userimpl.MemoryUserRepository
	acronyms *acronymimpl.MemoryAcronymRepository
	userSvc  *userservice.UserService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := config.Load()

	userRepo := userimpl.NewMemoryUserRepository()
	categoryRepo := categoryimpl.NewMemoryCategoryRepository()
	acronymRepo := acronymimpl.NewMemoryAcronymRepository()

	userSvc := userservice.NewUserService(userRepo)
	categorySvc := categoryservice.NewCategoryService(categoryRepo)
	acronymSvc := acronymservice.NewAcronymService(acronymRepo, userRepo, categoryRepo)

	auth, err := middleware.NewSessionAuth(cfg.Middleware.Session, userSvc)
	require.NoError(t, err)

	h := server.New()
	router.Register(h, cfg, router.Handlers{
		Health:     handler.NewHealthCheckHandler(nil),
		Users:      handler.NewUserHandler(userSvc, acronymSvc, cfg.Middleware.Session),
		Categories: handler.NewCategoryHandler(categorySvc, acronymSvc),
		Acronyms:   handler.NewAcronymHandler(acronymSvc),
		Site:       handler.NewSiteHandler(acronymSvc, userSvc, categorySvc),
		Auth:       auth,
	})

	return &testApp{
		engine:   h,
		users:    userRepo,
		acronyms: acronymRepo,
		userSvc:  userSvc,
	}
}

func jsonBody(t *testing.T, v interface{}) *ut.Body {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return &ut.Body{Body: bytes.NewBuffer(data), Len: len(data)}
}

func TestHealthCheckRoute(t *testing.T) {
	app := newTestApp(t)

	w := ut.PerformRequest(app.engine.Engine, "GET", "/health", nil)
	assert.Equal(t, 200, w.Result().StatusCode())
}

func TestAnonymousCreateAcronymRejectedBeforeMutation(t *testing.T) {
	app := newTestApp(t)

	body := jsonBody(t, map[string]string{"short": "OMG", "long": "Oh My God"})
	w := ut.PerformRequest(app.engine.Engine, "POST", "/api/acronyms", body,
		ut.Header{Key: "Content-Type", Value: "application/json"})

	assert.Equal(t, 401, w.Result().StatusCode())
	assert.Zero(t, app.acronyms.Len(), "store must be untouched")
}

func TestAnonymousSiteCreateRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)

	w := ut.PerformRequest(app.engine.Engine, "GET", "/acronyms/create", nil)

	resp := w.Result()
	assert.Equal(t, 302, resp.StatusCode())
	assert.Equal(t, "/login", string(resp.Header.Peek("Location")))
}

func TestUserListOmitsPassword(t *testing.T) {
	app := newTestApp(t)

	_, err := app.userSvc.Register(context.Background(), "Jane", "jane1", "secret")
	require.NoError(t, err)

	w := ut.PerformRequest(app.engine.Engine, "GET", "/api/users", nil)

	resp := w.Result()
	require.Equal(t, 200, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "jane1")
	assert.NotContains(t, string(resp.Body()), "password")
}

func TestRegisterLoginCreateFlow(t *testing.T) {
	app := newTestApp(t)

	// Register.
	w := ut.PerformRequest(app.engine.Engine, "POST", "/api/users",
		jsonBody(t, map[string]string{"name": "Jane", "username": "jane1", "password": "secret"}),
		ut.Header{Key: "Content-Type", Value: "application/json"})
	require.Equal(t, 201, w.Result().StatusCode())

	var registered struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(w.Result().Body(), &registered))
	require.NotEmpty(t, registered.ID)

	// Login for a bearer token.
	w = ut.PerformRequest(app.engine.Engine, "POST", "/api/users/login",
		jsonBody(t, map[string]string{"username": "jane1", "password": "secret"}),
		ut.Header{Key: "Content-Type", Value: "application/json"})
	require.Equal(t, 200, w.Result().StatusCode())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Result().Body(), &login))
	require.NotEmpty(t, login.Token)

	// Create an acronym with the token; the session user becomes owner.
	w = ut.PerformRequest(app.engine.Engine, "POST", "/api/acronyms",
		jsonBody(t, map[string]string{"short": "OMG", "long": "Oh My God"}),
		ut.Header{Key: "Content-Type", Value: "application/json"},
		ut.Header{Key: "Authorization", Value: "Bearer " + login.Token})
	require.Equal(t, 201, w.Result().StatusCode())

	// The owner's acronym list shows it.
	w = ut.PerformRequest(app.engine.Engine, "GET",
		fmt.Sprintf("/api/users/%s/acronyms", registered.ID), nil)
	resp := w.Result()
	require.Equal(t, 200, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "OMG")
	assert.Contains(t, string(resp.Body()), registered.ID)
}

func TestLoginFailureIssuesNoSession(t *testing.T) {
	app := newTestApp(t)

	_, err := app.userSvc.Register(context.Background(), "Jane", "jane1", "secret")
	require.NoError(t, err)

	w := ut.PerformRequest(app.engine.Engine, "POST", "/api/users/login",
		jsonBody(t, map[string]string{"username": "jane1", "password": "wrong"}),
		ut.Header{Key: "Content-Type", Value: "application/json"})

	resp := w.Result()
	assert.Equal(t, 401, resp.StatusCode())
	assert.NotContains(t, string(resp.Body()), "token")
}
