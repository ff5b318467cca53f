package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	jwtmw "github.com/hertz-contrib/jwt"

	"github.com/mcmikius/TILApp/pkg/common/config"
	usermodel "github.com/mcmikius/TILApp/pkg/core/user/model"
	userservice "github.com/mcmikius/TILApp/pkg/core/user/service"
	webmodel "github.com/mcmikius/TILApp/pkg/web/model"
)

// IdentityKey is the claim and context key carrying the session user id.
const IdentityKey = "user_id"

// SessionAuth is the authorization gate. Tokens are signed JWTs, carried in
// a cookie on the site surface and as a bearer header on the API surface.
// An anonymous request never reaches a protected handler: the API gets 401,
// the site gets a redirect to /login.
type SessionAuth struct {
	mw *jwtmw.HertzJWTMiddleware
}

func NewSessionAuth(cfg config.SessionConfig, users *userservice.UserService) (*SessionAuth, error) {
	mw, err := jwtmw.New(&jwtmw.HertzJWTMiddleware{
		Realm:          cfg.Issuer,
		Key:            []byte(cfg.Secret),
		Timeout:        cfg.TTL,
		MaxRefresh:     cfg.TTL,
		IdentityKey:    IdentityKey,
		SendCookie:     true,
		CookieName:     cfg.CookieName,
		CookieMaxAge:   cfg.TTL,
		CookieHTTPOnly: true,
		TokenLookup:    "cookie:" + cfg.CookieName + ",header:Authorization",
		TokenHeadName:  "Bearer",
		TimeFunc:       time.Now,
		PayloadFunc: func(data interface{}) jwtmw.MapClaims {
			if u, ok := data.(usermodel.Public); ok {
				return jwtmw.MapClaims{IdentityKey: u.ID}
			}
			return jwtmw.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwtmw.ExtractClaims(ctx, c)
			id, _ := claims[IdentityKey].(string)
			return id
		},
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var req webmodel.LoginReq
			if err := c.BindAndValidate(&req); err != nil {
				return nil, jwtmw.ErrMissingLoginValues
			}
			if err := req.Validate(); err != nil {
				return nil, jwtmw.ErrMissingLoginValues
			}

			// Unknown username and wrong password are indistinguishable.
			public, err := users.Authenticate(ctx, req.Username, req.Password)
			if err != nil {
				return nil, jwtmw.ErrFailedAuthentication
			}
			return public, nil
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			if isAPIRequest(c) {
				c.JSON(code, utils.H{
					"token":  token,
					"expire": expire.Format(time.RFC3339),
				})
				return
			}
			c.Redirect(consts.StatusFound, []byte("/"))
		},
		LogoutResponse: func(ctx context.Context, c *app.RequestContext, code int) {
			if isAPIRequest(c) {
				c.JSON(code, utils.H{"message": "logged out"})
				return
			}
			c.Redirect(consts.StatusFound, []byte("/"))
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			if isAPIRequest(c) {
				c.JSON(code, utils.H{
					"code":    code,
					"message": message,
				})
				return
			}
			c.Redirect(consts.StatusFound, []byte("/login"))
		},
	})
	if err != nil {
		return nil, err
	}

	return &SessionAuth{mw: mw}, nil
}

// RequireAuthenticated guards protected routes. The handler behind it can
// rely on SessionUserID returning a valid id.
func (a *SessionAuth) RequireAuthenticated() app.HandlerFunc {
	return a.mw.MiddlewareFunc()
}

// LoginHandler serves POST /login and POST /api/users/login.
func (a *SessionAuth) LoginHandler() app.HandlerFunc {
	return a.mw.LoginHandler
}

// LogoutHandler clears the session cookie.
func (a *SessionAuth) LogoutHandler() app.HandlerFunc {
	return a.mw.LogoutHandler
}

// SessionUserID returns the authenticated user id set by the gate.
func SessionUserID(c *app.RequestContext) (string, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		hlog.Warnf("session identity has unexpected shape: %T", v)
		return "", false
	}
	return id, true
}

func isAPIRequest(c *app.RequestContext) bool {
	return strings.HasPrefix(string(c.Path()), "/api/")
}
