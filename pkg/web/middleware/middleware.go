package middleware

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/hertz-contrib/cors"

	"github.com/mcmikius/TILApp/pkg/common/config"
)

// LoggerMiddleware emits one structured access log line per request.
func LoggerMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c)
		latency := time.Since(start)

		hlog.CtxTracef(c, "| %3d | %13v | %15s | %-7s | %s",
			ctx.Response.StatusCode(),
			latency,
			ctx.ClientIP(),
			ctx.Method(),
			ctx.Path(),
		)
	}
}

// RecoveryMiddleware converts panics into 500 responses. Production hides
// the stack; development returns it in the body.
func RecoveryMiddleware(cfg *config.Config) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				stack := string(debug.Stack())
				hlog.CtxErrorf(c, "[PANIC RECOVERED] %v\n%s", err, stack)

				if cfg.IsProd() {
					ctx.AbortWithStatusJSON(500, utils.H{
						"code":    500,
						"message": "internal server error",
					})
				} else {
					ctx.AbortWithStatusJSON(500, utils.H{
						"code":  500,
						"error": fmt.Sprintf("%v", err),
						"stack": strings.Split(stack, "\n"),
					})
				}
			}
		}()
		ctx.Next(c)
	}
}

func CORSMiddleware(corsConfig config.CORSConfig) app.HandlerFunc {
	return cors.New(
		cors.Config{
			AllowOrigins:     corsConfig.AllowOrigins,
			AllowMethods:     corsConfig.AllowMethods,
			AllowHeaders:     corsConfig.AllowHeaders,
			ExposeHeaders:    corsConfig.ExposeHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAge,
			AllowOriginFunc: func(origin string) bool {
				for _, domain := range corsConfig.TrustedDomains {
					if strings.Contains(origin, domain) {
						return true
					}
				}
				return false
			},
		},
	)
}

func TimeoutMiddleware(seconds int) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		timeoutCtx, cancel := context.WithTimeout(c, time.Duration(seconds)*time.Second)
		defer cancel()

		done := make(chan struct{})
		var panicErr interface{}

		go func() {
			defer func() {
				if r := recover(); r != nil {
					panicErr = r
				}
				close(done)
			}()
			ctx.Next(timeoutCtx)
		}()

		select {
		case <-timeoutCtx.Done():
			ctx.AbortWithStatusJSON(503, utils.H{
				"code":    503000,
				"message": "service unavailable",
			})
			hlog.CtxWarnf(timeoutCtx, "request timeout path=%s", ctx.Path())
		case <-done:
			if panicErr != nil {
				panic(panicErr) // handled by the global recovery middleware
			}
		}
	}
}

// RateLimitMiddleware applies a global token-bucket limit.
func RateLimitMiddleware(rate int, interval time.Duration) app.HandlerFunc {
	limiter := NewTokenBucket(rate, interval)

	return func(c context.Context, ctx *app.RequestContext) {
		if !limiter.Allow() {
			hlog.CtxInfof(c, "[RATE LIMIT] path=%s", ctx.Path())
			ctx.AbortWithStatusJSON(429, utils.H{
				"code":    429001,
				"message": "too many requests",
			})
			return
		}
		ctx.Next(c)
	}
}

type TokenBucket struct {
	capacity int
	tokens   chan struct{}
	rate     time.Duration
}

func NewTokenBucket(rate int, interval time.Duration) *TokenBucket {
	tb := &TokenBucket{
		capacity: rate,
		tokens:   make(chan struct{}, rate),
		rate:     interval,
	}

	for i := 0; i < rate; i++ {
		tb.tokens <- struct{}{}
	}

	go func() {
		ticker := time.NewTicker(tb.rate)
		for range ticker.C {
			select {
			case tb.tokens <- struct{}{}:
			default:
			}
		}
	}()
	return tb
}

func (tb *TokenBucket) Allow() bool {
	select {
	case <-tb.tokens:
		return true
	default:
		return false
	}
}

// SecurityCheckMiddleware enforces body-size and method limits before any
// handler runs.
func SecurityCheckMiddleware(cfg config.SecurityConfig) app.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedMethods))
	for _, m := range cfg.AllowedMethods {
		allowed[m] = true
	}

	return func(c context.Context, ctx *app.RequestContext) {
		if int64(ctx.Request.Header.ContentLength()) > cfg.MaxBodySize {
			securityResponse(ctx, 413001, "request body exceeds max size", 413)
			return
		}

		if !allowed[string(ctx.Method())] {
			securityResponse(ctx, 405001, "method not allowed", 405)
			return
		}

		ctx.Next(c)
	}
}

func securityResponse(ctx *app.RequestContext, code int, msg string, status int) {
	hlog.Warnf("SecurityAlert[code=%d]: %s", code, msg)
	ctx.AbortWithStatusJSON(status, utils.H{
		"code":    code,
		"message": msg,
	})
}
