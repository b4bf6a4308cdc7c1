// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/neuronet/neuronet-backend/internal/handler"
	"github.com/neuronet/neuronet-backend/internal/middleware"
	"github.com/neuronet/neuronet-backend/internal/model"
)

// Middlewares groups the cross-cutting middleware the route
// registration needs. Guard authenticates a bearer token and loads the
// identity; RolePolicy is the declarative allow-set evaluated after
// it. Limiter and Cache may be pass-throughs when Redis is absent.
type Middlewares struct {
	Guard      echo.MiddlewareFunc
	RolePolicy echo.MiddlewareFunc
	Limiter    echo.MiddlewareFunc
	Cache      echo.MiddlewareFunc
}

// DefaultRolePolicy admits every registered role. Endpoints that need
// a narrower policy compose RequireRole with their own allow-set.
func DefaultRolePolicy() echo.MiddlewareFunc {
	return middleware.RequireRole(model.RoleUser, model.RoleTherapist, model.RoleBuddy)
}

// RegisterHealth exposes the liveness and readiness probes. No auth:
// load balancers call these.
func RegisterHealth(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/health", handler.Health)
	e.GET("/health/db", h.DB)
}

// RegisterAuth registers registration/login under the rate limiter and
// the token-protected /auth/me.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, mw Middlewares) {
	g := e.Group("/auth", mw.Limiter)
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.GET("/me", a.Me, mw.Guard, mw.RolePolicy)
}

// RegisterProfile registers the authenticated profile endpoints.
func RegisterProfile(e *echo.Echo, p *handler.ProfileHandler, mw Middlewares) {
	e.GET("/profile", p.Get, mw.Guard, mw.RolePolicy)
	e.PUT("/profile", p.Update, mw.Guard, mw.RolePolicy)
}

// RegisterAssessments registers the questionnaire endpoints. The
// static catalog reads sit behind the response cache; submissions and
// history never do.
func RegisterAssessments(e *echo.Echo, h *handler.AssessmentHandler, mw Middlewares) {
	g := e.Group("/assessments", mw.Guard, mw.RolePolicy)
	g.GET("/types", h.Types, mw.Cache)
	g.GET("/:type/questions", h.Questions, mw.Cache)
	g.POST("/submit", h.Submit)
	g.GET("/history", h.History)
}
