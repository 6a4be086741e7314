// Package router assembles the gin engine: middleware, routes, metrics.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hisaab/hisaab/internal/auth"
	"github.com/hisaab/hisaab/internal/config"
	"github.com/hisaab/hisaab/internal/handler"
	"github.com/hisaab/hisaab/internal/middleware"
)

// Deps carries everything the router needs to wire the handlers.
type Deps struct {
	Auth       *handler.AuthHandler
	Groups     *handler.GroupHandler
	Ledger     *handler.LedgerHandler
	JWTManager *auth.JWTManager
	Registry   *prometheus.Registry
}

// Setup configures the gin engine with middleware and all routes.
func Setup(cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.NewMetrics(deps.Registry).Handler())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "hisaab"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	api := r.Group("/api")

	api.POST("/auth/register", deps.Auth.Register)
	api.POST("/auth/login", deps.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(deps.JWTManager))

	authed.POST("/groups", deps.Groups.Create)
	authed.GET("/groups", deps.Groups.List)
	authed.GET("/groups/:id", deps.Groups.Get)
	authed.POST("/groups/:id/join", deps.Groups.Join)

	authed.GET("/groups/:id/activity", deps.Ledger.Activity)
	authed.GET("/groups/:id/summary", deps.Ledger.Summary)
	authed.POST("/groups/:id/transactions", deps.Ledger.RecordTransaction)
	authed.POST("/groups/:id/settlements", deps.Ledger.RecordSettlement)

	return r
}
