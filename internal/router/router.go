// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/tcapp/mobile-ticket-api/internal/config"
	"github.com/tcapp/mobile-ticket-api/internal/handler"
	"github.com/tcapp/mobile-ticket-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check
// used by load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterTicket registers the whole ticket surface under /v1/ticket.
//
// User-facing reads (lists, detail, purchase) require a Bearer token;
// the list and detail routes additionally enforce that the :user_id in
// the path matches the token subject.  The two list routes sit behind
// the Redis response cache since they are the hottest endpoints of the
// app's home screen.  Server-to-server status endpoints (notification,
// refund, distribution) authenticate with the shared API key instead.
func RegisterTicket(
	e *echo.Echo,
	t *handler.TicketHandler,
	s *handler.StatusHandler,
	d *handler.DistributionHandler,
	p *handler.PurchaseHandler,
	cfg config.Config,
	rdb *redis.Client,
) {
	g := e.Group("/v1/ticket")
	g.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	// Per-user reads: token required, path user must match the subject.
	user := g.Group("", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireOwnUser())
	user.GET("/before/:user_id", t.GetTicketListBefore, cache)
	user.GET("/after/:user_id", t.GetTicketListAfter, cache)
	user.GET("/:user_id/:transaction_id", t.GetTicketDetail)

	// Purchase-page proxy: token required, no user_id in the path.
	g.POST("/purchase", p.Purchase, middleware.JWTAuth(cfg.JWTSecret))

	// Server-to-server status mutations: shared API key.
	srv := g.Group("", middleware.APIKey(cfg.APIKey))
	srv.POST("/notification/issue", s.NotificationIssue)
	srv.POST("/refund", s.Refund)
	srv.POST("/distribution", d.Distribute)
	srv.GET("/distribution", d.DistributeByReceipt)
}
