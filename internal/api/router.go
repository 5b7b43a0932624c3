package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ticketbay/checkout-gateway/internal/config"
	"github.com/ticketbay/checkout-gateway/internal/handlers"
	"github.com/ticketbay/checkout-gateway/internal/service"
	"github.com/ticketbay/checkout-gateway/internal/telemetry"
)

func NewRouter(cfg *config.Config, manager *service.CheckoutManager) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.TracingMiddleware())
	r.Use(OriginFilter(cfg.AllowedOrigins))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "env": cfg.AppEnv})
	})

	// Checkout routes
	checkoutHandler := handlers.NewCheckoutHandler(manager)
	r.POST("/create-checkout-session", checkoutHandler.CreateCheckoutSession)
	r.GET("/session-status", checkoutHandler.GetSessionStatus)

	// Pre-built frontend bundle. Unknown GET paths fall back to index.html so
	// the client-side routes (/success, /cancel) resolve after a redirect.
	if cfg.ServeStatic {
		r.Static("/assets", filepath.Join(cfg.StaticDir, "assets"))
		r.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method == http.MethodGet {
				c.File(filepath.Join(cfg.StaticDir, "index.html"))
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})
	}

	return r
}
