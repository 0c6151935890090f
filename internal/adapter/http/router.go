package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pirayth/gardenshop/configs"
	"github.com/pirayth/gardenshop/internal/adapter/http/middleware"
	"github.com/pirayth/gardenshop/internal/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(cfg configs.Config, cart *CartHandler, cat *CatalogHandler, checkout *CheckoutHandler, sess *middleware.Session) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	// Storefront pages are browser clients on their own origin; cookies
	// carry the session, so credentials must be allowed.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "X-Idempotency-Key"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		logging.From(c).Info("health check")
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1", sess.Attach())
	{
		v1.GET("/cart", cart.Get)
		v1.POST("/cart/items", cart.AddItem)
		v1.PUT("/cart/items/:id", cart.SetQuantity)
		v1.DELETE("/cart/items/:id", cart.RemoveItem)
		v1.DELETE("/cart", cart.Clear)

		v1.GET("/catalog/pets", cat.Pets)
		v1.GET("/catalog/sheckles", cat.Sheckles)

		v1.POST("/checkout", checkout.Checkout)
	}

	return r
}
