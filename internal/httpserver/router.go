package httpserver

import (
	"errors"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"luxera-storefront/internal/catalog"
	"luxera-storefront/internal/checkout"
	"luxera-storefront/internal/contact"
)

// Deps carries the collaborators the routes need.
type Deps struct {
	Catalog        catalog.Repository
	Sessions       *checkout.Sessions
	Orders         Pinger
	NewContactForm func() *contact.Form
	SessionTTL     time.Duration
	AllowedOrigins []string
}

// buildRouter wires the storefront routes.
func buildRouter(logger zerolog.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Catalog == nil || deps.Sessions == nil {
		return nil, errors.New("httpserver: catalog and sessions are required")
	}
	if deps.NewContactForm == nil {
		return nil, errors.New("httpserver: contact form factory is required")
	}
	if deps.SessionTTL <= 0 {
		deps.SessionTTL = 30 * time.Minute
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowedOrigins) == 1 && deps.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else if len(deps.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = deps.AllowedOrigins
		corsCfg.AllowCredentials = true
	} else {
		corsCfg.AllowAllOrigins = true
	}
	router.Use(cors.New(corsCfg))

	h := &storefrontHandler{
		catalog:  deps.Catalog,
		contacts: newFormRegistry(deps.NewContactForm, deps.SessionTTL),
		logger:   logger.With().Str("component", "httpserver").Logger(),
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Orders))

	router.Use(sessionMiddleware(deps.Sessions))

	router.GET("/api/products", h.listProducts)
	router.GET("/api/products/:id", h.getProduct)

	router.POST("/checkout", h.beginCheckout)
	router.GET("/checkout", h.getCheckout)
	router.POST("/checkout/details", h.submitDetails)
	router.GET("/checkout/review", h.getReview)
	router.POST("/checkout/edit", h.editOrder)
	router.POST("/checkout/confirm", h.confirmOrder)
	router.GET("/checkout/confirmation", h.getConfirmation)
	router.POST("/checkout/reset", h.resetCheckout)

	router.GET("/api/contact", h.contactStatus)
	router.POST("/api/contact", h.submitContact)

	return router, nil
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("request")
	}
}
