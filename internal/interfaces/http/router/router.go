package router

import (
	"github.com/gin-gonic/gin"
	"github.com/marketlink/backend/internal/domain/identity"
	"github.com/marketlink/backend/internal/infrastructure/logger"
	"github.com/marketlink/backend/internal/interfaces/http/handler"
	"github.com/marketlink/backend/internal/interfaces/http/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Handlers bundles every HTTP handler wired into the route table
type Handlers struct {
	Auth     *handler.AuthHandler
	Shop     *handler.ShopHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Contact  *handler.ContactHandler
	Basket   *handler.BasketHandler
	Order    *handler.OrderHandler
	System   *handler.SystemHandler
}

// Config holds everything the router needs to build the engine
type Config struct {
	Handlers    Handlers
	JWT         middleware.JWTMiddlewareConfig
	CORS        middleware.CORSConfig
	Logger      *zap.Logger
	ServiceName string
	APIVersion  string
}

// New builds the gin engine with the full middleware stack and route table
func New(cfg Config) *gin.Engine {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "v1"
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "marketlink-backend"
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.CORSWithConfig(cfg.CORS),
		middleware.Secure(),
		otelgin.Middleware(cfg.ServiceName),
		logger.GinMiddleware(log),
		logger.Recovery(log),
	)

	api := engine.Group("/api/" + cfg.APIVersion)
	h := cfg.Handlers

	// Public endpoints
	api.GET("/health", h.System.Health)
	api.GET("/system/info", h.System.GetSystemInfo)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	// The catalog is browsable without authentication
	api.GET("/shops", h.Shop.List)
	api.GET("/shops/:id", h.Shop.GetByID)
	api.GET("/categories", h.Category.List)
	api.GET("/categories/:id", h.Category.GetByID)
	api.GET("/products", h.Product.List)
	api.GET("/products/:id", h.Product.GetByID)

	// Everything below requires a valid access token
	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWT))
	{
		authed.POST("/auth/logout", h.Auth.Logout)

		contact := authed.Group("/contact")
		{
			contact.POST("", h.Contact.Create)
			contact.GET("", h.Contact.Get)
			contact.PUT("", h.Contact.Update)
			contact.DELETE("", h.Contact.Delete)
		}

		buyerOnly := middleware.RequireRole(string(identity.RoleBuyer))
		basket := authed.Group("/basket", buyerOnly)
		{
			basket.POST("/lines", h.Basket.AddLine)
			basket.GET("", h.Basket.List)
			basket.DELETE("/lines/:id", h.Basket.RemoveLine)
		}

		shopOnly := middleware.RequireRole(string(identity.RoleShop))
		myShop := authed.Group("/shop", shopOnly)
		{
			myShop.POST("", h.Shop.Create)
			myShop.GET("", h.Shop.GetOwn)
			myShop.PATCH("/state", h.Shop.SetState)
		}

		products := authed.Group("/products", shopOnly)
		{
			products.POST("", h.Product.Create)
			products.PUT("/:id", h.Product.Update)
			products.DELETE("/:id", h.Product.Delete)
		}

		authed.POST("/categories", shopOnly, h.Category.Create)

		orders := authed.Group("/orders")
		{
			orders.POST("", buyerOnly, h.Order.Checkout)
			orders.GET("", h.Order.List)
			orders.GET("/:id", h.Order.GetByID)
			orders.PATCH("/:id/status", shopOnly, h.Order.UpdateStatus)
		}
	}

	return engine
}
