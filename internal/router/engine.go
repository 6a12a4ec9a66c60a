package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var Router *gin.Engine

func InitEngine() {
	Router = gin.Default()
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "https://everafterpress.ca"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Total-Count", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes() {
	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		catalogGroup := api.Group("/catalog")
		{
			catalogGroup.GET("/", GetCatalog)
			catalogGroup.GET("/quantities", GetQuantityTiers)
			catalogGroup.GET("/folios/:styleId/materials", GetFolioMaterials)
			catalogGroup.GET("/inserts/:method", GetInserts)
			catalogGroup.GET("/:category", GetCatalogCategory)
		}

		configurator := api.Group("/configurator")
		{
			configurator.GET("/defaults", GetConfiguratorDefaults)
		}

		quotes := api.Group("/quotes")
		{
			quotes.POST("/preview", PreviewQuote)
			quotes.POST("/", CreateQuote)
			quotes.GET("/", RequireUserID(), GetQuotesByUser)
			quotes.GET("/:id", GetQuoteByID)
			quotes.POST("/:id/order", OrderQuote)
			quotes.DELETE("/:id", DeleteQuote)
			quotes.GET("/:id/summary", GetQuoteSummary)
		}

		cart := api.Group("/cart")
		{
			cart.GET("/:sessionId", GetCart)
			cart.POST("/:sessionId/deposit/:quoteId", AddDepositToCart)
			cart.DELETE("/:sessionId/items/:sku", RemoveFromCart)
			cart.DELETE("/:sessionId/clear", ClearCart)
		}
	}
}
