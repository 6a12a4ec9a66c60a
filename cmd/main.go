package main

import (
	"log"

	"github.com/joho/godotenv"

	"everafterpress.ca/stationery/api/internal/router"
	"everafterpress.ca/stationery/api/pkg/ai"
	"everafterpress.ca/stationery/api/pkg/catalog"
	"everafterpress.ca/stationery/api/pkg/global"
	"everafterpress.ca/stationery/api/pkg/mongo"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Build the catalog before serving; a malformed catalog is fatal.
	reg := catalog.Default()
	log.Printf("Catalog loaded: %d categories, quantities %v", len(reg.Categories()), reg.QuantityTiers())

	mongo.InitMongoDB()
	mongo.EnsureIndexesOnStartup()
	ai.InitializeAIService()
	router.InitEngine()
	router.InitializeRoutes()

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
