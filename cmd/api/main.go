package main

import (
	"log"

	"goodie-catalog/internal/config"
	"goodie-catalog/internal/database"
	"goodie-catalog/internal/media"
	"goodie-catalog/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}

	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)
	database.EnsureIndexes(db)

	uploader, err := media.NewCloudinaryUploader(cfg.CloudName, cfg.CloudAPIKey, cfg.CloudSecretKey)
	if err != nil {
		log.Fatal("❌ Error configuring media uploader:", err)
	}

	router := gin.Default()
	routes.RegisterRoutes(router, db, uploader)

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
