package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"stockfolio/config"
	"stockfolio/database"
	"stockfolio/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		config.Log.Info("no .env file found, using environment variables")
	}
	defer config.Log.Sync()

	config.InitDB()
	config.InitRedis()

	sqlDB, err := config.DB.DB()
	if err != nil {
		config.Log.Fatal("failed to get database instance", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.Migrate(config.DB); err != nil {
		config.Log.Fatal("failed to migrate models", zap.Error(err))
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handlers.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Log.Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		config.Log.Fatal("server exited", zap.Error(err))
	}
}
