package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/saghirumohammedsi24-star/DUKA/logger"
	"github.com/saghirumohammedsi24-star/DUKA/middleware"
	"github.com/saghirumohammedsi24-star/DUKA/models"
	"github.com/saghirumohammedsi24-star/DUKA/routes"
)

func main() {
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))
	defer logger.Sync()

	db := initDatabase()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductCounter{},
		&models.Attribute{},
		&models.AttributeOption{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderCounter{},
		&models.Setting{},
	); err != nil {
		logger.L().Fatal("AutoMigrate failed", zap.Error(err))
	}

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Allow large multipart uploads for product galleries
	r.MaxMultipartMemory = 32 << 20 // 32MB

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded media and generated receipts
	publicDir := os.Getenv("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "./public"
	}
	for _, sub := range []string{"uploads/products", "uploads/attributes", "receipts"} {
		if err := os.MkdirAll(filepath.Join(publicDir, sub), os.ModePerm); err != nil {
			logger.L().Fatal("Failed to create public folder", zap.Error(err))
		}
	}
	r.Static("/public", publicDir)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to DUKA API"})
	})

	routes.SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.L().Info("Server running", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.L().Fatal("Failed to start server", zap.Error(err))
	}
}

// initDatabase sets up the GORM DB connection.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			logger.L().Fatal("DB connection failed", zap.Error(err))
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.L().Fatal("Failed to connect DB", zap.Error(err))
	}
	return db
}
