package main

import (
	"context"
	"log"
	"os"

	"dog-trainers-api/config"
	"dog-trainers-api/internal/admin"
	"dog-trainers-api/internal/assist"
	"dog-trainers-api/internal/business"
	"dog-trainers-api/internal/featured"
	"dog-trainers-api/internal/logs"
	"dog-trainers-api/internal/search"
	"dog-trainers-api/internal/suburb"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"google.golang.org/genai"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://dogtrainersdirectory.com.au"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	logService := &logs.LogService{DB: db}
	logs.RegisterRoutes(r, logService)

	suburbService := suburb.NewSuburbService(db)
	suburb.RegisterRoutes(r, suburbService)

	businessService := business.NewBusinessService(db, cfg.GCSBucket)
	business.RegisterRoutes(r, businessService, logService)

	featuredService := featured.NewFeaturedService(db)
	featured.RegisterRoutes(r, featuredService)

	sweeper := featured.StartSweeper(featuredService, logService)
	defer sweeper.Stop()

	searchService := search.NewSearchService(db)
	search.RegisterRoutes(r, searchService)

	adminService := admin.NewAdminService(db)
	admin.RegisterRoutes(r, adminService, logService)

	// Vertex AI with ADC; description drafting stays off when the client
	// cannot be built.
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  cfg.GenaiProject,
		Location: cfg.GenaiLocation,
	})
	if err != nil {
		log.Printf("genai client unavailable, /api/assist disabled: %v", err)
	} else {
		assist.RegisterRoutes(r, assist.NewAssistService(client))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
