package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/LovationAdmin/powertrack/config"
	"github.com/LovationAdmin/powertrack/middleware"
	"github.com/LovationAdmin/powertrack/routes"
	"github.com/LovationAdmin/powertrack/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.InitDB(config.DBPath())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	log.Println("✅ Database connected successfully")

	if err := config.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	consumptions := services.NewConsumptionService(db)
	reports := services.NewReportService(consumptions)
	summaries := services.NewSummaryService(db, reports)

	go scheduleMonthlySnapshots(summaries)

	router := gin.Default()
	router.LoadHTMLGlob("templates/*.html")

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	corsConfig := cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log.Printf("✅ %s %s - %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), duration)
	})

	router.Use(middleware.RateLimiter())

	routes.SetupApplianceRoutes(router, db)
	routes.SetupConsumptionRoutes(router, db)
	routes.SetupReportRoutes(router, db)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// scheduleMonthlySnapshots refreshes the current month's summary row once a
// day for the default country.
func scheduleMonthlySnapshots(summaries *services.SummaryService) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	snapshotCurrentMonth(summaries)
	for range ticker.C {
		snapshotCurrentMonth(summaries)
	}
}

func snapshotCurrentMonth(summaries *services.SummaryService) {
	country := os.Getenv("DEFAULT_COUNTRY")
	if country == "" {
		country = "USA"
	}
	tariff, ok := config.TariffFor(country)
	if !ok {
		log.Printf("❌ Snapshot skipped: unknown country %q", country)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	month := time.Now().Format("2006-01")
	summary, err := summaries.Snapshot(ctx, month, country, tariff)
	if err != nil {
		log.Printf("❌ Monthly snapshot failed: %v", err)
		return
	}
	log.Printf("🧾 Snapshot %s/%s: %.3f kWh", summary.Month, summary.Country, summary.TotalConsumption)
}
