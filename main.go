package main

import (
	"log"
	"os"
	"time"

	"github.com/certitrack/backend/auth"
	"github.com/certitrack/backend/config"
	"github.com/certitrack/backend/database"
	"github.com/certitrack/backend/handlers"
	"github.com/certitrack/backend/natsserver"
	"github.com/certitrack/backend/services"
	"github.com/certitrack/backend/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	defer database.Close(db)

	// Start embedded NATS server for the record event bus
	natsServer, err := natsserver.New(natsserver.Config{Port: cfg.NATSPort})
	if err != nil {
		log.Fatalf("❌ Failed to start NATS server: %v", err)
	}
	defer natsServer.Shutdown()

	// Initialize event hub for WebSocket streaming
	eventHub, err := services.NewEventHub(natsServer.Conn())
	if err != nil {
		log.Fatalf("❌ Failed to start event hub: %v", err)
	}
	defer eventHub.Close()
	go eventHub.Run()
	log.Println("📺 Event hub initialized")

	// Wire stores and handlers
	users := store.NewUsers(db)
	records := store.NewRecords(db)
	tokens := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)

	authHandler := &handlers.AuthHandler{Users: users, Tokens: tokens}
	usersHandler := &handlers.UsersHandler{Users: users}
	recordsHandler := &handlers.RecordsHandler{Records: records, Events: eventHub}
	feedHandler := &handlers.FeedHandler{Hub: eventHub}

	// Setup Gin router
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	authRequired := handlers.AuthMiddleware(tokens)

	// Registration is public only when explicitly opened; otherwise an
	// existing admin has to create accounts.
	if cfg.OpenRegistration {
		router.POST("/register", authHandler.Register)
	} else {
		router.POST("/register", authRequired, handlers.RequireAdmin(), authHandler.Register)
	}

	router.POST("/login", authHandler.Login)

	// WebSocket route for the live record feed (outside the auth group)
	router.GET("/ws/feed", feedHandler.HandleWebSocket)

	// Authenticated routes
	protected := router.Group("/", authRequired)
	{
		protected.GET("/me", authHandler.Me)
		protected.POST("/update-password", authHandler.UpdatePassword)

		// User administration
		usersGroup := protected.Group("/users", handlers.RequireAdmin())
		{
			usersGroup.GET("", usersHandler.List)
			usersGroup.GET("/:id", usersHandler.Get)
			usersGroup.PUT("/:id", usersHandler.Update)
			usersGroup.DELETE("/:id", usersHandler.Delete)
		}

		// Certification records
		qr := protected.Group("/qr")
		{
			qr.POST("", recordsHandler.Create)
			qr.GET("", recordsHandler.List)
			qr.GET("/:id", recordsHandler.Get)
			qr.PUT("/:id", recordsHandler.Update)
			qr.DELETE("/:id", recordsHandler.Delete)
		}

		protected.GET("/api/feed/stats", feedHandler.GetStats)
	}

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
