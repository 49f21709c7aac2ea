package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Hayk10002/crossword-generator/internal/api"
	"github.com/Hayk10002/crossword-generator/internal/auth"
	"github.com/Hayk10002/crossword-generator/internal/config"
	"github.com/Hayk10002/crossword-generator/internal/middleware"
	"github.com/Hayk10002/crossword-generator/internal/realtime"
	"github.com/Hayk10002/crossword-generator/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	jobStore, err := openStore(cfg)
	if err != nil {
		log.Printf("Warning: database connection failed: %v", err)
		log.Println("Running in demo mode without a database...")
		jobStore = store.NewMemStore()
	}

	authService := auth.NewService(cfg.JWTSecret)
	authMiddleware := middleware.NewAuthMiddleware(authService)
	hub := realtime.NewHub(jobStore)
	handlers := api.NewHandlers(jobStore, authService, hub)

	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.PerformanceMonitor())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})
	router.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.GetMetrics())
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/auth/login", handlers.Login(cfg.AdminEmail, cfg.AdminPasswordHash))

		jobsGroup := apiGroup.Group("/jobs")
		jobsGroup.POST("", handlers.CreateJob)
		jobsGroup.GET("/:id", handlers.GetJob)
		jobsGroup.GET("/:id/ws", handlers.StreamJob)

		adminJobs := apiGroup.Group("/jobs")
		adminJobs.Use(authMiddleware.RequireAuth())
		adminJobs.GET("", handlers.ListJobs)
		adminJobs.DELETE("/:id", handlers.CancelJob)

		apiGroup.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Not Found",
				"message": "API endpoint does not exist",
				"path":    c.Request.URL.Path,
			})
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := jobStore.Close(); err != nil {
		log.Printf("Error closing job store: %v", err)
	}

	log.Println("Server exited")
}

// openStore connects to Postgres/Redis and initializes the jobs schema,
// mirroring the teacher's database-bring-up sequence in cmd/server/main.go.
func openStore(cfg *config.Config) (store.JobStore, error) {
	s, err := store.New(cfg.DatabaseURL, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	if err := s.InitSchema(); err != nil {
		return nil, err
	}
	log.Println("Database connected and schema initialized")
	return s, nil
}
