package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"autoshop-backend/config"
	"autoshop-backend/controllers"
	"autoshop-backend/routes"
	"autoshop-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Required signing secret (fatal if missing)
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue tokens.")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Optional aggregate cache
	cache := config.NewRedisClient()
	if cache == nil {
		log.Println("⚠️  Redis not configured or unreachable; aggregate caching disabled")
	} else {
		log.Println("✅ Redis connected.")
	}

	// Initialize services
	bookingService := services.NewBookingService(db)
	customerService := services.NewCustomerService(db, cache)
	financeService := services.NewFinanceService(db)
	profileService := services.NewProfileService(db)
	catalogService := services.NewCatalogService(db)
	board := services.NewAppointmentBoard()

	// Initialize controllers
	authController := controllers.NewAuthController([]byte(jwtSecret))
	bookingController := controllers.NewBookingController(bookingService)
	customerController := controllers.NewCustomerController(customerService)
	financeController := controllers.NewFinanceController(financeService)
	appointmentController := controllers.NewAppointmentController(board)
	profileController := controllers.NewProfileController(profileService)
	catalogController := controllers.NewCatalogController(catalogService)
	uploadController := controllers.NewUploadController()

	// Build router
	router := routes.SetupRouter(
		authController,
		bookingController,
		customerController,
		financeController,
		appointmentController,
		profileController,
		catalogController,
		uploadController,
		[]byte(jwtSecret),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if cache != nil {
		_ = cache.Close()
	}

	log.Println("✅ Server stopped gracefully")
}
