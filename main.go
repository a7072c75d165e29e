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

	"parking-backend/config"
	"parking-backend/controllers"
	"parking-backend/routes"
	"parking-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// The JWT secret signs every session token: refusing to start without it
	// beats silently signing with an empty key.
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("ERROR: JWT_SECRET environment variable is not set.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("Database connection established, migrations applied")

	// Services
	occupancyService := services.NewOccupancyService(db)
	reportService := services.NewReportService(db)
	clientService := services.NewClientService(db)
	bookingService := services.NewBookingService(db)
	parkingService := services.NewParkingService(db)
	expenseService := services.NewExpenseService(db)
	settingsService := services.NewSettingsService(db)

	// Controllers
	workspaceController := controllers.NewWorkspaceController(occupancyService, bookingService)
	reportController := controllers.NewReportController(reportService)
	clientController := controllers.NewClientController(clientService)
	parkingController := controllers.NewParkingController(parkingService)
	expenseController := controllers.NewExpenseController(expenseService)
	settingsController := controllers.NewSettingsController(settingsService)

	router := routes.SetupRouter(
		workspaceController,
		reportController,
		clientController,
		parkingController,
		expenseController,
		settingsController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
