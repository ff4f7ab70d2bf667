package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ibrahima96/pacao/internal/ai"
	"github.com/Ibrahima96/pacao/internal/config"
	"github.com/Ibrahima96/pacao/internal/database"
	"github.com/Ibrahima96/pacao/internal/handler"
	"github.com/Ibrahima96/pacao/internal/middleware"
	"github.com/Ibrahima96/pacao/internal/repository"
	"github.com/Ibrahima96/pacao/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.Load()

	// Database is optional: without one the site serves its built-in
	// content and the dashboard stays disabled.
	var db *pgxpool.Pool
	var stores handler.Stores
	if cfg.DatabaseConfigured() {
		var err error
		db, err = database.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := database.RunMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations applied successfully")

		stores = handler.Stores{
			Services:     repository.NewServiceRepository(db),
			Gallery:      repository.NewGalleryRepository(db),
			Testimonials: repository.NewTestimonialRepository(db),
			SiteContent:  repository.NewSiteContentRepository(db),
		}
	} else {
		log.Println("DATABASE_URL not set, serving fallback content only")
	}

	// Storage
	storage, err := service.NewStorageService(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("Failed to init image storage: %v", err)
	}

	// Assistant
	resolver := ai.NewResolver(ai.ResolverConfig{
		GeminiAPIKey: cfg.GeminiAPIKey,
		GroqAPIKey:   cfg.GroqAPIKey,
		MetaAPIKey:   cfg.MetaAPIKey,
		Preference:   cfg.PreferredAI,
	})
	if resolver.Available() {
		log.Printf("Assistant enabled (provider: %s)", resolver.ActiveName())
	} else {
		log.Println("No AI credentials configured, assistant will reply with a fixed notice")
	}

	transcripts := service.NewTranscriptStore(30 * time.Minute)
	assistantSvc := service.NewAssistantService(resolver, transcripts)
	orderSvc := service.NewOrderService(cfg.WhatsAppNumber)
	hub := service.NewHub()

	// Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  30 * time.Second,
		BodyLimit:    6 * 1024 * 1024, // image uploads top out at 5MB
	})

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// Uploaded images
	app.Static("/images", storage.Dir())

	// Health
	healthH := handler.NewHealthHandler(db, hub)
	app.Get("/health", healthH.Health)
	app.Get("/ready", healthH.Ready)

	// API v1
	v1 := app.Group("/api/v1")

	// Public content
	publicH := handler.NewPublicHandler(stores)
	content := v1.Group("/content")
	content.Get("/services", publicH.Services)
	content.Get("/gallery", publicH.Gallery)
	content.Get("/testimonials", publicH.Testimonials)
	content.Get("/site", publicH.SiteContent)

	// Assistant
	assistantH := handler.NewAssistantHandler(assistantSvc)
	assistant := v1.Group("/assistant")
	assistant.Post("/ask", middleware.RateLimit(20, time.Minute), assistantH.Ask)
	assistant.Get("/history", assistantH.History)
	assistant.Delete("/history", assistantH.Clear)

	// Orders
	orderH := handler.NewOrderHandler(orderSvc, stores.SiteContent)
	v1.Post("/orders/link", middleware.RateLimit(30, time.Minute), orderH.BuildLink)

	// Auth + admin need the database
	if db != nil {
		adminRepo := repository.NewAdminRepository(db)
		sessionRepo := repository.NewSessionRepository(db)
		authSvc := service.NewAuthService(adminRepo, sessionRepo, cfg.JWTSecret)

		if err := authSvc.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("Failed to bootstrap admin account: %v", err)
		}
		if err := sessionRepo.CleanupExpired(context.Background()); err != nil {
			log.Printf("Expired session cleanup failed: %v", err)
		}

		authH := handler.NewAuthHandler(authSvc)
		auth := v1.Group("/auth")
		auth.Post("/login", middleware.RateLimit(10, time.Minute), authH.Login)
		auth.Post("/refresh", middleware.RateLimit(20, time.Minute), authH.Refresh)
		auth.Post("/logout", authH.Logout)
		auth.Get("/session", middleware.Auth(cfg.JWTSecret), authH.Session)

		admin := v1.Group("/admin", middleware.Auth(cfg.JWTSecret))

		contentH := handler.NewContentHandler(stores, hub)
		admin.Post("/services", contentH.SaveService)
		admin.Get("/services/:id/draft", contentH.EditService)
		admin.Delete("/services/:id", contentH.DeleteService)
		admin.Post("/gallery", contentH.SaveGalleryItem)
		admin.Delete("/gallery/:id", contentH.DeleteGalleryItem)
		admin.Post("/testimonials", contentH.SaveTestimonial)
		admin.Delete("/testimonials/:id", contentH.DeleteTestimonial)
		admin.Post("/site-content", contentH.SaveSiteContent)
		admin.Delete("/site-content/:key", contentH.DeleteSiteContent)

		uploadH := handler.NewUploadHandler(storage)
		admin.Post("/images", uploadH.Upload)
		admin.Delete("/images", uploadH.Delete)
	}

	// Content-update push channel
	wsH := handler.NewWSHandler(hub)
	app.Get("/ws", wsH.Upgrade)

	go hub.Run()
	go transcripts.Run()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Printf("Pacao backend running on :%s (%s)", cfg.Port, cfg.Env)

	<-quit
	log.Println("Shutting down...")
	_ = app.ShutdownWithTimeout(5 * time.Second)
	hub.Shutdown()
	transcripts.Shutdown()
	log.Println("Server stopped")
}
