package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alvindra/resume-match/internal/config"
	"alvindra/resume-match/internal/handlers"
	"alvindra/resume-match/internal/services"
	"alvindra/resume-match/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize session store
	store := session.NewStore(cfg.Session.TTL, cfg.Session.CleanupInterval)
	store.Start()
	log.Println("✅ Session store started successfully")

	// Initialize services
	extractor := services.NewTextExtractor()

	parser, err := services.NewResponseParser()
	if err != nil {
		log.Fatalf("❌ Failed to initialize response parser: %v", err)
	}
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiClient, err := services.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize analyzer
	analyzer := services.NewAnalyzerService(geminiClient, parser)
	log.Println("✅ Analyzer service initialized")

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(store)
	uploadHandler := handlers.NewUploadHandler(store, extractor, cfg.Upload.MaxFileSize)
	analyzeHandler := handlers.NewAnalyzeHandler(store, analyzer)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Match API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Get("/jobs", sessionHandler.HandleListJobs)
	api.Post("/sessions", sessionHandler.HandleCreateSession)
	api.Get("/sessions/:id", sessionHandler.HandleGetSession)
	api.Put("/sessions/:id/job", sessionHandler.HandleSetJob)
	api.Post("/sessions/:id/resume", uploadHandler.HandleUploadResume)
	api.Post("/sessions/:id/analyze", analyzeHandler.HandleAnalyze)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Match API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/jobs",
				"POST /api/v1/sessions",
				"GET /api/v1/sessions/:id",
				"PUT /api/v1/sessions/:id/job",
				"POST /api/v1/sessions/:id/resume",
				"POST /api/v1/sessions/:id/analyze",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		store.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
