package main

import (
	"net/http"
	"os"

	"github.com/katasiddartha-lang/health-coach-ai/internal/api"
	"github.com/katasiddartha-lang/health-coach-ai/internal/config"
	"github.com/katasiddartha-lang/health-coach-ai/internal/database"
	"github.com/katasiddartha-lang/health-coach-ai/internal/handler"
	"github.com/katasiddartha-lang/health-coach-ai/internal/logger"
	"github.com/katasiddartha-lang/health-coach-ai/internal/middleware"
	"github.com/katasiddartha-lang/health-coach-ai/internal/ocr"
	"github.com/katasiddartha-lang/health-coach-ai/internal/provider/huggingface"
	"github.com/katasiddartha-lang/health-coach-ai/internal/provider/wger"
	"github.com/katasiddartha-lang/health-coach-ai/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Collaborators
	extractor := ocr.NewExtractor(ocr.NewTesseract(cfg.OCRLanguage))
	inference := &huggingface.Client{BaseURL: cfg.HFBaseURL}
	catalog := &wger.Client{BaseURL: cfg.WgerBaseURL}

	analyzer := services.NewAnalyzer(inference, cfg.HFModel, services.Propagate)
	planner := services.NewPlanner(inference, catalog, cfg.HFModel, services.Degrade)

	h := handler.New(db, extractor, analyzer, planner, catalog)

	// Initialize routes
	router := api.SetupRouter(h)

	// Wrap router with CORS middleware
	srv := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
