package handler

import (
	"context"
	"net/http"

	"github.com/katasiddartha-lang/health-coach-ai/internal/database"
	model "github.com/katasiddartha-lang/health-coach-ai/internal/models"
	"github.com/katasiddartha-lang/health-coach-ai/internal/services"
	"github.com/katasiddartha-lang/health-coach-ai/internal/utils"
)

// Extractor turns a base64 PDF into page-marked text.
type Extractor interface {
	ExtractFromBase64(ctx context.Context, pdfBase64 string) (string, error)
}

// Analyzer produces the AI analysis attached to a report.
type Analyzer interface {
	Analyze(ctx context.Context, apiKey, extractedText string) (services.Analysis, error)
}

// Planner generates a workout plan from recent daily logs.
type Planner interface {
	Generate(ctx context.Context, apiKey string, logs []model.DailyLog) (services.Plan, error)
}

// Catalog searches the remote exercise database.
type Catalog interface {
	Search(ctx context.Context, query string, limit int) []model.Exercise
}

// Handler carries every collaborator the routes need. Everything is
// injected; there is no package-level state.
type Handler struct {
	store     database.Store
	extractor Extractor
	analyzer  Analyzer
	planner   Planner
	catalog   Catalog
}

func New(store database.Store, extractor Extractor, analyzer Analyzer, planner Planner, catalog Catalog) *Handler {
	return &Handler{
		store:     store,
		extractor: extractor,
		analyzer:  analyzer,
		planner:   planner,
		catalog:   catalog,
	}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]string{
		"message": "Health Coach API",
		"status":  "running",
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
