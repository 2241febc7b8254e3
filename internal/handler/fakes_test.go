package handler_test

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/katasiddartha-lang/health-coach-ai/internal/database"
	"github.com/katasiddartha-lang/health-coach-ai/internal/handler"
	model "github.com/katasiddartha-lang/health-coach-ai/internal/models"
	"github.com/katasiddartha-lang/health-coach-ai/internal/services"
)

// Compile-time checks that the fakes satisfy the handler contracts
var (
	_ database.Store    = (*fakeStore)(nil)
	_ handler.Extractor = (*fakeExtractor)(nil)
	_ handler.Analyzer  = (*fakeAnalyzer)(nil)
	_ handler.Planner   = (*fakePlanner)(nil)
	_ handler.Catalog   = (*fakeCatalog)(nil)
)

// fakeStore is an in-memory Store keyed exactly like the real one.
type fakeStore struct {
	users   map[string]model.User
	reports map[string]model.HealthReport
	logs    []model.DailyLog
	plans   []model.WorkoutPlan
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   map[string]model.User{},
		reports: map[string]model.HealthReport{},
	}
}

func (s *fakeStore) CreateUser(ctx context.Context, user *model.User) error {
	s.users[user.UserID] = *user
	return nil
}

func (s *fakeStore) GetUser(ctx context.Context, userID string) (*model.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &u, nil
}

func (s *fakeStore) ListUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeStore) CreateReport(ctx context.Context, report *model.HealthReport) error {
	s.reports[report.ReportID] = *report
	return nil
}

func (s *fakeStore) GetReport(ctx context.Context, reportID string) (*model.HealthReport, error) {
	r, ok := s.reports[reportID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &r, nil
}

func (s *fakeStore) AttachAnalysis(ctx context.Context, reportID, analysis string, params map[string]interface{}) error {
	r, ok := s.reports[reportID]
	if !ok {
		return database.ErrNotFound
	}
	r.AIAnalysis = &analysis
	r.ParametersExtracted = params
	s.reports[reportID] = r
	return nil
}

func (s *fakeStore) ListReportsByUser(ctx context.Context, userID string) ([]model.HealthReport, error) {
	var out []model.HealthReport
	for _, r := range s.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeStore) CreateDailyLog(ctx context.Context, log *model.DailyLog) error {
	s.logs = append(s.logs, *log)
	return nil
}

func (s *fakeStore) ListDailyLogs(ctx context.Context, userID string, limit int) ([]model.DailyLog, error) {
	var out []model.DailyLog
	for _, l := range s.logs {
		if l.UserID == userID && len(out) < limit {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeStore) CreateWorkoutPlan(ctx context.Context, plan *model.WorkoutPlan) error {
	s.plans = append(s.plans, *plan)
	return nil
}

func (s *fakeStore) ListWorkoutPlans(ctx context.Context, userID string, limit int) ([]model.WorkoutPlan, error) {
	var out []model.WorkoutPlan
	for _, p := range s.plans {
		if p.UserID == userID && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeExtractor struct {
	ExtractFunc      func(ctx context.Context, pdfBase64 string) (string, error)
	ExtractCallCount int32
}

func (f *fakeExtractor) ExtractFromBase64(ctx context.Context, pdfBase64 string) (string, error) {
	atomic.AddInt32(&f.ExtractCallCount, 1)
	if f.ExtractFunc != nil {
		return f.ExtractFunc(ctx, pdfBase64)
	}
	return "--- Page 1 ---\nHemoglobin 13.5", nil
}

type fakeAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, apiKey, extractedText string) (services.Analysis, error)
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, apiKey, extractedText string) (services.Analysis, error) {
	if f.AnalyzeFunc != nil {
		return f.AnalyzeFunc(ctx, apiKey, extractedText)
	}
	return services.Analysis{}, errors.New("AnalyzeFunc not implemented in fake")
}

type fakePlanner struct {
	GenerateFunc func(ctx context.Context, apiKey string, logs []model.DailyLog) (services.Plan, error)
}

func (f *fakePlanner) Generate(ctx context.Context, apiKey string, logs []model.DailyLog) (services.Plan, error) {
	if f.GenerateFunc != nil {
		return f.GenerateFunc(ctx, apiKey, logs)
	}
	return services.Plan{
		Recommendations: services.FallbackRecommendation,
		Exercises:       []model.Exercise{},
		Model:           "fallback",
	}, nil
}

type fakeCatalog struct {
	SearchFunc func(ctx context.Context, query string, limit int) []model.Exercise
}

func (f *fakeCatalog) Search(ctx context.Context, query string, limit int) []model.Exercise {
	if f.SearchFunc != nil {
		return f.SearchFunc(ctx, query, limit)
	}
	return []model.Exercise{}
}
