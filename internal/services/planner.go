package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/katasiddartha-lang/health-coach-ai/internal/logger"
	model "github.com/katasiddartha-lang/health-coach-ai/internal/models"
	"github.com/katasiddartha-lang/health-coach-ai/internal/provider/huggingface"
)

// Catalog is the exercise source the planner samples candidates from.
type Catalog interface {
	Search(ctx context.Context, query string, limit int) []model.Exercise
}

const planPromptTemplate = `You are a fitness coach AI. Based on the user's recent activity logs, create a personalized workout plan for tomorrow.

Recent Activity (last 7 days):
%s

Available Exercises:
%s

Create a balanced workout plan with:
1. Warm-up (5-10 minutes)
2. Main workout (30-40 minutes) - select 5-7 exercises from the list above
3. Cool-down (5-10 minutes)

Format your response as:
### Workout Plan for Tomorrow
[Brief motivational message]

### Warm-up:
[List warm-up exercises]

### Main Workout:
[List main exercises with sets/reps/duration]

### Cool-down:
[List cool-down exercises]

### Tips:
[Additional tips based on their recent activity]
`

// FallbackRecommendation replaces the model output when plan generation
// fails with a Degrade policy.
const FallbackRecommendation = "Please maintain regular physical activity. Aim for 30 minutes of moderate exercise daily."

const (
	recentLogsWindow   = 7
	candidateExercises = 15
	planExercises      = 7
)

// Plan is the generator result the handler persists.
type Plan struct {
	Recommendations string
	Exercises       []model.Exercise
	Model           string
}

// Planner assembles a prompt from recent daily logs plus catalog exercises
// and asks the inference model for a structured free-text plan.
type Planner struct {
	generator Generator
	catalog   Catalog
	model     string
	policy    Policy
}

func NewPlanner(generator Generator, catalog Catalog, model string, policy Policy) *Planner {
	return &Planner{generator: generator, catalog: catalog, model: model, policy: policy}
}

// Generate builds a plan from up to seven most-recent logs. Under the
// Degrade policy (the default wiring) this never returns an error: any
// failure yields the static fallback plus a fresh catalog fetch.
func (p *Planner) Generate(ctx context.Context, apiKey string, logs []model.DailyLog) (Plan, error) {
	exercises := p.catalog.Search(ctx, "", candidateExercises)

	plan, err := p.generate(ctx, apiKey, logs, exercises)
	if err != nil {
		if p.policy == Degrade {
			logger.Warning("workout plan generation failed, using fallback: %v", err)
			return Plan{
				Recommendations: FallbackRecommendation,
				Exercises:       p.catalog.Search(ctx, "", planExercises),
				Model:           "fallback",
			}, nil
		}
		return Plan{}, err
	}
	return plan, nil
}

func (p *Planner) generate(ctx context.Context, apiKey string, logs []model.DailyLog, exercises []model.Exercise) (Plan, error) {
	if len(logs) > recentLogsWindow {
		logs = logs[:recentLogsWindow]
	}
	summary := make([]string, 0, len(logs))
	for _, log := range logs {
		summary = append(summary, fmt.Sprintf("Date: %s, Water: %s", log.LogDate, log.WaterIntake))
	}

	candidates := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		desc := ex.Description
		if desc == "" {
			desc = "No description"
		}
		if len(desc) > 100 {
			desc = desc[:100]
		}
		candidates = append(candidates, fmt.Sprintf("- %s: %s", ex.Name, desc))
	}

	prompt := fmt.Sprintf(planPromptTemplate,
		strings.Join(summary, "\n"),
		strings.Join(candidates, "\n"),
	)

	text, err := p.generator.Generate(ctx, apiKey, prompt, huggingface.GenerationSpec{
		Model:        p.model,
		MaxNewTokens: 800,
		Temperature:  0.8,
	})
	if err != nil {
		return Plan{}, fmt.Errorf("workout plan generation failed: %w", err)
	}

	if len(exercises) > planExercises {
		exercises = exercises[:planExercises]
	}
	return Plan{Recommendations: text, Exercises: exercises, Model: p.model}, nil
}
