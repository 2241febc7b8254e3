package services

import (
	"context"
	"fmt"

	"github.com/katasiddartha-lang/health-coach-ai/internal/provider/huggingface"
)

// Generator is the inference capability the services depend on.
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string, spec huggingface.GenerationSpec) (string, error)
}

const analysisPromptTemplate = `You are a health analysis AI. Analyze the following lab report and provide:
1. A summary of all health parameters found
2. Identify which parameters are normal, high, or low
3. Provide health recommendations based on the results

Lab Report Text:
%s

Please provide a detailed analysis in the following format:
### Parameters Found:
[List all parameters with their values and units]

### Health Status:
[Indicate normal/high/low for each parameter]

### Recommendations:
[Provide specific health and lifestyle recommendations]
`

const analysisUnavailable = "Automatic analysis is currently unavailable. Please review the report with a healthcare professional."

// Analysis is the model output stored verbatim on the report.
type Analysis struct {
	Text  string
	Model string
}

// Analyzer requests a free-text health analysis of extracted report text.
type Analyzer struct {
	generator Generator
	model     string
	policy    Policy
}

func NewAnalyzer(generator Generator, model string, policy Policy) *Analyzer {
	return &Analyzer{generator: generator, model: model, policy: policy}
}

// Analyze sends the extracted text through the fixed analysis prompt. The
// response is opaque text; no parsing or structuring happens here.
func (a *Analyzer) Analyze(ctx context.Context, apiKey, extractedText string) (Analysis, error) {
	prompt := fmt.Sprintf(analysisPromptTemplate, extractedText)

	text, err := a.generator.Generate(ctx, apiKey, prompt, huggingface.GenerationSpec{
		Model:        a.model,
		MaxNewTokens: 1000,
		Temperature:  0.7,
	})
	if err != nil {
		if a.policy == Degrade {
			return Analysis{Text: analysisUnavailable, Model: "fallback"}, nil
		}
		return Analysis{}, fmt.Errorf("ai analysis failed: %w", err)
	}

	return Analysis{Text: text, Model: a.model}, nil
}
