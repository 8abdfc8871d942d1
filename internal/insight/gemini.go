package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ddefia/defiav1/internal/config"
	"github.com/ddefia/defiav1/internal/model"
)

// GeminiAnalyst implements Analyst using the Gemini generative API.
// The SDK client is created per call; commands run one analysis per
// invocation so there is nothing to pool.
type GeminiAnalyst struct {
	apiKey string
	model  string
}

func NewGemini(cfg config.GeminiConfig) *GeminiAnalyst {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiAnalyst{apiKey: cfg.APIKey, model: model}
}

func (g *GeminiAnalyst) AnalyzeNews(ctx context.Context, posts []model.Post) (string, error) {
	// Default timeout guard, if caller didn't set one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 60*time.Second)
		defer cancel()
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("insight: gemini client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(g.model)
	m.SetTemperature(0.4)
	resp, err := m.GenerateContent(ctx, genai.Text(BuildNewsPrompt(posts)))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", nil
	}
	return string(text), nil
}
