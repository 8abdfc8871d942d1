// Package insight turns ranked news posts into a short market
// narrative using a generative model. Analysis is best-effort: report
// rendering never fails because a model call did.
package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ddefia/defiav1/internal/config"
	"github.com/ddefia/defiav1/internal/model"
)

// FallbackAnalysis is printed when no analysis could be produced.
const FallbackAnalysis = "Could not generate AI analysis."

// Analyst produces a market narrative from a set of news posts.
type Analyst interface {
	AnalyzeNews(ctx context.Context, posts []model.Post) (string, error)
}

// New builds the configured Analyst. It returns an error when the
// provider is unknown or its API key is missing.
func New(cfg config.InsightConfig) (Analyst, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "gemini":
		if cfg.Gemini.APIKey == "" {
			return nil, fmt.Errorf("insight: gemini api key not configured")
		}
		return NewGemini(cfg.Gemini), nil
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("insight: openai api key not configured")
		}
		return NewOpenAI(cfg.OpenAI), nil
	default:
		return nil, fmt.Errorf("insight: unknown provider %q", cfg.Provider)
	}
}

// Analyze runs the analyst over posts and always returns printable
// text: a nil analyst, a failed call or an empty response are logged
// and replaced with FallbackAnalysis.
func Analyze(ctx context.Context, a Analyst, posts []model.Post) string {
	if a == nil {
		slog.Warn("insight: no analyst configured, skipping analysis")
		return FallbackAnalysis
	}
	out, err := a.AnalyzeNews(ctx, posts)
	if err != nil {
		slog.Error("insight: analysis failed", "err", err)
		return FallbackAnalysis
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return FallbackAnalysis
	}
	return out
}
