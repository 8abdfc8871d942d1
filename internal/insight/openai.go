package insight

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ddefia/defiav1/internal/config"
	"github.com/ddefia/defiav1/internal/model"
)

// OpenAIAnalyst implements Analyst using an OpenAI-compatible Chat
// Completions API.
type OpenAIAnalyst struct {
	client *openai.Client
	model  string
}

func NewOpenAI(cfg config.OpenAIConfig) *OpenAIAnalyst {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIAnalyst{client: c, model: model}
}

func (o *OpenAIAnalyst) AnalyzeNews(ctx context.Context, posts []model.Post) (string, error) {
	// Default timeout guard, if caller didn't set one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 60*time.Second)
		defer cancel()
	}
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildNewsPrompt(posts)},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
