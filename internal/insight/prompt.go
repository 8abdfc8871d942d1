package insight

import (
	"fmt"
	"strings"

	"github.com/ddefia/defiav1/internal/model"
)

// maxPromptPosts caps how many posts feed the prompt; beyond that the
// extra headlines add tokens without adding signal.
const maxPromptPosts = 15

const analystPromptFormat = `You are a Chief Marketing Officer (CMO) for a top crypto protocol.
Analyze the following recent news headlines and social metrics.

DATA:
%s

YOUR TASK:
1. Identify the single most important narrative driving the market right now.
2. Connect the dots between 2-3 seemingly separate stories.
3. Provide a brief "CMO Take strategy" on how we should position our brand today given this news.

Keep it concise, punchy, and actionable. No fluff.`

// BuildNewsPrompt renders the analyst prompt for a set of posts,
// using at most maxPromptPosts of them in the order given.
func BuildNewsPrompt(posts []model.Post) string {
	b := &strings.Builder{}
	for i, p := range posts {
		if i >= maxPromptPosts {
			break
		}
		fmt.Fprintf(b, "- %s (Source: %s, Sentiment: %v, Interactions: %d)\n", p.Title, p.Creator, p.Sentiment, p.InteractionsTotal)
	}
	return fmt.Sprintf(analystPromptFormat, strings.TrimSuffix(b.String(), "\n"))
}
