package insight

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ddefia/defiav1/internal/model"
)

func TestBuildNewsPromptInterpolatesPostFields(t *testing.T) {
	posts := []model.Post{
		{Title: "ETF approved", Creator: "NewsDesk", Sentiment: 3.4, InteractionsTotal: 98765},
	}
	got := BuildNewsPrompt(posts)

	wantLine := "- ETF approved (Source: NewsDesk, Sentiment: 3.4, Interactions: 98765)"
	if !strings.Contains(got, wantLine) {
		t.Errorf("prompt missing post line %q\ngot:\n%s", wantLine, got)
	}
	if !strings.Contains(got, "Chief Marketing Officer") {
		t.Errorf("prompt missing role framing:\n%s", got)
	}
	if !strings.Contains(got, "DATA:") || !strings.Contains(got, "YOUR TASK:") {
		t.Errorf("prompt missing sections:\n%s", got)
	}
}

func TestBuildNewsPromptCapsPosts(t *testing.T) {
	posts := make([]model.Post, 0, 18)
	for i := 0; i < 18; i++ {
		posts = append(posts, model.Post{Title: fmt.Sprintf("story %d", i)})
	}
	got := BuildNewsPrompt(posts)
	// every bullet, the first included, follows a newline
	if n := strings.Count(got, "\n- "); n != maxPromptPosts {
		t.Errorf("expected %d post lines, got %d", maxPromptPosts, n)
	}
	if strings.Contains(got, "story 15") {
		t.Errorf("post beyond the cap leaked into prompt")
	}
	if !strings.Contains(got, "story 14") {
		t.Errorf("last post under the cap missing from prompt")
	}
}

func TestBuildNewsPromptKeepsInputOrder(t *testing.T) {
	posts := []model.Post{
		{Title: "first"},
		{Title: "second"},
		{Title: "third"},
	}
	got := BuildNewsPrompt(posts)
	iFirst := strings.Index(got, "- first")
	iSecond := strings.Index(got, "- second")
	iThird := strings.Index(got, "- third")
	if iFirst < 0 || iSecond < 0 || iThird < 0 {
		t.Fatalf("missing post lines:\n%s", got)
	}
	if !(iFirst < iSecond && iSecond < iThird) {
		t.Errorf("post order changed: %d %d %d", iFirst, iSecond, iThird)
	}
}
