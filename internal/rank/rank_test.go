package rank

import (
	"testing"

	"github.com/ddefia/defiav1/internal/model"
)

func TestTopOrdersDescending(t *testing.T) {
	posts := []model.Post{
		{Title: "a", InteractionsTotal: 10},
		{Title: "b", InteractionsTotal: 500},
		{Title: "c", InteractionsTotal: 42},
		{Title: "d", InteractionsTotal: 7},
	}
	got := Top(posts, 3, func(p model.Post) float64 { return float64(p.InteractionsTotal) })
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].InteractionsTotal < got[i].InteractionsTotal {
			t.Errorf("order violated at %d: %d < %d", i, got[i-1].InteractionsTotal, got[i].InteractionsTotal)
		}
	}
	if got[0].Title != "b" {
		t.Errorf("expected b first, got %q", got[0].Title)
	}
}

func TestTopKeepsTieOrder(t *testing.T) {
	posts := []model.Post{
		{Title: "first", InteractionsTotal: 5},
		{Title: "second", InteractionsTotal: 5},
		{Title: "third", InteractionsTotal: 5},
	}
	got := Top(posts, 0, func(p model.Post) float64 { return float64(p.InteractionsTotal) })
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("tie order broken at %d: want %q got %q", i, w, got[i].Title)
		}
	}
}

func TestTopIsIdempotent(t *testing.T) {
	posts := []model.Post{
		{Title: "a", InteractionsTotal: 3},
		{Title: "b", InteractionsTotal: 9},
		{Title: "c", InteractionsTotal: 1},
	}
	key := func(p model.Post) float64 { return float64(p.InteractionsTotal) }
	once := Top(posts, 0, key)
	twice := Top(once, 0, key)
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("re-ranking changed order at %d: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestTopDoesNotMutateInput(t *testing.T) {
	posts := []model.Post{
		{Title: "low", InteractionsTotal: 1},
		{Title: "high", InteractionsTotal: 100},
	}
	_ = Top(posts, 1, func(p model.Post) float64 { return float64(p.InteractionsTotal) })
	if posts[0].Title != "low" || posts[1].Title != "high" {
		t.Errorf("input slice mutated: %+v", posts)
	}
}

func TestTopHandlesShortAndEmptyInput(t *testing.T) {
	key := func(p model.Post) float64 { return float64(p.InteractionsTotal) }
	if got := Top([]model.Post{}, 5, key); len(got) != 0 {
		t.Errorf("expected empty result, got %d items", len(got))
	}
	two := []model.Post{{Title: "a"}, {Title: "b"}}
	if got := Top(two, 5, key); len(got) != 2 {
		t.Errorf("expected 2 items when fewer than n, got %d", len(got))
	}
}

func TestTopAscendingUsesSentinelForUnranked(t *testing.T) {
	coins := []model.Coin{
		{Symbol: "AAA", AltRank: 12},
		{Symbol: "BBB", AltRank: 0}, // feed omitted the rank
		{Symbol: "CCC", AltRank: 3},
		{Symbol: "DDD", AltRank: 7},
	}
	got := TopAscending(coins, 0, func(c model.Coin) float64 { return float64(c.RankableAltRank()) })
	want := []string{"CCC", "DDD", "AAA", "BBB"}
	for i, w := range want {
		if got[i].Symbol != w {
			t.Errorf("position %d: want %s got %s", i, w, got[i].Symbol)
		}
	}
}

func TestExclude(t *testing.T) {
	ignored := map[string]bool{"BTC": true, "ETH": true}
	coins := []model.Coin{
		{Symbol: "BTC"},
		{Symbol: "XYZ"},
		{Symbol: "ETH"},
		{Symbol: "ABC"},
	}
	got := Exclude(coins, func(c model.Coin) bool { return ignored[c.Symbol] })
	if len(got) != 2 {
		t.Fatalf("expected 2 coins, got %d", len(got))
	}
	if got[0].Symbol != "XYZ" || got[1].Symbol != "ABC" {
		t.Errorf("unexpected survivors: %+v", got)
	}
	if len(coins) != 4 {
		t.Errorf("input mutated, len=%d", len(coins))
	}
}
