// Package digest assembles the terminal reports: it fetches from the
// LunarCrush feed, ranks and filters client-side, and renders through
// the report templates. Fetch failures are logged and degrade the
// report to its no-data branches; builders only return an error when
// rendering itself fails.
package digest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ddefia/defiav1/internal/insight"
	"github.com/ddefia/defiav1/internal/lunarcrush"
	"github.com/ddefia/defiav1/internal/model"
	"github.com/ddefia/defiav1/internal/rank"
	"github.com/ddefia/defiav1/internal/report"
)

const (
	discoveryTopics     = 5
	discoveryCategories = 5
	deepDiveHeadlines   = 3
	snapshotTopics      = 10
	snapshotCategories  = 5
	snapshotCoins       = 5
)

// Messages shown instead of a report when the category news feed is
// unavailable or empty.
const (
	NoDataMessage  = "No valid data found to analyze."
	NoPostsMessage = "No posts found."
)

// Builder holds the dependencies shared by the report builders.
// Analyst may be nil; analysis then falls back to its fixed message.
type Builder struct {
	Feed    *lunarcrush.Client
	Analyst insight.Analyst
}

// Brief builds the daily intelligence brief for a category: category
// news ranked by total interactions, an AI narrative over the ranked
// list, and the top stories.
func (b *Builder) Brief(ctx context.Context, category string, topN int, now time.Time) (string, error) {
	posts, err := b.Feed.CategoryNews(ctx, category)
	if err != nil {
		slog.Error("digest: fetch category news failed", "category", category, "err", err)
		return NoDataMessage + "\n", nil
	}
	if len(posts) == 0 {
		return NoPostsMessage + "\n", nil
	}

	ranked := rank.Top(posts, 0, func(p model.Post) float64 { return float64(p.InteractionsTotal) })
	analysis := insight.Analyze(ctx, b.Analyst, ranked)

	stories := make([]report.Story, 0, topN)
	for i, p := range ranked {
		if topN > 0 && i >= topN {
			break
		}
		title := p.Title
		if title == "" {
			title = "No Title"
		}
		creator := p.Creator
		if creator == "" {
			creator = "Unknown"
		}
		stories = append(stories, report.Story{
			Rank:         i + 1,
			Title:        title,
			Creator:      creator,
			Interactions: p.InteractionsTotal,
		})
	}
	return report.RenderBrief(report.Brief{
		Date:     now.Format("2006-01-02"),
		Analysis: analysis,
		Stories:  stories,
	})
}

// Discovery builds the trend discovery report: top topics by 24h
// interactions with a deep dive into the leader (whatsup summary plus
// latest news), then top categories with news for the leading one.
func (b *Builder) Discovery(ctx context.Context) (string, error) {
	var d report.Discovery

	topics, err := b.Feed.TopicsList(ctx)
	if err != nil {
		slog.Error("digest: fetch topics failed", "err", err)
		topics = nil
	}
	d.TopicCount = len(topics)
	top := rank.Top(topics, discoveryTopics, func(t model.Topic) float64 { return float64(t.Interactions24h) })
	for _, t := range top {
		d.Topics = append(d.Topics, report.TopicLine{Topic: t.Topic, Volume: t.SocialVolume24h, Interactions: t.Interactions24h})
	}
	if len(top) > 0 {
		d.StarTopic = top[0].Topic
		whatsup, err := b.Feed.TopicWhatsup(ctx, d.StarTopic)
		if err != nil {
			// speculative endpoint, absence is expected
			slog.Warn("digest: whatsup unavailable", "topic", d.StarTopic, "err", err)
		}
		d.Whatsup = whatsup

		news, err := b.Feed.TopicNews(ctx, d.StarTopic)
		if err != nil {
			slog.Error("digest: fetch topic news failed", "topic", d.StarTopic, "err", err)
		}
		for i, n := range news {
			if i >= deepDiveHeadlines {
				break
			}
			d.TopicNews = append(d.TopicNews, report.Headline{Rank: i + 1, Title: n.Title, Creator: n.Creator})
		}
	}

	cats, err := b.Feed.CategoriesList(ctx)
	if err != nil {
		slog.Error("digest: fetch categories failed", "err", err)
		cats = nil
	}
	topCats := rank.Top(cats, discoveryCategories, func(c model.Category) float64 { return float64(c.Interactions24h) })
	for _, c := range topCats {
		d.Categories = append(d.Categories, report.CategoryLine{Category: c.Category, Name: c.Name, Interactions: c.Interactions24h})
	}
	if len(topCats) > 0 {
		d.StarCategory = topCats[0].Category
		news, err := b.Feed.CategoryNews(ctx, d.StarCategory)
		if err != nil {
			slog.Error("digest: fetch category news failed", "category", d.StarCategory, "err", err)
		}
		for i, n := range news {
			if i >= deepDiveHeadlines {
				break
			}
			d.CategoryNews = append(d.CategoryNews, report.Headline{Rank: i + 1, Title: n.Title})
		}
	}

	return report.RenderDiscovery(d)
}

// Snapshot builds the raw trends snapshot: topics and categories in
// feed order plus the altcoin leaderboard by ascending AltRank with
// the configured majors removed.
func (b *Builder) Snapshot(ctx context.Context, ignoredSymbols []string) (string, error) {
	var s report.Snapshot

	topics, err := b.Feed.TopicsList(ctx)
	if err != nil {
		slog.Error("digest: fetch topics failed", "err", err)
		topics = nil
	}
	s.TopicCount = len(topics)
	for i, t := range topics {
		if i >= snapshotTopics {
			break
		}
		s.Topics = append(s.Topics, report.TopicLine{Topic: idOrNA(t.Topic), Volume: t.SocialVolume24h})
	}

	cats, err := b.Feed.CategoriesList(ctx)
	if err != nil {
		slog.Error("digest: fetch categories failed", "err", err)
		cats = nil
	}
	s.CategoryCount = len(cats)
	for i, c := range cats {
		if i >= snapshotCategories {
			break
		}
		s.Categories = append(s.Categories, report.CategoryLine{Category: idOrNA(c.Category), Interactions: c.Interactions24h})
	}

	coins, err := b.Feed.CoinsList(ctx)
	if err != nil {
		slog.Error("digest: fetch coins failed", "err", err)
		coins = nil
	}
	ignored := make(map[string]bool, len(ignoredSymbols))
	for _, sym := range ignoredSymbols {
		ignored[strings.ToUpper(sym)] = true
	}
	others := rank.Exclude(coins, func(c model.Coin) bool { return ignored[strings.ToUpper(c.Symbol)] })
	leaders := rank.TopAscending(others, snapshotCoins, func(c model.Coin) float64 { return float64(c.RankableAltRank()) })
	for _, c := range leaders {
		s.Coins = append(s.Coins, report.CoinLine{Name: c.Name, Symbol: c.Symbol, AltRank: c.AltRank, Volume: c.SocialVolume24h})
	}

	return report.RenderSnapshot(s)
}

// verifyChecks are the fixed endpoint probes run by the verification
// report, covering the read paths the other reports depend on.
var verifyChecks = []struct {
	name string
	path string
}{
	{"Global Market Trends (Pulse)", "/coins/list/v1"},
	{"Context Posts (ETH)", "/creator/twitter/ETH/posts/v1"},
	{"Category News (Cryptocurrencies)", "/category/cryptocurrencies/news/v1"},
}

// sampleFields is the whitelist of keys shown from a probe's first
// item to prove data quality without dumping whole records.
var sampleFields = []string{"id", "name", "symbol", "post_title", "interactions_total", "interactions_24h"}

// Verification probes the fixed endpoints and reports one block per
// check. maskedKey is shown as-is; pass it through config.Mask.
func (b *Builder) Verification(ctx context.Context, maskedKey string) (string, error) {
	v := report.Verification{MaskedKey: maskedKey}
	for _, chk := range verifyChecks {
		line := report.ProbeLine{Name: chk.name, URL: b.Feed.EndpointURL(chk.path)}
		res, err := b.Feed.Probe(ctx, chk.path)
		if err != nil {
			slog.Error("digest: probe failed", "name", chk.name, "err", err)
			line.Err = err.Error()
			v.Probes = append(v.Probes, line)
			continue
		}
		line.Status = res.Status
		line.OK = res.Status == http.StatusOK
		line.Items = res.Items
		line.Body = res.Body
		if line.OK && res.First != nil {
			line.Sample = sampleJSON(res.First)
		}
		v.Probes = append(v.Probes, line)
	}
	return report.RenderVerification(v)
}

func sampleJSON(item map[string]any) string {
	sample := make(map[string]any)
	for _, k := range sampleFields {
		if v, ok := item[k]; ok {
			sample[k] = v
		}
	}
	b, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

func idOrNA(id string) string {
	if id == "" {
		return "N/A"
	}
	return id
}
