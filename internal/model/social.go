package model

// UnrankedAltRank is the sentinel used when a coin carries no usable
// AltRank. Ranking by ascending AltRank pushes such coins last.
const UnrankedAltRank = 9999

// Topic represents a tracked social topic and its activity counters.
type Topic struct {
	Topic           string `json:"topic"`
	Title           string `json:"title"`
	SocialVolume24h int64  `json:"social_volume_24h"`
	Interactions24h int64  `json:"interactions_24h"`
}

// Category represents a topic grouping (e.g. cryptocurrencies).
type Category struct {
	Category        string `json:"category"`
	Name            string `json:"name"`
	SocialVolume24h int64  `json:"social_volume_24h"`
	Interactions24h int64  `json:"interactions_24h"`
}

// Coin represents a tracked asset with its market-attention rank.
type Coin struct {
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	AltRank         int    `json:"alt_rank"`
	SocialVolume24h int64  `json:"social_volume_24h"`
}

// RankableAltRank returns the coin's AltRank, substituting the
// unranked sentinel when the feed omitted it or reported zero.
func (c Coin) RankableAltRank() int {
	if c.AltRank <= 0 {
		return UnrankedAltRank
	}
	return c.AltRank
}

// Post represents one news or social post attached to a topic,
// category or creator.
type Post struct {
	Title             string  `json:"post_title"`
	Creator           string  `json:"creator_display_name"`
	Sentiment         float64 `json:"post_sentiment"`
	InteractionsTotal int64   `json:"interactions_total"`
}
