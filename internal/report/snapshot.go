package report

import (
	_ "embed"
	"text/template"
)

// CoinLine is one row of the altcoin leaderboard.
type CoinLine struct {
	Name    string
	Symbol  string
	AltRank int
	Volume  int64
}

// Snapshot is the view for the raw trends snapshot: topics and
// categories in feed order plus the filtered altcoin board.
type Snapshot struct {
	TopicCount    int
	Topics        []TopicLine
	CategoryCount int
	Categories    []CategoryLine
	Coins         []CoinLine
}

//go:embed snapshot.tmpl
var snapshotTpl string

var snapshotCompiled = template.Must(template.New("snapshot").Funcs(funcs).Parse(snapshotTpl))

// RenderSnapshot renders the trends snapshot report.
func RenderSnapshot(s Snapshot) (string, error) {
	return render(snapshotCompiled, s)
}
