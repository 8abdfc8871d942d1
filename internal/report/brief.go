package report

import (
	_ "embed"
	"text/template"
)

// Story is one ranked news item in the intelligence brief.
type Story struct {
	Rank         int
	Title        string
	Creator      string
	Interactions int64
}

// Brief is the view for the daily intelligence brief.
type Brief struct {
	Date     string // YYYY-MM-DD
	Analysis string
	Stories  []Story
}

//go:embed brief.tmpl
var briefTpl string

var briefCompiled = template.Must(template.New("brief").Funcs(funcs).Parse(briefTpl))

// RenderBrief renders the intelligence brief.
func RenderBrief(b Brief) (string, error) {
	return render(briefCompiled, b)
}
