package report

import (
	_ "embed"
	"text/template"
)

// Discovery is the view for the trend discovery report: ranked topic
// and category boards plus a deep dive into the leader of each.
type Discovery struct {
	TopicCount   int
	Topics       []TopicLine
	StarTopic    string
	Whatsup      string
	TopicNews    []Headline
	Categories   []CategoryLine
	StarCategory string
	CategoryNews []Headline
}

//go:embed discovery.tmpl
var discoveryTpl string

var discoveryCompiled = template.Must(template.New("discovery").Funcs(funcs).Parse(discoveryTpl))

// RenderDiscovery renders the trend discovery report.
func RenderDiscovery(d Discovery) (string, error) {
	return render(discoveryCompiled, d)
}
