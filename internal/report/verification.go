package report

import (
	_ "embed"
	"text/template"
)

// ProbeLine is the outcome of one endpoint check.
type ProbeLine struct {
	Name   string
	URL    string
	OK     bool
	Status int
	Items  int
	Sample string // pretty-printed JSON of whitelisted fields
	Body   string // response snippet shown on API failure
	Err    string // transport/decode failure
}

// Verification is the view for the integration diagnostic report.
type Verification struct {
	MaskedKey string
	Probes    []ProbeLine
}

//go:embed verification.tmpl
var verificationTpl string

var verificationCompiled = template.Must(template.New("verification").Funcs(funcs).Parse(verificationTpl))

// RenderVerification renders the integration diagnostic report.
func RenderVerification(v Verification) (string, error) {
	return render(verificationCompiled, v)
}
