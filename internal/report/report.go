// Package report renders the terminal reports from pre-fetched view
// data. Templates are embedded; rendering returns a string the caller
// prints as-is.
package report

import (
	"bytes"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups large counts with commas (12345 -> 12,345).
var printer = message.NewPrinter(language.English)

var funcs = template.FuncMap{
	"commas": commas,
}

func commas(n int64) string {
	return printer.Sprintf("%d", n)
}

// TopicLine is one row of a topic board.
type TopicLine struct {
	Topic        string
	Volume       int64
	Interactions int64
}

// CategoryLine is one row of a category board.
type CategoryLine struct {
	Category     string
	Name         string
	Interactions int64
}

// Headline is one numbered news line.
type Headline struct {
	Rank    int
	Title   string
	Creator string
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
