package sampledata

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
)

var markdown = goldmark.New()

// toHTML renders generated text as an HTML fragment for article bodies. The
// lorem corpus is plain prose with no Markdown syntax, so the output is always
// a single paragraph of the same words.
func toHTML(text string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return "<p>" + html.EscapeString(text) + "</p>"
	}
	return strings.TrimSpace(buf.String())
}
