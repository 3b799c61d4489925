package renderer

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
table { border-collapse: collapse; font-family: monospace; }
th, td { border: 1px solid #ccc; padding: 2px 8px; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// HTML converts a markdown report into a standalone HTML page.
func HTML(title, markdown string) (string, error) {
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := converter.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("cannot convert markdown to html: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, htmlHeader, html.EscapeString(title))
	page.Write(body.Bytes())
	page.WriteString(htmlFooter)
	return page.String(), nil
}
