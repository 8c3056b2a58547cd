package audit

import (
	"fmt"
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

const (
	ampBoilerplate = `<style amp-boilerplate>body{-webkit-animation:-amp-start 8s steps(1,end) 0s 1 normal both;-moz-animation:-amp-start 8s steps(1,end) 0s 1 normal both;-ms-animation:-amp-start 8s steps(1,end) 0s 1 normal both;animation:-amp-start 8s steps(1,end) 0s 1 normal both}@-webkit-keyframes -amp-start{from{visibility:hidden}to{visibility:visible}}@-moz-keyframes -amp-start{from{visibility:hidden}to{visibility:visible}}@-ms-keyframes -amp-start{from{visibility:hidden}to{visibility:visible}}@-o-keyframes -amp-start{from{visibility:hidden}to{visibility:visible}}@keyframes -amp-start{from{visibility:hidden}to{visibility:visible}}</style>`
	ampNoscript    = `<noscript><style amp-boilerplate>body{-webkit-animation:none;-moz-animation:none;-ms-animation:none;animation:none}</style></noscript>`
)

// GenerateAMP produces the AMP variant of a parsed document: boilerplate
// head with the canonical link carried over, inlined custom styles, and
// img/iframe elements rewritten to their amp equivalents.
func GenerateAMP(doc *xhtml.Node) string {
	var b strings.Builder

	b.WriteString("<!doctype html>")
	b.WriteString("<html ⚡>")
	writeAMPHead(&b, doc)
	writeAMPBody(&b, doc)
	b.WriteString("</html>")

	return b.String()
}

func writeAMPHead(b *strings.Builder, doc *xhtml.Node) {
	b.WriteString("<head>")
	b.WriteString(`<meta charset="utf-8">`)
	b.WriteString(`<script async src="https://cdn.ampproject.org/v0.js"></script>`)

	if canonical := canonicalURL(doc); canonical != "" {
		fmt.Fprintf(b, `<link rel="canonical" href="%s">`, html.EscapeString(canonical))
	}

	b.WriteString(ampBoilerplate)
	b.WriteString(ampNoscript)

	var styles []string
	walk(doc, func(n *xhtml.Node) {
		if isElement(n, "style") && n.FirstChild != nil {
			styles = append(styles, n.FirstChild.Data)
		}
	})
	if len(styles) > 0 {
		b.WriteString("<style amp-custom>")
		for _, s := range styles {
			b.WriteString(s)
		}
		b.WriteString("</style>")
	}

	b.WriteString("</head>")
}

func writeAMPBody(b *strings.Builder, doc *xhtml.Node) {
	b.WriteString("<body>")

	walk(doc, func(n *xhtml.Node) {
		switch {
		case isElement(n, "img"):
			fmt.Fprintf(b, `<amp-img src="%s" width="%s" height="%s" alt="%s" layout="responsive"></amp-img>`,
				html.EscapeString(attr(n, "src")),
				html.EscapeString(attrOr(n, "width", "300")),
				html.EscapeString(attrOr(n, "height", "200")),
				html.EscapeString(attr(n, "alt")))
		case isElement(n, "iframe"):
			fmt.Fprintf(b, `<amp-iframe src="%s" width="%s" height="%s" layout="responsive" sandbox="allow-scripts allow-same-origin">`,
				html.EscapeString(attr(n, "src")),
				html.EscapeString(attrOr(n, "width", "300")),
				html.EscapeString(attrOr(n, "height", "200")))
			b.WriteString(`<amp-img layout="fill" src="placeholder.png" placeholder></amp-img>`)
			b.WriteString("</amp-iframe>")
		}
	})

	b.WriteString("</body>")
}

func attrOr(n *xhtml.Node, key, fallback string) string {
	if v := attr(n, key); v != "" {
		return v
	}
	return fallback
}
