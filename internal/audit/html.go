package audit

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// parseHTML parses a document body into a node tree
func parseHTML(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// walk visits every node in document order
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// attr returns the value of the named attribute, or ""
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isElement(n *html.Node, name string) bool {
	return n.Type == html.ElementNode && n.Data == name
}

// pageTitle returns the <title> text
func pageTitle(doc *html.Node) string {
	title := ""
	walk(doc, func(n *html.Node) {
		if title == "" && isElement(n, "title") && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
		}
	})
	return title
}

// metaDescription returns the content of <meta name="description">
func metaDescription(doc *html.Node) string {
	desc := ""
	walk(doc, func(n *html.Node) {
		if desc == "" && isElement(n, "meta") && attr(n, "name") == "description" {
			desc = attr(n, "content")
		}
	})
	return desc
}

// canonicalURL returns the href of <link rel="canonical">
func canonicalURL(doc *html.Node) string {
	canonical := ""
	walk(doc, func(n *html.Node) {
		if canonical == "" && isElement(n, "link") && attr(n, "rel") == "canonical" {
			canonical = attr(n, "href")
		}
	})
	return canonical
}

// viewportContent returns the content of <meta name="viewport">, or ""
func viewportContent(doc *html.Node) string {
	viewport := ""
	walk(doc, func(n *html.Node) {
		if viewport == "" && isElement(n, "meta") && attr(n, "name") == "viewport" {
			viewport = attr(n, "content")
		}
	})
	return viewport
}

// hasSchemaMarkup reports whether the document embeds JSON-LD structured data
func hasSchemaMarkup(doc *html.Node) bool {
	found := false
	walk(doc, func(n *html.Node) {
		if isElement(n, "script") && attr(n, "type") == "application/ld+json" {
			found = true
		}
	})
	return found
}

// textContent collects the visible text of the document, skipping
// script/style subtrees.
func textContent(doc *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return b.String()
}

// headingCounts returns the number of h1..h6 elements
func headingCounts(doc *html.Node) map[string]int {
	counts := map[string]int{"h1": 0, "h2": 0, "h3": 0, "h4": 0, "h5": 0, "h6": 0}
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, ok := counts[n.Data]; ok {
				counts[n.Data]++
			}
		}
	})
	return counts
}

// extractLinks resolves every <a href> against base and splits them into
// internal and external sets. Fragment-only and unparsable hrefs are dropped.
func extractLinks(doc *html.Node, base *url.URL) (internal, external []string) {
	walk(doc, func(n *html.Node) {
		if !isElement(n, "a") {
			return
		}
		href := attr(n, "href")
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref)
		if abs.Scheme != "http" && abs.Scheme != "https" {
			return
		}
		if abs.Host == base.Host {
			internal = append(internal, abs.String())
		} else {
			external = append(external, abs.String())
		}
	})
	return internal, external
}

// imageStats counts images and how many of them carry alt text
func imageStats(doc *html.Node) (total, withAlt int) {
	walk(doc, func(n *html.Node) {
		if isElement(n, "img") {
			total++
			if attr(n, "alt") != "" {
				withAlt++
			}
		}
	})
	return total, withAlt
}

// keywordDensity returns the relative frequency of words longer than three
// characters that make up more than 1% of the text.
func keywordDensity(text string) map[string]float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return map[string]float64{}
	}

	freq := map[string]int{}
	for _, w := range words {
		if len(w) > 3 {
			freq[w]++
		}
	}

	total := float64(len(words))
	density := map[string]float64{}
	for w, count := range freq {
		if d := float64(count) / total; d > 0.01 {
			density[w] = d
		}
	}
	return density
}
