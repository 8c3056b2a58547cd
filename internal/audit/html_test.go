package audit

import (
	"net/url"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const samplePage = `<!doctype html>
<html>
<head>
<title>Widget Shop</title>
<meta name="description" content="Widgets for every occasion">
<meta name="viewport" content="width=device-width, initial-scale=1">
<link rel="canonical" href="https://shop.example/widgets">
<script type="application/ld+json">{"@type":"Product"}</script>
</head>
<body>
<h1>Widgets</h1>
<h2>Popular</h2>
<h2>New</h2>
<p>Quality widgets delivered fast. Quality guaranteed.</p>
<a href="/about">About</a>
<a href="/contact">Contact</a>
<a href="https://partner.example/deals">Partner</a>
<a href="#reviews">Reviews</a>
<a href="mailto:sales@shop.example">Mail</a>
<img src="/a.png" alt="widget a">
<img src="/b.png">
</body>
</html>`

func parseSample(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := parseHTML(strings.NewReader(page))
	if err != nil {
		t.Fatalf("failed to parse sample page: %v", err)
	}
	return doc
}

func TestPageExtraction(t *testing.T) {
	doc := parseSample(t, samplePage)

	if got := pageTitle(doc); got != "Widget Shop" {
		t.Errorf("expected title %q, got %q", "Widget Shop", got)
	}
	if got := metaDescription(doc); got != "Widgets for every occasion" {
		t.Errorf("expected description %q, got %q", "Widgets for every occasion", got)
	}
	if got := canonicalURL(doc); got != "https://shop.example/widgets" {
		t.Errorf("expected canonical %q, got %q", "https://shop.example/widgets", got)
	}
	if got := viewportContent(doc); !strings.Contains(got, "width=device-width") {
		t.Errorf("unexpected viewport content %q", got)
	}
	if !hasSchemaMarkup(doc) {
		t.Error("expected schema markup to be detected")
	}
}

func TestHeadingCounts(t *testing.T) {
	doc := parseSample(t, samplePage)
	counts := headingCounts(doc)

	if counts["h1"] != 1 {
		t.Errorf("expected 1 h1, got %d", counts["h1"])
	}
	if counts["h2"] != 2 {
		t.Errorf("expected 2 h2, got %d", counts["h2"])
	}
	if counts["h3"] != 0 {
		t.Errorf("expected 0 h3, got %d", counts["h3"])
	}
}

func TestExtractLinks(t *testing.T) {
	doc := parseSample(t, samplePage)
	base, _ := url.Parse("https://shop.example/widgets")

	internal, external := extractLinks(doc, base)

	if len(internal) != 2 {
		t.Fatalf("expected 2 internal links, got %v", internal)
	}
	if internal[0] != "https://shop.example/about" {
		t.Errorf("unexpected internal link %q", internal[0])
	}
	if len(external) != 1 || external[0] != "https://partner.example/deals" {
		t.Errorf("unexpected external links %v", external)
	}
}

func TestImageStats(t *testing.T) {
	doc := parseSample(t, samplePage)
	total, withAlt := imageStats(doc)

	if total != 2 {
		t.Errorf("expected 2 images, got %d", total)
	}
	if withAlt != 1 {
		t.Errorf("expected 1 image with alt, got %d", withAlt)
	}
}

func TestTextContentSkipsScripts(t *testing.T) {
	page := `<html><head><script>var hidden = 1;</script><style>.x{}</style></head>` +
		`<body><p>visible words</p></body></html>`
	doc := parseSample(t, page)

	text := textContent(doc)
	if !strings.Contains(text, "visible words") {
		t.Errorf("expected body text in %q", text)
	}
	if strings.Contains(text, "hidden") {
		t.Errorf("script content leaked into text %q", text)
	}
}

func TestKeywordDensity(t *testing.T) {
	text := strings.Repeat("widget ", 10) + strings.Repeat("filler ", 10)
	density := keywordDensity(text)

	if density["widget"] != 0.5 {
		t.Errorf("expected widget density 0.5, got %v", density["widget"])
	}

	if got := keywordDensity(""); len(got) != 0 {
		t.Errorf("expected empty density for empty text, got %v", got)
	}
}

func TestGenerateAMP(t *testing.T) {
	page := `<html><head><link rel="canonical" href="https://shop.example/widgets">` +
		`<style>p{color:red}</style></head>` +
		`<body><img src="/a.png" alt="widget" width="640" height="480">` +
		`<iframe src="https://video.example/embed"></iframe></body></html>`
	doc := parseSample(t, page)

	amp := GenerateAMP(doc)

	for _, want := range []string{
		"<html ⚡>",
		`<script async src="https://cdn.ampproject.org/v0.js"></script>`,
		`<link rel="canonical" href="https://shop.example/widgets">`,
		"<style amp-boilerplate>",
		"<style amp-custom>p{color:red}</style>",
		`<amp-img src="/a.png" width="640" height="480" alt="widget" layout="responsive"></amp-img>`,
		`<amp-iframe src="https://video.example/embed" width="300" height="200"`,
	} {
		if !strings.Contains(amp, want) {
			t.Errorf("AMP output missing %q", want)
		}
	}
	if strings.Contains(amp, "<img ") {
		t.Error("AMP output still contains a raw img tag")
	}
}
