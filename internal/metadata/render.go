package metadata

import (
	"fmt"
	"html"
	"strings"

	"go_seo/internal/model"
)

// RenderMetaTags renders the head block for a resolved metadata record.
// Empty fields produce no tag; all values are HTML-escaped.
func RenderMetaTags(meta *model.PageMetadata) string {
	if meta == nil {
		return ""
	}

	var tags []string
	add := func(format string, value string) {
		if value != "" {
			tags = append(tags, fmt.Sprintf(format, html.EscapeString(value)))
		}
	}

	add("<title>%s</title>", meta.Title)
	add(`<meta name="description" content="%s">`, meta.Description)
	add(`<meta name="keywords" content="%s">`, meta.Keywords)
	add(`<meta name="robots" content="%s">`, meta.Robots)
	add(`<link rel="canonical" href="%s">`, meta.Canonical)

	add(`<meta property="og:title" content="%s">`, meta.OGTitle)
	add(`<meta property="og:description" content="%s">`, meta.OGDescription)
	add(`<meta property="og:image" content="%s">`, meta.OGImage)

	add(`<meta name="twitter:card" content="%s">`, meta.TwitterCard)
	add(`<meta name="twitter:title" content="%s">`, meta.TwitterTitle)
	add(`<meta name="twitter:description" content="%s">`, meta.TwitterDescription)
	add(`<meta name="twitter:image" content="%s">`, meta.TwitterImage)

	return strings.Join(tags, "\n")
}

// Breadcrumb is one entry in a path-derived breadcrumb trail
type Breadcrumb struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Breadcrumbs derives a breadcrumb trail from the path segments.
// "second-hand" becomes "Second Hand".
func Breadcrumbs(path string) []Breadcrumb {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	crumbs := make([]Breadcrumb, 0, len(parts))
	current := ""

	for _, part := range parts {
		if part == "" {
			continue
		}
		current += "/" + part
		crumbs = append(crumbs, Breadcrumb{
			Title: titleize(part),
			URL:   current,
		})
	}

	return crumbs
}

func titleize(segment string) string {
	words := strings.Split(strings.ReplaceAll(segment, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
