package metadata

import (
	"fmt"
	"html"
	"strings"

	"go_seo/internal/config"
)

// Alternate is one hreflang link target
type Alternate struct {
	Hreflang string `json:"hreflang"`
	Href     string `json:"href"`
}

// HreflangGenerator builds alternate-language URLs for a path, using
// either language-prefixed paths or per-language domains.
type HreflangGenerator struct {
	cfg config.SEOConfig
}

// NewHreflangGenerator creates a generator using the SEO configuration
func NewHreflangGenerator(cfg config.SEOConfig) *HreflangGenerator {
	return &HreflangGenerator{cfg: cfg}
}

// LanguageURL returns the URL serving path in the given language
func (g *HreflangGenerator) LanguageURL(path, language string) string {
	if g.cfg.I18nURLType == "domain" {
		domain, ok := g.cfg.I18nDomainMapping[language]
		if !ok {
			return path
		}
		return fmt.Sprintf("https://%s%s", domain, path)
	}
	if language == g.cfg.DefaultLanguage {
		return path
	}
	return "/" + language + path
}

// Generate returns one alternate per supported language, plus x-default
// pointing at the default language variant.
func (g *HreflangGenerator) Generate(path string) []Alternate {
	alternates := make([]Alternate, 0, len(g.cfg.SupportedLanguages)+1)

	for _, lang := range g.cfg.SupportedLanguages {
		alternates = append(alternates, Alternate{
			Hreflang: lang,
			Href:     g.LanguageURL(path, lang),
		})
		if lang == g.cfg.DefaultLanguage {
			alternates = append(alternates, Alternate{
				Hreflang: "x-default",
				Href:     g.LanguageURL(path, g.cfg.DefaultLanguage),
			})
		}
	}

	return alternates
}

// RenderTags renders the alternates as <link rel="alternate"> tags
func (g *HreflangGenerator) RenderTags(path string) string {
	alternates := g.Generate(path)
	tags := make([]string, 0, len(alternates))
	for _, alt := range alternates {
		tags = append(tags, fmt.Sprintf(`<link rel="alternate" hreflang="%s" href="%s">`,
			html.EscapeString(alt.Hreflang), html.EscapeString(alt.Href)))
	}
	return strings.Join(tags, "\n")
}
