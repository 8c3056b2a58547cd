package metadata

import (
	"strings"
	"testing"

	"go_seo/internal/config"
)

func prefixConfig() config.SEOConfig {
	return config.SEOConfig{
		DefaultLanguage:    "en",
		SupportedLanguages: []string{"en", "de", "fr"},
		I18nURLType:        "prefix",
	}
}

func TestHreflangGenerator_Prefix(t *testing.T) {
	g := NewHreflangGenerator(prefixConfig())

	t.Run("default language keeps bare path", func(t *testing.T) {
		if got := g.LanguageURL("/about", "en"); got != "/about" {
			t.Errorf("Expected /about, got %s", got)
		}
	})

	t.Run("other languages get a prefix", func(t *testing.T) {
		if got := g.LanguageURL("/about", "de"); got != "/de/about" {
			t.Errorf("Expected /de/about, got %s", got)
		}
	})

	t.Run("alternates include x-default", func(t *testing.T) {
		alternates := g.Generate("/about")
		// en, x-default, de, fr
		if len(alternates) != 4 {
			t.Fatalf("Expected 4 alternates, got %d: %v", len(alternates), alternates)
		}

		var xDefault *Alternate
		for i := range alternates {
			if alternates[i].Hreflang == "x-default" {
				xDefault = &alternates[i]
			}
		}
		if xDefault == nil {
			t.Fatal("Expected an x-default alternate")
		}
		if xDefault.Href != "/about" {
			t.Errorf("x-default must point at the default language URL, got %s", xDefault.Href)
		}
	})
}

func TestHreflangGenerator_Domain(t *testing.T) {
	cfg := prefixConfig()
	cfg.I18nURLType = "domain"
	cfg.I18nDomainMapping = map[string]string{"de": "example.de"}
	g := NewHreflangGenerator(cfg)

	t.Run("mapped language uses its domain", func(t *testing.T) {
		if got := g.LanguageURL("/about", "de"); got != "https://example.de/about" {
			t.Errorf("Expected https://example.de/about, got %s", got)
		}
	})

	t.Run("unmapped language falls back to the path", func(t *testing.T) {
		if got := g.LanguageURL("/about", "fr"); got != "/about" {
			t.Errorf("Expected /about, got %s", got)
		}
	})
}

func TestHreflangGenerator_RenderTags(t *testing.T) {
	g := NewHreflangGenerator(prefixConfig())
	out := g.RenderTags("/about")

	want := `<link rel="alternate" hreflang="de" href="/de/about">`
	if !strings.Contains(out, want) {
		t.Errorf("Output missing %q:\n%s", want, out)
	}
}
