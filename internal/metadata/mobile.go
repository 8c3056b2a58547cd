package metadata

import (
	"fmt"
	"html"
	"strings"

	"go_seo/internal/config"
)

// MobileMetadata is the mobile-specific head block served alongside the
// page metadata.
type MobileMetadata struct {
	Viewport       string `json:"viewport"`
	ThemeColor     string `json:"themeColor"`
	WebAppCapable  string `json:"webAppCapable"`
	SmartAppBanner string `json:"smartAppBanner,omitempty"`
	Manifest       string `json:"manifest,omitempty"`
}

// BuildMobileMetadata assembles the mobile block from configuration
func BuildMobileMetadata(cfg config.SEOConfig) MobileMetadata {
	return MobileMetadata{
		Viewport:       fmt.Sprintf("width=%d, initial-scale=1", cfg.MobileViewportWidth),
		ThemeColor:     cfg.MobileThemeColor,
		WebAppCapable:  "yes",
		SmartAppBanner: cfg.SmartAppBanner,
		Manifest:       cfg.WebAppManifest,
	}
}

// RenderTags renders the mobile block as meta/link tags
func (m MobileMetadata) RenderTags() string {
	var tags []string
	add := func(format, value string) {
		if value != "" {
			tags = append(tags, fmt.Sprintf(format, html.EscapeString(value)))
		}
	}

	add(`<meta name="viewport" content="%s">`, m.Viewport)
	add(`<meta name="theme-color" content="%s">`, m.ThemeColor)
	add(`<meta name="apple-mobile-web-app-capable" content="%s">`, m.WebAppCapable)
	add(`<meta name="apple-itunes-app" content="%s">`, m.SmartAppBanner)
	add(`<link rel="manifest" href="%s">`, m.Manifest)

	return strings.Join(tags, "\n")
}
