package audit

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// ResponsiveCheck is the result of inspecting a document for mobile
// rendering problems.
type ResponsiveCheck struct {
	ViewportMeta       bool     `json:"viewportMeta"`
	MediaQueries       bool     `json:"mediaQueries"`
	ImageSizing        bool     `json:"imageSizing"`
	TapTargets         bool     `json:"tapTargets"`
	FontSize           bool     `json:"fontSize"`
	NoHorizontalScroll bool     `json:"noHorizontalScroll"`
	Score              float64  `json:"score"`
	Issues             []string `json:"issues"`
}

var (
	fontSizeRe = regexp.MustCompile(`font-size:\s*(\d+)px`)
	widthRe    = regexp.MustCompile(`width:\s*(\d+)px`)
)

// CheckResponsiveDesign runs all responsive checks against a parsed
// document. viewportWidth is the assumed device width in CSS pixels.
func CheckResponsiveDesign(doc *html.Node, viewportWidth int) ResponsiveCheck {
	check := ResponsiveCheck{
		ViewportMeta:       checkViewportMeta(doc),
		MediaQueries:       checkMediaQueries(doc),
		ImageSizing:        checkImageSizing(doc),
		TapTargets:         checkInlineFontSizes(doc, []string{"a", "button"}, 16),
		FontSize:           checkInlineFontSizes(doc, []string{"p", "span", "div"}, 14),
		NoHorizontalScroll: checkHorizontalScroll(doc, viewportWidth),
	}

	if !check.ViewportMeta {
		check.Issues = append(check.Issues, "Missing viewport meta tag")
	}
	if !check.MediaQueries {
		check.Issues = append(check.Issues, "No media queries found")
	}
	if !check.ImageSizing {
		check.Issues = append(check.Issues, "Images not properly sized for mobile")
	}
	if !check.TapTargets {
		check.Issues = append(check.Issues, "Tap targets too small or too close")
	}
	if !check.FontSize {
		check.Issues = append(check.Issues, "Font size too small for mobile")
	}
	if !check.NoHorizontalScroll {
		check.Issues = append(check.Issues, "Page requires horizontal scrolling")
	}

	passed := 0
	for _, ok := range []bool{
		check.ViewportMeta, check.MediaQueries, check.ImageSizing,
		check.TapTargets, check.FontSize, check.NoHorizontalScroll,
	} {
		if ok {
			passed++
		}
	}
	check.Score = float64(passed) / 6.0 * 100

	return check
}

func checkViewportMeta(doc *html.Node) bool {
	content := viewportContent(doc)
	return strings.Contains(content, "width") && strings.Contains(content, "initial-scale")
}

func checkMediaQueries(doc *html.Node) bool {
	found := false
	walk(doc, func(n *html.Node) {
		if isElement(n, "style") && n.FirstChild != nil && strings.Contains(n.FirstChild.Data, "@media") {
			found = true
		}
	})
	return found
}

func checkImageSizing(doc *html.Node) bool {
	ok := true
	walk(doc, func(n *html.Node) {
		if isElement(n, "img") && attr(n, "srcset") == "" && attr(n, "sizes") == "" {
			ok = false
		}
	})
	return ok
}

// checkInlineFontSizes fails when any of the given elements declares an
// inline font-size below minPx.
func checkInlineFontSizes(doc *html.Node, elements []string, minPx int) bool {
	ok := true
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		match := false
		for _, name := range elements {
			if n.Data == name {
				match = true
				break
			}
		}
		if !match {
			return
		}
		if m := fontSizeRe.FindStringSubmatch(attr(n, "style")); m != nil {
			if size, err := strconv.Atoi(m[1]); err == nil && size < minPx {
				ok = false
			}
		}
	})
	return ok
}

func checkHorizontalScroll(doc *html.Node, viewportWidth int) bool {
	ok := true
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if m := widthRe.FindStringSubmatch(attr(n, "style")); m != nil {
			if width, err := strconv.Atoi(m[1]); err == nil && width > viewportWidth {
				ok = false
			}
		}
	})
	return ok
}
