package audit

// CalculateScore computes the overall score from the gathered metrics.
// Starts at 100 and applies fixed penalties, clamped to [0, 100].
func CalculateScore(content ContentMetrics, technical TechnicalMetrics, speed PageSpeed) float64 {
	score := 100.0

	// Content penalties
	if content.WordCount < 300 {
		score -= 10
	}
	if content.HeadingCounts["h1"] == 0 {
		score -= 10
	}
	if content.ImagesWithAlt < content.ImageCount {
		score -= 5
	}
	score -= float64(len(content.BrokenLinks)) * 2

	// Technical penalties
	if !technical.HasSSL {
		score -= 20
	}
	if !technical.HasRobotsTxt {
		score -= 5
	}
	if !technical.HasSitemap {
		score -= 5
	}
	if !technical.IsMobileFriendly {
		score -= 15
	}
	if !technical.HasSchemaMarkup {
		score -= 10
	}
	if technical.ResponseTime > 2 {
		score -= 10
	}

	// Page speed penalties
	if speed.LoadTime > 3 {
		score -= 10
	}
	if speed.LargestContentfulPaint > 2.5 {
		score -= 5
	}
	if speed.TimeToInteractive > 3.8 {
		score -= 5
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// GenerateSuggestions returns one improvement hint per failed check
func GenerateSuggestions(content ContentMetrics, technical TechnicalMetrics, speed PageSpeed) []string {
	var suggestions []string

	if content.WordCount < 300 {
		suggestions = append(suggestions, "Add more content - articles should be at least 300 words")
	}
	if content.HeadingCounts["h1"] == 0 {
		suggestions = append(suggestions, "Add an H1 heading to your page")
	}
	if content.ImagesWithAlt < content.ImageCount {
		suggestions = append(suggestions, "Add alt text to all images")
	}
	if len(content.BrokenLinks) > 0 {
		suggestions = append(suggestions, "Fix broken links found on your page")
	}

	if !technical.HasSSL {
		suggestions = append(suggestions, "Enable HTTPS for your website")
	}
	if !technical.HasRobotsTxt {
		suggestions = append(suggestions, "Add a robots.txt file")
	}
	if !technical.HasSitemap {
		suggestions = append(suggestions, "Add an XML sitemap")
	}
	if !technical.IsMobileFriendly {
		suggestions = append(suggestions, "Optimize your page for mobile devices")
	}
	if !technical.HasSchemaMarkup {
		suggestions = append(suggestions, "Add schema markup to your page")
	}
	if technical.ResponseTime > 2 {
		suggestions = append(suggestions, "Improve server response time")
	}

	if speed.LoadTime > 3 {
		suggestions = append(suggestions, "Optimize page load time")
	}
	if speed.LargestContentfulPaint > 2.5 {
		suggestions = append(suggestions, "Optimize Largest Contentful Paint")
	}
	if speed.TimeToInteractive > 3.8 {
		suggestions = append(suggestions, "Improve Time to Interactive")
	}

	return suggestions
}
