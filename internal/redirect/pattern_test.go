package redirect

import (
	"testing"

	"go_seo/internal/model"
)

func TestCompilePattern(t *testing.T) {
	t.Run("literal pattern", func(t *testing.T) {
		p, err := CompilePattern("/old-page", false)
		if err != nil {
			t.Fatalf("CompilePattern() failed: %v", err)
		}
		if p.Kind() != KindLiteral {
			t.Errorf("Expected literal kind, got %v", p.Kind())
		}

		if _, ok := p.Match("/old-page"); !ok {
			t.Error("Literal pattern should match its own path")
		}
		if _, ok := p.Match("/old-page-2"); ok {
			t.Error("Literal pattern must not match a longer path")
		}
		if _, ok := p.Match("/prefix/old-page"); ok {
			t.Error("Matching must be anchored, not a substring search")
		}
	})

	t.Run("wildcard pattern", func(t *testing.T) {
		p, err := CompilePattern("/blog/*/*/post", false)
		if err != nil {
			t.Fatalf("CompilePattern() failed: %v", err)
		}
		if p.Kind() != KindWildcard {
			t.Errorf("Expected wildcard kind, got %v", p.Kind())
		}

		groups, ok := p.Match("/blog/2023/12/post")
		if !ok {
			t.Fatal("Wildcard pattern should match")
		}
		if len(groups) != 2 || groups[0] != "2023" || groups[1] != "12" {
			t.Errorf("Expected groups [2023 12], got %v", groups)
		}

		if _, ok := p.Match("/blog/2023/12/post/extra"); ok {
			t.Error("Wildcard match must cover the full path")
		}
	})

	t.Run("wildcard escapes regex metacharacters", func(t *testing.T) {
		p, err := CompilePattern("/docs/v1.0/*", false)
		if err != nil {
			t.Fatalf("CompilePattern() failed: %v", err)
		}

		if _, ok := p.Match("/docs/v1x0/page"); ok {
			t.Error("Dot in wildcard pattern must be literal, not regex any-char")
		}
		if _, ok := p.Match("/docs/v1.0/page"); !ok {
			t.Error("Escaped pattern should still match the literal dot")
		}
	})

	t.Run("regex pattern", func(t *testing.T) {
		p, err := CompilePattern(`/product/(\d+)`, true)
		if err != nil {
			t.Fatalf("CompilePattern() failed: %v", err)
		}
		if p.Kind() != KindRegex {
			t.Errorf("Expected regex kind, got %v", p.Kind())
		}

		groups, ok := p.Match("/product/123")
		if !ok || len(groups) != 1 || groups[0] != "123" {
			t.Errorf("Expected group [123], got %v (ok=%v)", groups, ok)
		}
		if _, ok := p.Match("/product/abc"); ok {
			t.Error("Regex should not match non-digit id")
		}
		if _, ok := p.Match("/product/123/specs"); ok {
			t.Error("Regex match must be anchored at both ends")
		}
	})

	t.Run("invalid regex", func(t *testing.T) {
		if _, err := CompilePattern(`/product/(\d+`, true); err == nil {
			t.Error("Expected compile error for unclosed group")
		}
	})
}

func TestSubstitute(t *testing.T) {
	t.Run("in-range placeholders", func(t *testing.T) {
		got := Substitute("/articles/$1/$2/post", []string{"2023", "12"})
		if got != "/articles/2023/12/post" {
			t.Errorf("Expected /articles/2023/12/post, got %s", got)
		}
	})

	t.Run("index beyond capture count becomes empty", func(t *testing.T) {
		got := Substitute("/items/$1/$3", []string{"123"})
		if got != "/items/123/" {
			t.Errorf("Expected /items/123/, got %s", got)
		}
	})

	t.Run("no groups at all", func(t *testing.T) {
		got := Substitute("/x/$1", nil)
		if got != "/x/" {
			t.Errorf("Expected /x/, got %s", got)
		}
	})

	t.Run("non-participating group becomes empty", func(t *testing.T) {
		p, _ := CompilePattern(`/a/(x)?(y)`, true)
		groups, ok := p.Match("/a/y")
		if !ok {
			t.Fatal("Pattern should match /a/y")
		}
		got := Substitute("/b/$1$2", groups)
		if got != "/b/y" {
			t.Errorf("Expected /b/y, got %s", got)
		}
	})

	t.Run("target without placeholders unchanged", func(t *testing.T) {
		got := Substitute("/new-page", []string{"unused"})
		if got != "/new-page" {
			t.Errorf("Expected /new-page, got %s", got)
		}
	})
}

func TestValidateRule(t *testing.T) {
	valid := func() *model.RedirectRule {
		return &model.RedirectRule{
			SourcePattern: "/old-page",
			TargetURL:     "/new-page",
			StatusCode:    301,
		}
	}

	t.Run("valid literal rule", func(t *testing.T) {
		if err := ValidateRule(valid()); err != nil {
			t.Errorf("ValidateRule() failed: %v", err)
		}
	})

	t.Run("absolute target URL", func(t *testing.T) {
		rule := valid()
		rule.TargetURL = "https://example.com/new-page"
		if err := ValidateRule(rule); err != nil {
			t.Errorf("ValidateRule() failed: %v", err)
		}
	})

	t.Run("malformed target URL", func(t *testing.T) {
		rule := valid()
		rule.TargetURL = "not-a-url"
		if err := ValidateRule(rule); err == nil {
			t.Error("Expected error for relative non-path target")
		}
	})

	t.Run("placeholder target skips URL validation", func(t *testing.T) {
		rule := valid()
		rule.SourcePattern = `/product/(\d+)`
		rule.IsRegex = true
		rule.TargetURL = "/items/$1"
		if err := ValidateRule(rule); err != nil {
			t.Errorf("ValidateRule() failed: %v", err)
		}
	})

	t.Run("invalid regex rejected", func(t *testing.T) {
		rule := valid()
		rule.SourcePattern = `/product/(\d+`
		rule.IsRegex = true
		if err := ValidateRule(rule); err == nil {
			t.Error("Expected error for invalid regex")
		}
	})

	t.Run("bad status code rejected", func(t *testing.T) {
		rule := valid()
		rule.StatusCode = 200
		if err := ValidateRule(rule); err == nil {
			t.Error("Expected error for non-redirect status code")
		}
	})
}
