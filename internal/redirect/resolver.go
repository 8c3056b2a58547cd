package redirect

import (
	"context"

	"github.com/sirupsen/logrus"

	"go_seo/internal/model"
)

// Redirect is the resolved destination for a path
type Redirect struct {
	URL        string `json:"url"`
	StatusCode int    `json:"statusCode"`
}

// Repository lists the active rule set, highest priority first, most
// recently created first within equal priority.
type Repository interface {
	ListActive(ctx context.Context) ([]model.RedirectRule, error)
}

// Resolver finds the first active rule matching an inbound path. It is
// stateless per call: the rule set is re-read on every resolution, so rule
// edits take effect on the next request without coordination.
type Resolver struct {
	repo   Repository
	logger *logrus.Entry
}

// NewResolver creates a resolver over the given rule repository
func NewResolver(repo Repository, logger *logrus.Entry) *Resolver {
	return &Resolver{
		repo:   repo,
		logger: logger.WithField("component", "redirect-resolver"),
	}
}

// Resolve returns the redirect for path, or nil if no active rule matches.
// A persisted rule whose pattern no longer compiles is skipped with a
// warning; it never aborts the scan.
func (r *Resolver) Resolve(ctx context.Context, path string) (*Redirect, error) {
	rules, err := r.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rules {
		rule := &rules[i]
		pattern, err := CompilePattern(rule.SourcePattern, rule.IsRegex)
		if err != nil {
			r.logger.WithError(err).Warnf("Skipping redirect rule %d: pattern does not compile", rule.ID)
			continue
		}

		groups, ok := pattern.Match(path)
		if !ok {
			continue
		}

		return &Redirect{
			URL:        Substitute(rule.TargetURL, groups),
			StatusCode: rule.StatusCode,
		}, nil
	}

	return nil, nil
}
