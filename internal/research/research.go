// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research gathers public information about a company by issuing a
// fixed plan of categorized web searches and assembling the results into a
// single markdown research document.
package research

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/outreach-engine/internal/metrics"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// ErrCompanyRequired is returned when ResearchInput has no company name.
var ErrCompanyRequired = errors.New("company name is required")

// noResults is the section body used when a query returns nothing.
const noResults = "No information found."

// Searcher runs a single query against the search provider.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]types.SearchHit, error)
}

// Query is one categorized search request.
type Query struct {
	// Name identifies the query in logs, metrics, and errors (e.g. "leadership").
	Name string

	// Heading is the markdown section title the results are filed under.
	Heading string

	Text       string
	NumResults int

	// UseAutoprompt lets the provider rewrite the query.
	UseAutoprompt bool

	// StartPublished restricts results to documents published on or after
	// this date. Zero means no restriction.
	StartPublished time.Time
}

// Plan returns the six queries issued for input, in document order:
// overview, leadership, recent news, market position, global presence, and
// challenges. Recent news asks for five results published in the six months
// before now; every other query asks for three.
func Plan(input types.ResearchInput, now time.Time) []Query {
	name := input.CompanyName

	overview := fmt.Sprintf(`"%s" overview company information site:linkedin.com OR site:crunchbase.com`, name)
	if input.Website != "" {
		overview = fmt.Sprintf(`"%s" overview company information site:%s OR site:linkedin.com OR site:crunchbase.com`, name, input.Website)
	}

	return []Query{
		{Name: "overview", Heading: "COMPANY OVERVIEW", Text: overview, NumResults: 3},
		{
			Name:       "leadership",
			Heading:    "LEADERSHIP TEAM",
			Text:       fmt.Sprintf(`"%s" leadership team executive management site:linkedin.com OR site:crunchbase.com`, name),
			NumResults: 3,
		},
		{
			Name:           "recent_news",
			Heading:        "RECENT NEWS",
			Text:           fmt.Sprintf(`"%s" news recent developments press release -stock`, name),
			NumResults:     5,
			UseAutoprompt:  true,
			StartPublished: now.AddDate(0, -6, 0),
		},
		{
			Name:       "market_position",
			Heading:    "MARKET POSITION",
			Text:       fmt.Sprintf(`"%s" market position industry competition analysis`, name),
			NumResults: 3,
		},
		{
			Name:       "global_presence",
			Heading:    "GLOBAL PRESENCE",
			Text:       fmt.Sprintf(`"%s" global presence international expansion offices locations`, name),
			NumResults: 3,
		},
		{
			Name:       "challenges",
			Heading:    "CHALLENGES AND PAIN POINTS",
			Text:       fmt.Sprintf(`"%s" challenges problems issues pain points business`, name),
			NumResults: 3,
		},
	}
}

// Aggregator fans a research plan out to a Searcher and joins the results.
type Aggregator struct {
	searcher Searcher
	now      func() time.Time
	logger   *zap.Logger
	metrics  *metrics.Collectors
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithClock overrides the clock used for the news window and research date.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics records per-query outcomes.
func WithMetrics(m *metrics.Collectors) Option {
	return func(a *Aggregator) { a.metrics = m }
}

// NewAggregator returns an Aggregator backed by s.
func NewAggregator(s Searcher, opts ...Option) *Aggregator {
	a := &Aggregator{
		searcher: s,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Research runs all six queries concurrently and returns the combined
// markdown document. The first failing query cancels the others and fails
// the whole call; no partial document is produced.
func (a *Aggregator) Research(ctx context.Context, input types.ResearchInput) (string, error) {
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	if input.CompanyName == "" {
		return "", ErrCompanyRequired
	}

	now := a.now()
	plan := Plan(input, now)
	sections := make([]string, len(plan))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range plan {
		g.Go(func() error {
			start := time.Now()
			hits, err := a.searcher.Search(gctx, q)
			a.metrics.ObserveSearch(q.Name, err)
			if err != nil {
				a.logger.Warn("search query failed",
					zap.String("company", input.CompanyName),
					zap.String("query", q.Name),
					zap.Error(err))
				return fmt.Errorf("%s query: %w", q.Name, err)
			}
			a.logger.Debug("search query complete",
				zap.String("query", q.Name),
				zap.Int("hits", len(hits)),
				zap.Duration("elapsed", time.Since(start)))
			sections[i] = FormatHits(hits)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("conducting company research: %w", err)
	}

	return assemble(input, plan, sections, now), nil
}

// FormatHits renders search hits as numbered markdown sources. Empty input
// yields "No information found.".
func FormatHits(hits []types.SearchHit) string {
	if len(hits) == 0 {
		return noResults
	}
	parts := make([]string, len(hits))
	for i, h := range hits {
		title := h.Title
		if title == "" {
			title = "Untitled"
		}
		text := h.Text
		if text == "" {
			text = h.Highlight
		}
		parts[i] = fmt.Sprintf("### Source %d: %s\n%s\n%s\n", i+1, title, h.URL, text)
	}
	return strings.Join(parts, "\n")
}

func assemble(input types.ResearchInput, plan []Query, sections []string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# EXA RESEARCH RESULTS: %s\n\n", strings.ToUpper(input.CompanyName))
	for i, q := range plan {
		fmt.Fprintf(&b, "## %s\n%s\n\n", q.Heading, sections[i])
	}
	b.WriteString("## ADDITIONAL SEARCH METADATA\n")
	fmt.Fprintf(&b, "- Company Name: %s\n", input.CompanyName)
	if input.Website != "" {
		fmt.Fprintf(&b, "- Website: %s\n", input.Website)
	}
	if input.LinkedInURL != "" {
		fmt.Fprintf(&b, "- LinkedIn: %s\n", input.LinkedInURL)
	}
	fmt.Fprintf(&b, "- Research Date: %s\n", now.UTC().Format(time.DateOnly))
	return b.String()
}
