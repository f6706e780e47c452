// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires research, brief generation, parsing, composing, and
// export into the operations both front ends call.
package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/outreach-engine/internal/archive"
	"github.com/pdiddy/outreach-engine/internal/brief"
	"github.com/pdiddy/outreach-engine/internal/compose"
	"github.com/pdiddy/outreach-engine/internal/export"
	"github.com/pdiddy/outreach-engine/internal/metrics"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// Researcher produces a research document for a company.
type Researcher interface {
	Research(ctx context.Context, input types.ResearchInput) (string, error)
}

// Archive records and lists pipeline runs.
type Archive interface {
	Record(ctx context.Context, r types.RunRecord) (string, error)
	List(ctx context.Context, opts archive.ListOptions) ([]types.RunRecord, error)
}

// Service runs pipeline operations. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	researcher Researcher
	generator  brief.Generator
	composer   *compose.Composer
	exporter   *export.Exporter
	archive    Archive
	metrics    *metrics.Collectors
	logger     *zap.Logger
	defaults   types.EmailGenerationOptions
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithComposer replaces the default unseeded composer.
func WithComposer(c *compose.Composer) Option {
	return func(s *Service) { s.composer = c }
}

// WithArchive records every run in a.
func WithArchive(a Archive) Option {
	return func(s *Service) { s.archive = a }
}

// WithMetrics records operation outcomes.
func WithMetrics(m *metrics.Collectors) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEmailDefaults sets the options used when a request leaves them unset.
func WithEmailDefaults(o types.EmailGenerationOptions) Option {
	return func(s *Service) { s.defaults = o }
}

// WithClock overrides the clock used for run timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New returns a Service. generator may be nil, in which case the template
// generator is used.
func New(r Researcher, g brief.Generator, e *export.Exporter, opts ...Option) *Service {
	if g == nil {
		g = brief.TemplateGenerator{}
	}
	s := &Service{
		researcher: r,
		generator:  g,
		exporter:   e,
		logger:     zap.NewNop(),
		defaults:   types.DefaultEmailOptions(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.composer == nil {
		s.composer = compose.New(compose.WithMetrics(s.metrics))
	}
	return s
}

// EmailDefaults returns the options applied to unset request fields.
func (s *Service) EmailDefaults() types.EmailGenerationOptions { return s.defaults }

// ResearchResult is the outcome of Research.
type ResearchResult struct {
	Research string
	File     string
}

// BriefResult is the outcome of Brief.
type BriefResult struct {
	Brief string
	File  string
}

// ParseResult is the outcome of Parse and ParseFile.
type ParseResult struct {
	Brief types.AccountBrief
	File  string
}

// EmailsResult is the outcome of Emails.
type EmailsResult struct {
	Sequences []types.EmailSequence
	File      string
}

// WorkflowResult is the outcome of Workflow.
type WorkflowResult struct {
	Research     string
	ResearchFile string
	Brief        string
	BriefFile    string
	AccountBrief types.AccountBrief
	Sequences    []types.EmailSequence
	CSVFile      string
}

// Research gathers research for input and writes <company>_research.md.
func (s *Service) Research(ctx context.Context, input types.ResearchInput) (res ResearchResult, err error) {
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	if input.CompanyName == "" {
		return res, required("companyName", MsgCompanyRequired)
	}
	run := s.start(types.RunResearch, input.CompanyName)
	defer func() { s.finish(ctx, run, err) }()

	res.Research, err = s.researcher.Research(ctx, input)
	if err != nil {
		return res, err
	}
	res.File, err = s.write(run, func() (string, error) {
		return s.exporter.WriteResearch(input.CompanyName, res.Research)
	})
	return res, err
}

// Brief generates an account brief from research and writes
// <company>_brief.md. An empty companyName is taken from the brief.
func (s *Service) Brief(ctx context.Context, companyName, research string) (res BriefResult, err error) {
	if strings.TrimSpace(research) == "" {
		return res, required("research", MsgResearchRequired)
	}
	companyName = strings.TrimSpace(companyName)
	run := s.start(types.RunBrief, companyName)
	defer func() { s.finish(ctx, run, err) }()

	res.Brief, err = s.generator.Generate(ctx, companyName, research)
	if err != nil {
		return res, err
	}
	if companyName == "" {
		companyName = brief.Parse(res.Brief).CompanyName
		run.Company = companyName
	}
	res.File, err = s.write(run, func() (string, error) {
		return s.exporter.WriteBrief(companyName, res.Brief)
	})
	return res, err
}

// Parse extracts an AccountBrief from text and dumps it as <base>.<format>.
// An empty base uses the parsed company name.
func (s *Service) Parse(ctx context.Context, text, base string, format export.Format) (res ParseResult, err error) {
	if strings.TrimSpace(text) == "" {
		return res, required("brief", MsgBriefRequired)
	}
	res.Brief = brief.Parse(text)
	run := s.start(types.RunParse, res.Brief.CompanyName)
	defer func() { s.finish(ctx, run, err) }()

	if base == "" {
		base = res.Brief.CompanyName
	}
	run.Contacts = runContacts(res.Brief.PriorityContacts)
	res.File, err = s.write(run, func() (string, error) {
		return s.exporter.WriteParsed(base, res.Brief, format)
	})
	return res, err
}

// ParseFile parses the brief at path and dumps it next to the other
// artifacts, named after the file's basename.
func (s *Service) ParseFile(ctx context.Context, path string, format export.Format) (ParseResult, error) {
	text, err := readFile(path)
	if err != nil {
		return ParseResult{}, err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return s.Parse(ctx, text, base, format)
}

// Emails composes sequences for every priority contact and writes the CSV.
func (s *Service) Emails(ctx context.Context, b *types.AccountBrief, opts *EmailOptions) (res EmailsResult, err error) {
	if b == nil {
		return res, required("accountBrief", MsgAccountBriefRequired)
	}
	ab := *b
	ab.PriorityContacts = append([]types.Contact(nil), b.PriorityContacts...)
	ab.Normalize()

	run := s.start(types.RunEmails, ab.CompanyName)
	defer func() { s.finish(ctx, run, err) }()

	res.Sequences = s.composer.Compose(ab, opts.Resolve(s.defaults))
	run.Contacts = runContacts(ab.PriorityContacts)
	run.Emails = countEmails(res.Sequences)
	res.File, err = s.write(run, func() (string, error) {
		return s.exporter.WriteEmails(res.Sequences, ab.CompanyName)
	})
	return res, err
}

// Workflow runs research, brief generation, parsing, composing, and export
// in sequence. The first failing step aborts the rest.
func (s *Service) Workflow(ctx context.Context, input types.ResearchInput, opts *EmailOptions) (res WorkflowResult, err error) {
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	if input.CompanyName == "" {
		return res, required("companyName", MsgCompanyRequired)
	}
	run := s.start(types.RunWorkflow, input.CompanyName)
	defer func() { s.finish(ctx, run, err) }()

	s.logger.Info("workflow started", zap.String("company", input.CompanyName))

	res.Research, err = s.researcher.Research(ctx, input)
	if err != nil {
		return res, err
	}
	if res.ResearchFile, err = s.write(run, func() (string, error) {
		return s.exporter.WriteResearch(input.CompanyName, res.Research)
	}); err != nil {
		return res, err
	}

	res.Brief, err = s.generator.Generate(ctx, input.CompanyName, res.Research)
	if err != nil {
		return res, err
	}
	if res.BriefFile, err = s.write(run, func() (string, error) {
		return s.exporter.WriteBrief(input.CompanyName, res.Brief)
	}); err != nil {
		return res, err
	}

	res.AccountBrief = brief.Parse(res.Brief)
	res.Sequences = s.composer.Compose(res.AccountBrief, opts.Resolve(s.defaults))
	run.Contacts = runContacts(res.AccountBrief.PriorityContacts)
	run.Emails = countEmails(res.Sequences)

	res.CSVFile, err = s.write(run, func() (string, error) {
		return s.exporter.WriteEmails(res.Sequences, input.CompanyName)
	})
	if err == nil {
		s.logger.Info("workflow complete",
			zap.String("company", input.CompanyName),
			zap.Int("contacts", len(res.Sequences)),
			zap.Int("emails", run.Emails))
	}
	return res, err
}

// History lists archived runs, newest first.
func (s *Service) History(ctx context.Context, opts archive.ListOptions) ([]types.RunRecord, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archive.List(ctx, opts)
}
