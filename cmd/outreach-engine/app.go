// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/outreach-engine/internal/archive"
	"github.com/pdiddy/outreach-engine/internal/brief"
	"github.com/pdiddy/outreach-engine/internal/compose"
	"github.com/pdiddy/outreach-engine/internal/export"
	"github.com/pdiddy/outreach-engine/internal/logging"
	"github.com/pdiddy/outreach-engine/internal/metrics"
	"github.com/pdiddy/outreach-engine/internal/pipeline"
	"github.com/pdiddy/outreach-engine/internal/research"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// app holds the components built from configuration for one command run.
type app struct {
	cfg      types.AppConfig
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics.Collectors
	store    *archive.Store
	svc      *pipeline.Service
	closers  []func() error
}

// unavailableResearcher fails every call. It stands in when the search
// provider is not configured so commands that never search still run.
type unavailableResearcher struct{ err error }

func (u unavailableResearcher) Research(context.Context, types.ResearchInput) (string, error) {
	return "", fmt.Errorf("conducting company research: %w", u.err)
}

func newApp() (*app, error) {
	cfg, err := decodeConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, registry: prometheus.NewRegistry()}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = metrics.New(a.registry)

	exp := export.New(cfg.OutputDir)
	if err := exp.Prepare(); err != nil {
		return nil, err
	}

	gen, err := brief.New(cfg.Brief)
	if err != nil {
		return nil, err
	}
	if c, ok := gen.(io.Closer); ok {
		a.closers = append(a.closers, c.Close)
	}

	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(a.metrics),
		pipeline.WithEmailDefaults(cfg.Email.EmailGenerationOptions),
		pipeline.WithComposer(compose.New(
			compose.WithSeed(cfg.Email.Seed),
			compose.WithMetrics(a.metrics),
		)),
	}
	if cfg.Archive.Enabled {
		store, err := archive.Open(cfg.ArchivePath())
		if err != nil {
			a.Close()
			return nil, err
		}
		a.store = store
		a.closers = append(a.closers, store.Close)
		opts = append(opts, pipeline.WithArchive(store))
	}

	a.svc = pipeline.New(a.researcher(), gen, exp, opts...)
	return a, nil
}

func (a *app) researcher() pipeline.Researcher {
	exa, err := research.NewExaSearcher(a.cfg.Research)
	if err != nil {
		a.logger.Debug("research disabled", zap.Error(err))
		return unavailableResearcher{err: err}
	}
	return research.NewAggregator(exa,
		research.WithLogger(a.logger),
		research.WithMetrics(a.metrics))
}

// Close releases the archive and generator clients.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	_ = a.logger.Sync()
	return errors.Join(errs...)
}

// withApp builds an app, runs fn, and closes the app.
func withApp(fn func(a *app) error) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
