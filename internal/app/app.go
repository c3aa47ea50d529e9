// Package app implements the application layer for lookup.
package app

import (
	"context"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/lookup/internal/engine/catalog"
	"go.trai.ch/lookup/internal/engine/lookup"
	"go.trai.ch/lookup/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	connector    ports.ServiceConnector
	submitter    ports.RequestSubmitter
	logger       ports.Logger
	tracer       ports.Tracer
	clock        clockwork.Clock
	getenv       func(string) string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	connector ports.ServiceConnector,
	submitter ports.RequestSubmitter,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		connector:    connector,
		submitter:    submitter,
		logger:       log,
		tracer:       tracer,
		clock:        clockwork.NewRealClock(),
		getenv:       os.Getenv,
	}
}

// WithClock replaces the clock used for the workaround grace period.
// This is primarily used for testing.
func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// WithGetenv replaces the environment lookup.
// This is primarily used for testing.
func (a *App) WithGetenv(getenv func(string) string) *App {
	a.getenv = getenv
	return a
}

// Options are the settings shared by every command.
type Options struct {
	ConfigPath string
	// APIURL overrides the build service; empty falls back to the environment.
	APIURL string
	Debug  bool
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Options
	// Packages are explicit package names; empty selects recently changed packages.
	Packages          []string
	All               bool
	CheckInconsistent bool
	Force             bool
	CacheRequests     bool
	DryRun            bool
}

// SetDebug switches debug output on or off when the logger supports it.
func (a *App) SetDebug(on bool) {
	if l, ok := a.logger.(interface{ SetDebug(bool) }); ok {
		l.SetDebug(on)
	}
}

// runState is everything loaded once at the start of a run.
type runState struct {
	cfg     *domain.Config
	apiURL  string
	svc     ports.BuildService
	session *lookup.Session
	catalog *catalog.Catalog
}

func (a *App) open(ctx context.Context, opts Options, cacheRequests, dryRun bool) (*runState, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	apiURL := a.resolveAPIURL(opts.APIURL)
	svc, err := a.connector.Connect(domain.ConnectOptions{
		APIURL:        apiURL,
		CacheRequests: cacheRequests,
		DryRun:        dryRun,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to connect to build service")
	}

	session, err := lookup.Load(ctx, svc, cfg.PrimaryProject, a.logger)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load lookup document")
	}

	cat := catalog.New(svc, cfg, a.logger)
	if err := cat.Preload(ctx, cfg.Projects()...); err != nil {
		return nil, zerr.Wrap(err, "failed to list projects")
	}

	return &runState{cfg: cfg, apiURL: apiURL, svc: svc, session: session, catalog: cat}, nil
}

func (a *App) resolveAPIURL(flag string) string {
	if flag != "" {
		return flag
	}
	if env := a.getenv(domain.EnvAPIURL); env != "" {
		return env
	}
	return domain.DefaultAPIURL
}

// Run resolves the provenance of the selected packages and stores changes in
// the lookup document of the primary project.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	runID := uuid.NewString()
	a.logger.Debug("starting run " + runID)

	st, err := a.open(ctx, opts.Options, opts.CacheRequests, opts.DryRun)
	if err != nil {
		return err
	}

	index, err := catalog.BuildMetadataIndex(ctx, st.svc, st.cfg.PrimaryProject)
	if err != nil {
		return err
	}

	packages, err := a.selectPackages(ctx, st, opts)
	if err != nil {
		return err
	}
	a.logger.Debug("checking " + strings.Join(packages, ", "))

	reclaimer := resolver.NewReclaimer(
		st.cfg, st.svc, st.session, st.catalog, a.submitter, a.clock, a.logger,
		resolver.ReclaimOptions{APIURL: st.apiURL, DryRun: opts.DryRun},
	)
	engine := resolver.NewEngine(
		st.cfg, st.svc, st.session, st.catalog, index, reclaimer, a.logger, a.tracer,
		resolver.Options{Force: opts.Force},
	)

	ctx, span := a.tracer.Start(ctx, "crawl")
	defer span.End()
	span.SetAttribute("run_id", runID)
	span.SetAttribute("packages", len(packages))

	if err := engine.Crawl(ctx, packages); err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, "crawl failed"), "run_id", runID)
	}
	return nil
}

func (a *App) selectPackages(ctx context.Context, st *runState, opts RunOptions) ([]string, error) {
	var packages []string
	switch {
	case opts.All:
		all, err := st.catalog.Packages(ctx, st.cfg.PrimaryProject)
		if err != nil {
			return nil, err
		}
		packages = slices.Clone(all)
	case len(opts.Packages) > 0:
		packages = slices.Clone(opts.Packages)
	default:
		latest, err := st.svc.LatestCommits(ctx, st.cfg.PrimaryProject)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read latest commits")
		}
		packages = latest
	}

	if opts.CheckInconsistent {
		inconsistent, err := a.inconsistent(ctx, st)
		if err != nil {
			return nil, err
		}
		packages = append(packages, inconsistent...)
	}

	slices.Sort(packages)
	return slices.Compact(packages), nil
}

// Inconsistent returns the packages that have a lookup entry but are gone from
// the primary project, together with the packages lacking an entry.
func (a *App) Inconsistent(ctx context.Context, opts Options) ([]string, error) {
	st, err := a.open(ctx, opts, false, true)
	if err != nil {
		return nil, err
	}
	return a.inconsistent(ctx, st)
}

func (a *App) inconsistent(ctx context.Context, st *runState) ([]string, error) {
	present, err := st.catalog.Packages(ctx, st.cfg.PrimaryProject)
	if err != nil {
		return nil, err
	}
	known := st.session.Keys()

	var stale, unknown []string
	for _, k := range known {
		if _, ok := slices.BinarySearch(present, k); !ok {
			stale = append(stale, k)
		}
	}
	for _, p := range present {
		if _, ok := slices.BinarySearch(known, p); !ok {
			unknown = append(unknown, p)
		}
	}

	if len(stale) > 0 {
		a.logger.Info("stale packages: " + strings.Join(stale, ", "))
	}
	if len(unknown) > 0 {
		a.logger.Info("unknown packages: " + strings.Join(unknown, ", "))
	}

	result := append(stale, unknown...)
	slices.Sort(result)
	return result, nil
}
