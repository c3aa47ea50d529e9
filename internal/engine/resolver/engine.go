package resolver

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/lookup/internal/engine/catalog"
	"go.trai.ch/lookup/internal/engine/lookup"
	"go.trai.ch/zerr"
)

// Outcome describes the resolution of one package.
type Outcome struct {
	Package string
	Before  domain.Provenance
	After   domain.Provenance
	// Rule names the rule that ended evaluation. It is empty for vanished packages.
	Rule              string
	Changed           bool
	Vanished          bool
	WorkaroundSourced bool
}

// Options tune an Engine.
type Options struct {
	// Force disables the early stop when the recorded non-factory project still matches.
	Force bool
}

// Engine resolves the provenance of packages of the primary project.
type Engine struct {
	cfg       *domain.Config
	svc       ports.BuildService
	session   *lookup.Session
	catalog   *catalog.Catalog
	index     *catalog.MetadataIndex
	matcher   *Matcher
	reclaimer *Reclaimer
	logger    ports.Logger
	tracer    ports.Tracer
	opts      Options

	rules []Rule
}

// NewEngine creates an Engine. reclaimer may be nil to disable reclamation.
func NewEngine(
	cfg *domain.Config,
	svc ports.BuildService,
	session *lookup.Session,
	cat *catalog.Catalog,
	index *catalog.MetadataIndex,
	reclaimer *Reclaimer,
	logger ports.Logger,
	tracer ports.Tracer,
	opts Options,
) *Engine {
	e := &Engine{
		cfg:       cfg,
		svc:       svc,
		session:   session,
		catalog:   cat,
		index:     index,
		matcher:   NewMatcher(svc, cat),
		reclaimer: reclaimer,
		logger:    logger,
		tracer:    tracer,
		opts:      opts,
	}
	e.rules = []Rule{
		{Name: RuleSubpackage, Eval: e.subpackage},
		{Name: RuleDevel, Eval: e.devel},
		{Name: RulePrior, Eval: e.prior},
		{Name: RulePreference, Eval: e.preference},
		{Name: RuleFork, Eval: e.fork},
	}
	return e
}

// Rules returns the rule table in evaluation order.
func (e *Engine) Rules() []Rule {
	return slices.Clone(e.rules)
}

// Resolve decides the provenance of pkg and records it in the session when it changed.
func (e *Engine) Resolve(ctx context.Context, pkg string) (Outcome, error) {
	stored := e.session.Get(pkg)
	out := Outcome{Package: pkg, Before: stored, After: stored}

	listed, err := e.catalog.Contains(ctx, e.cfg.PrimaryProject, pkg)
	if err != nil {
		return out, err
	}
	if !listed {
		if !e.cfg.IsIgnored(pkg) {
			e.logger.Info(pkg + " vanished")
		}
		out.Vanished = true
		if e.session.Remove(pkg) {
			out.After = domain.Provenance{}
			out.Changed = true
		}
		return out, nil
	}

	current, err := e.svc.SourceInfo(ctx, e.cfg.PrimaryProject, pkg, "")
	if err != nil {
		return out, err
	}

	subject := &Subject{Package: pkg, Stored: stored, Current: current}
	for _, rule := range e.rules {
		verdict, err := rule.Eval(ctx, subject)
		if err != nil {
			return out, zerr.With(zerr.Wrap(err, "rule "+rule.Name+" failed"), "package", pkg)
		}
		if !verdict.Final() {
			continue
		}

		out.Rule = rule.Name
		if p, ok := verdict.Provenance(); ok && p != stored {
			e.session.Set(pkg, p)
			out.After = p
			out.Changed = true
		}
		break
	}
	out.WorkaroundSourced = subject.WorkaroundSourced
	return out, nil
}

// Crawl resolves packages one at a time in sorted order. Remote faults skip
// the package, as do failed or ambiguous reclamations; any other error stops
// the crawl after a best-effort write of pending changes.
func (e *Engine) Crawl(ctx context.Context, packages []string) error {
	sorted := slices.Clone(packages)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	for _, pkg := range sorted {
		out, err := e.resolveTraced(ctx, pkg)
		if err != nil {
			if !IsRemoteFault(err) {
				return e.abort(ctx, err)
			}
			e.logger.Error(zerr.Wrap(err, "failed to check "+pkg))
		}

		if _, err := e.session.FlushIfDue(ctx); err != nil {
			return err
		}

		if out.WorkaroundSourced && e.reclaimer != nil {
			if err := e.reclaimer.Reclaim(ctx, pkg); err != nil {
				if !IsRemoteFault(err) &&
					!errors.Is(err, domain.ErrRequestSubmitFailed) &&
					!errors.Is(err, domain.ErrAmbiguousRequests) {
					return e.abort(ctx, err)
				}
				e.logger.Error(zerr.Wrap(err, "failed to reclaim "+pkg))
			}
		}
	}

	return e.session.Flush(ctx)
}

func (e *Engine) resolveTraced(ctx context.Context, pkg string) (Outcome, error) {
	ctx, span := e.tracer.Start(ctx, "resolve")
	defer span.End()

	span.SetAttribute("package", pkg)
	out, err := e.Resolve(ctx, pkg)
	span.SetAttribute("provenance.before", out.Before.String())
	span.SetAttribute("provenance.after", out.After.String())
	span.SetAttribute("rule", out.Rule)
	span.SetAttribute("changed", out.Changed)
	if err != nil {
		span.RecordError(err)
	}
	return out, err
}

func (e *Engine) abort(ctx context.Context, cause error) error {
	if e.session.Changes() > 0 {
		if err := e.session.Flush(ctx); err != nil {
			e.logger.Error(zerr.Wrap(err, "failed to store pending lookup changes"))
		}
	}
	return cause
}

// IsRemoteFault reports whether err is a build service failure that only
// affects the package being processed.
func IsRemoteFault(err error) bool {
	return errors.Is(err, domain.ErrRemoteRequestFailed) ||
		errors.Is(err, domain.ErrRemoteRetriesExhausted) ||
		errors.Is(err, domain.ErrRemoteNotFound) ||
		errors.Is(err, domain.ErrRemoteParseFailed)
}

// describe renders p for log output.
func describe(p domain.Provenance) string {
	if !p.IsSet() {
		return "none"
	}
	return p.String()
}

func (e *Engine) subpackage(_ context.Context, s *Subject) (Verdict, error) {
	linked := s.Current.Linked
	if linked == nil || linked.Package == s.Package {
		return Next(), nil
	}

	p := domain.SubpackageOf(linked.Package)
	if p != s.Stored {
		e.logger.Warn(fmt.Sprintf("%s links to %s (was %s)", s.Package, linked.Package, describe(s.Stored)))
	} else {
		e.logger.Debug(fmt.Sprintf("%s correctly marked as subpackage of %s", s.Package, linked.Package))
	}
	return Settle(p), nil
}

// develSource returns the devel project of the subject, preferring the build
// service annotation over a stored entry.
func (e *Engine) develSource(s *Subject) (domain.PackageRef, bool) {
	if ref := e.index.Devel(s.Package); ref != nil {
		return *ref, true
	}
	if s.Stored.Kind == domain.KindDevel {
		e.logger.Warn(fmt.Sprintf("%s lacks devel project setting %s/%s", s.Package, s.Stored.Project, s.Stored.Package))
		return domain.PackageRef{Project: s.Stored.Project, Package: s.Stored.Package}, true
	}
	return domain.PackageRef{}, false
}

func (e *Engine) devel(ctx context.Context, s *Subject) (Verdict, error) {
	ref, ok := e.develSource(s)
	if !ok {
		return Next(), nil
	}

	rev, err := e.matcher.FindMatchingRevision(ctx, ref.Project, ref.Package, s.Current.VerifyMD5, false)
	if err != nil || rev == nil {
		return Next(), err
	}

	p := domain.DevelSource(ref.Project, ref.Package)
	if p != s.Stored {
		e.logger.Debug(fmt.Sprintf("%s from devel %s (was %s)", s.Package, ref, describe(s.Stored)))
	} else {
		e.logger.Debug(fmt.Sprintf("%s lookup from %s is correct", s.Package, ref))
	}
	return Settle(p), nil
}

func (e *Engine) prior(ctx context.Context, s *Subject) (Verdict, error) {
	if s.Stored.Kind != domain.KindInherited || e.index.Devel(s.Package) != nil {
		return Next(), nil
	}
	project := s.Stored.Project

	rev, err := e.matcher.FindMatchingRevision(ctx, project, s.Package, s.Current.VerifyMD5, false)
	if err != nil {
		return Next(), err
	}
	if rev != nil {
		e.logger.Debug(fmt.Sprintf("%s lookup from %s is correct", s.Package, project))
		if !e.opts.Force && project != e.cfg.FactoryProject {
			return Keep(), nil
		}
		return Next(), nil
	}

	if project != e.cfg.FactoryProject {
		return Next(), nil
	}
	listed, err := e.catalog.Contains(ctx, project, s.Package)
	if err != nil || listed {
		return Next(), err
	}
	revs, err := e.svc.History(ctx, project, s.Package, true)
	if err != nil {
		if errors.Is(err, domain.ErrRemoteNotFound) {
			return Next(), nil
		}
		return Next(), err
	}
	if len(revs) > 0 {
		e.logger.Debug(fmt.Sprintf("%s got dropped from %s", s.Package, project))
	}
	return Next(), nil
}

func (e *Engine) preference(ctx context.Context, s *Subject) (Verdict, error) {
	e.logger.Debug("check where " + s.Package + " came from")
	workaround := e.cfg.Workaround()

	for _, project := range e.cfg.PreferenceOrder {
		rev, err := e.matcher.FindMatchingRevision(ctx, project, s.Package, s.Current.VerifyMD5, false)
		if err != nil {
			return Next(), err
		}
		if rev == nil {
			continue
		}

		p := domain.Inherited(project)
		switch {
		case p == s.Stored:
			e.logger.Debug(fmt.Sprintf("%s still coming from %s", s.Package, project))
			return Keep(), nil
		case project == workaround || domain.IsWorkaroundProject(project):
			e.logger.Info(fmt.Sprintf("%s is from %s but should come from %s", s.Package, project, describe(s.Stored)))
			s.WorkaroundSourced = project == workaround
			return Keep(), nil
		default:
			e.logger.Info(fmt.Sprintf("%s -> %s (was %s)", s.Package, project, describe(s.Stored)))
			return Settle(p), nil
		}
	}
	return Next(), nil
}

func (e *Engine) fork(_ context.Context, s *Subject) (Verdict, error) {
	switch {
	case s.Stored.Kind == domain.KindFork:
		e.logger.Debug(s.Package + ": lookup is correctly marked as fork")
		return Keep(), nil
	case s.Stored.Kind == domain.KindInherited && e.cfg.DropsIfVanished(s.Stored.Project):
		e.logger.Info(fmt.Sprintf("%s dropped from %s", s.Package, s.Stored.Project))
		return Keep(), nil
	default:
		e.logger.Info(fmt.Sprintf("%s is a fork (was %s)", s.Package, describe(s.Stored)))
		return Settle(domain.Fork()), nil
	}
}
