package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/lookup/internal/engine/catalog"
	"go.trai.ch/lookup/internal/engine/lookup"
)

// RecentUpdateGrace is how long a freshly updated workaround package is left alone.
const RecentUpdateGrace = 24 * time.Hour

// ReclaimOptions configure how deletion requests are filed.
type ReclaimOptions struct {
	APIURL string
	DryRun bool
}

// Reclaimer asks for the removal of packages that are found in the workaround
// project although another provenance is recorded for them.
type Reclaimer struct {
	cfg       *domain.Config
	svc       ports.BuildService
	session   *lookup.Session
	catalog   *catalog.Catalog
	finder    *RequestFinder
	submitter ports.RequestSubmitter
	clock     clockwork.Clock
	logger    ports.Logger
	opts      ReclaimOptions
}

// NewReclaimer creates a Reclaimer.
func NewReclaimer(
	cfg *domain.Config,
	svc ports.BuildService,
	session *lookup.Session,
	cat *catalog.Catalog,
	submitter ports.RequestSubmitter,
	clock clockwork.Clock,
	logger ports.Logger,
	opts ReclaimOptions,
) *Reclaimer {
	return &Reclaimer{
		cfg:       cfg,
		svc:       svc,
		session:   session,
		catalog:   cat,
		finder:    NewRequestFinder(svc),
		submitter: submitter,
		clock:     clock,
		logger:    logger,
		opts:      opts,
	}
}

// Reclaim files a deletion request for pkg in the workaround project unless
// the package changed there recently or a request for it is already pending.
func (r *Reclaimer) Reclaim(ctx context.Context, pkg string) error {
	workaround := r.cfg.Workaround()
	if workaround == "" {
		return nil
	}
	target := domain.PackageRef{Project: workaround, Package: pkg}

	listed, err := r.catalog.Contains(ctx, workaround, pkg)
	if err != nil || !listed {
		return err
	}

	recent, err := r.updatedRecently(ctx, target)
	if err != nil {
		return err
	}
	if recent {
		r.logger.Debug(fmt.Sprintf("skip removal of %s since updated within 24 hours", target))
		return nil
	}

	submits, err := r.finder.FindAll(ctx, target, domain.RequestSubmit)
	if err != nil {
		return err
	}
	if len(submits) > 0 {
		r.logger.Debug("existing submit request involving " + target.String())
		return nil
	}

	pending, err := r.finder.FindOne(ctx, target, domain.RequestDelete)
	if err != nil {
		return err
	}
	if pending != nil {
		r.logger.Debug(fmt.Sprintf("existing delete request %s for %s", pending.ID, target))
		return nil
	}

	r.logger.Info("creating delete request for " + target.String())
	id, err := r.submitter.SubmitDeleteRequest(ctx, domain.DeleteRequest{
		APIURL:  r.opts.APIURL,
		Target:  target,
		Message: "sourced from " + describe(r.session.Get(pkg)),
		DryRun:  r.opts.DryRun,
	})
	if err != nil {
		return err
	}
	if id != "" {
		r.logger.Info(fmt.Sprintf("created request %s", id))
	}
	return nil
}

func (r *Reclaimer) updatedRecently(ctx context.Context, target domain.PackageRef) (bool, error) {
	revs, err := r.svc.History(ctx, target.Project, target.Package, false)
	if err != nil {
		if errors.Is(err, domain.ErrRemoteNotFound) {
			return false, nil
		}
		return false, err
	}
	if len(revs) == 0 {
		return false, nil
	}
	last := revs[len(revs)-1].Time
	return r.clock.Since(last) < RecentUpdateGrace, nil
}
