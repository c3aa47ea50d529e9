// Package catalog provides per-run snapshots of project package listings and package metadata.
package catalog

import (
	"context"
	"errors"
	"slices"
	"sync"

	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Catalog lazily lists the packages of projects and keeps each listing for the
// rest of the run. Ignored package names are never part of a listing.
type Catalog struct {
	svc    ports.BuildService
	cfg    *domain.Config
	logger ports.Logger

	mu       sync.Mutex
	projects map[string][]string
}

// New creates an empty Catalog.
func New(svc ports.BuildService, cfg *domain.Config, logger ports.Logger) *Catalog {
	return &Catalog{
		svc:      svc,
		cfg:      cfg,
		logger:   logger,
		projects: make(map[string][]string),
	}
}

// Packages returns the sorted, non-ignored package names of project. The first
// call per project reads the listing; a missing project is logged and yields
// an empty listing.
func (c *Catalog) Packages(ctx context.Context, project string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if names, ok := c.projects[project]; ok {
		return names, nil
	}

	listed, err := c.svc.SourcePackages(ctx, project)
	if err != nil {
		if !errors.Is(err, domain.ErrRemoteNotFound) {
			return nil, err
		}
		c.logger.Error(zerr.With(zerr.Wrap(err, "project listing unavailable"), "project", project))
		listed = nil
	}

	names := make([]string, 0, len(listed))
	for _, name := range listed {
		if c.cfg.IsIgnored(name) {
			c.logger.Debug(name + " in ignore list")
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	names = slices.Compact(names)

	c.projects[project] = names
	return names, nil
}

// Contains reports whether pkg is listed in project.
func (c *Catalog) Contains(ctx context.Context, project, pkg string) (bool, error) {
	names, err := c.Packages(ctx, project)
	if err != nil {
		return false, err
	}
	_, found := slices.BinarySearch(names, pkg)
	return found, nil
}

// Preload lists every given project up front.
func (c *Catalog) Preload(ctx context.Context, projects ...string) error {
	for _, p := range projects {
		if _, err := c.Packages(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
