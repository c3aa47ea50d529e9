// Package resolver decides the provenance of packages and keeps the lookup
// session in line with it.
package resolver

import (
	"context"
	"errors"

	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/lookup/internal/engine/catalog"
)

// MatchWindow is the number of most recent revisions examined per candidate.
// Older matches are not found.
const MatchWindow = 5

// Matcher searches the recent history of a package for given content.
type Matcher struct {
	svc     ports.BuildService
	catalog *catalog.Catalog
}

// NewMatcher creates a Matcher.
func NewMatcher(svc ports.BuildService, cat *catalog.Catalog) *Matcher {
	return &Matcher{svc: svc, catalog: cat}
}

// FindMatchingRevision returns the newest of the last MatchWindow revisions of
// project/pkg whose verified content hash equals hash, or nil.
// Unless includeDeleted is set, a package missing from the project listing
// never matches and its history is not read.
func (m *Matcher) FindMatchingRevision(
	ctx context.Context,
	project, pkg, hash string,
	includeDeleted bool,
) (*domain.Revision, error) {
	if hash == "" {
		return nil, nil
	}

	if !includeDeleted {
		listed, err := m.catalog.Contains(ctx, project, pkg)
		if err != nil {
			return nil, err
		}
		if !listed {
			return nil, nil
		}
	}

	revs, err := m.svc.History(ctx, project, pkg, includeDeleted)
	if err != nil {
		if errors.Is(err, domain.ErrRemoteNotFound) {
			return nil, nil
		}
		return nil, err
	}

	for i := len(revs) - 1; i >= 0 && i >= len(revs)-MatchWindow; i-- {
		info, err := m.svc.SourceInfo(ctx, project, pkg, revs[i].SrcMD5)
		if err != nil {
			return nil, err
		}
		if info.VerifyMD5 == hash {
			rev := revs[i]
			return &rev, nil
		}
	}
	return nil, nil
}
