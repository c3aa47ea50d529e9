package obs

import (
	"context"
	"encoding/xml"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	lookupPackage  = "00Meta"
	lookupFile     = "lookup.yml"
	feedTitleStart = "In "
)

// pendingStates are the request states that still block a new request.
const pendingStates = "new,review,declined"

// Service implements ports.BuildService on top of a Remote.
type Service struct {
	remote ports.Remote
}

// NewService creates a Service reading and writing through remote.
func NewService(remote ports.Remote) *Service {
	return &Service{remote: remote}
}

// SourcePackages lists the package names of project.
func (s *Service) SourcePackages(ctx context.Context, project string) ([]string, error) {
	var dir Directory
	if err := s.getXML(ctx, domain.NewResource("source", project), &dir); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list packages"), "project", project)
	}

	names := make([]string, 0, len(dir.Entries))
	for _, e := range dir.Entries {
		names = append(names, e.Name)
	}
	return names, nil
}

// SearchPackageMeta returns the metadata of every package in project.
func (s *Service) SearchPackageMeta(ctx context.Context, project string) ([]domain.PackageMeta, error) {
	res := domain.NewResource("search", "package").With("match", fmt.Sprintf("[@project='%s']", project))

	var coll Collection
	if err := s.getXML(ctx, res, &coll); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to search packages"), "project", project)
	}

	metas := make([]domain.PackageMeta, 0, len(coll.Packages))
	for _, p := range coll.Packages {
		meta := domain.PackageMeta{Name: p.Name}
		if p.Devel != nil && p.Devel.Project != "" {
			pkg := p.Devel.Package
			if pkg == "" {
				pkg = p.Name
			}
			meta.Devel = &domain.PackageRef{Project: p.Devel.Project, Package: pkg}
		}
		metas = append(metas, meta)
	}
	return metas, nil
}

// History returns the revisions of project/pkg ordered oldest to newest.
func (s *Service) History(ctx context.Context, project, pkg string, deleted bool) ([]domain.Revision, error) {
	res := domain.NewResource("source", project, pkg, "_history")
	if deleted {
		res = res.With("deleted", "1")
	}

	var list RevisionList
	if err := s.getXML(ctx, res, &list); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "failed to read history"), "project", project), "package", pkg)
	}

	revs := make([]domain.Revision, 0, len(list.Revisions))
	for _, r := range list.Revisions {
		revs = append(revs, domain.Revision{
			Rev:    r.Rev,
			SrcMD5: r.SrcMD5,
			Time:   time.Unix(r.Time, 0).UTC(),
		})
	}
	return revs, nil
}

// SourceInfo returns the expanded source view of project/pkg at rev.
func (s *Service) SourceInfo(ctx context.Context, project, pkg, rev string) (*domain.SourceInfo, error) {
	res := domain.NewResource("source", project, pkg).With("view", "info")
	if rev != "" {
		res = res.With("rev", rev)
	}

	var elem SourceInfoElem
	if err := s.getXML(ctx, res, &elem); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "failed to read source info"), "project", project), "package", pkg)
	}

	info := &domain.SourceInfo{
		Package:   elem.Package,
		SrcMD5:    elem.SrcMD5,
		VerifyMD5: elem.VerifyMD5,
	}
	if elem.Linked != nil {
		info.Linked = &domain.PackageRef{Project: elem.Linked.Project, Package: elem.Linked.Package}
	}
	return info, nil
}

// LatestCommits returns the sorted names of recently changed packages in project.
func (s *Service) LatestCommits(ctx context.Context, project string) ([]string, error) {
	var feed Feed
	if err := s.getXML(ctx, domain.NewResource("project", "latest_commits", project), &feed); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read latest commits"), "project", project)
	}

	seen := make(map[string]struct{})
	var names []string
	for _, e := range feed.Entries {
		rest, ok := strings.CutPrefix(e.Title, feedTitleStart)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(rest, " ")
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// PendingRequests returns the open requests of typ targeting exactly target.
// The server matches project and package case-insensitively, so the result
// is filtered again here.
func (s *Service) PendingRequests(
	ctx context.Context,
	target domain.PackageRef,
	typ domain.RequestType,
) ([]domain.PendingRequest, error) {
	res := domain.NewResource("request").
		With("view", "collection").
		With("types", string(typ)).
		With("states", pendingStates).
		With("project", target.Project).
		With("package", target.Package)

	var coll RequestCollection
	if err := s.getXML(ctx, res, &coll); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to query requests"), "target", target.String())
	}

	var pending []domain.PendingRequest
	for _, r := range coll.Requests {
		for _, a := range r.Actions {
			if a.Type != string(typ) || a.Target.Project != target.Project || a.Target.Package != target.Package {
				continue
			}
			pending = append(pending, domain.PendingRequest{
				ID:     domain.RequestID(r.ID),
				Type:   typ,
				State:  r.State.Name,
				Target: target,
			})
			break
		}
	}
	return pending, nil
}

// ReadLookup returns the raw lookup document of project.
func (s *Service) ReadLookup(ctx context.Context, project string) ([]byte, error) {
	data, err := s.remote.Get(ctx, lookupResource(project))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read lookup document"), "project", project)
	}
	return data, nil
}

// WriteLookup overwrites the lookup document of project.
func (s *Service) WriteLookup(ctx context.Context, project string, data []byte) error {
	if err := s.remote.Put(ctx, lookupResource(project), data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLookupWriteFailed.Error()), "project", project)
	}
	return nil
}

func lookupResource(project string) domain.Resource {
	return domain.NewResource("source", project, lookupPackage, lookupFile)
}

func (s *Service) getXML(ctx context.Context, res domain.Resource, v any) error {
	data, err := s.remote.Get(ctx, res)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(data, v); err != nil {
		parseErr := zerr.Wrap(domain.ErrRemoteParseFailed, err.Error())
		return zerr.With(parseErr, "resource", res.String())
	}
	return nil
}

var _ ports.BuildService = (*Service)(nil)
