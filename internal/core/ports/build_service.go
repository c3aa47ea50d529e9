package ports

import (
	"context"

	"go.trai.ch/lookup/internal/core/domain"
)

// BuildService is the typed query surface of the build service used by the engine.
//
//go:generate mockgen -source=build_service.go -destination=mocks/mock_build_service.go -package=mocks
type BuildService interface {
	// SourcePackages lists the package names of project in server order.
	SourcePackages(ctx context.Context, project string) ([]string, error)

	// SearchPackageMeta returns the metadata of every package in project.
	SearchPackageMeta(ctx context.Context, project string) ([]domain.PackageMeta, error)

	// History returns the revisions of project/pkg ordered oldest to newest.
	// When deleted is set the history of a deleted package is returned.
	History(ctx context.Context, project, pkg string, deleted bool) ([]domain.Revision, error)

	// SourceInfo returns the expanded source view of project/pkg at rev,
	// or at the current revision when rev is empty.
	SourceInfo(ctx context.Context, project, pkg, rev string) (*domain.SourceInfo, error)

	// LatestCommits returns the names of recently changed packages in project.
	LatestCommits(ctx context.Context, project string) ([]string, error)

	// PendingRequests returns the open requests of the given type targeting project/pkg.
	PendingRequests(ctx context.Context, target domain.PackageRef, typ domain.RequestType) ([]domain.PendingRequest, error)

	// ReadLookup returns the raw lookup document of project.
	ReadLookup(ctx context.Context, project string) ([]byte, error)

	// WriteLookup overwrites the lookup document of project.
	WriteLookup(ctx context.Context, project string, data []byte) error
}
