package catalog

import (
	"context"

	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/zerr"
)

// MetadataIndex is a snapshot of the package metadata of one project.
type MetadataIndex struct {
	metas map[string]domain.PackageMeta
}

// BuildMetadataIndex fetches the metadata of all packages of project in one query.
func BuildMetadataIndex(ctx context.Context, svc ports.BuildService, project string) (*MetadataIndex, error) {
	metas, err := svc.SearchPackageMeta(ctx, project)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build metadata index")
	}

	idx := &MetadataIndex{metas: make(map[string]domain.PackageMeta, len(metas))}
	for _, m := range metas {
		idx.metas[m.Name] = m
	}
	return idx, nil
}

// Lookup returns the metadata of pkg. Absence means the build service records
// no annotations for it.
func (idx *MetadataIndex) Lookup(pkg string) (domain.PackageMeta, bool) {
	m, ok := idx.metas[pkg]
	return m, ok
}

// Devel returns the devel project annotation of pkg, if any.
func (idx *MetadataIndex) Devel(pkg string) *domain.PackageRef {
	return idx.metas[pkg].Devel
}
