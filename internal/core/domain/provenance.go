package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ProvenanceKind identifies which variant a Provenance holds.
type ProvenanceKind uint8

const (
	// KindUnset means no lookup entry exists for the package.
	KindUnset ProvenanceKind = iota
	// KindInherited means the content is a historical revision of Project/<same package>.
	KindInherited
	// KindDevel means the package is explicitly developed in Project/Package.
	KindDevel
	// KindSubpackage means the package is a link to Package in the same project.
	KindSubpackage
	// KindFork means no candidate project contains the current content.
	KindFork
)

// Persisted forms of the non-project provenance variants.
const (
	forkMarker       = "FORK"
	develPrefix      = "Devel;"
	subpackagePrefix = "subpackage of "
)

// Provenance describes where the current content of a package originated from.
// The zero value is the Unset provenance.
type Provenance struct {
	Kind    ProvenanceKind
	Project string
	Package string
}

// Inherited returns the provenance of a package taken over from project.
func Inherited(project string) Provenance {
	return Provenance{Kind: KindInherited, Project: project}
}

// DevelSource returns the provenance of a package developed in project/pkg.
func DevelSource(project, pkg string) Provenance {
	return Provenance{Kind: KindDevel, Project: project, Package: pkg}
}

// SubpackageOf returns the provenance of a package linking to pkg.
func SubpackageOf(pkg string) Provenance {
	return Provenance{Kind: KindSubpackage, Package: pkg}
}

// Fork returns the provenance of a package that diverged from every candidate.
func Fork() Provenance {
	return Provenance{Kind: KindFork}
}

// IsSet reports whether p holds any variant other than Unset.
func (p Provenance) IsSet() bool {
	return p.Kind != KindUnset
}

// String returns the persisted form of p. Unset renders as the empty string.
func (p Provenance) String() string {
	switch p.Kind {
	case KindInherited:
		return p.Project
	case KindDevel:
		return develPrefix + p.Project + ";" + p.Package
	case KindSubpackage:
		return subpackagePrefix + p.Package
	case KindFork:
		return forkMarker
	default:
		return ""
	}
}

// ParseProvenance decodes the persisted form of a provenance entry.
func ParseProvenance(s string) (Provenance, error) {
	switch {
	case s == "":
		return Provenance{}, nil
	case s == forkMarker:
		return Fork(), nil
	case strings.HasPrefix(s, develPrefix):
		parts := strings.Split(s, ";")
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			return Provenance{}, zerr.With(zerr.Wrap(ErrInvalidProvenance, "cannot decode lookup entry"), "value", s)
		}
		return DevelSource(parts[1], parts[2]), nil
	case strings.HasPrefix(s, subpackagePrefix):
		pkg := strings.TrimPrefix(s, subpackagePrefix)
		if pkg == "" {
			return Provenance{}, zerr.With(zerr.Wrap(ErrInvalidProvenance, "cannot decode lookup entry"), "value", s)
		}
		return SubpackageOf(pkg), nil
	default:
		return Inherited(s), nil
	}
}
