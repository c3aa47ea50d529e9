package domain

import "time"

// PackageRef names a package inside a project.
type PackageRef struct {
	Project string
	Package string
}

// String renders the reference as project/package.
func (r PackageRef) String() string {
	return r.Project + "/" + r.Package
}

// SourceInfo is the expanded source view of a package at one revision.
type SourceInfo struct {
	Package string
	// SrcMD5 identifies the revision.
	SrcMD5 string
	// VerifyMD5 is the verified content hash over the expanded source tree.
	VerifyMD5 string
	// Linked is set when the package is a link to another package.
	Linked *PackageRef
}

// Revision is one entry of a package's revision history.
type Revision struct {
	Rev    string
	SrcMD5 string
	Time   time.Time
}

// PackageMeta carries the annotations the build service records for a package.
type PackageMeta struct {
	Name  string
	Devel *PackageRef
}
