package resolver

import (
	"context"

	"go.trai.ch/lookup/internal/core/domain"
)

// Rule names, in evaluation order.
const (
	RuleSubpackage = "subpackage"
	RuleDevel      = "devel"
	RulePrior      = "prior"
	RulePreference = "preference"
	RuleFork       = "fork"
)

type verdictKind uint8

const (
	verdictNext verdictKind = iota
	verdictKeep
	verdictSettle
)

// Verdict is the result of evaluating one rule.
type Verdict struct {
	kind       verdictKind
	provenance domain.Provenance
}

// Next lets the following rule decide.
func Next() Verdict { return Verdict{kind: verdictNext} }

// Keep stops evaluation without touching the stored provenance.
func Keep() Verdict { return Verdict{kind: verdictKeep} }

// Settle stops evaluation and records p when it differs from the stored provenance.
func Settle(p domain.Provenance) Verdict { return Verdict{kind: verdictSettle, provenance: p} }

// Final reports whether the verdict ends evaluation.
func (v Verdict) Final() bool { return v.kind != verdictNext }

// Provenance returns the settled provenance and whether the verdict settles one.
func (v Verdict) Provenance() (domain.Provenance, bool) {
	return v.provenance, v.kind == verdictSettle
}

// Subject is the package under resolution.
type Subject struct {
	Package string
	// Stored is the provenance recorded before this resolution.
	Stored domain.Provenance
	// Current is the source view of the package in the primary project.
	Current *domain.SourceInfo
	// WorkaroundSourced is set when the content was found in the workaround
	// project while another provenance is recorded.
	WorkaroundSourced bool
}

// Rule is one step of the resolution policy.
type Rule struct {
	Name string
	Eval func(ctx context.Context, s *Subject) (Verdict, error)
}
