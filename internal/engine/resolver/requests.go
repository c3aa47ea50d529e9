package resolver

import (
	"context"
	"strings"

	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/zerr"
)

// RequestFinder looks up pending requests for a single package.
type RequestFinder struct {
	svc ports.BuildService
}

// NewRequestFinder creates a RequestFinder.
func NewRequestFinder(svc ports.BuildService) *RequestFinder {
	return &RequestFinder{svc: svc}
}

// FindAll returns every pending request of typ targeting target.
func (f *RequestFinder) FindAll(
	ctx context.Context,
	target domain.PackageRef,
	typ domain.RequestType,
) ([]domain.PendingRequest, error) {
	return f.svc.PendingRequests(ctx, target, typ)
}

// FindOne returns the pending request of typ targeting target, or nil.
// More than one pending request is reported as domain.ErrAmbiguousRequests.
func (f *RequestFinder) FindOne(
	ctx context.Context,
	target domain.PackageRef,
	typ domain.RequestType,
) (*domain.PendingRequest, error) {
	pending, err := f.FindAll(ctx, target, typ)
	if err != nil {
		return nil, err
	}

	switch len(pending) {
	case 0:
		return nil, nil
	case 1:
		return &pending[0], nil
	default:
		ids := make([]string, len(pending))
		for i, r := range pending {
			ids[i] = string(r.ID)
		}
		ambiguous := zerr.Wrap(domain.ErrAmbiguousRequests, "multiple requests for "+target.String()+": "+strings.Join(ids, ", "))
		return nil, zerr.With(ambiguous, "type", string(typ))
	}
}
