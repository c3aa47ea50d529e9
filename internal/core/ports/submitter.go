package ports

import (
	"context"

	"go.trai.ch/lookup/internal/core/domain"
)

// RequestSubmitter files requests against the build service.
//
//go:generate mockgen -source=submitter.go -destination=mocks/mock_submitter.go -package=mocks
type RequestSubmitter interface {
	// SubmitDeleteRequest files a deletion request and returns its identifier.
	SubmitDeleteRequest(ctx context.Context, req domain.DeleteRequest) (domain.RequestID, error)
}
