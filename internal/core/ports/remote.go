// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/lookup/internal/core/domain"
)

// Remote is the raw read/write access to the build service.
//
//go:generate mockgen -source=remote.go -destination=mocks/mock_remote.go -package=mocks
type Remote interface {
	// Get reads the resource. A missing resource yields domain.ErrRemoteNotFound.
	Get(ctx context.Context, res domain.Resource) ([]byte, error)

	// Put overwrites the resource with data.
	Put(ctx context.Context, res domain.Resource, data []byte) error

	// Delete removes the resource.
	Delete(ctx context.Context, res domain.Resource) error
}

// ServiceConnector opens typed access to a build service instance.
type ServiceConnector interface {
	// Connect returns a BuildService for the API and access mode described by opts.
	Connect(opts domain.ConnectOptions) (BuildService, error)
}
