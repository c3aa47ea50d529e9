package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lookup/internal/adapters/logger"
	"go.trai.ch/lookup/internal/core/ports"
)

// NodeID is the unique identifier for the request submitter Graft node.
const NodeID graft.ID = "adapter.submitter"

func init() {
	graft.Register(graft.Node[ports.RequestSubmitter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RequestSubmitter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSubmitter(log), nil
		},
	})
}
