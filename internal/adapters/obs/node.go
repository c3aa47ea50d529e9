package obs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lookup/internal/adapters/logger"
	"go.trai.ch/lookup/internal/core/ports"
)

// NodeID is the unique identifier for the build service connector Graft node.
const NodeID graft.ID = "adapter.obs"

func init() {
	graft.Register(graft.Node[ports.ServiceConnector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ServiceConnector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewConnector(log), nil
		},
	})
}
