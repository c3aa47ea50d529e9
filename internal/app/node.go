package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lookup/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lookup/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lookup/internal/adapters/obs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/lookup/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/lookup/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/lookup/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups the objects the command line needs.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Tracer       ports.Tracer
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			obs.NodeID,
			shell.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	connector, err := graft.Dep[ports.ServiceConnector](ctx)
	if err != nil {
		return nil, err
	}

	submitter, err := graft.Dep[ports.RequestSubmitter](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, connector, submitter, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		ConfigLoader: loader,
		Tracer:       tracer,
	}, nil
}
