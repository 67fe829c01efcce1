package batch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsstring/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsstring/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsstring/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsstring/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsstring/internal/core/ports"
)

// NodeID is the unique identifier for the batch engine Graft node.
const NodeID graft.ID = "engine.batch"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ReaderNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			reader, err := graft.Dep[ports.InputReader](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ReportStore](ctx)
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

			return NewEngine(reader, hasher, store, tracer, log), nil
		},
	})
}
