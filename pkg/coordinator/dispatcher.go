package coordinator

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/shoal-project/shoal/pkg/models"
)

// Dispatcher starts a datafeed runner on the selected node. Implementations
// own the transport; the coordinator only decides where the runner goes.
// Dispatch must be safe for concurrent use.
type Dispatcher interface {
	Dispatch(ctx context.Context, datafeed *models.Datafeed, nodeID string) error
}

// NoopDispatcher accepts every dispatch without doing anything. Useful for
// wiring and for dry runs of the decision loop.
type NoopDispatcher struct{}

func NewNoopDispatcher() *NoopDispatcher {
	return &NoopDispatcher{}
}

func (*NoopDispatcher) Dispatch(ctx context.Context, datafeed *models.Datafeed, nodeID string) error {
	log.Ctx(ctx).Debug().Msgf("noop dispatch of datafeed %s to node %s", datafeed.ID, nodeID)
	return nil
}

// compile-time check
var _ Dispatcher = (*NoopDispatcher)(nil)
