// Package coordinator owns the cadence around the assignment decision: it
// watches the cluster registry, re-evaluates pending datafeeds against each
// new snapshot, and hands placeable feeds to a Dispatcher. The decision
// itself stays in pkg/selector; the coordinator never starts tasks and never
// retries beyond its natural re-evaluation cadence.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/shoal-project/shoal/pkg/cluster"
	"github.com/shoal-project/shoal/pkg/lib/validate"
	"github.com/shoal-project/shoal/pkg/selector"
	"github.com/shoal-project/shoal/pkg/telemetry"
)

const (
	// DefaultReconcileInterval is how often pending datafeeds are re-evaluated
	// even when no registry change was observed.
	DefaultReconcileInterval = 30 * time.Second
)

type CoordinatorParams struct {
	Registry   *cluster.Registry
	Dispatcher Dispatcher
	// ReconcileInterval is the interval at which pending datafeeds are
	// re-evaluated in the absence of registry notifications.
	ReconcileInterval time.Duration
	// Clock is the clock used for time-based operations.
	// If not provided, the system clock is used.
	Clock clock.Clock
}

type Coordinator struct {
	registry   *cluster.Registry
	dispatcher Dispatcher
	interval   time.Duration
	clock      clock.Clock

	mu      sync.Mutex
	pending map[string]struct{}

	kick      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	stopChan  chan struct{}
	waitGroup sync.WaitGroup
	running   atomic.Bool
}

func NewCoordinator(params CoordinatorParams) (*Coordinator, error) {
	if params.ReconcileInterval == 0 {
		params.ReconcileInterval = DefaultReconcileInterval
	}
	if params.Clock == nil {
		params.Clock = clock.New()
	}

	err := errors.Join(
		validate.IsNotNil(params.Registry, "registry cannot be nil"),
		validate.IsNotNil(params.Dispatcher, "dispatcher cannot be nil"),
		validate.IsGreaterThanZero(params.ReconcileInterval, "reconcile interval must be greater than zero"),
	)
	if err != nil {
		return nil, fmt.Errorf("error validating coordinator params: %w", err)
	}

	return &Coordinator{
		registry:   params.Registry,
		dispatcher: params.Dispatcher,
		interval:   params.ReconcileInterval,
		clock:      params.Clock,
		pending:    make(map[string]struct{}),
		kick:       make(chan struct{}, 1),
		stopChan:   make(chan struct{}),
	}, nil
}

// IsRunning returns true while the evaluation loop is active.
func (c *Coordinator) IsRunning() bool {
	return c.running.Load()
}

// Start launches the evaluation loop. Subsequent calls are no-ops.
func (c *Coordinator) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		c.waitGroup.Add(1)
		go c.run(ctx)
	})
}

// Stop terminates the evaluation loop and waits for it to exit, or for the
// context to be done, whichever comes first.
func (c *Coordinator) Stop(ctx context.Context) {
	c.stopOnce.Do(func() {
		close(c.stopChan)

		loopDone := make(chan struct{})
		go func() {
			c.waitGroup.Wait()
			close(loopDone)
		}()

		select {
		case <-loopDone:
		case <-ctx.Done():
		}
	})
}

// StartDatafeed admits a datafeed into the coordinator. The admission check
// is EnsureAssignable against the current snapshot: a datafeed that cannot be
// assigned right now is rejected with the selector's ErrNoNodeFound rather
// than silently queued. Admitted feeds stay pending until a node is selected
// and dispatch succeeds.
func (c *Coordinator) StartDatafeed(ctx context.Context, datafeedID string) error {
	snap := c.registry.Snapshot()
	if err := selector.EnsureAssignable(ctx, snap, datafeedID); err != nil {
		return err
	}

	c.mu.Lock()
	c.pending[datafeedID] = struct{}{}
	c.mu.Unlock()

	log.Ctx(ctx).Info().Msgf("datafeed %s admitted, awaiting placement", datafeedID)
	c.signal()
	return nil
}

// StopDatafeed withdraws a datafeed from the coordinator. Withdrawing a feed
// that is not pending is a no-op.
func (c *Coordinator) StopDatafeed(ctx context.Context, datafeedID string) {
	c.mu.Lock()
	_, wasPending := c.pending[datafeedID]
	delete(c.pending, datafeedID)
	c.mu.Unlock()

	if wasPending {
		log.Ctx(ctx).Info().Msgf("datafeed %s withdrawn", datafeedID)
	}
}

// Pending returns the ids of datafeeds awaiting placement, sorted.
func (c *Coordinator) Pending() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := lo.Keys(c.pending)
	slices.Sort(ids)
	return ids
}

func (c *Coordinator) run(ctx context.Context) {
	defer c.waitGroup.Done()
	c.running.Store(true)
	defer c.running.Store(false)

	changes, unsubscribe := c.registry.Subscribe()
	defer unsubscribe()

	ticker := c.clock.Ticker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-changes:
			c.evaluatePending(ctx)
		case <-c.kick:
			c.evaluatePending(ctx)
		case <-ticker.C:
			c.evaluatePending(ctx)
		case <-ctx.Done():
			log.Ctx(ctx).Debug().Msg("Context cancelled, stopping datafeed coordinator")
			return
		case <-c.stopChan:
			log.Ctx(ctx).Debug().Msg("Stop channel closed, stopping datafeed coordinator")
			return
		}
	}
}

func (c *Coordinator) evaluatePending(ctx context.Context) {
	pending := c.Pending()
	if len(pending) == 0 {
		return
	}
	stop := telemetry.Timer(ctx, evaluationRoundDuration)
	defer stop()

	// One snapshot and one eval id per round so every log line of the round
	// correlates and every feed sees the same state.
	snap := c.registry.Snapshot()
	evalID := uuid.NewString()
	for _, datafeedID := range pending {
		c.evaluate(ctx, snap, evalID, datafeedID)
	}
}

func (c *Coordinator) evaluate(ctx context.Context, snap *cluster.Snapshot, evalID string, datafeedID string) {
	assignment, err := selector.SelectNode(ctx, snap, datafeedID)
	if err != nil {
		// The datafeed or its job left the catalog while pending. No later
		// snapshot can make the feed placeable again, so drop it.
		log.Ctx(ctx).Warn().Err(err).Str("EvalID", evalID).
			Msgf("dropping pending datafeed %s", datafeedID)
		c.remove(datafeedID)
		evaluationCount.Add(ctx, 1, outcomeAttribute(AttrOutcomeDropped))
		return
	}
	if !assignment.IsAssigned() {
		log.Ctx(ctx).Debug().Str("EvalID", evalID).
			Msgf("datafeed %s not placed: %s", datafeedID, assignment)
		evaluationCount.Add(ctx, 1, outcomeAttribute(AttrOutcomeUnassigned))
		return
	}

	datafeed, ok := snap.Datafeed(datafeedID)
	if !ok {
		// SelectNode just resolved it against this same immutable snapshot.
		log.Ctx(ctx).Error().Str("EvalID", evalID).
			Msgf("datafeed %s vanished from its own snapshot", datafeedID)
		c.remove(datafeedID)
		return
	}
	if err := c.dispatcher.Dispatch(ctx, datafeed, assignment.NodeID); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("EvalID", evalID).
			Msgf("failed to dispatch datafeed %s to node %s", datafeedID, assignment.NodeID)
		evaluationCount.Add(ctx, 1, outcomeAttribute(AttrOutcomeDispatchFailed))
		return
	}

	log.Ctx(ctx).Info().Str("EvalID", evalID).
		Msgf("dispatched datafeed %s to node %s", datafeedID, assignment.NodeID)
	c.remove(datafeedID)
	evaluationCount.Add(ctx, 1, outcomeAttribute(AttrOutcomeDispatched))
}

func (c *Coordinator) remove(datafeedID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, datafeedID)
}

func (c *Coordinator) signal() {
	select {
	case c.kick <- struct{}{}:
	default:
	}
}
