package scorer

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// HealthPinger pings one miner's health endpoint. A non-nil error means the
// miner did not respond. EpochLoop sets no ping timeout of its own; the
// only bound is the context passed to Run.
type HealthPinger interface {
	PingMiner(ctx context.Context, uid UID) error
}

const (
	backoffBase = 60 * time.Second
	backoffCap  = 600 * time.Second
)

// EpochLoop drives a ChainNeuron and a Scorer on a ticker paced by the
// chain's epoch tempo (§4.7, §5). It is not safe for concurrent Run calls;
// one EpochLoop drives exactly one validator process's epoch cadence.
type EpochLoop struct {
	neuron   ChainNeuron
	scorer   *Scorer
	pinger   HealthPinger
	interval time.Duration
	isActive func() bool
	log      *zap.Logger

	consecutiveErrors int
}

// NewEpochLoop constructs an EpochLoop. isActive reports whether any
// signals are currently being processed (§4.7: "active epochs ... use one
// weighting; inactive epochs use a baseline"); log may be nil.
func NewEpochLoop(neuron ChainNeuron, scorer *Scorer, pinger HealthPinger, interval time.Duration, isActive func() bool, log *zap.Logger) *EpochLoop {
	if log == nil {
		log = zap.NewNop()
	}
	return &EpochLoop{
		neuron:   neuron,
		scorer:   scorer,
		pinger:   pinger,
		interval: interval,
		isActive: isActive,
		log:      log,
	}
}

// Run drives the epoch loop until ctx is cancelled, at which point it
// returns ctx.Err(). Each tick synchronizes the metagraph (backing off
// exponentially on failure per §5: sleep = min(60*2^n, 600) seconds), fans
// out health pings to every registered miner, and commits a freshly
// computed weight vector.
func (e *EpochLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := e.tick(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				e.log.Warn("epoch_tick_failed", zap.Error(err))
			}
		}
	}
}

func (e *EpochLoop) tick(ctx context.Context) error {
	if err := e.neuron.SyncMetagraph(ctx); err != nil {
		e.consecutiveErrors++
		wait := backoffDuration(e.consecutiveErrors)
		e.log.Warn("metagraph_sync_failed", zap.Error(err), zap.Duration("backoff", wait))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
		}
		return nil
	}
	e.consecutiveErrors = 0

	if !e.neuron.IsRegistered() {
		e.log.Warn("validator_not_registered")
		return nil
	}

	e.runHealthChecks(ctx)

	weights := e.scorer.ComputeWeights(e.isActive())
	if err := e.neuron.SetWeights(ctx, weights); err != nil {
		return err
	}
	e.log.Info("weights_set", zap.Int("miners", len(weights)))
	e.scorer.Reset()
	return nil
}

// runHealthChecks pings every registered miner concurrently, recording
// each outcome against the Scorer. Individual ping failures do not abort
// the fan-out; only a cancelled ctx does.
func (e *EpochLoop) runHealthChecks(ctx context.Context) {
	if e.pinger == nil {
		return
	}
	uids := e.neuron.MinerUIDs()

	group, groupCtx := errgroup.WithContext(ctx)
	for _, uid := range uids {
		uid := uid
		group.Go(func() error {
			err := e.pinger.PingMiner(groupCtx, uid)
			e.scorer.RecordHealthCheck(uid, err == nil)
			return nil
		})
	}
	_ = group.Wait()
}

// backoffDuration implements sleep = min(60 * 2^consecutiveErrors, 600)
// seconds (§5). consecutiveErrors is always >= 1 when called.
func backoffDuration(consecutiveErrors int) time.Duration {
	d := backoffBase
	for i := 0; i < consecutiveErrors; i++ {
		if d >= backoffCap {
			return backoffCap
		}
		d *= 2
	}
	if d > backoffCap {
		return backoffCap
	}
	return d
}
