// Package purchase implements PurchaseOrchestrator (C6): it ties a buyer's
// availability check to MPCSetMembership (C4) and, on a favorable decision,
// to ShareStore.Release (C3) across the validators holding shares for the
// signal (§4.6).
package purchase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Djinn-Inc/djinn-sub001/field"
	"github.com/Djinn-Inc/djinn-sub001/mpc"
	"github.com/Djinn-Inc/djinn-sub001/shamir"
	"github.com/Djinn-Inc/djinn-sub001/sharestore"
)

// Peer is a remote validator that this orchestrator fans out to. The two
// methods correspond to the two network calls PurchaseOrchestrator makes
// during a purchase: contributing to an MPC gate-decision session, and
// releasing the peer's held key share once the gate decides Available.
type Peer interface {
	// Contribute asks the peer to compute and return its local MPC
	// contribution for the given session and gate.
	Contribute(ctx context.Context, sessionID string, gateIdx int) (mpc.Contribution, error)

	// Release asks the peer to release its key share for signalID to
	// buyerAddress, returning the encrypted key share ciphertext.
	Release(ctx context.Context, buyerAddress, signalID string) ([]byte, error)
}

// Request is the input to Purchase (§6 POST /v1/purchase).
type Request struct {
	BuyerAddress     string
	SignalID         string
	GateIdx          int
	AvailableIndices []int
	LocalShare       shamir.Share
	ParticipatingXs  []field.Element
}

// Orchestrator drives a single validator's side of a purchase (§4.6).
type Orchestrator struct {
	store     *sharestore.Store
	sessions  *mpc.Table
	peers     []Peer
	threshold int
	timeout   time.Duration
	log       *zap.Logger
}

// New constructs an Orchestrator. peers is this validator's view of the
// other validators holding shares for signals it serves; threshold is the
// MPC decision threshold (shamir.SignalThreshold in production).
func New(store *sharestore.Store, sessions *mpc.Table, peers []Peer, threshold int, timeout time.Duration, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		store:     store,
		sessions:  sessions,
		peers:     peers,
		threshold: threshold,
		timeout:   timeout,
		log:       log,
	}
}

// Purchase decides availability for req.SignalID via MPCSetMembership and,
// if available, collects encrypted key shares from the local store and
// from peers until at least shamir.SignalThreshold shares are gathered.
// Each share returned on a repeated call with the same (buyer, signal) is
// byte-identical to that validator's share on earlier calls, because
// sharestore.Store.Release is idempotent per (signalID, buyerAddress) and
// every peer's store has the same property (§4.3, §4.6). Peer shares are
// taken in the order peers answer, so the order of the returned list, and
// which peers' shares it holds when more peers answer than are needed, can
// differ between calls.
func (o *Orchestrator) Purchase(ctx context.Context, req Request) Result {
	correlationID := uuid.New()
	log := o.log.With(
		zap.String("correlation_id", correlationID.String()),
		zap.String("signal_id", req.SignalID),
		zap.String("buyer_address", req.BuyerAddress),
	)
	log.Info("purchase_requested")

	gateSet := make(map[int]struct{}, len(req.AvailableIndices))
	for _, idx := range req.AvailableIndices {
		gateSet[idx] = struct{}{}
	}

	sess := mpc.NewSession(req.SignalID, req.GateIdx, gateSet, o.threshold, o.timeout, time.Now())
	if err := o.sessions.Create(sess); err != nil {
		// A session for this signal is already in flight; join it instead
		// of starting a second one.
		existing, getErr := o.sessions.Get(req.SignalID)
		if getErr == nil {
			sess = existing
		}
	}

	decision, err := o.decide(ctx, sess, req)
	if err != nil {
		log.Warn("purchase_failed", zap.Error(err))
		return errResult(KindInsufficientValidators)
	}
	if !decision.Available {
		log.Info("purchase_unavailable")
		return unavailable()
	}

	shares, err := o.collectShares(ctx, req)
	if err != nil {
		log.Warn("purchase_store_miss", zap.Error(err))
		return errResult(KindStoreMiss)
	}
	log.Info("purchase_available", zap.Int("shares", len(shares)))
	return available(shares)
}

func (o *Orchestrator) decide(ctx context.Context, sess *mpc.Session, req Request) (mpc.Result, error) {
	if result, state := sess.Result(); state == mpc.Decided || state == mpc.Expired {
		return result, nil
	}

	deadlineCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	local := mpc.ComputeLocalContribution(req.SignalID, req.GateIdx, req.LocalShare, req.ParticipatingXs, toGateSet(req))
	if _, err := sess.Contribute(local, time.Now()); err != nil && err != mpc.ErrDuplicateContributor {
		o.log.Warn("local_contribution_rejected", zap.Error(err))
	}

	group, groupCtx := errgroup.WithContext(deadlineCtx)
	for _, peer := range o.peers {
		peer := peer
		group.Go(func() error {
			contribution, err := peer.Contribute(groupCtx, req.SignalID, req.GateIdx)
			if err != nil {
				o.log.Warn("peer_contribution_failed", zap.Error(err))
				return nil
			}
			if _, err := sess.Contribute(contribution, time.Now()); err != nil {
				o.log.Debug("contribution_rejected", zap.Error(err))
			}
			return nil
		})
	}
	_ = group.Wait()

	sess.CheckExpiry(time.Now())

	result, state := sess.Result()
	if state != mpc.Decided && state != mpc.Expired {
		return mpc.Result{}, mpc.ErrInsufficientContributions
	}
	return result, nil
}

func (o *Orchestrator) collectShares(ctx context.Context, req Request) ([][]byte, error) {
	shares := make([][]byte, 0, shamir.SignalThreshold)

	if ciphertext, ok := o.store.Release(req.SignalID, req.BuyerAddress); ok {
		shares = append(shares, ciphertext)
	}

	if len(shares) >= shamir.SignalThreshold {
		return shares, nil
	}

	deadlineCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	type releaseOutcome struct {
		ciphertext []byte
		err        error
	}
	results := make(chan releaseOutcome, len(o.peers))
	for _, peer := range o.peers {
		peer := peer
		go func() {
			ciphertext, err := peer.Release(deadlineCtx, req.BuyerAddress, req.SignalID)
			results <- releaseOutcome{ciphertext: ciphertext, err: err}
		}()
	}
	for i := 0; i < len(o.peers) && len(shares) < shamir.SignalThreshold; i++ {
		outcome := <-results
		if outcome.err != nil {
			continue
		}
		shares = append(shares, outcome.ciphertext)
	}

	if len(shares) < shamir.SignalThreshold {
		return nil, sharestore.ErrUnknownSignal
	}
	return shares, nil
}

func toGateSet(req Request) map[int]struct{} {
	set := make(map[int]struct{}, len(req.AvailableIndices))
	for _, idx := range req.AvailableIndices {
		set[idx] = struct{}{}
	}
	return set
}
