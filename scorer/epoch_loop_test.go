package scorer_test

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/Djinn-Inc/djinn-sub001/scorer"
)

type fakeNeuron struct {
	mu          sync.Mutex
	syncErr     error
	registered  bool
	uids        []scorer.UID
	setWeights  []map[scorer.UID]float64
	syncCalls   int
	setWeightsN int
}

func (n *fakeNeuron) SyncMetagraph(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.syncCalls++
	return n.syncErr
}

func (n *fakeNeuron) MinerUIDs() []scorer.UID {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.uids
}

func (n *fakeNeuron) SetWeights(ctx context.Context, weights map[scorer.UID]float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.setWeights = append(n.setWeights, weights)
	n.setWeightsN++
	return nil
}

func (n *fakeNeuron) IsRegistered() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.registered
}

func (n *fakeNeuron) UID() scorer.UID { return 0 }

type fakePinger struct {
	unresponsive map[scorer.UID]struct{}
}

func (p *fakePinger) PingMiner(ctx context.Context, uid scorer.UID) error {
	if _, down := p.unresponsive[uid]; down {
		return context.DeadlineExceeded
	}
	return nil
}

var _ = Describe("EpochLoop", func() {
	It("syncs, pings miners, and commits weights on each tick", func() {
		neuron := &fakeNeuron{registered: true, uids: []scorer.UID{1, 2}}
		pinger := &fakePinger{unresponsive: map[scorer.UID]struct{}{2: {}}}
		s := scorer.New()
		loop := scorer.NewEpochLoop(neuron, s, pinger, 10*time.Millisecond, func() bool { return true }, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 35*time.Millisecond)
		defer cancel()
		_ = loop.Run(ctx)

		neuron.mu.Lock()
		defer neuron.mu.Unlock()
		Expect(neuron.syncCalls).To(BeNumerically(">=", 1))
		Expect(neuron.setWeightsN).To(BeNumerically(">=", 1))
		Expect(neuron.setWeights[0][2]).To(Equal(0.0))
	})

	It("does not set weights while the validator is unregistered", func() {
		neuron := &fakeNeuron{registered: false, uids: []scorer.UID{1}}
		s := scorer.New()
		loop := scorer.NewEpochLoop(neuron, s, nil, 10*time.Millisecond, func() bool { return true }, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
		defer cancel()
		_ = loop.Run(ctx)

		neuron.mu.Lock()
		defer neuron.mu.Unlock()
		Expect(neuron.setWeightsN).To(Equal(0))
	})

	It("returns ctx.Err() once the context is cancelled", func() {
		neuron := &fakeNeuron{registered: true}
		s := scorer.New()
		loop := scorer.NewEpochLoop(neuron, s, nil, 5*time.Millisecond, func() bool { return false }, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := loop.Run(ctx)
		Expect(err).To(MatchError(context.Canceled))
	})
})
