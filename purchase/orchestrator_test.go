package purchase_test

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/Djinn-Inc/djinn-sub001/field"
	"github.com/Djinn-Inc/djinn-sub001/mpc"
	"github.com/Djinn-Inc/djinn-sub001/purchase"
	"github.com/Djinn-Inc/djinn-sub001/shamir"
	"github.com/Djinn-Inc/djinn-sub001/sharestore"
)

type fakePeer struct {
	contribution mpc.Contribution
	contribErr   error
	ciphertext   []byte
	releaseErr   error
}

func (p *fakePeer) Contribute(ctx context.Context, sessionID string, gateIdx int) (mpc.Contribution, error) {
	return p.contribution, p.contribErr
}

func (p *fakePeer) Release(ctx context.Context, buyerAddress, signalID string) ([]byte, error) {
	return p.ciphertext, p.releaseErr
}

// buildPeers distributes the index-shares beyond the local share to 6 fake
// peers, each able to compute a valid MPC contribution and a distinct
// release ciphertext.
func buildPeers(shares shamir.Shares, xs []field.Element, signalID string, gateIdx int, available map[int]struct{}) []purchase.Peer {
	peers := make([]purchase.Peer, 0, 6)
	for i := 1; i < 7; i++ {
		c := mpc.ComputeLocalContribution(signalID, gateIdx, shares[i], xs, available)
		peers = append(peers, &fakePeer{
			contribution: c,
			ciphertext:   []byte(fmt.Sprintf("ciphertext-%d", i)),
		})
	}
	return peers
}

var _ = Describe("Orchestrator", func() {
	const signalID = "sig-purchase-1"

	setOf := func(xs ...int) map[int]struct{} {
		out := make(map[int]struct{}, len(xs))
		for _, x := range xs {
			out[x] = struct{}{}
		}
		return out
	}

	It("returns Available when the real index is in A and enough peers respond", func() {
		available := setOf(1, 3, 5, 7, 9)
		shares, err := shamir.GenerateSignalIndexShares(5)
		Expect(err).NotTo(HaveOccurred())

		xs := make([]field.Element, 7)
		for i := 0; i < 7; i++ {
			xs[i] = shares[i].X
		}

		store := sharestore.New(nil)
		Expect(store.Store(signalID, "validator-self", shares[0], []byte("ciphertext-0"))).To(Succeed())

		sessions, err := mpc.NewTable(64, nil)
		Expect(err).NotTo(HaveOccurred())

		peers := buildPeers(shares, xs, signalID, 0, available)
		orch := purchase.New(store, sessions, peers, 7, time.Second, nil)

		req := purchase.Request{
			BuyerAddress:     "buyer-1",
			SignalID:         signalID,
			GateIdx:          0,
			AvailableIndices: []int{1, 3, 5, 7, 9},
			LocalShare:       shares[0],
			ParticipatingXs:  xs,
		}
		result := orch.Purchase(context.Background(), req)
		Expect(result.Status).To(Equal(purchase.StatusAvailable))
		Expect(len(result.EncryptedKeyShares)).To(BeNumerically(">=", shamir.SignalThreshold))
	})

	It("returns Unavailable when the real index is not in A", func() {
		available := setOf(1, 2, 3, 4)
		shares, err := shamir.GenerateSignalIndexShares(5)
		Expect(err).NotTo(HaveOccurred())

		xs := make([]field.Element, 7)
		for i := 0; i < 7; i++ {
			xs[i] = shares[i].X
		}

		store := sharestore.New(nil)
		Expect(store.Store(signalID+"-unavail", "validator-self", shares[0], []byte("ciphertext-0"))).To(Succeed())

		sessions, err := mpc.NewTable(64, nil)
		Expect(err).NotTo(HaveOccurred())

		peers := buildPeers(shares, xs, signalID+"-unavail", 0, available)
		orch := purchase.New(store, sessions, peers, 7, time.Second, nil)

		req := purchase.Request{
			BuyerAddress:     "buyer-1",
			SignalID:         signalID + "-unavail",
			GateIdx:          0,
			AvailableIndices: []int{1, 2, 3, 4},
			LocalShare:       shares[0],
			ParticipatingXs:  xs,
		}
		result := orch.Purchase(context.Background(), req)
		Expect(result.Status).To(Equal(purchase.StatusUnavailable))
	})

	It("returns Error when too few peers respond", func() {
		available := setOf(1, 3, 5, 7, 9)
		shares, err := shamir.GenerateSignalIndexShares(5)
		Expect(err).NotTo(HaveOccurred())

		xs := make([]field.Element, 7)
		for i := 0; i < 7; i++ {
			xs[i] = shares[i].X
		}

		store := sharestore.New(nil)
		sessions, err := mpc.NewTable(64, nil)
		Expect(err).NotTo(HaveOccurred())

		// Only 2 of the 6 needed peers are reachable.
		peers := []purchase.Peer{
			&fakePeer{contribution: mpc.ComputeLocalContribution(signalID+"-insufficient", 0, shares[1], xs, available)},
			&fakePeer{contribErr: fmt.Errorf("peer unreachable")},
		}
		orch := purchase.New(store, sessions, peers, 7, 50*time.Millisecond, nil)

		req := purchase.Request{
			BuyerAddress:     "buyer-1",
			SignalID:         signalID + "-insufficient",
			GateIdx:          0,
			AvailableIndices: []int{1, 3, 5, 7, 9},
			LocalShare:       shares[0],
			ParticipatingXs:  xs,
		}
		result := orch.Purchase(context.Background(), req)
		Expect(result.Status).To(Equal(purchase.StatusError))
		Expect(result.Err.Kind).To(Equal(purchase.KindInsufficientValidators))
	})

	It("is idempotent across repeated purchases by the same buyer", func() {
		available := setOf(1, 3, 5, 7, 9)
		shares, err := shamir.GenerateSignalIndexShares(5)
		Expect(err).NotTo(HaveOccurred())

		xs := make([]field.Element, 7)
		for i := 0; i < 7; i++ {
			xs[i] = shares[i].X
		}

		store := sharestore.New(nil)
		Expect(store.Store(signalID+"-idem", "validator-self", shares[0], []byte("ciphertext-0"))).To(Succeed())

		sessions, err := mpc.NewTable(64, nil)
		Expect(err).NotTo(HaveOccurred())

		peers := buildPeers(shares, xs, signalID+"-idem", 0, available)
		orch := purchase.New(store, sessions, peers, 7, time.Second, nil)

		req := purchase.Request{
			BuyerAddress:     "buyer-1",
			SignalID:         signalID + "-idem",
			GateIdx:          0,
			AvailableIndices: []int{1, 3, 5, 7, 9},
			LocalShare:       shares[0],
			ParticipatingXs:  xs,
		}
		first := orch.Purchase(context.Background(), req)
		Expect(first.Status).To(Equal(purchase.StatusAvailable))

		second := orch.Purchase(context.Background(), req)
		Expect(second.Status).To(Equal(purchase.StatusAvailable))
		firstSet := make([]interface{}, len(first.EncryptedKeyShares))
		for i, s := range first.EncryptedKeyShares {
			firstSet[i] = s
		}
		Expect(second.EncryptedKeyShares).To(ConsistOf(firstSet...))
	})
})
