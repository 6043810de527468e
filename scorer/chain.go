package scorer

import "context"

// ChainNeuron is the capability interface EpochLoop drives against the
// underlying chain client (§9 Design Notes: "global mutable state" in the
// source is replaced here by an explicit, injectable collaborator). The
// concrete Bittensor-backed implementation is out of scope (§1 Non-goals).
type ChainNeuron interface {
	// SyncMetagraph refreshes the neuron's view of the subnet.
	SyncMetagraph(ctx context.Context) error

	// MinerUIDs returns the UIDs currently registered on the subnet.
	MinerUIDs() []UID

	// SetWeights commits a weight vector to the chain.
	SetWeights(ctx context.Context, weights map[UID]float64) error

	// IsRegistered reports whether this validator is currently registered.
	IsRegistered() bool

	// UID returns this validator's own UID.
	UID() UID
}
