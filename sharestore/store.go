package sharestore

import (
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Djinn-Inc/djinn-sub001/shamir"
)

var bigTen = big.NewInt(10)

// entry pairs a record with the lock that guards mutation of its
// ReleasedTo set. Share and EncryptedKeyShare are immutable after insertion
// and may be read without holding this lock.
type entry struct {
	mu     sync.Mutex
	record SignalShareRecord
}

// Store is a validator's local store of (signal_id -> encrypted key share
// record). A single writer is expected per signal_id on the Store path;
// many concurrent readers are supported via Get/Has. No operation suspends
// on I/O, so the map lock is never held across a blocking call.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	log     *zap.Logger
}

// New returns an empty Store. log may be nil, in which case a no-op logger
// is used.
func New(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		entries: make(map[string]*entry),
		log:     log,
	}
}

// Store inserts a new record iff signal_id is absent. A second Store call
// for the same signal_id is a no-op that logs and returns without mutating
// existing state (§3, §8 property 7).
func (s *Store) Store(signalID, geniusAddress string, share shamir.Share, encryptedKeyShare []byte) error {
	if signalID == "" {
		return ErrEmptySignalID
	}
	x := share.X.BigInt()
	if x.Sign() <= 0 || x.Cmp(bigTen) > 0 {
		return ErrShareIndexOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[signalID]; exists {
		s.log.Warn("share_already_stored", zap.String("signal_id", signalID))
		return nil
	}

	s.entries[signalID] = &entry{
		record: SignalShareRecord{
			SignalID:          signalID,
			GeniusAddress:     geniusAddress,
			Share:             share,
			EncryptedKeyShare: append([]byte(nil), encryptedKeyShare...),
			StoredAt:          time.Now(),
			ReleasedTo:        make(map[string]struct{}),
		},
	}
	s.log.Info("share_stored", zap.String("signal_id", signalID), zap.String("genius", geniusAddress))
	return nil
}

// Get retrieves a read-only copy of the record for signal_id, if present.
func (s *Store) Get(signalID string) (SignalShareRecord, bool) {
	e := s.lookup(signalID)
	if e == nil {
		return SignalShareRecord{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record.snapshot(), true
}

// Has reports whether the store holds a share for signal_id.
func (s *Store) Has(signalID string) bool {
	return s.lookup(signalID) != nil
}

// Release discloses the encrypted key share to buyerAddress, returning the
// ciphertext. Idempotent per (signal_id, buyer_address): repeat calls
// return the byte-identical ciphertext and ReleasedTo gains the buyer at
// most once (§8 property 6). Returns ok=false for an unknown signal_id,
// performing no mutation.
func (s *Store) Release(signalID, buyerAddress string) (ciphertext []byte, ok bool) {
	e := s.lookup(signalID)
	if e == nil {
		s.log.Warn("share_not_found", zap.String("signal_id", signalID))
		return nil, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.record.HasReleasedTo(buyerAddress) {
		s.log.Info("share_already_released", zap.String("signal_id", signalID), zap.String("buyer", buyerAddress))
		return cloneBytes(e.record.EncryptedKeyShare), true
	}

	e.record.ReleasedTo[buyerAddress] = struct{}{}
	s.log.Info("share_released", zap.String("signal_id", signalID), zap.String("buyer", buyerAddress))
	return cloneBytes(e.record.EncryptedKeyShare), true
}

// Remove deletes the record for signal_id, e.g. because the signal was
// voided, expired, or archived. No error if absent.
func (s *Store) Remove(signalID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, signalID)
}

// Count returns the number of signals currently tracked.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// ActiveSignals lists all signal IDs the store currently holds shares for.
func (s *Store) ActiveSignals() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.entries))
	for id := range s.entries {
		out = append(out, id)
	}
	return out
}

// Snapshot returns read-only copies of every record currently held, for
// introspection (e.g. transport-layer `/v1/shares` listing) without
// breaking the store's exclusive ownership of its records.
func (s *Store) Snapshot() []SignalShareRecord {
	s.mu.RLock()
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	out := make([]SignalShareRecord, 0, len(ids))
	for _, id := range ids {
		if rec, ok := s.Get(id); ok {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Store) lookup(signalID string) *entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[signalID]
}

func cloneBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}
