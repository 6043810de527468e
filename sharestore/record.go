// Package sharestore implements a validator's local store of encrypted key
// shares and the at-most-once, idempotent release of those shares to a
// buyer (§4.3).
package sharestore

import (
	"time"

	"github.com/Djinn-Inc/djinn-sub001/shamir"
)

// SignalShareRecord is owned by exactly one Store instance. Once created by
// Store, only ReleasedTo ever changes (via Release); Share and
// EncryptedKeyShare never mutate.
type SignalShareRecord struct {
	SignalID          string
	GeniusAddress     string
	Share             shamir.Share
	EncryptedKeyShare []byte
	StoredAt          time.Time
	ReleasedTo        map[string]struct{}
}

// HasReleasedTo reports whether buyer has already received this record's
// encrypted key share.
func (r SignalShareRecord) HasReleasedTo(buyer string) bool {
	_, ok := r.ReleasedTo[buyer]
	return ok
}

// snapshot returns a deep copy safe to hand to callers outside the Store's
// lock, per §9's "handing out read-only views" re-architecting note.
func (r SignalShareRecord) snapshot() SignalShareRecord {
	out := r
	out.EncryptedKeyShare = append([]byte(nil), r.EncryptedKeyShare...)
	out.ReleasedTo = make(map[string]struct{}, len(r.ReleasedTo))
	for b := range r.ReleasedTo {
		out.ReleasedTo[b] = struct{}{}
	}
	return out
}
