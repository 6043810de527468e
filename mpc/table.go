package mpc

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// DefaultSessionTableCapacity bounds the session table per §9 Open
// Question 3: "must not grow unbounded." LRU eviction is this module's
// resolution of that open question.
const DefaultSessionTableCapacity = 1024

// DefaultPeerTimeout is MPC_PEER_TIMEOUT's default (§5, §6).
const DefaultPeerTimeout = 10 * time.Second

// Table is the bounded session table keyed by session_id. Inserts and reads
// happen under a lock that never spans I/O (§5).
type Table struct {
	cache *lru.Cache[string, *Session]
	log   *zap.Logger
}

// NewTable constructs a Table with the given capacity (0 uses
// DefaultSessionTableCapacity).
func NewTable(capacity int, log *zap.Logger) (*Table, error) {
	if capacity <= 0 {
		capacity = DefaultSessionTableCapacity
	}
	if log == nil {
		log = zap.NewNop()
	}

	t := &Table{log: log}
	cache, err := lru.NewWithEvict[string, *Session](capacity, t.onEvict)
	if err != nil {
		return nil, err
	}
	t.cache = cache
	return t, nil
}

func (t *Table) onEvict(sessionID string, sess *Session) {
	t.log.Warn("mpc_session_evicted", zap.String("session_id", sessionID), zap.Stringer("state", sess.State()))
}

// Create inserts a new session, returning ErrDuplicateSession if sessionID
// already exists in the table.
func (t *Table) Create(sess *Session) error {
	if exists, _ := t.cache.ContainsOrAdd(sess.ID(), sess); exists {
		return ErrDuplicateSession
	}
	return nil
}

// Get retrieves a session by ID, returning ErrUnknownSession if absent
// (evicted or never created). Expired sessions stay in the table until
// evicted.
func (t *Table) Get(sessionID string) (*Session, error) {
	sess, ok := t.cache.Get(sessionID)
	if !ok {
		return nil, ErrUnknownSession
	}
	return sess, nil
}

// Len returns the number of sessions currently held.
func (t *Table) Len() int {
	return t.cache.Len()
}
