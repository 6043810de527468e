package wire

// CandidateLine is one line a miner is asked whether it can serve (§6
// POST /v1/check).
type CandidateLine struct {
	Sportsbook string  `json:"sportsbook"`
	EventID    string  `json:"event_id"`
	Market     string  `json:"market"`
	Line       float64 `json:"line"`
}

// LineResult is the miner's per-line verdict.
type LineResult struct {
	Index     int    `json:"index"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// CheckRequest is the body of POST /v1/check. Lines has length 1..10.
type CheckRequest struct {
	Lines []CandidateLine `json:"lines"`
}

// CheckResponse is the response to POST /v1/check.
type CheckResponse struct {
	Results          []LineResult `json:"results"`
	AvailableIndices []int        `json:"available_indices"`
	ResponseTimeMS   float64      `json:"response_time_ms"`
}

// ProofStatus enumerates /v1/proof's status field.
type ProofStatus string

const (
	ProofSubmitted ProofStatus = "submitted"
	ProofVerified  ProofStatus = "verified"
	ProofFailed    ProofStatus = "failed"
)

// ProofRequest is the body of POST /v1/proof.
type ProofRequest struct {
	QueryID     string `json:"query_id"`     // len <= 256
	SessionData string `json:"session_data"` // len <= 10000
}

// ProofResponse is the response to POST /v1/proof.
type ProofResponse struct {
	QueryID   string      `json:"query_id"`
	ProofHash string      `json:"proof_hash"`
	Status    ProofStatus `json:"status"`
	Message   string      `json:"message,omitempty"`
}

// HealthResponse is the response to GET /health.
type HealthResponse struct {
	Status           string  `json:"status"`
	Version          string  `json:"version"`
	UID              *int    `json:"uid,omitempty"`
	OddsAPIConnected bool    `json:"odds_api_connected"`
	BTConnected      bool    `json:"bt_connected"`
	UptimeSeconds    float64 `json:"uptime_seconds"`
}
