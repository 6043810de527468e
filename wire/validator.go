package wire

// StoreShareRequest is the body of POST /v1/shares/store. ShareX is in
// [1,10]; ShareY and EncryptedKeyShare are hex-encoded (§6).
type StoreShareRequest struct {
	SignalID          string `json:"signal_id"`
	GeniusAddress     string `json:"genius_address"`
	ShareX            int    `json:"share_x"`
	ShareY            string `json:"share_y"`
	EncryptedKeyShare string `json:"encrypted_key_share"`
}

// PurchaseRequest is the body of POST /v1/purchase. AvailableIndices is a
// subset of [1..10] with length 1..10.
type PurchaseRequest struct {
	BuyerAddress     string `json:"buyer_address"`
	Sportsbook       string `json:"sportsbook"`
	AvailableIndices []int  `json:"available_indices"`
}

// PurchaseStatus enumerates the Result.Status values on the wire.
type PurchaseStatus string

const (
	PurchaseAvailable   PurchaseStatus = "available"
	PurchaseUnavailable PurchaseStatus = "unavailable"
	PurchaseError       PurchaseStatus = "error"
)

// PurchaseResponse is the response to POST /v1/purchase.
type PurchaseResponse struct {
	Status             PurchaseStatus `json:"status"`
	EncryptedKeyShares []string       `json:"encrypted_key_shares,omitempty"`
	ErrorKind          string         `json:"error_kind,omitempty"`
}

// MPCRound1Request is the body of POST /v1/mpc/round1. ValidatorX is in
// [1,10]; DValue and EValue are hex-encoded field elements.
type MPCRound1Request struct {
	SessionID  string `json:"session_id"`
	GateIdx    int    `json:"gate_idx"`
	ValidatorX int    `json:"validator_x"`
	DValue     string `json:"d_value"`
	EValue     string `json:"e_value"`
}
