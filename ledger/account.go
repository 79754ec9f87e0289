package ledger

// AccountID identifies an account. The value is opaque to the engine: any
// comparable, totally ordered identity (a hex-encoded public key, a contract
// address) works as a map key. The empty string is the distinguished zero
// account used as the endpoint of mint/burn events and as the governance
// value after renouncement.
type AccountID string

// ZeroAccount is the distinguished null identity.
const ZeroAccount AccountID = ""

// IsZero reports whether the identity is the null identity.
func (id AccountID) IsZero() bool {
	return id == ZeroAccount
}

// AccountInfo is the data an account has in the ledger. Accounts are created
// implicitly on first reference with a zero balance and no sanctions.
type AccountInfo struct {
	// Balance of the account in the smallest token unit.
	Balance uint64 `json:"balance"`

	// Blocked accounts can neither send nor receive in normal transfers.
	Blocked bool `json:"blocked,omitempty"`

	// Frozen accounts can receive but not send in normal transfers.
	Frozen bool `json:"frozen,omitempty"`
}

// InitialAccount seeds one account balance during initialization.
type InitialAccount struct {
	Account AccountID `json:"account"`
	Balance uint64    `json:"balance"`
}

// Metadata describes the token itself. It is fixed at initialization.
type Metadata struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// DefaultMetadata returns the token description used when Init is given a
// zero Metadata value.
func DefaultMetadata() Metadata {
	return Metadata{
		Name:     "Electronic Money Token",
		Symbol:   "EMT",
		Decimals: 18,
	}
}
