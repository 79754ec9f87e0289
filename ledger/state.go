// Package ledger implements a fungible-token ledger with governance-gated
// administration and compliance sanctions.
//
// The engine is a pure state-transition machine: every operation is a
// deterministic function of (current state, caller identity, arguments) that
// either applies all of its effects and returns the emitted events, or
// returns an error and leaves the state untouched. The engine performs no
// locking, no I/O and no cryptography; the host invoking it is responsible
// for serializing calls, verifying caller identity and transporting events.
package ledger

type allowanceKey struct {
	Owner   AccountID
	Spender AccountID
}

// State holds the complete persistent state of the token ledger: account
// balances and sanction flags, spending allowances, the supply counter,
// the governance identity and the pause switch.
//
// A State is an explicit value threaded through every operation. Construct
// one with NewState, seed it exactly once with Init.
type State struct {
	accounts   map[AccountID]AccountInfo
	allowances map[allowanceKey]uint64
	supply     uint64

	governance AccountID
	paused     bool

	initialized bool
	meta        Metadata
}

// NewState creates an empty, uninitialized ledger state.
func NewState() *State {
	return &State{
		accounts:   make(map[AccountID]AccountInfo),
		allowances: make(map[allowanceKey]uint64),
	}
}

// Init seeds the ledger: initial balances, the governance identity, token
// metadata, pause off. It can succeed at most once; every other mutating
// operation is rejected until it has. Duplicate identities in the input sum
// their balances. A zero Metadata value falls back to DefaultMetadata.
//
// Init emits no events.
func (s *State) Init(accounts []InitialAccount, governance AccountID, meta Metadata) error {
	if s.initialized {
		return ErrAlreadyInitialized
	}

	// Validate the whole seeding before touching the state.
	seeded := make(map[AccountID]AccountInfo, len(accounts)+1)
	var supply uint64
	for _, ia := range accounts {
		total, ok := addChecked(supply, ia.Balance)
		if !ok {
			return ErrSupplyOverflow
		}
		supply = total
		info := seeded[ia.Account]
		info.Balance += ia.Balance // cannot wrap: bounded by supply
		seeded[ia.Account] = info
	}

	for id, info := range seeded {
		s.accounts[id] = info
	}
	s.supply = supply
	s.governance = governance
	s.materialize(governance)
	s.paused = false
	if meta == (Metadata{}) {
		meta = DefaultMetadata()
	}
	s.meta = meta
	s.initialized = true
	return nil
}

// Initialized reports whether Init has succeeded.
func (s *State) Initialized() bool {
	return s.initialized
}

// Name returns the token name.
func (s *State) Name() string { return s.meta.Name }

// Symbol returns the token symbol.
func (s *State) Symbol() string { return s.meta.Symbol }

// Decimals returns the token decimal places.
func (s *State) Decimals() uint8 { return s.meta.Decimals }

// TotalSupply returns the current total supply. It equals the sum of all
// account balances after every operation.
func (s *State) TotalSupply() uint64 { return s.supply }

// Account returns the account data for an identity, the zero AccountInfo if
// the account has never been referenced.
func (s *State) Account(id AccountID) AccountInfo {
	return s.accounts[id]
}

// BalanceOf returns the balance of an account, zero if absent.
func (s *State) BalanceOf(id AccountID) uint64 {
	return s.accounts[id].Balance
}

// Allowance returns the amount spender may move on behalf of owner, zero if
// no approval exists.
func (s *State) Allowance(owner, spender AccountID) uint64 {
	return s.allowances[allowanceKey{Owner: owner, Spender: spender}]
}

// Governance returns the current governance identity, the zero account once
// governance has been renounced.
func (s *State) Governance() AccountID { return s.governance }

// IsPaused reports whether normal transfers are suspended.
func (s *State) IsPaused() bool { return s.paused }

// Blocked reports whether the account is blocked.
func (s *State) Blocked(id AccountID) bool {
	return s.accounts[id].Blocked
}

// Frozen reports whether the account is frozen.
func (s *State) Frozen(id AccountID) bool {
	return s.accounts[id].Frozen
}

// Clone creates a deep copy of the state. Hosts apply operations to a clone
// and adopt it only after the whole commit succeeds.
func (s *State) Clone() *State {
	clone := &State{
		accounts:    make(map[AccountID]AccountInfo, len(s.accounts)),
		allowances:  make(map[allowanceKey]uint64, len(s.allowances)),
		supply:      s.supply,
		governance:  s.governance,
		paused:      s.paused,
		initialized: s.initialized,
		meta:        s.meta,
	}
	for id, info := range s.accounts {
		clone.accounts[id] = info
	}
	for key, amount := range s.allowances {
		clone.allowances[key] = amount
	}
	return clone
}

// materialize ensures an account entry exists for the identity. The zero
// account is never stored.
func (s *State) materialize(id AccountID) {
	if id.IsZero() {
		return
	}
	if _, ok := s.accounts[id]; !ok {
		s.accounts[id] = AccountInfo{}
	}
}

func addChecked(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}
